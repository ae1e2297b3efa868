package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port     string
	DBPath   string
	Env      string
	LogLevel string
}

// Load reads configuration from the environment (and an optional .env file).
// Every setting has a default so the server starts with no configuration at
// all, which is the expected mode for a LAN tool.
func Load() *Config {
	_ = godotenv.Load()

	c := &Config{
		Port:     getEnv("PORT", "5000"),
		DBPath:   getEnv("DB_PATH", "chat.db"),
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	logrus.Infof("config loaded: env=%s port=%s db=%s", c.Env, c.Port, c.DBPath)
	return c
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
