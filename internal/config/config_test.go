package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Load_Env_Overrides(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "9999")
	t.Setenv("DB_PATH", "/tmp/other.db")

	c := Load()
	req.Equal("9999", c.Port)
	req.Equal("/tmp/other.db", c.DBPath)
}

func Test_Load_Empty_Env_Falls_Back_To_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("ENV", "")
	t.Setenv("LOG_LEVEL", "")

	c := Load()
	req.Equal("5000", c.Port)
	req.Equal("chat.db", c.DBPath)
	req.Equal("dev", c.Env)
	req.Equal("info", c.LogLevel)
}
