package main

import (
	"github.com/sirupsen/logrus"

	"lanchat/internal/config"
	"lanchat/internal/database"
	"lanchat/internal/relay"
	"lanchat/internal/server"
	"lanchat/internal/store"
	"lanchat/internal/ws"
)

func main() {
	log := logrus.New()
	cfg := config.Load()
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	// An unusable store is fatal: the server must not serve traffic it
	// cannot persist.
	if err := database.InitSchema(db); err != nil {
		log.Fatalf("schema error: %v", err)
	}

	messages := store.NewMessageStore(db)
	hub := ws.NewHub(log)
	rl := relay.New(messages, hub, log)

	srv := server.NewServer(":"+cfg.Port, cfg.Port, messages, hub, rl, log)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
