package main

import (
	"log"

	"github.com/dev-kelz/Event-Management-System/internal/config"
	"github.com/dev-kelz/Event-Management-System/internal/devserver"
)

func main() {
	cfg := config.MustLoad()

	srv, err := devserver.New(cfg)
	if err != nil {
		log.Fatalf("devserver init: %v", err)
	}

	if err = srv.Run(); err != nil {
		log.Fatalf("devserver run: %v", err)
	}
}
