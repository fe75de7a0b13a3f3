package main

import (
	"log"

	"github.com/dev-kelz/Event-Management-System/internal/app"
	"github.com/dev-kelz/Event-Management-System/internal/config"
)

func main() {
	cfg := config.MustLoad()

	agent, err := app.New(cfg)
	if err != nil {
		log.Fatalf("agent init: %v", err)
	}

	if err = agent.Run(); err != nil {
		log.Fatalf("agent run: %v", err)
	}
}
