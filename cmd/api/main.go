package main

import (
	"log"

	"github.com/reventhtv/careerscope-AI/internal/bootstrap"
	"github.com/reventhtv/careerscope-AI/internal/shared/config"
	"github.com/reventhtv/careerscope-AI/internal/shared/server"
)

func main() {
	cfg := config.Load()

	app, err := bootstrap.NewApp(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
