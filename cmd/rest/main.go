package main

import (
	"context"
	"log"

	"degrondvraag-be/internal/bootstrap"
	"degrondvraag-be/internal/config"
	"degrondvraag-be/internal/server"
	"degrondvraag-be/internal/tracer"
	"degrondvraag-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	// Snapshot consumer drives the live subscriptions.
	go func() {
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
