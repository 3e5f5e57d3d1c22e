package main

import (
	"context"
	"log"

	"nextel-storefront-be/internal/bootstrap"
	"nextel-storefront-be/internal/config"
	"nextel-storefront-be/internal/server"
	"nextel-storefront-be/internal/tracer"
	"nextel-storefront-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	// A database is optional: without one the storefront runs with
	// in-memory repositories.
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
		gormDB = db
	} else {
		log.Println("DB_CONNECTION_STRING not set, running with in-memory repositories")
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	go func() {
		log.Println("Background: starting analytics consumer...")
		if err := container.AnalyticsConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background analytics consumer error: %v", err)
		}
	}()

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
