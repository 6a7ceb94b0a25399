package main

import (
	"fmt"
	"log"

	"divinelife/internal/config"
	"divinelife/internal/db"
	httpserver "divinelife/internal/http"
	"divinelife/internal/seed"
)

func main() {
	cfg := config.Load()

	gdb := db.Connect(cfg.DSN)
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("❌ Migration failed: %v", err)
	}

	if cfg.SeedOnBoot {
		if _, err := seed.Roles(gdb); err != nil {
			log.Fatalf("❌ Seed failed: %v", err)
		}
	}

	r := httpserver.NewRouter(gdb)
	log.Printf("🚀 Server listening on :%s\n", cfg.AppPort)
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatalf("❌ Server stopped: %v", err)
	}
}
