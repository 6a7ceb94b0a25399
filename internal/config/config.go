package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN        string
	AppPort    string
	SeedOnBoot bool
}

func Load() Config {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := Config{
		DSN:        os.Getenv("MYSQL_DSN"),
		AppPort:    os.Getenv("APP_PORT"),
		SeedOnBoot: os.Getenv("SEED_ON_BOOT") == "true",
	}

	if cfg.DSN == "" {
		log.Fatal("❌ MYSQL_DSN not set in environment")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
