package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"mpesa_c2b/internal/adapter/http/routes"
	"mpesa_c2b/internal/infrastructure/config"

	_ "github.com/joho/godotenv/autoload"
)

// @title           M-Pesa C2B Service API
// @version         1.0
// @description     Submits M-Pesa customer-to-business payments and classifies gateway outcomes.

// @host localhost:8080

// @BasePath  /v1

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadAppConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := routes.Run(ctx, cfg); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}
