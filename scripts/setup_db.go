package main

import (
	"context"
	"fmt"
	"log"
	"task-service/internal/config"
	"task-service/internal/repository"
	"task-service/internal/repository/postgres"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const setupTimeout = 30 * time.Second

var tables = []string{"users", "tasks"}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	fmt.Println("=== Setting Up Database ===")

	db, err := postgres.New(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Printf("Connected to %s@%s:%d/%s\n", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.Database)

	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	fmt.Println("Schema ensured")

	fmt.Println("=== Verifying Tables ===")
	for _, table := range tables {
		var exists bool
		query := `SELECT EXISTS (
			SELECT FROM information_schema.tables
			WHERE table_schema = 'public'
			AND table_name = $1
		)`
		if err := db.Pool.QueryRow(ctx, query, table).Scan(&exists); err != nil {
			fmt.Printf("Error checking table '%s': %v\n", table, err)
			continue
		}
		if exists {
			fmt.Printf("Table '%s' present\n", table)
		} else {
			fmt.Printf("Table '%s' MISSING\n", table)
		}
	}

	if cfg.Store.Seed {
		if err := repository.Seed(ctx, db, zap.NewExample()); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	fmt.Println("=== Database Setup Complete ===")
}
