//go:build ignore
// +build ignore

// Helper script to fill the configured inventory with sample data
// Run with: go run add_test_data.go [boxes] [products]

package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/thenoetrevino/stockbox/internal/config"
	"github.com/thenoetrevino/stockbox/internal/database"
)

func main() {
	boxes, products := 20, 200
	if len(os.Args) > 1 {
		boxes = atoi(os.Args[1])
	}
	if len(os.Args) > 2 {
		products = atoi(os.Args[2])
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()
	conn, err := database.InitDB(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer conn.Close()

	res, err := database.Seed(ctx, database.NewStore(conn, nil), boxes, products, nil)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	log.Printf("Created %d boxes and %d products (%d empty boxes pruned)",
		res.BoxesCreated, res.ProductsCreated, res.Cleanup.Boxes)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		log.Fatalf("Invalid count %q", s)
	}
	return n
}
