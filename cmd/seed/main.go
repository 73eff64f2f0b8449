package main

import (
	"context"
	"log"
	"os"
	"time"

	"interviewflow/internal/repository"
	"interviewflow/internal/service"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Seeds the default application-tracker board into MongoDB.
func main() {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database("interviewflow")
	trackerSvc := service.NewTrackerService(repository.NewTrackerRepo(db))

	board, err := trackerSvc.Board(ctx)
	if err != nil {
		log.Fatalf("Failed to seed tracker board: %v", err)
	}

	log.Printf("Tracker board ready with %d columns:", len(board.Columns))
	for _, id := range board.ColumnOrder {
		column := board.Columns[id]
		log.Printf("  %-10s %s (%d items)", column.ID, column.Title, len(column.Items))
	}
}
