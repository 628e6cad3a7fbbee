// File: internal/platform/database/mongo.go
package database

import (
	"context"
	"fmt"
	"log" // Standard log for critical connection messages before zap is active
	"time"

	"blood_donation_backend/internal/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 10 * time.Second

// NewMongoClient connects a single long-lived MongoDB client. The client is
// established once at startup and injected into the repositories; pooling is
// left to the driver.
func NewMongoClient(cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	clientOptions := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Println("Successfully connected to the document store.")
	return client, nil
}

// NewDatabase returns the application database handle on the shared client.
func NewDatabase(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.MongoDatabase)
}

// CloseMongoClient disconnects the client. Useful for the cleanup function in main.
func CloseMongoClient(client *mongo.Client) {
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	log.Println("Closing document store connection...")
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Error closing document store connection: %v\n", err)
	} else {
		log.Println("Document store connection closed.")
	}
}
