package database

import (
	"context"
	"log"
	"time"

	"tranquilflow/config"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClient is the global MongoDB client instance. It stays nil when no
// DATABASE_URL is configured; the booking repository treats that as "store
// unavailable" rather than a startup failure.
var MongoClient *mongo.Client

// InitDB initializes the MongoDB connection when a database URL is configured.
func InitDB() {
	if config.AppConfig.DatabaseURL == "" {
		log.Println("No DATABASE_URL configured, booking store disabled")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(config.AppConfig.DatabaseURL)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("failed to ping MongoDB: %v", err)
	}
	MongoClient = client
	log.Println("Connected to MongoDB successfully!")
}

// Available reports whether the booking store is configured and connected.
func Available() bool {
	return MongoClient != nil
}
