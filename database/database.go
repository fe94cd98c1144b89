package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

// Connect initializes the MongoDB connection
func Connect() {
	mongoURI := os.Getenv("MONGODB_URI")
	dbName := os.Getenv("MONGODB_DATABASE")

	if mongoURI == "" || dbName == "" {
		log.Fatal("MONGODB_URI and MONGODB_DATABASE must be set in the environment variables or .env file")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	// Ping the primary server to verify the connection.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to connect to MongoDB (ping failed): %v", err)
	}

	log.Println("Successfully connected and pinged MongoDB.")

	mongoClient = client
	mongoDB = client.Database(dbName)

	// Ensure the payment_id uniqueness invariant at the DB level. Creation may
	// fail if duplicates predate the index; that is logged, not fatal.
	go func() {
		indexModel := mongo.IndexModel{
			Keys:    bson.D{{Key: "payment_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		}
		_, err := mongoDB.Collection("influencer_submissions").Indexes().CreateOne(context.Background(), indexModel)
		if err != nil {
			log.Printf("Warning: Could not create unique index on 'payment_id': %v", err)
		} else {
			log.Println("Unique index on 'payment_id' field ensured.")
		}
	}()
}

// GetDB returns the MongoDB database instance
func GetDB() *mongo.Database {
	return mongoDB
}

// Disconnect closes the MongoDB connection
// Call this on graceful shutdown if needed
func Disconnect() {
	if mongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(ctx); err != nil {
			log.Fatalf("Error disconnecting MongoDB: %v", err)
		}
		log.Println("MongoDB connection closed.")
	}
}
