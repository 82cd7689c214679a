package config

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const DatabaseName = "stakex"

func ConnectToMongo() (*mongo.Client, error) {
	uri := os.Getenv("MONGO_URI")

	if uri == "" {
		return nil, fmt.Errorf("MONGO_URI not set")
	}

	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(context.Background(), clientOptions)

	if err != nil {
		return nil, err
	}

	err = client.Ping(context.Background(), nil)

	if err != nil {
		return nil, err
	}

	return client, nil
}

// EnsureIndexes creates the unique email index on users and the date
// index the default listing sort leans on. Called once at startup.
func EnsureIndexes(client *mongo.Client) error {
	users := client.Database(DatabaseName).Collection("users")
	_, err := users.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	transactions := client.Database(DatabaseName).Collection("transactions")
	_, err = transactions.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.M{"date": 1},
	})
	return err
}
