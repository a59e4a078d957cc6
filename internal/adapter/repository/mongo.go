package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// ConnectMongo dials the database and verifies the connection before
// handing the client back.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// MongoHealth exposes a liveness probe over the shared client for the
// status endpoint.
type MongoHealth struct {
	client *mongo.Client
}

func NewMongoHealth(client *mongo.Client) *MongoHealth {
	return &MongoHealth{client: client}
}

func (h *MongoHealth) Ping(ctx context.Context) error {
	return h.client.Ping(ctx, readpref.Primary())
}
