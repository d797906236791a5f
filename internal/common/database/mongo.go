// internal/common/database/mongo.go
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"geotransect-api/internal/common/config"
)

// MongoClient wraps the MongoDB client and the selected database handle.
type MongoClient struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongo connects to the document store described by the config.
func NewMongo(ctx context.Context, cfg config.MongoConfig) (*MongoClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("mongo url is not configured")
	}
	if cfg.Name == "" {
		return nil, fmt.Errorf("mongo database name is not configured")
	}

	connectCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ConnectTimeout)*time.Millisecond)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().
		ApplyURI(cfg.URL).
		SetServerSelectionTimeout(time.Duration(cfg.ConnectTimeout)*time.Millisecond))
	if err != nil {
		return nil, fmt.Errorf("mongo connect failed: %w", err)
	}

	return &MongoClient{
		Client:   client,
		Database: client.Database(cfg.Name),
	}, nil
}

// Ping tests the MongoDB connection.
func (c *MongoClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongo ping failed: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (c *MongoClient) Close(ctx context.Context) error {
	if c.Client != nil {
		return c.Client.Disconnect(ctx)
	}
	return nil
}
