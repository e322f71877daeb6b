package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	connectTimeout = 10 * time.Second
	// opTimeout bounds individual repository operations.
	opTimeout = 5 * time.Second
)

// Config holds the connection settings for the MongoDB deployment backing the
// user and order stores. Collection names are configured per repository.
type Config struct {
	URI      string
	Database string
	// ConnectTimeout bounds dialing and the startup ping. Zero means the
	// default of ten seconds.
	ConnectTimeout time.Duration
}

// Connect dials MongoDB, verifies the deployment is reachable, and returns
// the selected database together with a disconnect function the caller must
// invoke on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Database, func(context.Context) error, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = connectTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client.Database(cfg.Database), client.Disconnect, nil
}
