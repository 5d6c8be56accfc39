package db

import "context"

// DB is a store the server connects on startup and closes on shutdown.
type DB interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	Ping(ctx context.Context) error
}
