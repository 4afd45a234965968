// Package memorystorage provides the in-memory storage backend used when
// neither a database DSN nor a storage file is configured. It is a SQLite
// database living entirely in RAM, so it behaves exactly like the file
// backend but loses everything on shutdown.
package memorystorage

import (
	"context"
	"time"

	"github.com/patric-chuzhbe/guessnum/internal/db/sqlitedb"
)

// MemoryStorage is an ephemeral storage backend.
type MemoryStorage struct {
	*sqlitedb.SQLiteDB
}

// New creates an empty in-memory database with the game schema applied.
func New(ctx context.Context, connectionTimeout time.Duration) (*MemoryStorage, error) {
	db, err := sqlitedb.New(ctx, sqlitedb.MemoryDSN, connectionTimeout)
	if err != nil {
		return nil, err
	}

	return &MemoryStorage{SQLiteDB: db}, nil
}
