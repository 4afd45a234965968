// Package storage defines the persistence contract shared by the
// PostgreSQL, SQLite and in-memory backends.
package storage

import (
	"context"
	"database/sql"

	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

// Storage is implemented by every database backend. Methods that accept a
// *sql.Tx run inside that transaction when it is non-nil and in autocommit
// mode otherwise. Lookup methods report a missing row as a user with an
// empty ID rather than an error.
type Storage interface {
	CreateUser(
		ctx context.Context,
		usr *user.User,
		transaction *sql.Tx,
	) error

	Close() error

	GetUserByID(
		ctx context.Context,
		userID string,
		transaction *sql.Tx,
	) (*user.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
		transaction *sql.Tx,
	) (*user.User, error)

	UpdateGameState(
		ctx context.Context,
		usr *user.User,
		transaction *sql.Tx,
	) error

	ListUsers(ctx context.Context) ([]user.User, error)

	Ping(ctx context.Context) error

	SaveFinishedRounds(
		ctx context.Context,
		rounds []models.FinishedRound,
		transaction *sql.Tx,
	) error

	GetNumberOfUsers(ctx context.Context) (int, error)

	GetNumberOfFinishedRounds(ctx context.Context) (int, error)

	ResetAllData(ctx context.Context, seedUsers []user.User) error

	BeginTransaction() (*sql.Tx, error)

	RollbackTransaction(transaction *sql.Tx) error

	CommitTransaction(transaction *sql.Tx) error
}
