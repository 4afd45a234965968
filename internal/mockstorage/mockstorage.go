// Package mockstorage provides a testify-based mock implementation
// of the internal storage interface used by the router and service packages.
// It is used for unit testing handlers by simulating storage behavior.
package mockstorage

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

// StorageMock is a testify mock that implements the full storage interface.
//
// Use it in tests to simulate database behavior.
type StorageMock struct {
	mock.Mock

	// OnGetNumberOfUsers is an optional function field that can be assigned
	// to define custom mock behavior for GetNumberOfUsers in tests.
	//
	// If set, GetNumberOfUsers will delegate to this function instead of
	// using testify's generic mock handler.
	OnGetNumberOfUsers func(ctx context.Context) (int, error)

	// OnGetNumberOfFinishedRounds is an optional function field that can be
	// used to customize the return values of GetNumberOfFinishedRounds in
	// tests.
	//
	// If non-nil, the mock implementation will call this function directly.
	OnGetNumberOfFinishedRounds func(ctx context.Context) (int, error)
}

// Ping mocks the pinger interface to simulate a health check.
func (m *StorageMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// BeginTransaction mocks the beginning of a transaction.
func (m *StorageMock) BeginTransaction() (*sql.Tx, error) {
	args := m.Called()
	tx, _ := args.Get(0).(*sql.Tx)
	return tx, args.Error(1)
}

// CommitTransaction mocks committing a transaction.
func (m *StorageMock) CommitTransaction(tx *sql.Tx) error {
	args := m.Called(tx)
	return args.Error(0)
}

// RollbackTransaction mocks rolling back a transaction.
func (m *StorageMock) RollbackTransaction(tx *sql.Tx) error {
	args := m.Called(tx)
	return args.Error(0)
}

// CreateUser mocks user creation.
func (m *StorageMock) CreateUser(ctx context.Context, usr *user.User, tx *sql.Tx) error {
	args := m.Called(ctx, usr, tx)
	return args.Error(0)
}

// GetUserByID mocks fetching a user by their ID.
func (m *StorageMock) GetUserByID(ctx context.Context, userID string, tx *sql.Tx) (*user.User, error) {
	args := m.Called(ctx, userID, tx)
	return args.Get(0).(*user.User), args.Error(1)
}

// GetUserByEmail mocks fetching a user by their email address.
func (m *StorageMock) GetUserByEmail(ctx context.Context, email string, tx *sql.Tx) (*user.User, error) {
	args := m.Called(ctx, email, tx)
	return args.Get(0).(*user.User), args.Error(1)
}

// UpdateGameState mocks writing the round fields of a user back to storage.
func (m *StorageMock) UpdateGameState(ctx context.Context, usr *user.User, tx *sql.Tx) error {
	args := m.Called(ctx, usr, tx)
	return args.Error(0)
}

// ListUsers mocks fetching all users in registration order.
func (m *StorageMock) ListUsers(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]user.User), args.Error(1)
}

// SaveFinishedRounds mocks batch saving of finished round records.
func (m *StorageMock) SaveFinishedRounds(
	ctx context.Context,
	rounds []models.FinishedRound,
	tx *sql.Tx,
) error {
	args := m.Called(ctx, rounds, tx)
	return args.Error(0)
}

// ResetAllData mocks wiping the game data and inserting seed users.
func (m *StorageMock) ResetAllData(ctx context.Context, seedUsers []user.User) error {
	args := m.Called(ctx, seedUsers)
	return args.Error(0)
}

// Close mocks closing the storage and releasing resources.
func (m *StorageMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

// GetNumberOfUsers returns the number of users as defined by the mock.
//
// If OnGetNumberOfUsers is non-nil, it will be called to produce the result.
// Otherwise, the method returns 0 and no error by default.
func (m *StorageMock) GetNumberOfUsers(ctx context.Context) (int, error) {
	if m.OnGetNumberOfUsers != nil {
		return m.OnGetNumberOfUsers(ctx)
	}
	return 0, nil
}

// GetNumberOfFinishedRounds returns the number of recorded finished rounds.
//
// If OnGetNumberOfFinishedRounds is defined, the method will call it and
// return its result. Otherwise, it defaults to returning 0 and no error.
func (m *StorageMock) GetNumberOfFinishedRounds(ctx context.Context) (int, error) {
	if m.OnGetNumberOfFinishedRounds != nil {
		return m.OnGetNumberOfFinishedRounds(ctx)
	}
	return 0, nil
}
