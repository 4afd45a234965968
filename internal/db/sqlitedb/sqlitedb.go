// Package sqlitedb provides a SQLite-based implementation of the storage
// interface for persisting users and finished game rounds. It uses the pure
// Go driver, so the binary stays CGO-free. The schema is created at open
// time with CREATE TABLE IF NOT EXISTS statements.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

// MemoryDSN opens a throwaway database that lives only as long as the
// connection. The connection pool is capped at one for this DSN so every
// query sees the same database.
const MemoryDSN = ":memory:"

// SQLiteDB is a SQLite-backed implementation of the game storage.
// It is selected when a storage file path is configured.
type SQLiteDB struct {
	database          *sql.DB
	connectionTimeout time.Duration
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type executor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// New opens (or creates) the SQLite database at dbFileName, applies the
// connection pragmas and creates the schema when it does not exist yet.
func New(
	ctx context.Context,
	dbFileName string,
	connectionTimeout time.Duration,
) (*SQLiteDB, error) {
	database, err := sql.Open("sqlite", dbFileName)
	if err != nil {
		return nil, err
	}

	if dbFileName == MemoryDSN {
		database.SetMaxOpenConns(1)
	}

	result := &SQLiteDB{
		database:          database,
		connectionTimeout: connectionTimeout,
	}

	for _, pragma := range []string{
		`PRAGMA journal_mode=WAL;`,
		`PRAGMA busy_timeout=5000;`,
		`PRAGMA foreign_keys=ON;`,
	} {
		if _, err := database.ExecContext(ctx, pragma); err != nil {
			return nil, err
		}
	}

	if err := result.createSchema(ctx); err != nil {
		return nil, err
	}

	return result, nil
}

func (db *SQLiteDB) createSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			secret INTEGER NOT NULL,
			attempts INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			last_result TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS finished_rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id TEXT NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			secret INTEGER NOT NULL,
			attempts INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_users_created_at ON users (created_at)`,
	}
	for _, statement := range statements {
		if _, err := db.database.ExecContext(ctx, statement); err != nil {
			return err
		}
	}

	return nil
}

// CreateUser inserts a new user record. A name or email collision is
// reported as models.ErrNameAlreadyTaken or models.ErrEmailAlreadyTaken.
func (db *SQLiteDB) CreateUser(
	ctx context.Context,
	usr *user.User,
	transaction *sql.Tx,
) error {
	var database executor
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
	}

	_, err := database.ExecContext(
		ctx,
		`
			INSERT INTO users
				(id, name, email, password_hash, secret, attempts, wins, last_result, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`,
		usr.ID,
		usr.Name,
		usr.Email,
		usr.PasswordHash,
		usr.Secret,
		usr.Attempts,
		usr.Wins,
		usr.LastResult,
		usr.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

// GetUserByID fetches a user by their UUID.
// If the user does not exist, it returns a user with an empty ID field.
func (db *SQLiteDB) GetUserByID(
	ctx context.Context,
	userID string,
	transaction *sql.Tx,
) (*user.User, error) {
	var database queryer
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
	}

	if userID == "" {
		return &user.User{ID: ""}, nil
	}

	row := database.QueryRowContext(
		ctx,
		`
			SELECT id, name, email, password_hash, secret, attempts, wins, last_result, created_at
				FROM users
				WHERE id = ?
		`,
		userID,
	)

	return scanUser(row)
}

// GetUserByEmail fetches a user by their email address.
// If the user does not exist, it returns a user with an empty ID field.
func (db *SQLiteDB) GetUserByEmail(
	ctx context.Context,
	email string,
	transaction *sql.Tx,
) (*user.User, error) {
	var database queryer
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
	}

	row := database.QueryRowContext(
		ctx,
		`
			SELECT id, name, email, password_hash, secret, attempts, wins, last_result, created_at
				FROM users
				WHERE email = ?
		`,
		email,
	)

	return scanUser(row)
}

// UpdateGameState writes the round fields of the given user back to the
// database. The identity fields (name, email, password hash) stay untouched.
func (db *SQLiteDB) UpdateGameState(
	ctx context.Context,
	usr *user.User,
	transaction *sql.Tx,
) error {
	var database executor
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
	}

	_, err := database.ExecContext(
		ctx,
		`
			UPDATE users
				SET secret = ?, attempts = ?, wins = ?, last_result = ?
				WHERE id = ?
		`,
		usr.Secret,
		usr.Attempts,
		usr.Wins,
		usr.LastResult,
		usr.ID,
	)
	if err != nil {
		return err
	}

	return nil
}

// ListUsers returns every registered user ordered by registration time.
func (db *SQLiteDB) ListUsers(ctx context.Context) ([]user.User, error) {
	rows, err := db.database.QueryContext(
		ctx,
		`
			SELECT id, name, email, password_hash, secret, attempts, wins, last_result, created_at
				FROM users
				ORDER BY created_at ASC, id ASC
		`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []user.User{}
	for rows.Next() {
		var usr user.User
		var createdAt int64
		err = rows.Scan(
			&usr.ID,
			&usr.Name,
			&usr.Email,
			&usr.PasswordHash,
			&usr.Secret,
			&usr.Attempts,
			&usr.Wins,
			&usr.LastResult,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}
		usr.CreatedAt = time.UnixMilli(createdAt).UTC()

		result = append(result, usr)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SaveFinishedRounds stores a batch of finished round records.
func (db *SQLiteDB) SaveFinishedRounds(
	ctx context.Context,
	rounds []models.FinishedRound,
	transaction *sql.Tx,
) error {
	if len(rounds) == 0 {
		return nil
	}

	var database executor
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
	}

	for _, round := range rounds {
		_, err := database.ExecContext(
			ctx,
			`
				INSERT INTO finished_rounds (user_id, secret, attempts, finished_at)
					VALUES (?, ?, ?, ?)
			`,
			round.UserID,
			round.Secret,
			round.Attempts,
			round.FinishedAt.UTC().UnixMilli(),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetNumberOfUsers returns the total count of registered users.
func (db *SQLiteDB) GetNumberOfUsers(ctx context.Context) (int, error) {
	row := db.database.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`)
	var usersCount int
	err := row.Scan(&usersCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, err
	}

	return usersCount, nil
}

// GetNumberOfFinishedRounds returns the total count of recorded finished rounds.
func (db *SQLiteDB) GetNumberOfFinishedRounds(ctx context.Context) (int, error) {
	row := db.database.QueryRowContext(ctx, `SELECT COUNT(*) FROM finished_rounds`)
	var roundsCount int
	err := row.Scan(&roundsCount)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}

		return 0, err
	}

	return roundsCount, nil
}

// ResetAllData wipes all game data and inserts the given seed users.
// It runs within a single transaction so readers never observe a half-reset
// database.
func (db *SQLiteDB) ResetAllData(ctx context.Context, seedUsers []user.User) error {
	transaction, err := db.database.Begin()
	if err != nil {
		return err
	}

	for _, statement := range []string{
		`DELETE FROM finished_rounds`,
		`DELETE FROM users`,
	} {
		if _, err := transaction.ExecContext(ctx, statement); err != nil {
			err2 := transaction.Rollback()
			if err2 != nil {
				return err2
			}
			return err
		}
	}

	for i := range seedUsers {
		if err := db.CreateUser(ctx, &seedUsers[i], transaction); err != nil {
			err2 := transaction.Rollback()
			if err2 != nil {
				return err2
			}
			return err
		}
	}

	err = transaction.Commit()
	if err != nil {
		return err
	}

	return nil
}

// BeginTransaction starts a new SQL transaction and returns it.
// The caller is responsible for committing or rolling it back.
func (db *SQLiteDB) BeginTransaction() (*sql.Tx, error) {
	return db.database.Begin()
}

// RollbackTransaction rolls back the given SQL transaction.
func (db *SQLiteDB) RollbackTransaction(transaction *sql.Tx) error {
	return transaction.Rollback()
}

// CommitTransaction commits the given SQL transaction.
func (db *SQLiteDB) CommitTransaction(transaction *sql.Tx) error {
	return transaction.Commit()
}

// Ping verifies that the database file is still reachable within the
// configured timeout.
func (db *SQLiteDB) Ping(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, db.connectionTimeout)
	defer cancel()

	return db.database.PingContext(ctxWithTimeout)
}

// Close closes the database connection and releases any associated resources.
func (db *SQLiteDB) Close() error {
	err := db.database.Close()
	if err != nil {
		return err
	}

	return nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var usr user.User
	var createdAt int64
	err := row.Scan(
		&usr.ID,
		&usr.Name,
		&usr.Email,
		&usr.PasswordHash,
		&usr.Secret,
		&usr.Attempts,
		&usr.Wins,
		&usr.LastResult,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &user.User{ID: ""}, nil
		}
		return &user.User{ID: ""}, err
	}
	usr.CreatedAt = time.UnixMilli(createdAt).UTC()

	return &usr, nil
}

func mapUniqueViolation(err error) error {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return err
	}

	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE, sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY:
	default:
		return err
	}

	message := strings.ToLower(err.Error())
	switch {
	case strings.Contains(message, "users.name"):
		return models.ErrNameAlreadyTaken
	case strings.Contains(message, "users.email"):
		return models.ErrEmailAlreadyTaken
	}

	return err
}
