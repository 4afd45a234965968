// Package postgresdb provides a PostgreSQL-based implementation of the
// storage interface for persisting users and finished game rounds.
// Schema migrations are embedded in the binary and applied on startup.
package postgresdb

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pressly/goose/v3"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/thoas/go-funk"

	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const uniqueViolationCode = "23505"

// PostgresDB is a PostgreSQL-backed implementation of the game storage.
// It handles all persistence operations via a PostgreSQL database connection.
type PostgresDB struct {
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

type initOptions struct {
	DBPreReset bool
}

// New establishes a connection to the PostgreSQL database,
// runs the embedded schema migrations, and returns a configured PostgresDB
// instance. Optionally accepts initialization options, such as WithDBPreReset.
func New(
	ctx context.Context,
	databaseDSN string,
	connectionTimeout time.Duration,
	optionsProto ...InitOption,
) (*PostgresDB, error) {
	options := &initOptions{
		DBPreReset: false,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	database, err := sql.Open("pgx", databaseDSN)
	if err != nil {
		return nil, err
	}

	result := &PostgresDB{
		database:          database,
		connectionTimeout: connectionTimeout,
	}

	if options.DBPreReset {
		if err := result.resetDB(ctx); err != nil {
			return nil,
				fmt.Errorf(
					"in internal/db/postgresdb/postgresdb.go/New(): error while `result.resetDB()` calling: %w",
					err,
				)
		}
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return nil,
			fmt.Errorf(
				"in internal/db/postgresdb/postgresdb.go/New(): error while `goose.SetDialect()` calling: %w",
				err,
			)
	}

	if err := goose.Up(result.database, "migrations"); err != nil {
		return nil,
			fmt.Errorf(
				"in internal/db/postgresdb/postgresdb.go/New(): error while `goose.Up()` calling: %w",
				err,
			)
	}

	return result, nil
}

// CreateUser inserts a new user record into the database. A name or email
// collision is reported as models.ErrNameAlreadyTaken or
// models.ErrEmailAlreadyTaken.
func (db *PostgresDB) CreateUser(
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
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`,
		usr.ID,
		usr.Name,
		usr.Email,
		usr.PasswordHash,
		usr.Secret,
		usr.Attempts,
		usr.Wins,
		usr.LastResult,
		usr.CreatedAt,
	)
	if err != nil {
		return mapUniqueViolation(err)
	}

	return nil
}

// GetUserByID fetches a user by their UUID from the database. Inside a
// transaction the row is locked for update so concurrent guesses of the same
// user serialize. If the user does not exist, it returns a user with an
// empty ID field.
func (db *PostgresDB) GetUserByID(
	ctx context.Context,
	userID string,
	transaction *sql.Tx,
) (*user.User, error) {
	var database queryer
	lockClause := ""
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
		lockClause = " FOR UPDATE"
	}

	if userID == "" {
		return &user.User{ID: ""}, nil
	}

	row := database.QueryRowContext(
		ctx,
		`
			SELECT id, name, email, password_hash, secret, attempts, wins, last_result, created_at
				FROM users
				WHERE id = $1
		`+lockClause,
		userID,
	)

	return scanUser(row)
}

// GetUserByEmail fetches a user by their email address.
// If the user does not exist, it returns a user with an empty ID field.
func (db *PostgresDB) GetUserByEmail(
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
				WHERE email = $1
		`,
		email,
	)

	return scanUser(row)
}

// UpdateGameState writes the round fields of the given user back to the
// database. The identity fields (name, email, password hash) stay untouched.
func (db *PostgresDB) UpdateGameState(
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
				SET secret = $1, attempts = $2, wins = $3, last_result = $4
				WHERE id = $5
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
func (db *PostgresDB) ListUsers(ctx context.Context) ([]user.User, error) {
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
		err = rows.Scan(
			&usr.ID,
			&usr.Name,
			&usr.Email,
			&usr.PasswordHash,
			&usr.Secret,
			&usr.Attempts,
			&usr.Wins,
			&usr.LastResult,
			&usr.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		result = append(result, usr)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return result, nil
}

// SaveFinishedRounds stores a batch of finished round records with a single
// multi-row INSERT.
func (db *PostgresDB) SaveFinishedRounds(
	ctx context.Context,
	rounds []models.FinishedRound,
	transaction *sql.Tx,
) error {
	roundsLen := len(rounds)
	if roundsLen == 0 {
		return nil
	}

	roundsTableValues := make([][]interface{}, roundsLen)
	roundsTableValuesPlaceholders := make([]string, roundsLen)
	for i, round := range rounds {
		roundsTableValues[i] = []interface{}{
			round.UserID,
			round.Secret,
			round.Attempts,
			round.FinishedAt,
		}
		roundsTableValuesPlaceholders[i] = fmt.Sprintf(
			"($%d, $%d, $%d, $%d)",
			i*4+1,
			i*4+2,
			i*4+3,
			i*4+4,
		)
	}
	roundsTableValuesPlaceholdersAsString := strings.Join(roundsTableValuesPlaceholders, ",")
	queryParams := funk.Flatten(roundsTableValues).([]interface{})

	var database executor
	if transaction == nil {
		database = db.database
	} else {
		database = transaction
	}

	_, err := database.ExecContext(
		ctx,
		fmt.Sprintf(
			`INSERT INTO finished_rounds (user_id, secret, attempts, finished_at) VALUES %s`,
			roundsTableValuesPlaceholdersAsString,
		),
		queryParams...,
	)
	if err != nil {
		return err
	}

	return nil
}

// GetNumberOfUsers returns the total count of registered users.
func (db *PostgresDB) GetNumberOfUsers(ctx context.Context) (int, error) {
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
func (db *PostgresDB) GetNumberOfFinishedRounds(ctx context.Context) (int, error) {
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
func (db *PostgresDB) ResetAllData(ctx context.Context, seedUsers []user.User) error {
	transaction, err := db.database.Begin()
	if err != nil {
		return err
	}

	_, err = transaction.ExecContext(
		ctx,
		`TRUNCATE TABLE finished_rounds, users RESTART IDENTITY`,
	)
	if err != nil {
		err2 := transaction.Rollback()
		if err2 != nil {
			return err2
		}
		return err
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

// CommitTransaction commits the given SQL transaction.
// Returns an error if the commit operation fails.
func (db *PostgresDB) CommitTransaction(transaction *sql.Tx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic occurred while committing transaction: %v", r)
		}
	}()

	return transaction.Commit()
}

// RollbackTransaction rolls back the given SQL transaction.
// If rollback fails, the returned error describes the issue.
func (db *PostgresDB) RollbackTransaction(transaction *sql.Tx) error {
	return transaction.Rollback()
}

// BeginTransaction starts a new SQL transaction and returns it.
// The caller is responsible for committing or rolling it back.
func (db *PostgresDB) BeginTransaction() (*sql.Tx, error) {
	return db.database.Begin()
}

// InitOption defines a functional option for configuring database initialization.
type InitOption func(*initOptions)

// WithDBPreReset enables or disables dropping the whole schema before the
// migrations run. It is used by the reseed tool for a full wipe and by test
// setups against a disposable database.
func WithDBPreReset(value bool) InitOption {
	return func(options *initOptions) {
		options.DBPreReset = value
	}
}

// Ping verifies connectivity with the PostgreSQL database within the configured timeout.
func (db *PostgresDB) Ping(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, db.connectionTimeout)
	defer cancel()

	return db.database.PingContext(ctxWithTimeout)
}

// Close closes the database connection and releases any associated resources.
func (db *PostgresDB) Close() error {
	err := db.database.Close()
	if err != nil {
		return err
	}

	return nil
}

func (db *PostgresDB) resetDB(ctx context.Context) error {
	_, err := db.database.ExecContext(
		ctx,
		`
			DO $$
			DECLARE
				r RECORD;
			BEGIN
				FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = 'public') LOOP
					EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
				END LOOP;
			END $$;
		`,
	)
	if err != nil {
		return fmt.Errorf(
			"in internal/db/postgresdb/postgresdb.go/resetDB(): error while `db.database.ExecContext()` calling: %w",
			err,
		)
	}
	return nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var usr user.User
	err := row.Scan(
		&usr.ID,
		&usr.Name,
		&usr.Email,
		&usr.PasswordHash,
		&usr.Secret,
		&usr.Attempts,
		&usr.Wins,
		&usr.LastResult,
		&usr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &user.User{ID: ""}, nil
		}
		return &user.User{ID: ""}, err
	}

	return &usr, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return err
	}

	switch pgErr.ConstraintName {
	case "uq_users_name":
		return models.ErrNameAlreadyTaken
	case "uq_users_email":
		return models.ErrEmailAlreadyTaken
	}

	return err
}
