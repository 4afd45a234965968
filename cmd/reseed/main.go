// Command reseed wipes the game database and inserts a fresh set of seed
// users. An external scheduler is expected to run it periodically, the tool
// itself performs a single reset and exits.
//
// The seed users file is a JSON array of objects with "name", "email" and
// "password" fields. Passwords are stored bcrypt-hashed, every seeded user
// gets a freshly drawn secret number.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/guessnum/internal/db/postgresdb"
	"github.com/patric-chuzhbe/guessnum/internal/db/sqlitedb"
	"github.com/patric-chuzhbe/guessnum/internal/db/storage"
	"github.com/patric-chuzhbe/guessnum/internal/game"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

const defaultConnectionTimeout = 10 * time.Second

type seedUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func main() {
	err := run()
	if err != nil {
		panic(err)
	}
}

func run() error {
	databaseDSN := flag.String("d", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN of the database to reset")
	dbFileName := flag.String("f", os.Getenv("FILE_STORAGE_PATH"), "SQLite database file to reset")
	seedUsersFile := flag.String("s", "", "JSON file with the users to insert after the wipe")
	dropSchema := flag.Bool("drop-schema", false, "drop and recreate the whole schema instead of truncating (PostgreSQL only)")
	connectionTimeout := flag.Duration("timeout", defaultConnectionTimeout, "database connection timeout")
	flag.Parse()

	err := logger.Init("info")
	if err != nil {
		return err
	}

	ctx := context.Background()

	db, err := openStorage(ctx, *databaseDSN, *dbFileName, *dropSchema, *connectionTimeout)
	if err != nil {
		return err
	}

	seedUsers, err := loadSeedUsers(*seedUsersFile)
	if err != nil {
		return err
	}

	err = db.ResetAllData(ctx, seedUsers)
	if err != nil {
		return err
	}

	logger.Log.Infoln(
		"database reset finished",
		"seedUsers", len(seedUsers),
	)

	return db.Close()
}

func openStorage(
	ctx context.Context,
	databaseDSN string,
	dbFileName string,
	dropSchema bool,
	connectionTimeout time.Duration,
) (storage.Storage, error) {
	if databaseDSN != "" {
		var options []postgresdb.InitOption
		if dropSchema {
			options = append(options, postgresdb.WithDBPreReset(true))
		}

		return postgresdb.New(ctx, databaseDSN, connectionTimeout, options...)
	}

	if dbFileName != "" {
		return sqlitedb.New(ctx, dbFileName, connectionTimeout)
	}

	return nil, errors.New("either a PostgreSQL DSN (-d) or a database file (-f) is required")
}

func loadSeedUsers(fileName string) ([]user.User, error) {
	if fileName == "" {
		return nil, nil
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var seeds []seedUser
	err = json.Unmarshal(data, &seeds)
	if err != nil {
		return nil, err
	}

	seed, err := game.NewSeed()
	if err != nil {
		return nil, err
	}
	random := rand.New(rand.NewSource(seed))

	now := time.Now()

	users := make([]user.User, 0, len(seeds))
	for i, seeded := range seeds {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(seeded.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		// Creation times are staggered so the leaderboard order of the
		// seeded users matches their order in the file.
		users = append(users, user.User{
			ID:           uuid.New().String(),
			Name:         seeded.Name,
			Email:        seeded.Email,
			PasswordHash: string(passwordHash),
			Secret:       game.NewSecret(random),
			CreatedAt:    now.Add(time.Duration(i) * time.Millisecond),
		})
	}

	return users, nil
}
