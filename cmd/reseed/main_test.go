package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/guessnum/internal/game"
)

func writeSeedUsersFile(t *testing.T, content string) string {
	t.Helper()

	seedFile := filepath.Join(t.TempDir(), "seed_users.json")
	require.NoError(t, os.WriteFile(seedFile, []byte(content), 0o644))

	return seedFile
}

func TestLoadSeedUsers(t *testing.T) {
	seedFile := writeSeedUsersFile(t, `[
		{"name": "alice", "email": "alice@example.com", "password": "sup3rsecret"},
		{"name": "bob", "email": "bob@example.com", "password": "letmein42"}
	]`)

	users, err := loadSeedUsers(seedFile)
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "bob", users[1].Name)
	assert.True(t, users[0].CreatedAt.Before(users[1].CreatedAt))

	for _, usr := range users {
		assert.NotEmpty(t, usr.ID)
		assert.GreaterOrEqual(t, usr.Secret, game.SecretMin)
		assert.LessOrEqual(t, usr.Secret, game.SecretMax)
	}

	err = bcrypt.CompareHashAndPassword([]byte(users[0].PasswordHash), []byte("sup3rsecret"))
	assert.NoError(t, err)
}

func TestLoadSeedUsersWithoutFile(t *testing.T) {
	users, err := loadSeedUsers("")
	require.NoError(t, err)
	assert.Nil(t, users)
}

func TestLoadSeedUsersMalformedJSON(t *testing.T) {
	seedFile := writeSeedUsersFile(t, `{"name": "alice"`)

	_, err := loadSeedUsers(seedFile)
	assert.Error(t, err)
}

func TestOpenStorageRequiresTarget(t *testing.T) {
	_, err := openStorage(context.Background(), "", "", false, time.Second)
	assert.Error(t, err)
}

func TestResetAllDataSeedsTheDatabase(t *testing.T) {
	ctx := context.Background()

	db, err := openStorage(
		ctx,
		"",
		filepath.Join(t.TempDir(), "guessnum_test.db"),
		false,
		time.Second,
	)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, db.Close())
	}()

	seedFile := writeSeedUsersFile(t, `[
		{"name": "carol", "email": "carol@example.com", "password": "sup3rsecret"},
		{"name": "dave", "email": "dave@example.com", "password": "letmein42"}
	]`)

	seedUsers, err := loadSeedUsers(seedFile)
	require.NoError(t, err)

	require.NoError(t, db.ResetAllData(ctx, seedUsers))

	users, err := db.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "carol", users[0].Name)
	assert.Equal(t, "dave", users[1].Name)
}
