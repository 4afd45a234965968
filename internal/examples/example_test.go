package examples

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/guessnum/internal/auth"
	"github.com/patric-chuzhbe/guessnum/internal/authenticator"
	"github.com/patric-chuzhbe/guessnum/internal/config"
	"github.com/patric-chuzhbe/guessnum/internal/db/memorystorage"
	"github.com/patric-chuzhbe/guessnum/internal/ipchecker"
	"github.com/patric-chuzhbe/guessnum/internal/livefeed"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/ratelimit"
	"github.com/patric-chuzhbe/guessnum/internal/router"
	"github.com/patric-chuzhbe/guessnum/internal/service"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

type transactioner interface {
	BeginTransaction() (*sql.Tx, error)

	RollbackTransaction(transaction *sql.Tx) error

	CommitTransaction(transaction *sql.Tx) error
}

type usersKeeper interface {
	CreateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) error

	GetUserByID(ctx context.Context, userID string, transaction *sql.Tx) (*user.User, error)

	GetUserByEmail(ctx context.Context, email string, transaction *sql.Tx) (*user.User, error)

	UpdateGameState(ctx context.Context, usr *user.User, transaction *sql.Tx) error

	ListUsers(ctx context.Context) ([]user.User, error)

	GetNumberOfUsers(ctx context.Context) (int, error)

	GetNumberOfFinishedRounds(ctx context.Context) (int, error)
}

type pinger interface {
	Ping(ctx context.Context) error
}

type testStorage interface {
	transactioner
	usersKeeper
	pinger
	Close() error
}

type initOptions struct {
	mockAuth bool
}

type initOption func(*initOptions)

type mockRoundsRecorder struct{}

func (m *mockRoundsRecorder) Enqueue(round models.FinishedRound) {}

func withMockAuth(value bool) initOption {
	return func(options *initOptions) {
		options.mockAuth = value
	}
}

func setupTestRouter(t *testing.T, optionsProto ...initOption) (*httptest.Server, testStorage, *chi.Mux) {
	options := &initOptions{}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	cfg, err := config.New(config.WithDisableFlagsParsing(true))
	if t != nil {
		require.NoError(t, err)
	}

	db, err := memorystorage.New(context.Background(), cfg.DBConnectionTimeout)
	if t != nil {
		require.NoError(t, err)
	}

	authKey, err := base64.URLEncoding.DecodeString(cfg.AuthCookieSigningSecretKey)
	if t != nil {
		require.NoError(t, err)
	}

	var authMiddleware authenticator.Authenticator

	if options.mockAuth {
		authMiddleware = &mockAuth{}
	} else {
		authMiddleware = auth.New(db, cfg.AuthCookieName, authKey)
	}

	statsChecker, err := ipchecker.New(cfg.TrustedSubnet)
	if t != nil {
		require.NoError(t, err)
	}

	leaderboardFeed := livefeed.New()

	s := service.New(
		db,
		&mockRoundsRecorder{},
		leaderboardFeed,
		1,
	)

	theRouter := router.New(
		s,
		authMiddleware,
		leaderboardFeed,
		ratelimit.New(1000, 1000),
		statsChecker,
	)

	err = logger.Init("debug")
	if t != nil {
		require.NoError(t, err)
	}

	return httptest.NewServer(theRouter), db, theRouter
}

type mockAuth struct{}

func (m *mockAuth) AuthenticateUser(h http.Handler) http.Handler {
	return h
}

func (m *mockAuth) RequireUser(h http.Handler) http.Handler {
	return h
}

func (m *mockAuth) IssueSession(response http.ResponseWriter, userID string) error {
	return nil
}

func (m *mockAuth) ClearSession(response http.ResponseWriter) {}

func ExampleRouter_PostGuess() {
	server, db, _ := setupTestRouter(nil)
	defer server.Close()

	jar, err := cookiejar.New(nil)
	if err != nil {
		panic(err)
	}
	client := &http.Client{Jar: jar}

	registerBody, err := json.Marshal(models.RegisterRequest{
		Name:     "frank",
		Email:    "frank@example.com",
		Password: "sup3rsecret",
	})
	if err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodPost, server.URL+"/register", bytes.NewReader(registerBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()

	// Pin the secret so the transcript below is stable.
	usr, err := db.GetUserByEmail(context.Background(), "frank@example.com", nil)
	if err != nil {
		panic(err)
	}
	usr.Secret = 17
	if err := db.UpdateGameState(context.Background(), usr, nil); err != nil {
		panic(err)
	}

	for _, guess := range []int{10, 25, 17} {
		guessBody, err := json.Marshal(models.GuessRequest{Guess: &guess})
		if err != nil {
			panic(err)
		}

		req, err := http.NewRequest(http.MethodPost, server.URL+"/guess", bytes.NewReader(guessBody))
		if err != nil {
			panic(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			panic(err)
		}

		var guessResponse models.GuessResponse
		if err := json.NewDecoder(resp.Body).Decode(&guessResponse); err != nil {
			panic(err)
		}
		resp.Body.Close()

		fmt.Println("Result:", guessResponse.Result)
		fmt.Println("Message:", guessResponse.Message)
	}

	// Output:
	// Result: too_low
	// Message: Your guess is not correct... try something bigger.
	// Result: too_high
	// Message: Your guess is not correct... try something smaller.
	// Result: correct
	// Message: Correct! The secret number is 17
}

func ExampleRouter_PostLogin() {
	server, _, _ := setupTestRouter(nil)
	defer server.Close()

	client := &http.Client{}

	registerBody, err := json.Marshal(models.RegisterRequest{
		Name:     "grace",
		Email:    "grace@example.com",
		Password: "sup3rsecret",
	})
	if err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodPost, server.URL+"/register", bytes.NewReader(registerBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		panic(err)
	}
	resp.Body.Close()

	loginBody, err := json.Marshal(models.LoginRequest{
		Email:    "grace@example.com",
		Password: "sup3rsecret",
	})
	if err != nil {
		panic(err)
	}

	req, err = http.NewRequest(http.MethodPost, server.URL+"/login", bytes.NewReader(loginBody))
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err = client.Do(req)
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	var state models.GameStateResponse
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		panic(err)
	}

	fmt.Println("Status Code:", resp.StatusCode)
	fmt.Println("Name:", state.Name)
	fmt.Println("Authenticated:", state.Authenticated)

	// Output:
	// Status Code: 200
	// Name: grace
	// Authenticated: true
}

func ExampleRouter_GetGamestate() {
	server, db, r := setupTestRouter(nil, withMockAuth(true))
	server.Close()

	usr := &user.User{
		ID:         uuid.New().String(),
		Name:       "heidi",
		Email:      "heidi@example.com",
		Secret:     17,
		Attempts:   2,
		Wins:       1,
		LastResult: "too_low",
	}
	if err := db.CreateUser(context.Background(), usr, nil); err != nil {
		panic(err)
	}

	req, err := http.NewRequest(http.MethodGet, server.URL+"/", nil)
	if err != nil {
		panic(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, usr.ID))

	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	var state models.GameStateResponse
	if err := json.NewDecoder(rec.Body).Decode(&state); err != nil {
		panic(err)
	}

	fmt.Println("Status Code:", rec.Code)
	fmt.Println("Authenticated:", state.Authenticated)
	fmt.Println("Attempts:", state.Attempts)
	fmt.Println("Wins:", state.Wins)

	// Output:
	// Status Code: 200
	// Authenticated: true
	// Attempts: 2
	// Wins: 1
}
