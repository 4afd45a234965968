// Package service implements the game use cases on top of the storage
// layer: registration, login, guess evaluation, the leaderboard and the
// internal statistics.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/guessnum/internal/game"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/models"
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

type storage interface {
	transactioner
	usersKeeper
	pinger
}

type roundsRecorder interface {
	Enqueue(round models.FinishedRound)
}

type leaderboardPublisher interface {
	Publish(users models.UserList)
}

// Messages shown to the player in the guess response.
const (
	messageCorrect = "Correct! The secret number is %d"
	messageTooHigh = "Your guess is not correct... try something smaller."
	messageTooLow  = "Your guess is not correct... try something bigger."
)

// Service wires the game rules to storage, the background rounds recorder
// and the live leaderboard feed.
type Service struct {
	db       storage
	recorder roundsRecorder
	feed     leaderboardPublisher
	random   *rand.Rand
	randomMu sync.Mutex
}

// New creates a Service. The seed feeds the RNG that draws secret numbers,
// production callers obtain it from game.NewSeed.
func New(
	db storage,
	recorder roundsRecorder,
	feed leaderboardPublisher,
	seed int64,
) *Service {
	return &Service{
		db:       db,
		recorder: recorder,
		feed:     feed,
		random:   rand.New(rand.NewSource(seed)),
	}
}

// Register creates a new user with a hashed password and a freshly drawn
// secret. Name and email collisions surface as models.ErrNameAlreadyTaken
// and models.ErrEmailAlreadyTaken.
func (s *Service) Register(ctx context.Context, request models.RegisterRequest) (*user.User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usr := &user.User{
		ID:           uuid.New().String(),
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: string(passwordHash),
		Secret:       s.newSecret(),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.db.CreateUser(ctx, usr, nil); err != nil {
		return nil, err
	}

	s.publishLeaderboard(ctx)

	return usr, nil
}

// Login verifies the email and password pair and returns the matching user.
// An unknown email and a wrong password both produce
// models.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, request models.LoginRequest) (*user.User, error) {
	usr, err := s.db.GetUserByEmail(ctx, request.Email, nil)
	if err != nil {
		return nil, err
	}
	if usr.ID == "" {
		return nil, models.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(request.Password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	return usr, nil
}

// SubmitGuess evaluates a guess against the user's secret inside a
// transaction. Each valid guess advances the attempt counter and updates the
// last result. A correct guess additionally bumps the win counter, draws a
// fresh secret, resets the attempts and hands the finished round to the
// background recorder. An out-of-range guess changes nothing.
func (s *Service) SubmitGuess(ctx context.Context, userID string, guess int) (*models.GuessResponse, error) {
	tx, err := s.db.BeginTransaction()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.db.RollbackTransaction(tx)
	}()

	usr, err := s.db.GetUserByID(ctx, userID, tx)
	if err != nil {
		return nil, err
	}
	if usr.ID == "" {
		return nil, models.ErrNoSuchUser
	}

	outcome, err := game.Evaluate(guess, usr.Secret)
	if err != nil {
		return nil, err
	}

	usr.Attempts++
	usr.LastResult = outcome.String()

	response := &models.GuessResponse{
		Result:   outcome.String(),
		Attempts: usr.Attempts,
		Correct:  outcome == game.OutcomeCorrect,
	}

	var finishedRound *models.FinishedRound
	switch outcome {
	case game.OutcomeCorrect:
		response.Message = fmt.Sprintf(messageCorrect, guess)
		finishedRound = &models.FinishedRound{
			UserID:     usr.ID,
			Secret:     usr.Secret,
			Attempts:   usr.Attempts,
			FinishedAt: time.Now().UTC(),
		}
		usr.Wins++
		usr.Secret = s.newSecret()
		usr.Attempts = 0
	case game.OutcomeTooHigh:
		response.Message = messageTooHigh
	case game.OutcomeTooLow:
		response.Message = messageTooLow
	}

	if err := s.db.UpdateGameState(ctx, usr, tx); err != nil {
		return nil, err
	}

	if err := s.db.CommitTransaction(tx); err != nil {
		return nil, err
	}

	if finishedRound != nil {
		s.recorder.Enqueue(*finishedRound)
		s.publishLeaderboard(ctx)
	}

	return response, nil
}

// GameState describes the caller's current round for the index endpoint.
// Anonymous callers get a response with Authenticated set to false.
func (s *Service) GameState(ctx context.Context, userID string) (*models.GameStateResponse, error) {
	usr, err := s.db.GetUserByID(ctx, userID, nil)
	if err != nil {
		return nil, err
	}
	if usr.ID == "" {
		return &models.GameStateResponse{Authenticated: false}, nil
	}

	return &models.GameStateResponse{
		Authenticated: true,
		Name:          usr.Name,
		Attempts:      usr.Attempts,
		LastResult:    usr.LastResult,
		Wins:          usr.Wins,
	}, nil
}

// ListUsers returns the leaderboard rows ordered by registration time.
func (s *Service) ListUsers(ctx context.Context) (models.UserList, error) {
	users, err := s.db.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	return toUserList(users), nil
}

// GetInternalStats returns totals for registered users and finished rounds.
func (s *Service) GetInternalStats(ctx context.Context) (models.InternalStatsResponse, error) {
	users, err := s.db.GetNumberOfUsers(ctx)
	if err != nil {
		return models.InternalStatsResponse{}, err
	}

	rounds, err := s.db.GetNumberOfFinishedRounds(ctx)
	if err != nil {
		return models.InternalStatsResponse{}, err
	}

	return models.InternalStatsResponse{
		Users:  int64(users),
		Rounds: int64(rounds),
	}, nil
}

// Ping checks the health of the database/storage layer.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Service) newSecret() int {
	s.randomMu.Lock()
	defer s.randomMu.Unlock()

	return game.NewSecret(s.random)
}

func (s *Service) publishLeaderboard(ctx context.Context) {
	users, err := s.ListUsers(ctx)
	if err != nil {
		logger.Log.Debugln("Error calling the `s.ListUsers()`: ", zap.Error(err))
		return
	}

	s.feed.Publish(users)
}

func toUserList(users []user.User) models.UserList {
	result := make(models.UserList, 0, len(users))
	for _, usr := range users {
		result = append(result, models.UserListItem{
			ID:         usr.ID,
			Name:       usr.Name,
			Attempts:   usr.Attempts,
			Wins:       usr.Wins,
			LastResult: usr.LastResult,
			CreatedAt:  usr.CreatedAt,
		})
	}

	return result
}
