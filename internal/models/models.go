package models

import (
	"errors"
	"time"
)

// RegisterRequest is the body of POST /register.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// GuessRequest is the body of POST /guess. The range check belongs to the
// game rules, not the transport, so there is no lte/gte tag here.
type GuessRequest struct {
	Guess *int `json:"guess" validate:"required"`
}

// GuessResponse reports the evaluation of a single guess.
type GuessResponse struct {
	Result   string `json:"result"`
	Message  string `json:"message"`
	Attempts int64  `json:"attempts"`
	Correct  bool   `json:"correct"`
}

// GameStateResponse is returned by GET / and describes the caller's round.
type GameStateResponse struct {
	Authenticated bool   `json:"authenticated"`
	Name          string `json:"name,omitempty"`
	Attempts      int64  `json:"attempts"`
	LastResult    string `json:"last_result,omitempty"`
	Wins          int64  `json:"wins"`
}

// UserListItem is one leaderboard row of GET /users.
type UserListItem struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Attempts   int64     `json:"attempts"`
	Wins       int64     `json:"wins"`
	LastResult string    `json:"last_result"`
	CreatedAt  time.Time `json:"created_at"`
}

// UserList is the body of GET /users, ordered by registration time.
type UserList []UserListItem

// InternalStatsResponse is the body of GET /api/internal/stats.
type InternalStatsResponse struct {
	Users  int64 `json:"users"`
	Rounds int64 `json:"rounds"`
}

// ErrorResponse is the JSON error envelope used by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FinishedRound is the audit record of a completed round. It is produced by
// the service on a correct guess and persisted in batches by the rounds
// recorder.
type FinishedRound struct {
	UserID     string
	Secret     int
	Attempts   int64
	FinishedAt time.Time
}

// Storage backend kinds selected from configuration.
const (
	StorageTypeUnknown = iota
	StorageTypePostgresql
	StorageTypeFile
	StorageTypeMemory
)

// ErrNameAlreadyTaken is returned when registering a name that already exists.
var ErrNameAlreadyTaken = errors.New("the name is already taken")

// ErrEmailAlreadyTaken is returned when registering an email that already exists.
var ErrEmailAlreadyTaken = errors.New("the email is already registered")

// ErrInvalidCredentials is returned on login with an unknown email or a
// wrong password. The two cases are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNoSuchUser is returned when a referenced user does not exist.
var ErrNoSuchUser = errors.New("no such user")
