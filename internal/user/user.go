// Package user defines the user model shared by storage, the service layer
// and both transports.
package user

import "time"

// User is a registered player. A user always has exactly one active round:
// Secret is its target, Attempts counts the guesses made in it so far, and
// LastResult keeps the outcome of the most recent guess. Wins counts
// finished rounds.
type User struct {
	// ID is the unique identifier of the user, meaning a UUID.
	ID string `json:"id"`

	// Name is unique across users and shown on the leaderboard.
	Name string `json:"name"`

	// Email is unique across users and used for login.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the password. Never serialized.
	PasswordHash string `json:"-"`

	// Secret is the current round's target, always within the game range.
	Secret int `json:"-"`

	// Attempts counts the guesses made in the current round.
	Attempts int64 `json:"attempts"`

	// Wins counts the rounds this user finished with a correct guess.
	Wins int64 `json:"wins"`

	// LastResult is the wire name of the most recent outcome, empty before
	// the first guess.
	LastResult string `json:"last_result"`

	// CreatedAt is the registration time; the user list is ordered by it.
	CreatedAt time.Time `json:"created_at"`
}
