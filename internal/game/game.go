// Package game implements the guess evaluation rules of the number game.
// A round has a secret target in [SecretMin, SecretMax]; every guess is
// compared against it and classified as too low, too high or correct.
package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"math/rand"
)

// Bounds of the secret target. Every secret and every acceptable guess lies
// in [SecretMin, SecretMax].
const (
	SecretMin = 1
	SecretMax = 30
)

// Outcome classifies a single guess against the round's secret.
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	OutcomeTooLow
	OutcomeTooHigh
	OutcomeCorrect
)

// String returns the wire name of the outcome as stored and serialized.
func (o Outcome) String() string {
	switch o {
	case OutcomeTooLow:
		return "too_low"
	case OutcomeTooHigh:
		return "too_high"
	case OutcomeCorrect:
		return "correct"
	default:
		return "unknown"
	}
}

// ErrGuessOutOfRange indicates the guess lies outside [SecretMin, SecretMax].
var ErrGuessOutOfRange = fmt.Errorf("guess must be an integer between %d and %d", SecretMin, SecretMax)

// ErrSecretOutOfRange indicates a stored secret violates the range invariant.
var ErrSecretOutOfRange = errors.New("secret is outside the allowed range")

// Evaluate compares guess with secret. It has no side effects.
// It returns ErrGuessOutOfRange for guesses outside the allowed range and
// ErrSecretOutOfRange when the secret itself is corrupt.
func Evaluate(guess, secret int) (Outcome, error) {
	if secret < SecretMin || secret > SecretMax {
		return OutcomeUnknown, ErrSecretOutOfRange
	}
	if guess < SecretMin || guess > SecretMax {
		return OutcomeUnknown, ErrGuessOutOfRange
	}

	switch {
	case guess < secret:
		return OutcomeTooLow, nil
	case guess > secret:
		return OutcomeTooHigh, nil
	default:
		return OutcomeCorrect, nil
	}
}

// NewSecret draws a uniformly distributed secret in [SecretMin, SecretMax]
// from r.
func NewSecret(r *rand.Rand) int {
	return SecretMin + r.Intn(SecretMax-SecretMin+1)
}

// NewSeed produces a seed for a math/rand source from crypto/rand, so
// deployments do not share secret sequences.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
