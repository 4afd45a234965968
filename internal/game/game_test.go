package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	type want struct {
		outcome Outcome
		err     error
	}
	tests := []struct {
		name   string
		guess  int
		secret int
		want   want
	}{
		{
			name:   "guess below target",
			guess:  10,
			secret: 17,
			want:   want{outcome: OutcomeTooLow},
		},
		{
			name:   "guess above target",
			guess:  25,
			secret: 17,
			want:   want{outcome: OutcomeTooHigh},
		},
		{
			name:   "guess hits target",
			guess:  17,
			secret: 17,
			want:   want{outcome: OutcomeCorrect},
		},
		{
			name:   "boundary low",
			guess:  1,
			secret: 1,
			want:   want{outcome: OutcomeCorrect},
		},
		{
			name:   "boundary high",
			guess:  30,
			secret: 30,
			want:   want{outcome: OutcomeCorrect},
		},
		{
			name:   "guess below allowed range",
			guess:  0,
			secret: 17,
			want:   want{outcome: OutcomeUnknown, err: ErrGuessOutOfRange},
		},
		{
			name:   "guess above allowed range",
			guess:  31,
			secret: 17,
			want:   want{outcome: OutcomeUnknown, err: ErrGuessOutOfRange},
		},
		{
			name:   "negative guess",
			guess:  -5,
			secret: 3,
			want:   want{outcome: OutcomeUnknown, err: ErrGuessOutOfRange},
		},
		{
			name:   "corrupt secret",
			guess:  10,
			secret: 0,
			want:   want{outcome: OutcomeUnknown, err: ErrSecretOutOfRange},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Evaluate(tt.guess, tt.secret)
			if tt.want.err != nil {
				require.ErrorIs(t, err, tt.want.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want.outcome, outcome)
		})
	}
}

func TestEvaluateWholeRange(t *testing.T) {
	const secret = 17
	for guess := SecretMin; guess <= SecretMax; guess++ {
		outcome, err := Evaluate(guess, secret)
		require.NoError(t, err)
		switch {
		case guess < secret:
			assert.Equal(t, OutcomeTooLow, outcome, "guess %d", guess)
		case guess > secret:
			assert.Equal(t, OutcomeTooHigh, outcome, "guess %d", guess)
		default:
			assert.Equal(t, OutcomeCorrect, outcome, "guess %d", guess)
		}
	}
}

func TestNewSecretStaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 10000; i++ {
		secret := NewSecret(r)
		require.GreaterOrEqual(t, secret, SecretMin)
		require.LessOrEqual(t, secret, SecretMax)
		seen[secret] = true
	}
	// 10k draws over 30 values reach every value with overwhelming probability.
	assert.Len(t, seen, SecretMax-SecretMin+1)
}

func TestNewSeed(t *testing.T) {
	first, err := NewSeed()
	require.NoError(t, err)
	second, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "too_low", OutcomeTooLow.String())
	assert.Equal(t, "too_high", OutcomeTooHigh.String())
	assert.Equal(t, "correct", OutcomeCorrect.String())
	assert.Equal(t, "unknown", OutcomeUnknown.String())
	assert.Equal(t, "unknown", Outcome(42).String())
}
