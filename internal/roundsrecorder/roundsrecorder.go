// Package roundsrecorder persists finished game rounds in the background.
// Completed rounds are enqueued by the game service and written to storage
// in batches, so a burst of winning guesses does not turn into a burst of
// single-row inserts.
package roundsrecorder

import (
	"context"
	"time"

	"github.com/patric-chuzhbe/guessnum/internal/db/storage"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/models"
)

// RoundsRecorder accumulates finished rounds in a buffered queue and flushes
// them to storage on a timer. Flush errors are reported through an error
// channel, the failed batch stays queued for the next tick.
type RoundsRecorder struct {
	queue        chan *models.FinishedRound
	db           storage.Storage
	flushDelay   time.Duration
	errorChannel chan error
	done         chan struct{}
	stopped      chan struct{}
}

// New creates a recorder with the given queue capacity and flush delay.
// Call Run to start the background worker.
func New(
	db storage.Storage,
	channelCapacity int,
	flushDelay time.Duration,
) *RoundsRecorder {
	return &RoundsRecorder{
		db:           db,
		queue:        make(chan *models.FinishedRound, channelCapacity),
		flushDelay:   flushDelay,
		errorChannel: make(chan error, channelCapacity),
		done:         make(chan struct{}),
		stopped:      make(chan struct{}),
	}
}

// ListenErrors invokes callback for every error produced by the background
// worker. It returns immediately, the callback runs on a separate goroutine.
func (r *RoundsRecorder) ListenErrors(callback func(error)) {
	go func() {
		for err := range r.errorChannel {
			callback(err)
		}
	}()
}

// Enqueue adds a finished round to the queue. It blocks when the queue is
// full.
func (r *RoundsRecorder) Enqueue(round models.FinishedRound) {
	r.queue <- &round
}

// Run starts the background worker goroutine.
func (r *RoundsRecorder) Run() {
	go func() {
		ticker := time.NewTicker(r.flushDelay)
		defer ticker.Stop()

		var rounds []models.FinishedRound

		for {
			select {
			case round := <-r.queue:
				rounds = append(rounds, *round)
			case <-ticker.C:
				rounds = r.flush(rounds)
			case <-r.done:
				for {
					select {
					case round := <-r.queue:
						rounds = append(rounds, *round)
					default:
						r.flush(rounds)
						close(r.stopped)
						return
					}
				}
			}
		}
	}()
}

// Stop drains the queue, flushes the remaining rounds and waits for the
// worker goroutine to finish. The recorder cannot be restarted afterwards.
func (r *RoundsRecorder) Stop() {
	close(r.done)
	<-r.stopped
}

func (r *RoundsRecorder) flush(rounds []models.FinishedRound) []models.FinishedRound {
	if len(rounds) == 0 {
		return rounds
	}

	err := r.db.SaveFinishedRounds(context.TODO(), rounds, nil)
	if err != nil {
		r.errorChannel <- err
		return rounds
	}
	logger.Log.Infof("recorded %d finished rounds", len(rounds))

	return nil
}
