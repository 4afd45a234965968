// Package livefeed broadcasts leaderboard snapshots to WebSocket
// subscribers. Every registration and finished round produces a fresh
// snapshot which is fanned out to all connected clients.
package livefeed

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"golang.org/x/time/rate"

	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/models"
)

const writeWait = 5 * time.Second

// Feed fans leaderboard snapshots out to a set of WebSocket subscribers.
type Feed struct {
	// subscriberMessageBuffer controls the max number of snapshots that
	// can be queued for a subscriber before it is kicked.
	subscriberMessageBuffer int

	// publishLimiter caps the snapshot fan out rate.
	publishLimiter *rate.Limiter

	subscribersMu sync.Mutex
	subscribers   map[*subscriber]struct{}
	lastSnapshot  []byte
}

// subscriber represents one connected client. Snapshots are sent on the
// msgs channel and closeSlow is called when the client cannot keep up.
type subscriber struct {
	msgs      chan []byte
	closeSlow func()
}

// New constructs a Feed with the defaults.
func New() *Feed {
	return &Feed{
		subscriberMessageBuffer: 16,
		publishLimiter:          rate.NewLimiter(rate.Every(time.Millisecond*100), 8),
		subscribers:             make(map[*subscriber]struct{}),
	}
}

// Publish serializes the user list and broadcasts it to every subscriber.
// It never blocks: snapshots to slow subscribers are dropped.
func (f *Feed) Publish(users models.UserList) {
	snapshot, err := json.Marshal(users)
	if err != nil {
		logger.Log.Debugln("Cannot serialize the leaderboard snapshot:", err)
		return
	}

	f.subscribersMu.Lock()
	defer f.subscribersMu.Unlock()

	_ = f.publishLimiter.Wait(context.Background())

	f.lastSnapshot = snapshot

	for s := range f.subscribers {
		select {
		case s.msgs <- snapshot:
		default:
			go s.closeSlow()
		}
	}
}

// Subscribe upgrades the request to a WebSocket connection and streams
// leaderboard snapshots to it, starting with the most recent one. It
// returns when the client disconnects or a write fails.
func (f *Feed) Subscribe(response http.ResponseWriter, request *http.Request) error {
	var mu sync.Mutex
	var conn *websocket.Conn
	var closed bool

	s := &subscriber{
		msgs: make(chan []byte, f.subscriberMessageBuffer),
		closeSlow: func() {
			mu.Lock()
			defer mu.Unlock()
			closed = true
			if conn != nil {
				conn.Close(websocket.StatusPolicyViolation, "connection too slow to keep up with snapshots")
			}
		},
	}
	f.addSubscriber(s)
	defer f.deleteSubscriber(s)

	accepted, err := websocket.Accept(response, request, nil)
	if err != nil {
		return err
	}
	mu.Lock()
	if closed {
		mu.Unlock()
		return net.ErrClosed
	}
	conn = accepted
	mu.Unlock()
	defer conn.CloseNow()

	// CloseRead keeps consuming control frames and cancels the context
	// when the connection drops.
	ctx := conn.CloseRead(request.Context())

	if last := f.latestSnapshot(); last != nil {
		if err := writeTimeout(ctx, writeWait, conn, last); err != nil {
			return err
		}
	}

	for {
		select {
		case msg := <-s.msgs:
			if err := writeTimeout(ctx, writeWait, conn, msg); err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (f *Feed) latestSnapshot() []byte {
	f.subscribersMu.Lock()
	defer f.subscribersMu.Unlock()

	return f.lastSnapshot
}

func (f *Feed) addSubscriber(s *subscriber) {
	f.subscribersMu.Lock()
	f.subscribers[s] = struct{}{}
	f.subscribersMu.Unlock()
}

func (f *Feed) deleteSubscriber(s *subscriber) {
	f.subscribersMu.Lock()
	delete(f.subscribers, s)
	f.subscribersMu.Unlock()
}

func writeTimeout(ctx context.Context, timeout time.Duration, conn *websocket.Conn, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return conn.Write(ctx, websocket.MessageText, msg)
}
