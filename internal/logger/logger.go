// Package logger provides structured logging functionality
// using the Uber zap logging library. It supports log levels and output customization.
package logger

import (
	"errors"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"
)

// Log is a global SugaredLogger instance from the zap logging library.
// It provides a structured and leveled logging API with a simpler interface
// for common use cases like formatted output and key-value logging.
// Log should be initialized via Init().
var Log *zap.SugaredLogger

type responseState struct {
	status int
	bytes  int
}

type recordingResponseWriter struct {
	http.ResponseWriter
	state *responseState
}

// Write forwards the body to the wrapped writer and tracks the bytes sent.
func (r *recordingResponseWriter) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.state.bytes += n
	return n, err
}

// WriteHeader forwards the status code and records it for the access log.
func (r *recordingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.state.status = statusCode
}

// Init initializes the global logger configuration.
// It sets the output destination and global log level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes any buffered log entries to the output.
// It should be called when shutting down to ensure all logs are written.
func Sync() error {
	if err := Log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) {
		return err
	}

	return nil
}

/// WithLoggingHTTPMiddleware wraps an http.Handler with an access log:
// method, path, remote address, response status, size and duration.
func WithLoggingHTTPMiddleware(h http.Handler) http.Handler {
	logFn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		state := &responseState{status: http.StatusOK}
		rw := recordingResponseWriter{
			ResponseWriter: w,
			state:          state,
		}
		h.ServeHTTP(&rw, r)

		Log.Infoln(
			"method", r.Method,
			"uri", r.RequestURI,
			"remote", r.RemoteAddr,
			"status", state.status,
			"size", state.bytes,
			"duration", time.Since(start),
		)
	}

	return http.HandlerFunc(logFn)
}
