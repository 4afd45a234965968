// Package authenticator defines the session handling surface shared by the
// HTTP router and the application wiring.
package authenticator

import "net/http"

// Authenticator authenticates requests and manages the session lifecycle.
type Authenticator interface {
	AuthenticateUser(h http.Handler) http.Handler
	RequireUser(h http.Handler) http.Handler
	IssueSession(response http.ResponseWriter, userID string) error
	ClearSession(response http.ResponseWriter)
}
