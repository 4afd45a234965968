// Package router wires the HTTP endpoints of the game API to the service
// layer and the middleware chain.
package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	validator "github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/patric-chuzhbe/guessnum/internal/auth"
	"github.com/patric-chuzhbe/guessnum/internal/authenticator"
	"github.com/patric-chuzhbe/guessnum/internal/game"
	"github.com/patric-chuzhbe/guessnum/internal/gziphttp"
	"github.com/patric-chuzhbe/guessnum/internal/ipchecker"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/ratelimit"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

type gameService interface {
	Register(ctx context.Context, request models.RegisterRequest) (*user.User, error)

	Login(ctx context.Context, request models.LoginRequest) (*user.User, error)

	SubmitGuess(ctx context.Context, userID string, guess int) (*models.GuessResponse, error)

	GameState(ctx context.Context, userID string) (*models.GameStateResponse, error)

	ListUsers(ctx context.Context) (models.UserList, error)

	GetInternalStats(ctx context.Context) (models.InternalStatsResponse, error)

	Ping(ctx context.Context) error
}

type liveFeed interface {
	Subscribe(response http.ResponseWriter, request *http.Request) error
}

// Router holds the HTTP handlers of the game API.
type Router struct {
	service  gameService
	auth     authenticator.Authenticator
	feed     liveFeed
	validate *validator.Validate
}

// New assembles the chi mux with the middleware chain and every endpoint of
// the game API.
func New(
	service gameService,
	authMiddleware authenticator.Authenticator,
	feed liveFeed,
	limiter *ratelimit.Limiter,
	statsChecker *ipchecker.IPChecker,
) *chi.Mux {
	myRouter := &Router{
		service:  service,
		auth:     authMiddleware,
		feed:     feed,
		validate: validator.New(),
	}

	router := chi.NewRouter()
	router.Use(
		logger.WithLoggingHTTPMiddleware,
		gziphttp.DecompressRequest,
	)

	router.With(
		gziphttp.CompressResponse,
		authMiddleware.AuthenticateUser,
	).Get(`/`, myRouter.GetGamestate)

	router.With(gziphttp.CompressResponse).Post(`/register`, myRouter.PostRegister)

	router.With(
		gziphttp.CompressResponse,
		limiter.Limit,
	).Post(`/login`, myRouter.PostLogin)

	router.Post(`/logout`, myRouter.PostLogout)

	router.With(
		gziphttp.CompressResponse,
		limiter.Limit,
		authMiddleware.AuthenticateUser,
		authMiddleware.RequireUser,
	).Post(`/guess`, myRouter.PostGuess)

	router.With(gziphttp.CompressResponse).Get(`/users`, myRouter.GetUsers)

	router.Get(`/users/live`, myRouter.GetUserslive)

	router.Get(`/ping`, myRouter.GetPing)

	router.With(statsChecker.RequireTrusted).Get(`/api/internal/stats`, myRouter.GetApiinternalstats)

	return router
}

// GetGamestate describes the caller's current round. Anonymous callers get
// a response with "authenticated" set to false.
func (theRouter *Router) GetGamestate(response http.ResponseWriter, request *http.Request) {
	state, err := theRouter.service.GameState(request.Context(), getUserIDFromContext(request))
	if err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.GameState()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	theRouter.writeJSON(response, http.StatusOK, state)
}

// PostRegister creates a new user and opens a session for it. A name or
// email collision yields 409, an invalid payload 422.
func (theRouter *Router) PostRegister(response http.ResponseWriter, request *http.Request) {
	var registerRequest models.RegisterRequest
	if err := json.NewDecoder(request.Body).Decode(&registerRequest); err != nil {
		theRouter.writeError(response, http.StatusBadRequest, "cannot decode the request body")
		return
	}

	if err := theRouter.validate.Struct(registerRequest); err != nil {
		theRouter.writeError(response, http.StatusUnprocessableEntity, err.Error())
		return
	}

	usr, err := theRouter.service.Register(request.Context(), registerRequest)
	if errors.Is(err, models.ErrNameAlreadyTaken) || errors.Is(err, models.ErrEmailAlreadyTaken) {
		theRouter.writeError(response, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.Register()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := theRouter.auth.IssueSession(response, usr.ID); err != nil {
		logger.Log.Debugln("Error calling the `theRouter.auth.IssueSession()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	theRouter.writeJSON(response, http.StatusCreated, models.GameStateResponse{
		Authenticated: true,
		Name:          usr.Name,
	})
}

// PostLogin verifies the credentials and opens a session. An unknown email
// and a wrong password both yield 401.
func (theRouter *Router) PostLogin(response http.ResponseWriter, request *http.Request) {
	var loginRequest models.LoginRequest
	if err := json.NewDecoder(request.Body).Decode(&loginRequest); err != nil {
		theRouter.writeError(response, http.StatusBadRequest, "cannot decode the request body")
		return
	}

	if err := theRouter.validate.Struct(loginRequest); err != nil {
		theRouter.writeError(response, http.StatusUnprocessableEntity, err.Error())
		return
	}

	usr, err := theRouter.service.Login(request.Context(), loginRequest)
	if errors.Is(err, models.ErrInvalidCredentials) {
		theRouter.writeError(response, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.Login()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := theRouter.auth.IssueSession(response, usr.ID); err != nil {
		logger.Log.Debugln("Error calling the `theRouter.auth.IssueSession()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	theRouter.writeJSON(response, http.StatusOK, models.GameStateResponse{
		Authenticated: true,
		Name:          usr.Name,
		Attempts:      usr.Attempts,
		LastResult:    usr.LastResult,
		Wins:          usr.Wins,
	})
}

// PostLogout expires the session cookie.
func (theRouter *Router) PostLogout(response http.ResponseWriter, request *http.Request) {
	theRouter.auth.ClearSession(response)
	response.WriteHeader(http.StatusOK)
}

// PostGuess evaluates the caller's guess against their secret. Guesses
// outside the allowed range yield 422 without touching the round.
func (theRouter *Router) PostGuess(response http.ResponseWriter, request *http.Request) {
	var guessRequest models.GuessRequest
	if err := json.NewDecoder(request.Body).Decode(&guessRequest); err != nil {
		theRouter.writeError(response, http.StatusBadRequest, "cannot decode the request body")
		return
	}

	if err := theRouter.validate.Struct(guessRequest); err != nil {
		theRouter.writeError(response, http.StatusUnprocessableEntity, err.Error())
		return
	}

	result, err := theRouter.service.SubmitGuess(
		request.Context(),
		getUserIDFromContext(request),
		*guessRequest.Guess,
	)
	if errors.Is(err, game.ErrGuessOutOfRange) {
		theRouter.writeError(response, http.StatusUnprocessableEntity, err.Error())
		return
	}
	// The daily reset wipes the users table, so a valid session may point
	// at a user which no longer exists.
	if errors.Is(err, models.ErrNoSuchUser) {
		theRouter.auth.ClearSession(response)
		theRouter.writeError(response, http.StatusUnauthorized, err.Error())
		return
	}
	if err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.SubmitGuess()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	theRouter.writeJSON(response, http.StatusOK, result)
}

// GetUsers returns the leaderboard ordered by registration time.
func (theRouter *Router) GetUsers(response http.ResponseWriter, request *http.Request) {
	users, err := theRouter.service.ListUsers(request.Context())
	if err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.ListUsers()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	theRouter.writeJSON(response, http.StatusOK, users)
}

// GetUserslive upgrades the connection to a WebSocket and streams
// leaderboard snapshots until the client disconnects.
func (theRouter *Router) GetUserslive(response http.ResponseWriter, request *http.Request) {
	err := theRouter.feed.Subscribe(response, request)
	if errors.Is(err, context.Canceled) {
		return
	}
	if websocket.CloseStatus(err) == websocket.StatusNormalClosure ||
		websocket.CloseStatus(err) == websocket.StatusGoingAway {
		return
	}
	if err != nil {
		logger.Log.Debugln("The live feed subscription ended with error: ", zap.Error(err))
	}
}

// GetPing checks the health of the storage layer.
func (theRouter *Router) GetPing(response http.ResponseWriter, request *http.Request) {
	if err := theRouter.service.Ping(request.Context()); err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.Ping()`: ", zap.Error(err))
		response.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	response.WriteHeader(http.StatusOK)
}

// GetApiinternalstats reports totals for registered users and finished
// rounds. The route is reachable from the trusted subnet only.
func (theRouter *Router) GetApiinternalstats(response http.ResponseWriter, request *http.Request) {
	stats, err := theRouter.service.GetInternalStats(request.Context())
	if err != nil {
		logger.Log.Debugln("Error calling the `theRouter.service.GetInternalStats()`: ", zap.Error(err))
		response.WriteHeader(http.StatusInternalServerError)
		return
	}

	theRouter.writeJSON(response, http.StatusOK, stats)
}

func (theRouter *Router) writeJSON(response http.ResponseWriter, statusCode int, payload interface{}) {
	response.Header().Set("Content-Type", "application/json")
	response.WriteHeader(statusCode)
	if err := json.NewEncoder(response).Encode(payload); err != nil {
		logger.Log.Debugln("Error encoding the response payload: ", zap.Error(err))
	}
}

func (theRouter *Router) writeError(response http.ResponseWriter, statusCode int, message string) {
	theRouter.writeJSON(response, statusCode, models.ErrorResponse{Error: message})
}

func getUserIDFromContext(request *http.Request) string {
	userID, ok := request.Context().Value(auth.UserIDKey).(string)
	if !ok {
		return ""
	}

	return userID
}
