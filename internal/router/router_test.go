package router

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/patric-chuzhbe/guessnum/internal/auth"
	"github.com/patric-chuzhbe/guessnum/internal/config"
	"github.com/patric-chuzhbe/guessnum/internal/db/memorystorage"
	"github.com/patric-chuzhbe/guessnum/internal/db/storage"
	"github.com/patric-chuzhbe/guessnum/internal/ipchecker"
	"github.com/patric-chuzhbe/guessnum/internal/livefeed"
	"github.com/patric-chuzhbe/guessnum/internal/logger"
	"github.com/patric-chuzhbe/guessnum/internal/mockstorage"
	"github.com/patric-chuzhbe/guessnum/internal/models"
	"github.com/patric-chuzhbe/guessnum/internal/ratelimit"
	"github.com/patric-chuzhbe/guessnum/internal/service"
	"github.com/patric-chuzhbe/guessnum/internal/user"
)

const (
	testAuthCookieName = "guessnum_session"
	testTrustedSubnet  = "10.0.0.0/8"
	testPassword       = "sup3rsecret"
)

type recordedRounds struct {
	rounds []models.FinishedRound
}

func (r *recordedRounds) Enqueue(round models.FinishedRound) {
	r.rounds = append(r.rounds, round)
}

type mockAuth struct{}

func (m *mockAuth) AuthenticateUser(h http.Handler) http.Handler {
	return h
}

func (m *mockAuth) RequireUser(h http.Handler) http.Handler {
	return h
}

func (m *mockAuth) IssueSession(response http.ResponseWriter, userID string) error {
	return nil
}

func (m *mockAuth) ClearSession(response http.ResponseWriter) {}

type initOption func(*initOptions)

type initOptions struct {
	mockAuth       bool
	mockStorage    storage.Storage
	trustedSubnet  string
	rateLimitRPS   int
	rateLimitBurst int
}

func withMockStorage(db storage.Storage) initOption {
	return func(options *initOptions) {
		options.mockStorage = db
	}
}

func withMockAuth(value bool) initOption {
	return func(options *initOptions) {
		options.mockAuth = value
	}
}

func withTrustedSubnet(trustedSubnet string) initOption {
	return func(options *initOptions) {
		options.trustedSubnet = trustedSubnet
	}
}

func withRateLimit(requestsPerSecond, burst int) initOption {
	return func(options *initOptions) {
		options.rateLimitRPS = requestsPerSecond
		options.rateLimitBurst = burst
	}
}

func setupTestRouter(
	t *testing.T,
	optionsProto ...initOption,
) (*httptest.Server, storage.Storage, *chi.Mux, *recordedRounds) {
	options := &initOptions{
		rateLimitRPS:   1000,
		rateLimitBurst: 1000,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	cfg, err := config.New(config.WithDisableFlagsParsing(true))
	if t != nil {
		require.NoError(t, err)
	}

	var db storage.Storage
	if options.mockStorage != nil {
		db = options.mockStorage
	} else {
		db, err = memorystorage.New(context.Background(), cfg.DBConnectionTimeout)
		if t != nil {
			require.NoError(t, err)
			t.Cleanup(func() {
				_ = db.Close()
			})
		}
	}

	recorder := &recordedRounds{}
	feed := livefeed.New()
	gameService := service.New(db, recorder, feed, 1)

	var authMiddleware authenticatorForTest
	if options.mockAuth {
		authMiddleware = &mockAuth{}
	} else {
		authKey, err := base64.URLEncoding.DecodeString(cfg.AuthCookieSigningSecretKey)
		if t != nil {
			require.NoError(t, err)
		}
		authMiddleware = auth.New(db, cfg.AuthCookieName, authKey)
	}

	limiter := ratelimit.New(options.rateLimitRPS, options.rateLimitBurst)
	if t != nil {
		t.Cleanup(limiter.Stop)
	}

	statsChecker, err := ipchecker.New(options.trustedSubnet)
	if t != nil {
		require.NoError(t, err)
	}

	err = logger.Init("debug")
	if t != nil {
		require.NoError(t, err)
	}

	theRouter := New(
		gameService,
		authMiddleware,
		feed,
		limiter,
		statsChecker,
	)

	return httptest.NewServer(theRouter), db, theRouter, recorder
}

// authenticatorForTest mirrors the authenticator interface so setupTestRouter
// can hand out either the real middleware or the pass-through mock.
type authenticatorForTest interface {
	AuthenticateUser(h http.Handler) http.Handler
	RequireUser(h http.Handler) http.Handler
	IssueSession(response http.ResponseWriter, userID string) error
	ClearSession(response http.ResponseWriter)
}

func sessionCookie(t *testing.T, cookies []*http.Cookie) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == testAuthCookieName && cookie.Value != "" {
			return cookie
		}
	}
	t.Fatal("no session cookie in the response")

	return nil
}

func registerUser(t *testing.T, server *httptest.Server, name, email string) *http.Cookie {
	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetBody(fmt.Sprintf(`{"name":%q,"email":%q,"password":%q}`, name, email, testPassword)).
		Post(server.URL + "/register")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	return sessionCookie(t, resp.Cookies())
}

func pinSecret(t *testing.T, db storage.Storage, email string, secret int) string {
	usr, err := db.GetUserByEmail(context.Background(), email, nil)
	require.NoError(t, err)
	require.NotEmpty(t, usr.ID)

	usr.Secret = secret
	require.NoError(t, db.UpdateGameState(context.Background(), usr, nil))

	return usr.ID
}

func TestPostRegister(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	type tExpectedResponse struct {
		code         int
		bodyContains string
		wantCookie   bool
	}
	testCases := []struct {
		name             string
		requestBody      string
		expectedResponse tExpectedResponse
	}{
		{
			name:        "positive",
			requestBody: `{"name":"alice","email":"alice@example.com","password":"sup3rsecret"}`,
			expectedResponse: tExpectedResponse{
				code:         http.StatusCreated,
				bodyContains: `"authenticated":true`,
				wantCookie:   true,
			},
		},
		{
			name:        "duplicate_name",
			requestBody: `{"name":"alice","email":"alice2@example.com","password":"sup3rsecret"}`,
			expectedResponse: tExpectedResponse{
				code:         http.StatusConflict,
				bodyContains: "name is already taken",
			},
		},
		{
			name:        "duplicate_email",
			requestBody: `{"name":"alice2","email":"alice@example.com","password":"sup3rsecret"}`,
			expectedResponse: tExpectedResponse{
				code:         http.StatusConflict,
				bodyContains: "email is already registered",
			},
		},
		{
			name:        "invalid_email",
			requestBody: `{"name":"bob","email":"not-an-email","password":"sup3rsecret"}`,
			expectedResponse: tExpectedResponse{
				code: http.StatusUnprocessableEntity,
			},
		},
		{
			name:        "short_password",
			requestBody: `{"name":"bob","email":"bob@example.com","password":"123"}`,
			expectedResponse: tExpectedResponse{
				code: http.StatusUnprocessableEntity,
			},
		},
		{
			name:        "empty_JSON",
			requestBody: `{}`,
			expectedResponse: tExpectedResponse{
				code: http.StatusUnprocessableEntity,
			},
		},
		{
			name:        "malformed_JSON",
			requestBody: `{"name":`,
			expectedResponse: tExpectedResponse{
				code: http.StatusBadRequest,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			req := resty.New().R()
			req.Method = http.MethodPost
			req.URL = server.URL + "/register"
			req.SetHeader("Content-Type", "application/json")
			req.SetBody(testCase.requestBody)

			resp, err := req.Send()
			assert.NoError(t, err, "error making HTTP request")

			assert.Equal(t, testCase.expectedResponse.code, resp.StatusCode(), "Response code didn't match expected value")

			if testCase.expectedResponse.bodyContains != "" {
				assert.Contains(t, string(resp.Body()), testCase.expectedResponse.bodyContains)
			}

			if testCase.expectedResponse.wantCookie {
				sessionCookie(t, resp.Cookies())
			}
		})
	}
}

func TestPostRegisterForGzip(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	var buf bytes.Buffer
	gzipWriter := gzip.NewWriter(&buf)
	_, err := gzipWriter.Write([]byte(`{"name":"carol","email":"carol@example.com","password":"sup3rsecret"}`))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	resp, err := resty.New().R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Content-Encoding", "gzip").
		SetHeader("Accept-Encoding", "gzip").
		SetBody(buf.Bytes()).
		Post(server.URL + "/register")
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode())
	assert.Contains(t, string(resp.Body()), `"name":"carol"`)
}

func TestPostLogin(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	registerUser(t, server, "alice", "alice@example.com")

	type tExpectedResponse struct {
		code         int
		bodyContains string
	}
	testCases := []struct {
		name             string
		requestBody      string
		expectedResponse tExpectedResponse
	}{
		{
			name:        "positive",
			requestBody: `{"email":"alice@example.com","password":"sup3rsecret"}`,
			expectedResponse: tExpectedResponse{
				code:         http.StatusOK,
				bodyContains: `"name":"alice"`,
			},
		},
		{
			name:        "wrong_password",
			requestBody: `{"email":"alice@example.com","password":"wrong-password"}`,
			expectedResponse: tExpectedResponse{
				code:         http.StatusUnauthorized,
				bodyContains: "invalid email or password",
			},
		},
		{
			name:        "unknown_email",
			requestBody: `{"email":"nobody@example.com","password":"sup3rsecret"}`,
			expectedResponse: tExpectedResponse{
				code:         http.StatusUnauthorized,
				bodyContains: "invalid email or password",
			},
		},
		{
			name:        "empty_JSON",
			requestBody: `{}`,
			expectedResponse: tExpectedResponse{
				code: http.StatusUnprocessableEntity,
			},
		},
		{
			name:        "malformed_JSON",
			requestBody: `{"email":`,
			expectedResponse: tExpectedResponse{
				code: http.StatusBadRequest,
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resp, err := resty.New().R().
				SetHeader("Content-Type", "application/json").
				SetBody(testCase.requestBody).
				Post(server.URL + "/login")
			assert.NoError(t, err, "error making HTTP request")

			assert.Equal(t, testCase.expectedResponse.code, resp.StatusCode(), "Response code didn't match expected value")

			if testCase.expectedResponse.bodyContains != "" {
				assert.Contains(t, string(resp.Body()), testCase.expectedResponse.bodyContains)
			}
		})
	}
}

func TestPostLogoutExpiresSession(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	registerUser(t, server, "alice", "alice@example.com")

	resp, err := resty.New().R().Post(server.URL + "/logout")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	var expired *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == testAuthCookieName {
			expired = cookie
		}
	}
	require.NotNil(t, expired)
	assert.Empty(t, expired.Value)
	assert.Negative(t, expired.MaxAge)
}

func TestPostGuessFlow(t *testing.T) {
	server, db, _, recorder := setupTestRouter(t)
	defer server.Close()

	cookie := registerUser(t, server, "alice", "alice@example.com")
	pinSecret(t, db, "alice@example.com", 17)

	submitGuess := func(guess int) (*resty.Response, models.GuessResponse) {
		resp, err := resty.New().R().
			SetHeader("Content-Type", "application/json").
			SetCookie(cookie).
			SetBody(fmt.Sprintf(`{"guess":%d}`, guess)).
			Post(server.URL + "/guess")
		require.NoError(t, err)

		var result models.GuessResponse
		if resp.StatusCode() == http.StatusOK {
			require.NoError(t, json.Unmarshal(resp.Body(), &result))
		}

		return resp, result
	}

	resp, result := submitGuess(10)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "too_low", result.Result)
	assert.Equal(t, "Your guess is not correct... try something bigger.", result.Message)
	assert.Equal(t, int64(1), result.Attempts)
	assert.False(t, result.Correct)

	resp, result = submitGuess(25)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "too_high", result.Result)
	assert.Equal(t, "Your guess is not correct... try something smaller.", result.Message)
	assert.Equal(t, int64(2), result.Attempts)

	resp, result = submitGuess(17)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "correct", result.Result)
	assert.Equal(t, "Correct! The secret number is 17", result.Message)
	assert.Equal(t, int64(3), result.Attempts)
	assert.True(t, result.Correct)

	require.Len(t, recorder.rounds, 1)
	assert.Equal(t, 17, recorder.rounds[0].Secret)
	assert.Equal(t, int64(3), recorder.rounds[0].Attempts)

	stateResp, err := resty.New().R().
		SetCookie(cookie).
		Get(server.URL + "/")
	require.NoError(t, err)

	var state models.GameStateResponse
	require.NoError(t, json.Unmarshal(stateResp.Body(), &state))
	assert.True(t, state.Authenticated)
	assert.Equal(t, int64(0), state.Attempts)
	assert.Equal(t, int64(1), state.Wins)
	assert.Equal(t, "correct", state.LastResult)
}

func TestPostGuessValidation(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	cookie := registerUser(t, server, "alice", "alice@example.com")

	testCases := []struct {
		name         string
		requestBody  string
		expectedCode int
	}{
		{
			name:         "below_range",
			requestBody:  `{"guess":0}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "above_range",
			requestBody:  `{"guess":31}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "negative",
			requestBody:  `{"guess":-5}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "missing_guess",
			requestBody:  `{}`,
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:         "malformed_JSON",
			requestBody:  `{"guess":`,
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resp, err := resty.New().R().
				SetHeader("Content-Type", "application/json").
				SetCookie(cookie).
				SetBody(testCase.requestBody).
				Post(server.URL + "/guess")
			assert.NoError(t, err, "error making HTTP request")

			assert.Equal(t, testCase.expectedCode, resp.StatusCode())
		})
	}

	t.Run("anonymous", func(t *testing.T) {
		resp, err := resty.New().R().
			SetHeader("Content-Type", "application/json").
			SetBody(`{"guess":15}`).
			Post(server.URL + "/guess")
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	})
}

func TestGetGamestateAnonymous(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	resp, err := resty.New().R().Get(server.URL + "/")
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode())

	var state models.GameStateResponse
	require.NoError(t, json.Unmarshal(resp.Body(), &state))
	assert.False(t, state.Authenticated)
}

func TestGetUsersKeepsRegistrationOrder(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	registerUser(t, server, "carol", "carol@example.com")
	registerUser(t, server, "alice", "alice@example.com")
	registerUser(t, server, "bob", "bob@example.com")

	resp, err := resty.New().R().Get(server.URL + "/users")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	var users models.UserList
	require.NoError(t, json.Unmarshal(resp.Body(), &users))
	require.Len(t, users, 3)
	assert.Equal(t, "carol", users[0].Name)
	assert.Equal(t, "alice", users[1].Name)
	assert.Equal(t, "bob", users[2].Name)
}

func TestGetUserslive(t *testing.T) {
	server, _, _, _ := setupTestRouter(t)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/users/live"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	require.NoError(t, err)
	defer conn.CloseNow()

	registerUser(t, server, "alice", "alice@example.com")

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var snapshot models.UserList
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot, 1)
	assert.Equal(t, "alice", snapshot[0].Name)
}

func TestGetPing(t *testing.T) {
	t.Run("healthy storage", func(t *testing.T) {
		server, _, _, _ := setupTestRouter(t)
		defer server.Close()

		resp, err := resty.New().R().Get(server.URL + "/ping")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode())
	})

	t.Run("failing storage", func(t *testing.T) {
		db := new(mockstorage.StorageMock)
		db.On("Ping", mock.Anything).Return(errors.New("db error"))

		server, _, _, _ := setupTestRouter(t, withMockStorage(db), withMockAuth(true))
		defer server.Close()

		resp, err := resty.New().R().Get(server.URL + "/ping")
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	})
}

func TestGetApiinternalstats(t *testing.T) {
	t.Run("from the trusted subnet", func(t *testing.T) {
		server, _, r, _ := setupTestRouter(t, withTrustedSubnet(testTrustedSubnet))
		defer server.Close()

		registerUser(t, server, "alice", "alice@example.com")

		req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
		req.Header.Set("X-Real-IP", "10.1.2.3")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var stats models.InternalStatsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
		assert.Equal(t, int64(1), stats.Users)
		assert.Equal(t, int64(0), stats.Rounds)
	})

	t.Run("from outside the trusted subnet", func(t *testing.T) {
		server, _, r, _ := setupTestRouter(t, withTrustedSubnet(testTrustedSubnet))
		defer server.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
		req.Header.Set("X-Real-IP", "192.168.1.5")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no trusted subnet configured", func(t *testing.T) {
		server, _, r, _ := setupTestRouter(t)
		defer server.Close()

		req := httptest.NewRequest(http.MethodGet, "/api/internal/stats", nil)
		req.Header.Set("X-Real-IP", "10.1.2.3")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestLoginRateLimit(t *testing.T) {
	server, _, _, _ := setupTestRouter(t, withRateLimit(1, 2))
	defer server.Close()

	registerUser(t, server, "alice", "alice@example.com")

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := resty.New().R().
			SetHeader("Content-Type", "application/json").
			SetHeader("X-Real-IP", "10.0.0.1").
			SetBody(`{"email":"alice@example.com","password":"sup3rsecret"}`).
			Post(server.URL + "/login")
		require.NoError(t, err)
		codes = append(codes, resp.StatusCode())
	}

	assert.Equal(t, http.StatusOK, codes[0])
	assert.Equal(t, http.StatusOK, codes[1])
	assert.Equal(t, http.StatusTooManyRequests, codes[2])
}

func TestPostGuessWithContextInjectedUser(t *testing.T) {
	server, db, r, _ := setupTestRouter(t, withMockAuth(true))
	server.Close()

	createdAt := time.Now().UTC()
	usr := &user.User{
		ID:        "8a1b6c72-6d3f-4dbb-9b69-52c35a52cf7d",
		Name:      "alice",
		Email:     "alice@example.com",
		Secret:    17,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.CreateUser(context.Background(), usr, nil))

	req := httptest.NewRequest(http.MethodPost, "/guess", strings.NewReader(`{"guess":17}`))
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(context.WithValue(req.Context(), auth.UserIDKey, usr.ID))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.GuessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.True(t, result.Correct)
}
