//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/pinboard-backend/internal/adapter/postgres"
	boardrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/board"
	likerepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/like"
	pinrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/pin"
	"github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/testhelper"
	userrepo "github.com/heartmarshall/pinboard-backend/internal/adapter/postgres/user"
	authpkg "github.com/heartmarshall/pinboard-backend/internal/auth"
	"github.com/heartmarshall/pinboard-backend/internal/config"
	authsvc "github.com/heartmarshall/pinboard-backend/internal/service/auth"
	boardsvc "github.com/heartmarshall/pinboard-backend/internal/service/board"
	likesvc "github.com/heartmarshall/pinboard-backend/internal/service/like"
	membershipsvc "github.com/heartmarshall/pinboard-backend/internal/service/membership"
	pinsvc "github.com/heartmarshall/pinboard-backend/internal/service/pin"
	"github.com/heartmarshall/pinboard-backend/internal/transport/middleware"
	"github.com/heartmarshall/pinboard-backend/internal/transport/rest"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	pins := pinrepo.New(pool)
	boards := boardrepo.New(pool)
	likes := likerepo.New(pool)

	jwtMgr := authpkg.NewJWTManager("test-secret-at-least-32-chars-long!!", "test-issuer", 15*time.Minute)

	// MinCost keeps password hashing fast; the hashes are throwaway.
	authService := authsvc.NewService(logger, users, jwtMgr, bcrypt.MinCost)
	pinService := pinsvc.NewService(logger, pins, likes, boards, txm)
	boardService := boardsvc.NewService(logger, boards)
	membershipService := membershipsvc.NewService(logger, boards, pins, txm)
	likeService := likesvc.NewService(logger, pins, likes)

	mux := rest.NewRouter(rest.Router{
		Auth:   rest.NewAuthHandler(authService, logger),
		Pins:   rest.NewPinsHandler(pinService, likeService, logger),
		Boards: rest.NewBoardsHandler(boardService, membershipService, logger),
		Health: rest.NewHealthHandler(pool, "test-version"),
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.CORS(config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,DELETE,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		}),
		middleware.Auth(authService),
	)(mux)

	srv := httptest.NewServer(handler)
	t.Cleanup(func() { srv.Close() })

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    jwtMgr,
	}
}

// apiRequest sends a JSON request and returns status + decoded body. A nil
// body sends no payload; an empty token sends no Authorization header.
func (ts *testServer) apiRequest(t *testing.T, method, path string, body map[string]any, token string) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Some endpoints return arrays; callers that need them decode
		// themselves via apiRequestRaw.
		result = nil
	}
	return resp.StatusCode, result
}

// apiRequestRaw is apiRequest for endpoints returning a JSON array.
func (ts *testServer) apiRequestRaw(t *testing.T, method, path, token string) (int, []any) {
	t.Helper()

	req, err := http.NewRequest(method, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var result []any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return resp.StatusCode, result
}

// registerUser creates a user through the public API and returns its token
// and ID.
func registerUser(t *testing.T, ts *testServer) (string, uuid.UUID) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	status, body := ts.apiRequest(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"email":    fmt.Sprintf("e2e-%s@example.com", suffix),
		"username": "e2e-" + suffix,
		"name":     "E2E User",
		"password": "password123",
	}, "")
	require.Equal(t, http.StatusCreated, status, "register: %v", body)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken string")

	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "expected user object")
	userID, err := uuid.Parse(user["id"].(string))
	require.NoError(t, err)

	return token, userID
}

// createPin creates a pin through the API and returns its ID.
func createPin(t *testing.T, ts *testServer, token string) uuid.UUID {
	t.Helper()

	status, body := ts.apiRequest(t, http.MethodPost, "/api/v1/pins", map[string]any{
		"title":    "E2E Pin",
		"imageUrl": "https://images.example.com/e2e.jpg",
	}, token)
	require.Equal(t, http.StatusCreated, status, "create pin: %v", body)

	id, err := uuid.Parse(body["id"].(string))
	require.NoError(t, err)
	return id
}

// createBoard creates a board through the API and returns its ID.
func createBoard(t *testing.T, ts *testServer, token string, private bool) uuid.UUID {
	t.Helper()

	status, body := ts.apiRequest(t, http.MethodPost, "/api/v1/boards", map[string]any{
		"name":      "E2E Board",
		"isPrivate": private,
	}, token)
	require.Equal(t, http.StatusCreated, status, "create board: %v", body)

	id, err := uuid.Parse(body["id"].(string))
	require.NoError(t, err)
	return id
}
