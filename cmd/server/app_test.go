package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAdminEmail    = "admin@hbnb.io"
	testAdminPassword = "admin-password"
)

func testConfig(db config.DatabaseConfig) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:                   0,
			LogLevel:               "debug",
			ReadTimeoutSeconds:     5,
			WriteTimeoutSeconds:    5,
			IdleTimeoutSeconds:     30,
			ShutdownTimeoutSeconds: 2,
		},
		Database: db,
		Auth: config.AuthConfig{
			JWTSecret:            "test-jwt-secret-that-is-32-chars-long",
			TokenLifetimeMinutes: 60,
			BcryptCost:           4,
			AdminEmail:           testAdminEmail,
			AdminPassword:        testAdminPassword,
			AdminFirstName:       "Admin",
			AdminLastName:        "User",
		},
	}
}

func memoryConfig() *config.Config {
	return testConfig(config.DatabaseConfig{Driver: config.DriverMemory})
}

func sqliteConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hbnb.db")
	return testConfig(config.DatabaseConfig{
		Driver:      config.DriverSQLite,
		URL:         "file:" + path + "?_pragma=foreign_keys(1)&_time_format=sqlite",
		AutoMigrate: true,
	})
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestApplication(t *testing.T, cfg *config.Config) *application {
	t.Helper()
	app, err := newApplication(context.Background(), cfg, discardLogger())
	require.NoError(t, err)
	t.Cleanup(app.cleanup)
	return app
}

// client drives the router in-process.
type client struct {
	t *testing.T
	h http.Handler
}

func (c client) call(method, path, token string, body any) *httptest.ResponseRecorder {
	c.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, "/api/v1"+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

type idBody struct {
	ID uuid.UUID `json:"id"`
}

func (c client) login(email, password string) (string, uuid.UUID) {
	c.t.Helper()
	rec := c.call(http.MethodPost, "/auth/login", "", map[string]string{"email": email, "password": password})
	require.Equal(c.t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody[struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		User        idBody `json:"user"`
	}](c.t, rec)
	assert.Equal(c.t, "Bearer", body.TokenType)
	return body.AccessToken, body.User.ID
}

func (c client) register(first, email, password string) uuid.UUID {
	c.t.Helper()
	rec := c.call(http.MethodPost, "/users", "", map[string]any{
		"first_name": first, "last_name": "Tester", "email": email, "password": password,
	})
	require.Equal(c.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeBody[idBody](c.t, rec).ID
}

// exerciseBookingFlow walks the public API through registration, listing,
// reviewing and the authorization rules around each step.
func exerciseBookingFlow(t *testing.T, h http.Handler) {
	c := client{t: t, h: h}

	adminToken, _ := c.login(testAdminEmail, testAdminPassword)

	ownerID := c.register("Olivia", "olivia@example.com", "owner-pass")
	guestID := c.register("Gabe", "gabe@example.com", "guest-pass")

	rec := c.call(http.MethodPost, "/users", "", map[string]any{
		"first_name": "Mal", "last_name": "Lory", "email": "mal@example.com", "password": "secret1", "is_admin": true,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = c.call(http.MethodPost, "/users", "", map[string]any{
		"first_name": "Dup", "last_name": "Licate", "email": "OLIVIA@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = c.call(http.MethodPost, "/users", adminToken, map[string]any{
		"first_name": "Second", "last_name": "Admin", "email": "second@example.com", "password": "secret1", "is_admin": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = c.call(http.MethodPost, "/auth/login", "", map[string]string{"email": "gabe@example.com", "password": "nope-nope"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	ownerToken, loggedOwner := c.login("olivia@example.com", "owner-pass")
	assert.Equal(t, ownerID, loggedOwner)
	guestToken, _ := c.login("gabe@example.com", "guest-pass")

	rec = c.call(http.MethodGet, "/auth/protected", guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), fmt.Sprintf("Hello, user %s", guestID))

	rec = c.call(http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password")

	// Amenities are admin-only to write.
	rec = c.call(http.MethodPost, "/amenities", ownerToken, map[string]string{"name": "Wi-Fi"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = c.call(http.MethodPost, "/amenities", adminToken, map[string]string{"name": "Wi-Fi"})
	require.Equal(t, http.StatusCreated, rec.Code)
	wifiID := decodeBody[idBody](t, rec).ID
	rec = c.call(http.MethodPost, "/amenities", adminToken, map[string]string{"name": "Wi-Fi"})
	assert.Equal(t, http.StatusConflict, rec.Code)
	rec = c.call(http.MethodPost, "/amenities", adminToken, map[string]string{"name": "Pool"})
	require.Equal(t, http.StatusCreated, rec.Code)
	poolID := decodeBody[idBody](t, rec).ID

	// Places
	rec = c.call(http.MethodPost, "/places", ownerToken, map[string]any{
		"title": "Bad", "price": -5, "latitude": 10, "longitude": 10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.call(http.MethodPost, "/places", ownerToken, map[string]any{
		"title": "Seaside Cabin", "description": "Quiet", "price": 120.5,
		"latitude": 45.5, "longitude": -122.6, "amenities": []uuid.UUID{wifiID},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	placeID := decodeBody[idBody](t, rec).ID
	placePath := "/places/" + placeID.String()

	rec = c.call(http.MethodPut, placePath, guestToken, map[string]any{"price": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = c.call(http.MethodPut, placePath, ownerToken, map[string]any{"price": 99.0})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"price":99`)

	rec = c.call(http.MethodPost, placePath+"/amenities/"+poolID.String(), guestToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = c.call(http.MethodPost, placePath+"/amenities/"+poolID.String(), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]idBody](t, rec), 2)
	rec = c.call(http.MethodDelete, placePath+"/amenities/"+poolID.String(), ownerToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]idBody](t, rec), 1)

	// Reviews
	review := map[string]any{"text": "Lovely stay", "rating": 5, "place_id": placeID}
	rec = c.call(http.MethodPost, "/reviews", ownerToken, review)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "You cannot review your own place")

	rec = c.call(http.MethodPost, "/reviews", guestToken, map[string]any{"text": "Too good", "rating": 6, "place_id": placeID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = c.call(http.MethodPost, "/reviews", guestToken, review)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	reviewID := decodeBody[idBody](t, rec).ID

	rec = c.call(http.MethodPost, "/reviews", guestToken, review)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "You have already reviewed this place")

	rec = c.call(http.MethodGet, placePath, "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decodeBody[struct {
		Owner struct {
			FirstName string `json:"first_name"`
		} `json:"owner"`
		Amenities []idBody `json:"amenities"`
		Reviews   []idBody `json:"reviews"`
	}](t, rec)
	assert.Equal(t, "Olivia", detail.Owner.FirstName)
	require.Len(t, detail.Amenities, 1)
	assert.Equal(t, wifiID, detail.Amenities[0].ID)
	require.Len(t, detail.Reviews, 1)
	assert.Equal(t, reviewID, detail.Reviews[0].ID)

	rec = c.call(http.MethodGet, placePath+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]idBody](t, rec), 1)
	rec = c.call(http.MethodGet, "/places/"+uuid.NewString()+"/reviews", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = c.call(http.MethodGet, "/places/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.call(http.MethodGet, "/users/"+ownerID.String()+"/places", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]idBody](t, rec), 1)

	reviewPath := "/reviews/" + reviewID.String()
	rec = c.call(http.MethodPut, reviewPath, ownerToken, map[string]any{"rating": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = c.call(http.MethodPut, reviewPath, guestToken, map[string]any{"rating": 4})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"rating":4`)
	rec = c.call(http.MethodDelete, reviewPath, ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = c.call(http.MethodDelete, reviewPath, guestToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = c.call(http.MethodGet, reviewPath, "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = c.call(http.MethodDelete, reviewPath, guestToken, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Profile updates
	ownerPath := "/users/" + ownerID.String()
	rec = c.call(http.MethodPut, ownerPath, ownerToken, map[string]any{"email": "new@example.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = c.call(http.MethodPut, ownerPath, guestToken, map[string]any{"first_name": "Hacked"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = c.call(http.MethodPut, ownerPath, ownerToken, map[string]any{"first_name": "Liv"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"first_name":"Liv"`)
	rec = c.call(http.MethodPut, ownerPath, adminToken, map[string]any{"email": "liv@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	c.login("liv@example.com", "owner-pass")

	rec = c.call(http.MethodPut, ownerPath, "", map[string]any{"first_name": "Anon"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIFlow_Memory(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, memoryConfig())
	exerciseBookingFlow(t, app.setupRouter())
}

func TestAPIFlow_SQLite(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, sqliteConfig(t))
	exerciseBookingFlow(t, app.setupRouter())
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, memoryConfig())

	rec := httptest.NewRecorder()
	app.setupRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

func TestNewApplication_BootstrapAdminOnce(t *testing.T) {
	t.Parallel()
	cfg := sqliteConfig(t)

	first := newTestApplication(t, cfg)
	first.cleanup()

	second := newTestApplication(t, cfg)
	c := client{t: t, h: second.setupRouter()}
	rec := c.call(http.MethodGet, "/users", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	users := decodeBody[[]struct {
		Email   string `json:"email"`
		IsAdmin bool   `json:"is_admin"`
	}](t, rec)
	require.Len(t, users, 1)
	assert.Equal(t, testAdminEmail, users[0].Email)
	assert.True(t, users[0].IsAdmin)
}

func TestNewApplication_Errors(t *testing.T) {
	t.Parallel()

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Auth.JWTSecret = "short"
		_, err := newApplication(context.Background(), cfg, discardLogger())
		assert.Error(t, err)
	})

	t.Run("unreachable database", func(t *testing.T) {
		cfg := testConfig(config.DatabaseConfig{
			Driver: config.DriverSQLite,
			URL:    "file:" + filepath.Join(t.TempDir(), "missing", "dir", "hbnb.db"),
		})
		_, err := newApplication(context.Background(), cfg, discardLogger())
		assert.Error(t, err)
	})

	t.Run("weak bootstrap password", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.Auth.AdminPassword = "123"
		_, err := newApplication(context.Background(), cfg, discardLogger())
		assert.Error(t, err)
	})
}

func TestRunMigrations(t *testing.T) {
	t.Parallel()

	err := runMigrations(context.Background(), memoryConfig(), discardLogger(), "up")
	assert.ErrorIs(t, err, errNoMigrationDatabase)

	cfg := sqliteConfig(t)
	ctx := context.Background()
	require.NoError(t, runMigrations(ctx, cfg, discardLogger(), "up"))
	require.NoError(t, runMigrations(ctx, cfg, discardLogger(), "status"))
	require.NoError(t, runMigrations(ctx, cfg, discardLogger(), "version"))
	assert.Error(t, runMigrations(ctx, cfg, discardLogger(), "sideways"))
	require.NoError(t, runMigrations(ctx, cfg, discardLogger(), "reset"))
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, memoryConfig())
	app.config.Server.Port = 8081

	srv := app.newHTTPServer(http.NotFoundHandler())
	assert.Equal(t, ":8081", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.WriteTimeout)
	assert.Equal(t, 30*time.Second, srv.IdleTimeout)
}

func TestStartHTTPServer_StopsOnContextCancel(t *testing.T) {
	t.Parallel()
	app := newTestApplication(t, memoryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
