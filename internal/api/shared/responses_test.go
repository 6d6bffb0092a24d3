package shared

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/hbnb-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	w := httptest.NewRecorder()

	RespondWithJSON(w, r, http.StatusCreated, map[string]any{"message": "success", "data": 123})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"success","data":123}`, w.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	r := httptest.NewRequest(http.MethodGet, "/test", nil).WithContext(ctx)
	w := httptest.NewRecorder()

	RespondWithError(w, r, http.StatusNotFound, "Place not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "Place not found", body.Error)
	assert.Equal(t, GetTraceID(ctx), body.TraceID)
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	log, buf := logger.NewTestLogger(t)
	ctx := logger.WithLogger(SetTraceID(context.Background()), log)

	t.Run("server error is logged redacted at error level", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/users", nil).WithContext(ctx)
		w := httptest.NewRecorder()
		err := errors.New("insert failed for jane@example.com")

		RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "An unexpected error occurred", err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "jane@example.com")
		assert.Contains(t, w.Body.String(), "An unexpected error occurred")

		logs := buf.String()
		assert.Contains(t, logs, `"level":"ERROR"`)
		assert.Contains(t, logs, "[REDACTED_EMAIL]")
		assert.NotContains(t, logs, "jane@example.com")
		assert.Contains(t, logs, GetTraceID(ctx))
	})

	t.Run("client error elevated to warn", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil).WithContext(ctx)
		w := httptest.NewRecorder()

		RespondWithErrorAndLog(w, r, http.StatusUnauthorized, "Invalid credentials", nil, WithElevatedLogLevel())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, strings.Contains(buf.String(), `"level":"WARN"`))
	})
}
