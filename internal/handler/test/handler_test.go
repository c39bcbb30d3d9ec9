package test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"glassblog/internal/config"
	handlers "glassblog/internal/handler"
)

func createTestHandler(sessions *MockSessionService, store *MockContentStore) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey: "test-secret-key",
		ServerPort:   8080,
	}

	return &handlers.Handlers{
		Sessions: sessions,
		Blog:     store,
		Cfg:      cfg,
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Validate: validator.New(),
	}
}

// assertJSONError checks the JSON response with an error
func assertJSONError(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedError string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response["error"], expectedError)
}
