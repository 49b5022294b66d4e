// File: cmd/api/test_helpers.go
// Description: Test helper functions for API handler tests

package main

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/autosales/api/internal/auth"
	"github.com/autosales/api/internal/data"
	_ "github.com/lib/pq"
)

// newOfflineApp builds an app without a database connection, for tests
// that never reach the store.
func newOfflineApp(t *testing.T) *app {
	t.Helper()

	testApp := &app{
		config: config{env: "test"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		auth:   auth.New("test-secret"),
	}
	testApp.config.cors.trustedOrigins = []string{"http://localhost:5173"}

	return testApp
}

// newTestApp creates a test application instance backed by the migrated
// database named by TEST_DB_DSN. Database-backed tests are skipped when
// the variable is unset.
func newTestApp(t *testing.T) (*app, *data.TestUtils) {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping database integration test")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	err = db.Ping()
	if err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Create test utilities and clean the database before each test
	testUtils := data.NewTestUtils(db)
	err = testUtils.CleanDatabase()
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	testApp := &app{
		config: config{env: "test"},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		db:     db,
		models: data.NewModels(db),
		auth:   auth.New("test-secret"),
	}

	t.Cleanup(func() {
		db.Close()
	})

	return testApp, testUtils
}

// executeRequest executes an HTTP request and returns the response recorder
func executeRequest(app *app, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	app.routes().ServeHTTP(rr, req)
	return rr
}

// makeRequest creates and executes an HTTP request
func makeRequest(t *testing.T, app *app, method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	return executeRequest(app, req)
}

// parseJSONResponse parses a JSON response into a destination struct
func parseJSONResponse(t *testing.T, rr *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()

	err := json.NewDecoder(rr.Body).Decode(dest)
	if err != nil {
		t.Fatalf("Failed to parse JSON response: %v. Body: %s", err, rr.Body.String())
	}
}

// checkResponseCode checks if the response has the expected status code
func checkResponseCode(t *testing.T, expected, actual int) {
	t.Helper()

	if expected != actual {
		t.Errorf("Expected status code %d, got %d", expected, actual)
	}
}

// registerTestUser registers a user through the API and returns its token
func registerTestUser(t *testing.T, app *app, email, password string) string {
	t.Helper()

	body := map[string]interface{}{
		"email":    email,
		"password": password,
		"nom":      "Dupont",
		"prenom":   "Jean",
	}

	rr := makeRequest(t, app, "POST", "/api/register", body, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("Registration failed: status %d, body: %s", rr.Code, rr.Body.String())
	}

	var response struct {
		Token string `json:"token"`
	}
	parseJSONResponse(t, rr, &response)

	if response.Token == "" {
		t.Fatal("No token returned from registration")
	}

	return response.Token
}

// createAuthHeaders creates headers with Bearer token authentication
func createAuthHeaders(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}
