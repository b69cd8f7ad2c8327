package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/dayzero-app/dayzero/internal/db"
	"github.com/dayzero-app/dayzero/internal/services"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()
	return newTestAppWithOptions(t, Options{})
}

func newTestAppWithOptions(t *testing.T, options Options) (*fiber.App, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "dayzero-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if len(options.SecretKey) == 0 {
		options.SecretKey = []byte("test-secret-key")
	}
	if options.Location == nil {
		options.Location = time.UTC
	}

	repos := db.NewRepositories(database)
	handler := NewHandler(repos, options)

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repos
}

func registerTestUser(t *testing.T, app *fiber.App, email string, timezone string) string {
	t.Helper()

	payload := map[string]string{
		"email":    email,
		"password": "StrongPass1",
		"timezone": timezone,
	}
	response := postJSON(t, app, "/api/auth/register", payload, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d", response.StatusCode)
	}

	parsed := struct {
		Token string `json:"token"`
	}{}
	decodeJSONBody(t, response.Body, &parsed)
	if parsed.Token == "" {
		t.Fatal("register: expected a token in the response")
	}
	return parsed.Token
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any, token string) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPost, path, payload, token)
}

func putJSON(t *testing.T, app *fiber.App, path string, payload any, token string) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodPut, path, payload, token)
}

func sendJSON(t *testing.T, app *fiber.App, method string, path string, payload any, token string) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	if token != "" {
		request.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return response
}

func getJSON(t *testing.T, app *fiber.App, path string, token string) *http.Response {
	t.Helper()
	return sendJSON(t, app, http.MethodGet, path, nil, token)
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(raw), err)
	}
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, body, &payload)
	return payload["error"]
}

// fixedCoachBackend answers every prompt with a constant string, or fails
// when failure is set.
type fixedCoachBackend struct {
	answer  string
	failure error
	prompts []string
}

func (backend *fixedCoachBackend) Ask(_ context.Context, prompt string) (string, error) {
	backend.prompts = append(backend.prompts, prompt)
	if backend.failure != nil {
		return "", backend.failure
	}
	return backend.answer, nil
}

var _ services.CoachBackend = (*fixedCoachBackend)(nil)
