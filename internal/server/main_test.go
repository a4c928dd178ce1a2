package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/session"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestServer builds a full app over an in-memory database and a
// miniredis-backed session store.
func setupTestServer(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := &config.Config{
		Port:       "0",
		Env:        "test",
		RedisURL:   mr.Addr(),
		SessionTTL: 1,
	}

	srv, err := NewServerWithDeps(cfg, db, rdb)
	if err != nil {
		t.Fatalf("failed to build server: %v", err)
	}

	app := fiber.New()
	srv.SetupMiddleware(app)
	srv.SetupRoutes(app)
	return app
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, app *fiber.App, method, path string, body any, cookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: cookie})
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("app.Test %s %s: %v", method, path, err)
	}
	return resp
}

// decodeJSON decodes the response body into dest and closes it.
func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

// sessionCookie pulls the session token from a login or signup response.
func sessionCookie(t *testing.T, resp *http.Response) string {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			return c.Value
		}
	}
	t.Fatal("no session cookie in response")
	return ""
}

// signupUser registers a user and returns their ID and session token.
func signupUser(t *testing.T, app *fiber.App, username string) (uint, string) {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/signup", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "apitestpass123",
	}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("signup for %s returned %d", username, resp.StatusCode)
	}
	token := sessionCookie(t, resp)

	var out struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decodeJSON(t, resp, &out)
	return out.User.ID, token
}
