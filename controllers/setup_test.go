package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pharmalink/pharmalink/models"
	"github.com/pharmalink/pharmalink/routes"
)

const testSecret = "controllers-test-secret"

// setupApp wires the full route surface against a throwaway in-memory
// database, one per test.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(&models.User{}, &models.Pharmacy{}, &models.Transfer{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	app := fiber.New()
	routes.SetupAuthRoutes(app, database)
	routes.SetupPharmacyRoutes(app, database)
	routes.SetupTransferRoutes(app, database)

	return app, database
}

// doJSON performs a request against the app and decodes the JSON body.
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return resp.StatusCode, out
}

// newRequest builds a request carrying a raw Authorization header value,
// for exercising malformed headers that doJSON cannot produce.
func newRequest(t *testing.T, method, path, authHeader string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	return req
}

// registerUser registers an account and returns its bearer token.
func registerUser(t *testing.T, app *fiber.App, name, email, password string) string {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if status != http.StatusOK {
		t.Fatalf("register returned %d: %v", status, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("register response has no token: %v", body)
	}
	return token
}

// createPharmacy adds a directory entry and returns its id.
func createPharmacy(t *testing.T, app *fiber.App, token, name string) uint {
	t.Helper()

	status, body := doJSON(t, app, http.MethodPost, "/api/pharmacies", token, fiber.Map{
		"name": name,
	})
	if status != http.StatusOK {
		t.Fatalf("create pharmacy returned %d: %v", status, body)
	}
	pharmacy, _ := body["pharmacy"].(map[string]any)
	id, _ := pharmacy["id"].(float64)
	if id == 0 {
		t.Fatalf("create pharmacy response has no id: %v", body)
	}
	return uint(id)
}
