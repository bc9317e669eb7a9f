package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/agencyworks/agency-cms/internal/services"
	"github.com/agencyworks/agency-cms/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type memAdminStore struct {
	byEmail map[string]*models.Admin
	byID    map[uuid.UUID]*models.Admin
}

func (s *memAdminStore) FindByEmail(email string) (*models.Admin, error) { return s.byEmail[email], nil }
func (s *memAdminStore) FindByID(id uuid.UUID) (*models.Admin, error)    { return s.byID[id], nil }
func (s *memAdminStore) Create(a *models.Admin) error {
	s.byEmail[a.Email] = a
	s.byID[a.ID] = a
	return nil
}
func (s *memAdminStore) UpdateLastLogin(id uuid.UUID) error { return nil }

type memTokenStore struct {
	rows map[string]*models.RefreshToken
}

func (s *memTokenStore) Record(adminID uuid.UUID, tok string) error {
	s.rows[tok] = &models.RefreshToken{AdminID: adminID, Token: tok}
	return nil
}
func (s *memTokenStore) FindByToken(tok string) (*models.RefreshToken, error) {
	return s.rows[tok], nil
}
func (s *memTokenStore) DeleteByToken(tok string) (int64, error) {
	if _, ok := s.rows[tok]; !ok {
		return 0, nil
	}
	delete(s.rows, tok)
	return 1, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newAuthTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:        "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
	codec, err := token.NewCodec(cfg)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	admin := &models.Admin{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Password: string(hash),
		Name:     "Admin",
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}

	admins := &memAdminStore{
		byEmail: map[string]*models.Admin{admin.Email: admin},
		byID:    map[uuid.UUID]*models.Admin{admin.ID: admin},
	}
	tokens := &memTokenStore{rows: make(map[string]*models.RefreshToken)}

	handler := NewAuthHandler(services.NewAuthService(admins, tokens, codec))

	app := fiber.New()
	app.Post("/api/auth/login", handler.Login)
	app.Post("/api/auth/refresh", handler.Refresh)
	app.Post("/api/auth/logout", handler.Logout)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) (int, envelope) {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp.StatusCode, env
}

func TestLoginEndpoint_Success(t *testing.T) {
	app := newAuthTestApp(t)

	status, env := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if env.Status != "success" {
		t.Errorf("envelope status = %q, want success", env.Status)
	}

	var data struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		Admin        struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"admin"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if data.AccessToken == "" || data.RefreshToken == "" {
		t.Error("expected both tokens in response")
	}
	if data.Admin.Email != "admin@example.com" {
		t.Errorf("admin email = %q", data.Admin.Email)
	}
	if data.Admin.Password != "" {
		t.Error("password hash leaked into response")
	}
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	app := newAuthTestApp(t)

	status, env := postJSON(t, app, "/api/auth/login", fiber.Map{"email": "admin@example.com"})
	if status != fiber.StatusBadRequest {
		t.Errorf("status = %d, want 400", status)
	}
	if env.Message != "Email and password are required" {
		t.Errorf("message = %q", env.Message)
	}
}

func TestLoginEndpoint_WrongPassword(t *testing.T) {
	app := newAuthTestApp(t)

	status, env := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "wrong",
	})
	if status != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", status)
	}
	if env.Status != "error" || env.Message != "Invalid credentials" {
		t.Errorf("envelope = %+v", env)
	}
}

func TestRefreshEndpoint(t *testing.T) {
	app := newAuthTestApp(t)

	_, login := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	var creds struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(login.Data, &creds); err != nil {
		t.Fatalf("unmarshal login data: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		status, env := postJSON(t, app, "/api/auth/refresh", fiber.Map{"refreshToken": creds.RefreshToken})
		if status != fiber.StatusOK {
			t.Fatalf("status = %d, want 200", status)
		}
		var data struct {
			AccessToken string `json:"accessToken"`
		}
		if err := json.Unmarshal(env.Data, &data); err != nil {
			t.Fatalf("unmarshal data: %v", err)
		}
		if data.AccessToken == "" {
			t.Error("expected a new access token")
		}
	})

	t.Run("missing token", func(t *testing.T) {
		status, env := postJSON(t, app, "/api/auth/refresh", fiber.Map{})
		if status != fiber.StatusBadRequest {
			t.Errorf("status = %d, want 400", status)
		}
		if env.Message != "Refresh token is required" {
			t.Errorf("message = %q", env.Message)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		status, _ := postJSON(t, app, "/api/auth/refresh", fiber.Map{"refreshToken": "not.a.jwt"})
		if status != fiber.StatusUnauthorized {
			t.Errorf("status = %d, want 401", status)
		}
	})
}

func TestLogoutEndpoint_RevokesRefreshToken(t *testing.T) {
	app := newAuthTestApp(t)

	_, login := postJSON(t, app, "/api/auth/login", fiber.Map{
		"email":    "admin@example.com",
		"password": "admin123",
	})
	var creds struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.Unmarshal(login.Data, &creds); err != nil {
		t.Fatalf("unmarshal login data: %v", err)
	}

	status, env := postJSON(t, app, "/api/auth/logout", fiber.Map{"refreshToken": creds.RefreshToken})
	if status != fiber.StatusOK {
		t.Fatalf("logout status = %d, want 200", status)
	}
	var out struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if out.DeletedCount != 1 {
		t.Errorf("deletedCount = %d, want 1", out.DeletedCount)
	}

	// Second logout is a no-op.
	_, env = postJSON(t, app, "/api/auth/logout", fiber.Map{"refreshToken": creds.RefreshToken})
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if out.DeletedCount != 0 {
		t.Errorf("second deletedCount = %d, want 0", out.DeletedCount)
	}

	// The revoked token must no longer refresh.
	status, _ = postJSON(t, app, "/api/auth/refresh", fiber.Map{"refreshToken": creds.RefreshToken})
	if status != fiber.StatusUnauthorized {
		t.Errorf("refresh after logout status = %d, want 401", status)
	}
}
