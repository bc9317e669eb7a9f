package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/agencyworks/agency-cms/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: time.Hour,
	}
}

func testApp(t *testing.T, cfg *config.Config, extra ...fiber.Handler) *fiber.App {
	t.Helper()
	app := fiber.New()
	chain := append([]fiber.Handler{Protected(cfg)}, extra...)
	chain = append(chain, func(c *fiber.Ctx) error {
		principal, err := Principal(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.JSON(fiber.Map{"adminId": principal.AdminID, "role": principal.Role})
	})
	app.Get("/secure", chain...)
	return app
}

func issueAccess(t *testing.T, cfg *config.Config, role models.AdminRole) (string, string) {
	t.Helper()
	codec, err := token.NewCodec(cfg)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	adminID := uuid.New().String()
	tok, err := codec.IssueAccessToken(token.Payload{
		AdminID: adminID,
		Email:   "admin@example.com",
		Role:    role,
	})
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	return tok, adminID
}

func bodyMessage(t *testing.T, body io.Reader) string {
	t.Helper()
	var envelope struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return envelope.Message
}

func TestProtected_MissingHeader(t *testing.T) {
	app := testApp(t, testConfig())

	resp, err := app.Test(httptest.NewRequest("GET", "/secure", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if msg := bodyMessage(t, resp.Body); msg != "Authentication required" {
		t.Errorf("message = %q, want %q", msg, "Authentication required")
	}
}

func TestProtected_GarbageToken(t *testing.T) {
	app := testApp(t, testConfig())

	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer not.a.jwt")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
	if msg := bodyMessage(t, resp.Body); msg != "Invalid or expired token" {
		t.Errorf("message = %q, want %q", msg, "Invalid or expired token")
	}
}

func TestProtected_RefreshTokenRejected(t *testing.T) {
	cfg := testConfig()
	codec, err := token.NewCodec(cfg)
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}
	refresh, err := codec.IssueRefreshToken(token.Payload{
		AdminID: uuid.New().String(),
		Email:   "admin@example.com",
		Role:    models.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	app := testApp(t, cfg)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	// Signed under the refresh secret, so the access gate must refuse it.
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("status = %d, want 401", resp.StatusCode)
	}
}

func TestProtected_ValidToken(t *testing.T) {
	cfg := testConfig()
	tok, adminID := issueAccess(t, cfg, models.RoleEditor)

	app := testApp(t, cfg)
	req := httptest.NewRequest("GET", "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var out map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if out["adminId"] != adminID {
		t.Errorf("adminId = %q, want %q", out["adminId"], adminID)
	}
}

func TestRequireRoles(t *testing.T) {
	cfg := testConfig()
	gate := RequireRoles(models.RoleSuperAdmin, models.RoleAdmin)

	cases := []struct {
		role models.AdminRole
		want int
	}{
		{models.RoleSuperAdmin, fiber.StatusOK},
		{models.RoleAdmin, fiber.StatusOK},
		{models.RoleEditor, fiber.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(string(tc.role), func(t *testing.T) {
			tok, _ := issueAccess(t, cfg, tc.role)
			app := testApp(t, cfg, gate)

			req := httptest.NewRequest("GET", "/secure", nil)
			req.Header.Set("Authorization", "Bearer "+tok)
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tc.want {
				t.Errorf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
