package token

import (
	"testing"
	"time"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "access-secret",
		JWTRefreshSecret: "refresh-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 168 * time.Hour,
	}
}

func testPayload() Payload {
	return Payload{
		AdminID: "6f1c8a8e-9f3b-4a1d-bb6a-0f4f4e1f2a10",
		Email:   "admin@example.com",
		Role:    models.RoleSuperAdmin,
	}
}

func TestNewCodec_RequiresBothSecrets(t *testing.T) {
	cfg := testConfig()
	cfg.JWTSecret = ""
	if _, err := NewCodec(cfg); err != ErrMissingSecrets {
		t.Fatalf("expected ErrMissingSecrets, got %v", err)
	}

	cfg = testConfig()
	cfg.JWTRefreshSecret = ""
	if _, err := NewCodec(cfg); err != ErrMissingSecrets {
		t.Fatalf("expected ErrMissingSecrets, got %v", err)
	}
}

func TestCodec_AccessRoundTrip(t *testing.T) {
	codec, err := NewCodec(testConfig())
	if err != nil {
		t.Fatalf("NewCodec: %v", err)
	}

	signed, err := codec.IssueAccessToken(testPayload())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if signed == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := codec.VerifyAccessToken(signed)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	want := testPayload()
	if got != want {
		t.Fatalf("payload mismatch: got %+v want %+v", got, want)
	}
}

func TestCodec_RefreshRoundTrip(t *testing.T) {
	codec, _ := NewCodec(testConfig())

	signed, err := codec.IssueRefreshToken(testPayload())
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}
	got, err := codec.VerifyRefreshToken(signed)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if got.Role != models.RoleSuperAdmin {
		t.Fatalf("unexpected role: %s", got.Role)
	}
}

func TestCodec_CrossSecretVerificationFails(t *testing.T) {
	codec, _ := NewCodec(testConfig())

	access, _ := codec.IssueAccessToken(testPayload())
	refresh, _ := codec.IssueRefreshToken(testPayload())

	if _, err := codec.VerifyRefreshToken(access); err != ErrInvalidToken {
		t.Fatalf("access token verified under refresh secret: %v", err)
	}
	if _, err := codec.VerifyAccessToken(refresh); err != ErrInvalidToken {
		t.Fatalf("refresh token verified under access secret: %v", err)
	}
}

func TestCodec_ExpiredTokenFails(t *testing.T) {
	cfg := testConfig()
	cfg.JWTAccessExpiry = -time.Minute
	codec, _ := NewCodec(cfg)

	signed, err := codec.IssueAccessToken(testPayload())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if _, err := codec.VerifyAccessToken(signed); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_GarbageFails(t *testing.T) {
	codec, _ := NewCodec(testConfig())
	if _, err := codec.VerifyAccessToken("garbage"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, err := codec.VerifyRefreshToken(""); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
