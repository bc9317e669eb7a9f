package token

import (
	"errors"
	"time"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers bad signature, wrong signing method, malformed
	// input and expiry alike; callers must not distinguish these to clients.
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrMissingSecrets = errors.New("both JWT_SECRET and JWT_REFRESH_SECRET must be configured")
)

// Payload is the claim set embedded in both token kinds.
type Payload struct {
	AdminID string
	Email   string
	Role    models.AdminRole
}

// Codec signs and verifies access and refresh tokens. The two kinds use
// distinct secrets and lifetimes; a token issued under one secret never
// verifies under the other.
type Codec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewCodec fails when either secret is empty so the process can refuse to
// start instead of silently issuing forgeable tokens.
func NewCodec(cfg *config.Config) (*Codec, error) {
	if cfg.JWTSecret == "" || cfg.JWTRefreshSecret == "" {
		return nil, ErrMissingSecrets
	}
	return &Codec{
		accessSecret:  []byte(cfg.JWTSecret),
		refreshSecret: []byte(cfg.JWTRefreshSecret),
		accessTTL:     cfg.JWTAccessExpiry,
		refreshTTL:    cfg.JWTRefreshExpiry,
	}, nil
}

func (c *Codec) IssueAccessToken(p Payload) (string, error) {
	return sign(p, c.accessSecret, c.accessTTL)
}

func (c *Codec) IssueRefreshToken(p Payload) (string, error) {
	return sign(p, c.refreshSecret, c.refreshTTL)
}

func (c *Codec) VerifyAccessToken(token string) (Payload, error) {
	return verify(token, c.accessSecret)
}

func (c *Codec) VerifyRefreshToken(token string) (Payload, error) {
	return verify(token, c.refreshSecret)
}

func sign(p Payload, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"adminId": p.AdminID,
		"email":   p.Email,
		"role":    string(p.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func verify(token string, secret []byte) (Payload, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secret, nil
	})
	if err != nil || !parsed.Valid {
		return Payload{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Payload{}, ErrInvalidToken
	}

	adminID, _ := claims["adminId"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if adminID == "" {
		return Payload{}, ErrInvalidToken
	}

	return Payload{AdminID: adminID, Email: email, Role: models.AdminRole(role)}, nil
}
