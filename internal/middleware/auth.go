package middleware

import (
	"errors"

	"github.com/agencyworks/agency-cms/internal/config"
	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/agencyworks/agency-cms/internal/token"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoPrincipal = errors.New("no authenticated principal")

// Protected gates a route on a valid access token. A missing or malformed
// Authorization header and an invalid/expired token are reported with
// distinct messages, both 401.
func Protected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Authentication required"))
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Invalid or expired token"))
		},
	})
}

// Principal extracts the decoded access-token payload attached by Protected.
func Principal(c *fiber.Ctx) (token.Payload, error) {
	jwtToken, ok := c.Locals("user").(*jwt.Token)
	if !ok || jwtToken == nil {
		return token.Payload{}, ErrNoPrincipal
	}
	claims, ok := jwtToken.Claims.(jwt.MapClaims)
	if !ok {
		return token.Payload{}, ErrNoPrincipal
	}

	adminID, _ := claims["adminId"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if adminID == "" {
		return token.Payload{}, ErrNoPrincipal
	}

	return token.Payload{
		AdminID: adminID,
		Email:   email,
		Role:    models.AdminRole(role),
	}, nil
}
