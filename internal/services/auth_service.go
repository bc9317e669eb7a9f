package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/agencyworks/agency-cms/internal/dto"
	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/agencyworks/agency-cms/internal/token"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is shared by "no such admin", "inactive account"
	// and "wrong password" so responses never reveal which emails exist.
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrTokenRequired       = errors.New("refresh token is required")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
	ErrAccountInactive     = errors.New("admin account is inactive")
	ErrAdminNotFound       = errors.New("admin not found")
	ErrEmailTaken          = errors.New("email already exists")
)

// AdminStore is the credential store the session manager reads principals
// from. Not-found is signalled by a nil admin, not an error.
type AdminStore interface {
	FindByEmail(email string) (*models.Admin, error)
	FindByID(id uuid.UUID) (*models.Admin, error)
	Create(admin *models.Admin) error
	UpdateLastLogin(id uuid.UUID) error
}

// RefreshTokenStore is the revocation ledger: a refresh token is honorable
// only while its row exists.
type RefreshTokenStore interface {
	Record(adminID uuid.UUID, token string) error
	FindByToken(token string) (*models.RefreshToken, error)
	DeleteByToken(token string) (int64, error)
}

// AuthService orchestrates login, token refresh and logout over the
// credential store, the revocation ledger and the token codec.
type AuthService struct {
	admins AdminStore
	tokens RefreshTokenStore
	codec  *token.Codec
}

func NewAuthService(admins AdminStore, tokens RefreshTokenStore, codec *token.Codec) *AuthService {
	return &AuthService{admins: admins, tokens: tokens, codec: codec}
}

func (s *AuthService) Login(email, password string) (*dto.LoginResponse, error) {
	admin, err := s.admins.FindByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Best-effort: a failed timestamp update must not block the login.
	if err := s.admins.UpdateLastLogin(admin.ID); err != nil {
		slog.Warn("failed to update last login", "admin_id", admin.ID, "error", err)
	}

	payload := token.Payload{
		AdminID: admin.ID.String(),
		Email:   admin.Email,
		Role:    admin.Role,
	}

	accessToken, err := s.codec.IssueAccessToken(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refreshToken, err := s.codec.IssueRefreshToken(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.tokens.Record(admin.ID, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to record refresh token: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Admin:        dto.NewAdminResponse(admin),
	}, nil
}

// Refresh exchanges a live refresh token for a new access token. The ledger
// lookup runs after signature verification: revocation trumps cryptographic
// validity. The new access token reflects the admin's current email and role,
// not the claims frozen into the refresh token.
func (s *AuthService) Refresh(refreshToken string) (*dto.RefreshResponse, error) {
	if refreshToken == "" {
		return nil, ErrTokenRequired
	}

	payload, err := s.codec.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	stored, err := s.tokens.FindByToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	if stored == nil {
		return nil, ErrInvalidRefreshToken
	}

	adminID, err := uuid.Parse(payload.AdminID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	admin, err := s.admins.FindByID(adminID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, ErrAccountInactive
	}

	accessToken, err := s.codec.IssueAccessToken(token.Payload{
		AdminID: admin.ID.String(),
		Email:   admin.Email,
		Role:    admin.Role,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Logout deletes the ledger row for the given token. Idempotent: a token that
// was never issued, or was already logged out, yields deletedCount 0.
func (s *AuthService) Logout(refreshToken string) (*dto.LogoutResponse, error) {
	if refreshToken == "" {
		return nil, ErrTokenRequired
	}

	deleted, err := s.tokens.DeleteByToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return &dto.LogoutResponse{DeletedCount: deleted}, nil
}

func (s *AuthService) GetAdminByID(id uuid.UUID) (*models.Admin, error) {
	admin, err := s.admins.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, ErrAdminNotFound
	}
	return admin, nil
}

// CreateAdmin provisions a new account. An unknown or absent role falls back
// to EDITOR, the least privileged one.
func (s *AuthService) CreateAdmin(req *dto.CreateAdminRequest) (*models.Admin, error) {
	existing, err := s.admins.FindByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := models.RoleEditor
	if models.ValidRole(req.Role) {
		role = models.AdminRole(req.Role)
	}

	admin := &models.Admin{
		ID:       uuid.New(),
		Email:    req.Email,
		Password: string(hash),
		Name:     req.Name,
		Role:     role,
		IsActive: true,
	}
	if err := s.admins.Create(admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}
	return admin, nil
}
