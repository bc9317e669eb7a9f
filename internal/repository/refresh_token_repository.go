package repository

import (
	"errors"

	"github.com/agencyworks/agency-cms/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshTokenRepository is the revocation ledger: one row per live refresh
// token. The token column carries a unique constraint as a safety net even
// though signed JWTs are unique by construction.
type RefreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

func (r *RefreshTokenRepository) Record(adminID uuid.UUID, token string) error {
	return r.db.Create(&models.RefreshToken{
		AdminID: adminID,
		Token:   token,
	}).Error
}

func (r *RefreshTokenRepository) FindByToken(token string) (*models.RefreshToken, error) {
	var row models.RefreshToken
	err := r.db.Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteByToken removes the matching row and reports how many were deleted
// (0 or 1). Deleting an unknown token is not an error.
func (r *RefreshTokenRepository) DeleteByToken(token string) (int64, error) {
	res := r.db.Where("token = ?", token).Delete(&models.RefreshToken{})
	return res.RowsAffected, res.Error
}
