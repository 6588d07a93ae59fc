package repository

import (
	"github.com/vke007/jarvis-private/internal/models"
	"gorm.io/gorm"
)

// GormResetRepository is a GORM implementation of ResetRepository
type GormResetRepository struct {
	db *gorm.DB
}

// NewResetRepository creates a new ResetRepository
func NewResetRepository(db *gorm.DB) ResetRepository {
	return &GormResetRepository{db: db}
}

// Create persists a new reset record
func (r *GormResetRepository) Create(reset *models.PasswordReset) error {
	return r.db.Create(reset).Error
}

// FindUnused finds an unused reset record by token. Expiry is checked by
// the caller so the miss and the expired cases share one error path.
func (r *GormResetRepository) FindUnused(token string) (*models.PasswordReset, error) {
	var reset models.PasswordReset
	if err := r.db.Where("token = ? AND used = ?", token, false).First(&reset).Error; err != nil {
		return nil, err
	}
	return &reset, nil
}

// MarkUsed flags a reset record as consumed. Records are never deleted;
// the flag is what prevents replay.
func (r *GormResetRepository) MarkUsed(reset *models.PasswordReset) error {
	reset.Used = true
	return r.db.Save(reset).Error
}
