package repository

import (
	"errors"

	"github.com/vke007/jarvis-private/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingRepository is a GORM implementation of SettingRepository
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &GormSettingRepository{db: db}
}

// Get returns the stored value for a key. A missing row is not an error;
// callers fall back to their compiled-in default.
func (r *GormSettingRepository) Get(key string) (string, error) {
	var setting models.Setting
	if err := r.db.First(&setting, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return setting.Value, nil
}

// Set upserts a key's value
func (r *GormSettingRepository) Set(key, value string) error {
	return r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&models.Setting{Key: key, Value: value}).Error
}

// SeedDefaults inserts any missing keys without touching existing values
func (r *GormSettingRepository) SeedDefaults(defaults map[string]string) error {
	for key, value := range defaults {
		err := r.db.
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Setting{Key: key, Value: value}).Error
		if err != nil {
			return err
		}
	}
	return nil
}
