package repository

import (
	"github.com/vke007/jarvis-private/internal/models"
	"gorm.io/gorm"
)

// GormGuestRepository is a GORM implementation of GuestRepository
type GormGuestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new GuestRepository
func NewGuestRepository(db *gorm.DB) GuestRepository {
	return &GormGuestRepository{db: db}
}

// Create creates a new guest account
func (r *GormGuestRepository) Create(guest *models.Guest) error {
	return r.db.Create(guest).Error
}

// FindByID finds a guest by ID
func (r *GormGuestRepository) FindByID(id uint64) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.First(&guest, id).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// FindByEmail finds a guest by email
func (r *GormGuestRepository) FindByEmail(email string) (*models.Guest, error) {
	var guest models.Guest
	if err := r.db.Where("email = ?", email).First(&guest).Error; err != nil {
		return nil, err
	}
	return &guest, nil
}

// List lists all guest accounts, oldest first
func (r *GormGuestRepository) List() ([]models.Guest, error) {
	var guests []models.Guest
	if err := r.db.Order("created_at ASC").Find(&guests).Error; err != nil {
		return nil, err
	}
	return guests, nil
}

// Update updates a guest account
func (r *GormGuestRepository) Update(guest *models.Guest) error {
	return r.db.Save(guest).Error
}

// Delete hard-deletes a guest account
func (r *GormGuestRepository) Delete(id uint64) error {
	return r.db.Unscoped().Delete(&models.Guest{}, id).Error
}
