package repository

import "github.com/vke007/jarvis-private/internal/models"

// GuestRepository defines the interface for guest account data access
type GuestRepository interface {
	// Create creates a new guest account
	Create(guest *models.Guest) error

	// FindByID finds a guest by ID
	FindByID(id uint64) (*models.Guest, error)

	// FindByEmail finds a guest by email
	FindByEmail(email string) (*models.Guest, error)

	// List lists all guest accounts
	List() ([]models.Guest, error)

	// Update updates a guest account
	Update(guest *models.Guest) error

	// Delete hard-deletes a guest account
	Delete(id uint64) error
}

// ResetRepository defines the interface for password-reset data access
type ResetRepository interface {
	// Create persists a new reset record
	Create(reset *models.PasswordReset) error

	// FindUnused finds an unused reset record by token
	FindUnused(token string) (*models.PasswordReset, error)

	// MarkUsed flags a reset record as consumed
	MarkUsed(reset *models.PasswordReset) error
}

// SettingRepository defines the interface for the key-value settings table
type SettingRepository interface {
	// Get returns the stored value for a key
	Get(key string) (string, error)

	// Set upserts a key's value
	Set(key, value string) error

	// SeedDefaults inserts any missing keys without touching existing values
	SeedDefaults(defaults map[string]string) error
}
