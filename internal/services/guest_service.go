package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vke007/jarvis-private/internal/config"
	"github.com/vke007/jarvis-private/internal/models"
	"github.com/vke007/jarvis-private/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrGuestFieldsRequired  = errors.New("email, name and password are required")
	ErrGuestIsOwner         = errors.New("cannot add owner as guest")
	ErrDuplicateAccount     = errors.New("account with this email already exists")
	ErrGuestNotFound        = errors.New("guest not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// GuestService handles owner-managed guest accounts.
type GuestService struct {
	cfg       *config.Config
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new GuestService.
func NewGuestService(cfg *config.Config, guestRepo repository.GuestRepository) *GuestService {
	return &GuestService{
		cfg:       cfg,
		guestRepo: guestRepo,
	}
}

// List returns all guest accounts.
func (s *GuestService) List() ([]models.Guest, error) {
	guests, err := s.guestRepo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list guests: %w", err)
	}
	return guests, nil
}

// CreateGuestInput represents the required information for a new guest.
type CreateGuestInput struct {
	Email    string
	Name     string
	Password string
}

// Create adds a new guest account with a salted password hash. The raw
// password is never stored.
func (s *GuestService) Create(input CreateGuestInput) (*models.Guest, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)

	if email == "" || name == "" || input.Password == "" {
		return nil, ErrGuestFieldsRequired
	}
	if email == s.cfg.OwnerEmail {
		return nil, ErrGuestIsOwner
	}

	if _, err := s.guestRepo.FindByEmail(email); err == nil {
		return nil, ErrDuplicateAccount
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	guest := &models.Guest{
		Email:        email,
		Name:         name,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	if err := s.guestRepo.Create(guest); err != nil {
		return nil, fmt.Errorf("failed to create guest: %w", err)
	}

	return guest, nil
}

// UpdateGuestInput carries a partial guest update; nil fields stay
// untouched.
type UpdateGuestInput struct {
	Name     *string
	IsActive *bool
	Password *string
}

// Update applies a partial update to a guest account, re-hashing the
// password when one is supplied.
func (s *GuestService) Update(id uint64, input UpdateGuestInput) (*models.Guest, error) {
	guest, err := s.guestRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGuestNotFound
		}
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}

	if input.Name != nil {
		guest.Name = *input.Name
	}
	if input.IsActive != nil {
		guest.IsActive = *input.IsActive
	}
	if input.Password != nil && *input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		guest.PasswordHash = string(hashedPassword)
	}

	if err := s.guestRepo.Update(guest); err != nil {
		return nil, fmt.Errorf("failed to update guest: %w", err)
	}

	return guest, nil
}

// Delete hard-deletes a guest account. Irreversible.
func (s *GuestService) Delete(id uint64) error {
	if _, err := s.guestRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGuestNotFound
		}
		return fmt.Errorf("failed to find guest: %w", err)
	}

	if err := s.guestRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete guest: %w", err)
	}

	return nil
}
