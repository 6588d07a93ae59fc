package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vke007/jarvis-private/internal/auth"
	"github.com/vke007/jarvis-private/internal/config"
	"github.com/vke007/jarvis-private/internal/models"
	"github.com/vke007/jarvis-private/internal/repository"
	"github.com/vke007/jarvis-private/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenValidity = time.Hour

var (
	ErrOwnerPasswordNotSet = errors.New("OWNER_PASSWORD is not set")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	// ErrAccessDenied covers both an unknown guest email and a
	// deactivated guest. The two cases are deliberately
	// indistinguishable to the caller.
	ErrAccessDenied       = errors.New("access denied")
	ErrNotOwnerEmail      = errors.New("only the owner can reset the password")
	ErrResetTokenInvalid  = errors.New("invalid or expired reset token")
	ErrFailedToIssueToken = errors.New("failed to issue token")
)

// AuthService handles login, token verification info, and the owner
// password-reset flow.
type AuthService struct {
	cfg       *config.Config
	guestRepo repository.GuestRepository
	resetRepo repository.ResetRepository
	mailer    Mailer
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg *config.Config, guestRepo repository.GuestRepository, resetRepo repository.ResetRepository, mailer Mailer) *AuthService {
	return &AuthService{
		cfg:       cfg,
		guestRepo: guestRepo,
		resetRepo: resetRepo,
		mailer:    mailer,
	}
}

// LoginResult is the successful outcome of a login attempt.
type LoginResult struct {
	Token   string
	Name    string
	Email   string
	IsOwner bool
}

// Login authenticates either the configured owner or an active guest and
// issues a signed token.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == s.cfg.OwnerEmail && s.cfg.OwnerEmail != "" {
		return s.loginOwner(password)
	}

	return s.loginGuest(email, password)
}

func (s *AuthService) loginOwner(password string) (*LoginResult, error) {
	if s.cfg.OwnerPassword == "" {
		// Misconfiguration, not bad credentials. The distinction is an
		// operator signal and only reachable with the owner's email, so
		// it leaks nothing to guests.
		return nil, ErrOwnerPasswordNotSet
	}

	if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.OwnerPassword)) != 1 {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.cfg.OwnerEmail, true, []byte(s.cfg.SecretKey))
	if err != nil {
		return nil, ErrFailedToIssueToken
	}

	return &LoginResult{
		Token:   token,
		Name:    s.cfg.OwnerName,
		Email:   s.cfg.OwnerEmail,
		IsOwner: true,
	}, nil
}

func (s *AuthService) loginGuest(email, password string) (*LoginResult, error) {
	guest, err := s.guestRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccessDenied
		}
		return nil, fmt.Errorf("failed to find guest: %w", err)
	}

	if !guest.IsActive {
		return nil, ErrAccessDenied
	}

	if err := bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(guest.Email, false, []byte(s.cfg.SecretKey))
	if err != nil {
		return nil, ErrFailedToIssueToken
	}

	return &LoginResult{
		Token:   token,
		Name:    guest.Name,
		Email:   guest.Email,
		IsOwner: false,
	}, nil
}

// DisplayName resolves the display name for a verified identity.
func (s *AuthService) DisplayName(identity auth.Identity) string {
	if identity.IsOwner {
		return s.cfg.OwnerName
	}

	guest, err := s.guestRepo.FindByEmail(identity.Email)
	if err != nil {
		return "Guest"
	}
	return guest.Name
}

// RequestPasswordReset generates and persists a one-time reset token for
// the owner, then mails it. The record stays valid even when mail
// dispatch fails, so the caller may simply retry with a fresh request.
func (s *AuthService) RequestPasswordReset(email, baseURL string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email != s.cfg.OwnerEmail || s.cfg.OwnerEmail == "" {
		return ErrNotOwnerEmail
	}

	token, err := utils.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	reset := &models.PasswordReset{
		Email:     email,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(resetTokenValidity),
	}
	if err := s.resetRepo.Create(reset); err != nil {
		return fmt.Errorf("failed to persist reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", strings.TrimRight(baseURL, "/"), token)
	body := fmt.Sprintf("Click here to reset your password:\n\n%s\n\nValid for 1 hour.", link)

	return s.mailer.Send(s.cfg.OwnerEmail, "Password Reset", body)
}

// ConsumePasswordReset validates a reset token and marks it used. The
// owner password itself lives in process configuration, so the actual
// change is an out-of-band operator action; the handler's success
// message says so.
func (s *AuthService) ConsumePasswordReset(token string) error {
	reset, err := s.resetRepo.FindUnused(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("failed to look up reset token: %w", err)
	}

	if time.Now().UTC().After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	if err := s.resetRepo.MarkUsed(reset); err != nil {
		return fmt.Errorf("failed to mark reset token used: %w", err)
	}

	return nil
}
