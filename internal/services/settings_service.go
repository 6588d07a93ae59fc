package services

import (
	"fmt"
	"strings"

	"github.com/vke007/jarvis-private/internal/repository"
)

// Safety toggle keys. Every AI-facing route checks its toggle before
// doing anything side-effecting and fails closed when it is off.
const (
	KeyVoiceEnabled     = "voice_enabled"
	KeyWebSearchEnabled = "web_search_enabled"
	KeyAIChatEnabled    = "ai_chat_enabled"
	KeyCodeGeneration   = "code_generation"
)

// Theme keys.
const (
	KeyPrimaryColor = "primary_color"
	KeyAccentColor  = "accent_color"
	KeyBgColor      = "bg_color"
	KeyTextColor    = "text_color"
	KeyAppName      = "app_name"
	KeyLogoURL      = "logo_url"
)

var safetyDefaults = map[string]string{
	KeyVoiceEnabled:     "true",
	KeyWebSearchEnabled: "true",
	KeyAIChatEnabled:    "true",
	KeyCodeGeneration:   "true",
}

var themeDefaults = map[string]string{
	KeyPrimaryColor: "#00ffaa",
	KeyAccentColor:  "#ff00ff",
	KeyBgColor:      "#0a0014",
	KeyTextColor:    "#e0e0ff",
	KeyAppName:      "JARVIS",
	KeyLogoURL:      "",
}

// SafetySettings is the typed in-memory view of the safety toggles. The
// key-value table is persistence only.
type SafetySettings struct {
	VoiceEnabled     bool `json:"voice_enabled"`
	WebSearchEnabled bool `json:"web_search_enabled"`
	AIChatEnabled    bool `json:"ai_chat_enabled"`
	CodeGeneration   bool `json:"code_generation"`
}

// ThemeSettings is the typed in-memory view of the theme values.
type ThemeSettings struct {
	PrimaryColor string `json:"primary_color"`
	AccentColor  string `json:"accent_color"`
	BgColor      string `json:"bg_color"`
	TextColor    string `json:"text_color"`
	AppName      string `json:"app_name"`
	LogoURL      string `json:"logo_url"`
}

// SettingsService exposes typed safety and theme views over the shared
// key-value settings table.
type SettingsService struct {
	repo repository.SettingRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(repo repository.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// SeedDefaults inserts any missing safety and theme keys at boot.
func (s *SettingsService) SeedDefaults() error {
	if err := s.repo.SeedDefaults(safetyDefaults); err != nil {
		return fmt.Errorf("failed to seed safety defaults: %w", err)
	}
	if err := s.repo.SeedDefaults(themeDefaults); err != nil {
		return fmt.Errorf("failed to seed theme defaults: %w", err)
	}
	return nil
}

func (s *SettingsService) getOr(key string, defaults map[string]string) (string, error) {
	value, err := s.repo.Get(key)
	if err != nil {
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	if value == "" {
		return defaults[key], nil
	}
	return value, nil
}

// IsEnabled reports whether a safety toggle is on.
func (s *SettingsService) IsEnabled(key string) (bool, error) {
	value, err := s.getOr(key, safetyDefaults)
	if err != nil {
		return false, err
	}
	return value == "true", nil
}

// Safety returns the current safety toggles.
func (s *SettingsService) Safety() (*SafetySettings, error) {
	safety := &SafetySettings{}
	for key, target := range map[string]*bool{
		KeyVoiceEnabled:     &safety.VoiceEnabled,
		KeyWebSearchEnabled: &safety.WebSearchEnabled,
		KeyAIChatEnabled:    &safety.AIChatEnabled,
		KeyCodeGeneration:   &safety.CodeGeneration,
	} {
		enabled, err := s.IsEnabled(key)
		if err != nil {
			return nil, err
		}
		*target = enabled
	}
	return safety, nil
}

// UpdateSafetyInput carries a partial safety update; nil fields stay
// untouched.
type UpdateSafetyInput struct {
	VoiceEnabled     *bool `json:"voice_enabled"`
	WebSearchEnabled *bool `json:"web_search_enabled"`
	AIChatEnabled    *bool `json:"ai_chat_enabled"`
	CodeGeneration   *bool `json:"code_generation"`
}

// UpdateSafety writes the supplied toggles. Only known safety keys can
// ever reach the table.
func (s *SettingsService) UpdateSafety(input UpdateSafetyInput) error {
	for key, value := range map[string]*bool{
		KeyVoiceEnabled:     input.VoiceEnabled,
		KeyWebSearchEnabled: input.WebSearchEnabled,
		KeyAIChatEnabled:    input.AIChatEnabled,
		KeyCodeGeneration:   input.CodeGeneration,
	} {
		if value == nil {
			continue
		}
		if err := s.repo.Set(key, fmt.Sprintf("%t", *value)); err != nil {
			return fmt.Errorf("failed to write setting %s: %w", key, err)
		}
	}
	return nil
}

// Theme returns the current theme values.
func (s *SettingsService) Theme() (*ThemeSettings, error) {
	theme := &ThemeSettings{}
	for key, target := range map[string]*string{
		KeyPrimaryColor: &theme.PrimaryColor,
		KeyAccentColor:  &theme.AccentColor,
		KeyBgColor:      &theme.BgColor,
		KeyTextColor:    &theme.TextColor,
		KeyAppName:      &theme.AppName,
		KeyLogoURL:      &theme.LogoURL,
	} {
		value, err := s.getOr(key, themeDefaults)
		if err != nil {
			return nil, err
		}
		*target = value
	}
	return theme, nil
}

// UpdateThemeInput carries a partial theme update; nil fields stay
// untouched.
type UpdateThemeInput struct {
	PrimaryColor *string `json:"primary_color"`
	AccentColor  *string `json:"accent_color"`
	BgColor      *string `json:"bg_color"`
	TextColor    *string `json:"text_color"`
	AppName      *string `json:"app_name"`
	LogoURL      *string `json:"logo_url"`
}

// UpdateTheme writes the supplied theme values.
func (s *SettingsService) UpdateTheme(input UpdateThemeInput) error {
	for key, value := range map[string]*string{
		KeyPrimaryColor: input.PrimaryColor,
		KeyAccentColor:  input.AccentColor,
		KeyBgColor:      input.BgColor,
		KeyTextColor:    input.TextColor,
		KeyAppName:      input.AppName,
		KeyLogoURL:      input.LogoURL,
	} {
		if value == nil {
			continue
		}
		if err := s.repo.Set(key, strings.TrimSpace(*value)); err != nil {
			return fmt.Errorf("failed to write setting %s: %w", key, err)
		}
	}
	return nil
}

// SetLogo stores the uploaded base64 logo payload.
func (s *SettingsService) SetLogo(data string) error {
	if err := s.repo.Set(KeyLogoURL, data); err != nil {
		return fmt.Errorf("failed to store logo: %w", err)
	}
	return nil
}
