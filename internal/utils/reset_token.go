package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateResetToken generates an opaque, URL-safe password-reset token
// with 32 bytes of entropy.
func GenerateResetToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
