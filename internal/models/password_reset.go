package models

import "time"

// PasswordReset is a one-time reset token for the owner account. Rows are
// never deleted; the Used flag prevents replay.
type PasswordReset struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Email     string    `gorm:"type:varchar(200);not null" json:"email"`
	Token     string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Used      bool      `gorm:"default:false" json:"used"`
	CreatedAt time.Time `json:"created_at"`
}
