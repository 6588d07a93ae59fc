package models

import "time"

// Guest is a secondary account invited by the owner. The owner itself is
// never stored; its credentials come from process configuration.
type Guest struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Email        string    `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	Name         string    `gorm:"type:varchar(120);not null" json:"name"`
	PasswordHash string    `gorm:"type:varchar(300);not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
