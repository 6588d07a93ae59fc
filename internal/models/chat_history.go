package models

import "time"

// ChatHistory stores one message/response pair per AI chat exchange.
// Append-only; deletable only in bulk by owner scope.
type ChatHistory struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Owner     string    `gorm:"type:varchar(200);index;not null" json:"-"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Response  string    `gorm:"type:text;not null" json:"response"`
	CreatedAt time.Time `json:"created_at"`
}
