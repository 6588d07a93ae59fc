package models

import "time"

type Event struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	Owner       string    `gorm:"type:varchar(200);index;not null" json:"-"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	EventDate   time.Time `gorm:"not null" json:"date"`
	EventTime   string    `gorm:"type:varchar(10)" json:"time"`
	EventType   string    `gorm:"type:varchar(50);default:'personal'" json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}
