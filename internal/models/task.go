package models

import "time"

type Task struct {
	ID        uint64     `gorm:"primarykey" json:"id"`
	Owner     string     `gorm:"type:varchar(200);index;not null" json:"-"`
	Text      string     `gorm:"type:varchar(500);not null" json:"text"`
	Completed bool       `gorm:"default:false" json:"completed"`
	Priority  string     `gorm:"type:varchar(20);default:'medium'" json:"priority"`
	DueDate   *time.Time `json:"due_date"`
	CreatedAt time.Time  `json:"created_at"`
}
