package models

import "time"

// HealthLog holds one row per (owner, calendar date), created lazily on
// the first touch of "today".
type HealthLog struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Owner     string    `gorm:"type:varchar(200);index:idx_health_owner_date,unique;not null" json:"-"`
	LogDate   string    `gorm:"type:varchar(10);index:idx_health_owner_date,unique;not null" json:"date"`
	Steps     int       `gorm:"default:0" json:"steps"`
	Water     float64   `gorm:"default:0" json:"water"`
	SleepHrs  float64   `gorm:"default:0" json:"sleep"`
	Calories  int       `gorm:"default:0" json:"calories"`
	WeightKg  *float64  `json:"weight"`
	HeartRate *int      `json:"heart_rate"`
	CreatedAt time.Time `json:"created_at"`
}
