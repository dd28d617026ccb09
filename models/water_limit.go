package models

import "time"

// WaterLimit is the daily liter budget. At most one row exists; writes
// go through upsert semantics in the limit service.
type WaterLimit struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	Limit     float64   `gorm:"not null" json:"limit"`
	UpdatedAt time.Time `json:"-"`
}
