package models

import "time"

// WaterActivity is a catalog entry: a named activity and how many liters
// per minute it consumes. The name doubles as the business key; usage
// entries reference it by name, not by id.
type WaterActivity struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Activity           string    `gorm:"uniqueIndex;not null" json:"activity"`
	UsageRatePerMinute float64   `gorm:"not null" json:"usageRatePerMinute"` // Liters per minute
	CreatedAt          time.Time `json:"-"`
	UpdatedAt          time.Time `json:"-"`
}
