package services

import (
	"context"
	"errors"
	"time"

	"github.com/Nyuneihlaing/water-project/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound   = errors.New("usage entry not found")
	ErrDayNotFound     = errors.New("no usage recorded for that date")
	ErrNoEntries       = errors.New("at least one usage entry is required")
	ErrMissingActivity = errors.New("every entry needs an activity")
	ErrMissingMinutes  = errors.New("every entry needs minutes")
	ErrNegativeMinutes = errors.New("minutes cannot be negative")
)

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}

// ParseDate accepts the two shapes clients send: plain YYYY-MM-DD from
// date pickers and a full RFC3339 timestamp from Date.toISOString().
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// EntryInput is one {activity, minutes} pair as posted by the client.
// Minutes is a pointer so an absent key is distinguishable from a
// logged zero minutes.
type EntryInput struct {
	Activity string   `json:"activity"`
	Minutes  *float64 `json:"minutes"`
}

// UsageService owns the usage ledger: per-day records of logged
// activities, plus the rate*minutes calculator.
type UsageService struct{ db *gorm.DB }

func NewUsageService(db *gorm.DB) *UsageService { return &UsageService{db: db} }

// Calculate looks up the activity's rate and multiplies. Read-only, no
// rounding.
func (s *UsageService) Calculate(ctx context.Context, activity string, minutes float64) (float64, error) {
	if minutes < 0 {
		return 0, ErrNegativeMinutes
	}
	var a models.WaterActivity
	err := s.db.WithContext(ctx).Where("activity = ?", activity).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrActivityNotFound
	}
	if err != nil {
		return 0, err
	}
	return a.UsageRatePerMinute * minutes, nil
}

// SaveDay appends entries to the record for date's calendar day,
// creating the day on first save. Every entry gets a fresh id.
func (s *UsageService) SaveDay(ctx context.Context, date time.Time, inputs []EntryInput) (*models.UsageDay, error) {
	if len(inputs) == 0 {
		return nil, ErrNoEntries
	}
	for _, in := range inputs {
		if in.Activity == "" {
			return nil, ErrMissingActivity
		}
		if in.Minutes == nil {
			return nil, ErrMissingMinutes
		}
		if *in.Minutes < 0 {
			return nil, ErrNegativeMinutes
		}
	}

	start := dayStartLocal(date)

	day := models.UsageDay{Date: start}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("date = ?", start).FirstOrCreate(&day).Error; err != nil {
			return err
		}
		entries := make([]models.UsageEntry, 0, len(inputs))
		for _, in := range inputs {
			entries = append(entries, models.UsageEntry{
				EntryID:  uuid.NewString(),
				DayID:    day.ID,
				Activity: in.Activity,
				Minutes:  *in.Minutes,
			})
		}
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Preload("Entries").First(&day, day.ID).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

// UpdateEntryMinutes changes one entry's minutes in place and returns
// the entry's full day. Identifier and activity name are untouched.
func (s *UsageService) UpdateEntryMinutes(ctx context.Context, entryID string, newMinutes float64) (*models.UsageDay, error) {
	if newMinutes < 0 {
		return nil, ErrNegativeMinutes
	}
	var entry models.UsageEntry
	err := s.db.WithContext(ctx).Where("entry_id = ?", entryID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&entry).Update("minutes", newMinutes).Error; err != nil {
		return nil, err
	}

	var day models.UsageDay
	if err := s.db.WithContext(ctx).Preload("Entries").First(&day, entry.DayID).Error; err != nil {
		return nil, err
	}
	return &day, nil
}

// DeleteEntry removes one entry. Deleting the last entry of a day
// removes the day itself, so the date disappears from history.
func (s *UsageService) DeleteEntry(ctx context.Context, entryID string) error {
	var entry models.UsageEntry
	err := s.db.WithContext(ctx).Where("entry_id = ?", entryID).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrEntryNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entry).Error; err != nil {
			return err
		}
		var remaining int64
		if err := tx.Model(&models.UsageEntry{}).Where("day_id = ?", entry.DayID).Count(&remaining).Error; err != nil {
			return err
		}
		if remaining == 0 {
			return tx.Delete(&models.UsageDay{}, entry.DayID).Error
		}
		return nil
	})
}
