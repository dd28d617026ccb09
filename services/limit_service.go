package services

import (
	"context"
	"errors"

	"github.com/Nyuneihlaing/water-project/models"

	"gorm.io/gorm"
)

// LimitService guards the single daily-budget row. Writes are upserts
// so there is never more than one row.
type LimitService struct{ db *gorm.DB }

func NewLimitService(db *gorm.DB) *LimitService { return &LimitService{db: db} }

// Get returns the configured limit, or 0 when none has been set yet.
func (s *LimitService) Get(ctx context.Context) (float64, error) {
	var wl models.WaterLimit
	err := s.db.WithContext(ctx).First(&wl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return wl.Limit, nil
}

func (s *LimitService) Set(ctx context.Context, limit float64) (float64, error) {
	var wl models.WaterLimit
	err := s.db.WithContext(ctx).First(&wl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		wl = models.WaterLimit{Limit: limit}
		if err := s.db.WithContext(ctx).Create(&wl).Error; err != nil {
			return 0, err
		}
		return wl.Limit, nil
	}
	if err != nil {
		return 0, err
	}

	wl.Limit = limit
	if err := s.db.WithContext(ctx).Save(&wl).Error; err != nil {
		return 0, err
	}
	return wl.Limit, nil
}
