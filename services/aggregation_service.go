package services

import (
	"context"
	"errors"
	"time"

	"github.com/Nyuneihlaing/water-project/models"

	"gorm.io/gorm"
)

// ActivitySummary is one row of the all-time aggregation: everything
// ever logged under one activity name.
type ActivitySummary struct {
	Activity           string  `json:"activity"`
	TotalMinutes       float64 `json:"totalMinutes"`
	TotalUsageInLiters float64 `json:"totalUsageInLiters"`
}

// AggregationService folds the usage ledger against the activity
// catalog. Rates are always the catalog's current rates; entries whose
// activity no longer exists contribute zero liters (their minutes still
// count).
type AggregationService struct{ db *gorm.DB }

func NewAggregationService(db *gorm.DB) *AggregationService { return &AggregationService{db: db} }

// rateTable loads the catalog once so a scan over N entries doesn't do
// N rate lookups.
func (s *AggregationService) rateTable(ctx context.Context) (map[string]float64, error) {
	var activities []models.WaterActivity
	if err := s.db.WithContext(ctx).Find(&activities).Error; err != nil {
		return nil, err
	}
	rates := make(map[string]float64, len(activities))
	for _, a := range activities {
		rates[a.Activity] = a.UsageRatePerMinute
	}
	return rates, nil
}

func (s *AggregationService) TotalForDay(ctx context.Context, date time.Time) (float64, error) {
	var day models.UsageDay
	err := s.db.WithContext(ctx).Preload("Entries").
		Where("date = ?", dayStartLocal(date)).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, ErrDayNotFound
	}
	if err != nil {
		return 0, err
	}

	rates, err := s.rateTable(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, e := range day.Entries {
		total += e.Minutes * rates[e.Activity]
	}
	return total, nil
}

// HistoryForDay returns the raw entries for a date, no rates applied.
func (s *AggregationService) HistoryForDay(ctx context.Context, date time.Time) ([]models.UsageEntry, error) {
	var day models.UsageDay
	err := s.db.WithContext(ctx).Preload("Entries").
		Where("date = ?", dayStartLocal(date)).
		First(&day).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDayNotFound
	}
	if err != nil {
		return nil, err
	}
	return day.Entries, nil
}

// AggregateAllTime scans the whole ledger and groups by activity name,
// case-sensitive. Order follows first appearance in the scan.
func (s *AggregationService) AggregateAllTime(ctx context.Context) ([]ActivitySummary, error) {
	var entries []models.UsageEntry
	if err := s.db.WithContext(ctx).Find(&entries).Error; err != nil {
		return nil, err
	}

	rates, err := s.rateTable(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*ActivitySummary)
	var order []string
	for _, e := range entries {
		sum := totals[e.Activity]
		if sum == nil {
			sum = &ActivitySummary{Activity: e.Activity}
			totals[e.Activity] = sum
			order = append(order, e.Activity)
		}
		sum.TotalMinutes += e.Minutes
		sum.TotalUsageInLiters += e.Minutes * rates[e.Activity]
	}

	out := make([]ActivitySummary, 0, len(order))
	for _, name := range order {
		out = append(out, *totals[name])
	}
	return out, nil
}

// AvailableDates lists every date with at least one entry, formatted
// YYYY-MM-DD, ascending so the client can treat it as a range.
func (s *AggregationService) AvailableDates(ctx context.Context) ([]string, error) {
	var days []models.UsageDay
	if err := s.db.WithContext(ctx).Order("date asc").Find(&days).Error; err != nil {
		return nil, err
	}
	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Date.Format("2006-01-02"))
	}
	return dates, nil
}
