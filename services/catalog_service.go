package services

import (
	"context"
	"errors"

	"github.com/Nyuneihlaing/water-project/models"

	"gorm.io/gorm"
)

var (
	ErrActivityNotFound  = errors.New("activity not found")
	ErrDuplicateActivity = errors.New("an activity with that name already exists")
)

// CatalogService manages the water activity catalog. Usage entries refer
// to activities by name only, so renames and deletes here have to be
// pushed into the ledger by hand.
type CatalogService struct{ db *gorm.DB }

func NewCatalogService(db *gorm.DB) *CatalogService { return &CatalogService{db: db} }

func (s *CatalogService) List(ctx context.Context) ([]models.WaterActivity, error) {
	var activities []models.WaterActivity
	err := s.db.WithContext(ctx).Find(&activities).Error
	return activities, err
}

func (s *CatalogService) Add(ctx context.Context, name string, rate float64) (*models.WaterActivity, error) {
	var existing models.WaterActivity
	err := s.db.WithContext(ctx).Where("activity = ?", name).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateActivity
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	a := models.WaterActivity{Activity: name, UsageRatePerMinute: rate}
	if err := s.db.WithContext(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// Update renames an activity and/or changes its rate. A rename rewrites
// every historical usage entry still carrying the old name (exact string
// match), in the same transaction, so the ledger keeps following the
// activity.
func (s *CatalogService) Update(ctx context.Context, id uint, newName string, newRate float64) (*models.WaterActivity, error) {
	var a models.WaterActivity
	err := s.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrActivityNotFound
	}
	if err != nil {
		return nil, err
	}

	var clash models.WaterActivity
	err = s.db.WithContext(ctx).Where("activity = ? AND id <> ?", newName, id).First(&clash).Error
	if err == nil {
		return nil, ErrDuplicateActivity
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	oldName := a.Activity
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		a.Activity = newName
		a.UsageRatePerMinute = newRate
		if err := tx.Save(&a).Error; err != nil {
			return err
		}
		if oldName != newName {
			return tx.Model(&models.UsageEntry{}).
				Where("activity = ?", oldName).
				Update("activity", newName).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// DeletePermanently removes the activity and cascades into the ledger:
// every entry logged under its name is deleted, and days left with no
// entries are deleted with them.
func (s *CatalogService) DeletePermanently(ctx context.Context, id uint) error {
	var a models.WaterActivity
	err := s.db.WithContext(ctx).First(&a, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrActivityNotFound
	}
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity = ?", a.Activity).Delete(&models.UsageEntry{}).Error; err != nil {
			return err
		}
		if err := tx.
			Where("NOT EXISTS (SELECT 1 FROM usage_entries WHERE usage_entries.day_id = usage_days.id)").
			Delete(&models.UsageDay{}).Error; err != nil {
			return err
		}
		return tx.Delete(&a).Error
	})
}
