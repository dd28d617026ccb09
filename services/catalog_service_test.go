package services

import (
	"context"
	"testing"

	"github.com/Nyuneihlaing/water-project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAddAndList(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	a, err := svc.Add(ctx, "Showering", 9)
	require.NoError(t, err)
	assert.NotZero(t, a.ID)
	assert.Equal(t, "Showering", a.Activity)
	assert.Equal(t, 9.0, a.UsageRatePerMinute)

	_, err = svc.Add(ctx, "Washing dishes", 6)
	require.NoError(t, err)

	activities, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestCatalogAddDuplicateName(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	_, err := svc.Add(ctx, "Showering", 9)
	require.NoError(t, err)

	_, err = svc.Add(ctx, "Showering", 12)
	assert.ErrorIs(t, err, ErrDuplicateActivity)
}

func TestCatalogUpdateUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	_, err := svc.Update(context.Background(), 42, "Shower", 9)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}

func TestCatalogUpdateNameConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	a, err := svc.Add(ctx, "Showering", 9)
	require.NoError(t, err)
	_, err = svc.Add(ctx, "Washing dishes", 6)
	require.NoError(t, err)

	_, err = svc.Update(ctx, a.ID, "Washing dishes", 9)
	assert.ErrorIs(t, err, ErrDuplicateActivity)

	// renaming to its own current name is not a conflict
	updated, err := svc.Update(ctx, a.ID, "Showering", 11)
	require.NoError(t, err)
	assert.Equal(t, 11.0, updated.UsageRatePerMinute)
}

func TestCatalogRenamePropagatesIntoLedger(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	usage := NewUsageService(db)
	agg := NewAggregationService(db)
	ctx := context.Background()

	a, err := catalog.Add(ctx, "Showering", 9)
	require.NoError(t, err)
	_, err = catalog.Add(ctx, "Washing dishes", 6)
	require.NoError(t, err)

	day := mustParseDate(t, "2024-01-01")
	_, err = usage.SaveDay(ctx, day, []EntryInput{
		entry("Showering", 10),
		entry("Washing dishes", 5),
	})
	require.NoError(t, err)
	_, err = usage.SaveDay(ctx, mustParseDate(t, "2024-01-02"), []EntryInput{
		entry("Showering", 20),
	})
	require.NoError(t, err)

	_, err = catalog.Update(ctx, a.ID, "Shower", 9)
	require.NoError(t, err)

	summaries, err := agg.AggregateAllTime(ctx)
	require.NoError(t, err)

	byName := map[string]ActivitySummary{}
	for _, s := range summaries {
		byName[s.Activity] = s
	}
	assert.NotContains(t, byName, "Showering")
	assert.Equal(t, 30.0, byName["Shower"].TotalMinutes)
	assert.Equal(t, 270.0, byName["Shower"].TotalUsageInLiters)
	assert.Equal(t, 5.0, byName["Washing dishes"].TotalMinutes)
}

func TestCatalogDeletePermanentlyCascades(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	usage := NewUsageService(db)
	agg := NewAggregationService(db)
	ctx := context.Background()

	a, err := catalog.Add(ctx, "Showering", 9)
	require.NoError(t, err)
	_, err = catalog.Add(ctx, "Washing dishes", 6)
	require.NoError(t, err)

	mixed := mustParseDate(t, "2024-01-01")
	only := mustParseDate(t, "2024-01-02")
	_, err = usage.SaveDay(ctx, mixed, []EntryInput{
		entry("Showering", 10),
		entry("Washing dishes", 5),
	})
	require.NoError(t, err)
	_, err = usage.SaveDay(ctx, only, []EntryInput{
		entry("Showering", 15),
	})
	require.NoError(t, err)

	require.NoError(t, catalog.DeletePermanently(ctx, a.ID))

	// mixed day survives with the other activity's entry
	entries, err := agg.HistoryForDay(ctx, mixed)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Washing dishes", entries[0].Activity)

	// the day that only held the deleted activity is gone entirely
	_, err = agg.HistoryForDay(ctx, only)
	assert.ErrorIs(t, err, ErrDayNotFound)

	var count int64
	require.NoError(t, db.Model(&models.WaterActivity{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCatalogDeletePermanentlyUnknownID(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	err := svc.DeletePermanently(context.Background(), 42)
	assert.ErrorIs(t, err, ErrActivityNotFound)
}
