package services

import (
	"context"
	"testing"

	"github.com/Nyuneihlaing/water-project/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimitDefaultsToZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewLimitService(db)

	limit, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, limit)
}

func TestLimitUpsertKeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	svc := NewLimitService(db)
	ctx := context.Background()

	limit, err := svc.Set(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, limit)

	limit, err = svc.Set(ctx, 150)
	require.NoError(t, err)
	assert.Equal(t, 150.0, limit)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 150.0, got)

	var count int64
	require.NoError(t, db.Model(&models.WaterLimit{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
