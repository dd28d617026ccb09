package services

import (
	"testing"
	"time"

	"github.com/Nyuneihlaing/water-project/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func entry(activity string, minutes float64) EntryInput {
	return EntryInput{Activity: activity, Minutes: &minutes}
}

func mustParseDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// one connection, or each pooled conn would see its own empty
	// in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.WaterActivity{},
		&models.UsageDay{},
		&models.UsageEntry{},
		&models.WaterLimit{},
	))
	return db
}
