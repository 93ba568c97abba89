// Package dbtest opens throwaway gorm databases for repository tests.
//
// The database is an in-memory sqlite file behind the same gorm.Config the
// postgres client uses (TranslateError on), so repository code runs
// unchanged. sqlite stores numeric columns with number affinity and drops
// trailing zeros, compare decimals with AssertDecimal.
package dbtest

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// Open returns a migrated database that is closed when t finishes.
func Open(t testing.TB, models ...interface{}) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// :memory: живет в пределах одного соединения
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models...))
	return db
}

// AssertDecimal compares two decimal strings by value.
func AssertDecimal(t testing.TB, want, got string) {
	t.Helper()
	w, err := decimal.NewFromString(want)
	require.NoError(t, err)
	g, err := decimal.NewFromString(got)
	require.NoError(t, err, "not a decimal: %q", got)
	assert.True(t, w.Equal(g), "want %s, got %s", want, got)
}
