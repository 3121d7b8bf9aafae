package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestIsConnectedReflectsGlobalConnection(t *testing.T) {
	t.Cleanup(func() { SetDB(nil) })

	SetDB(nil)
	assert.False(t, IsConnected())

	db := openTestDB(t)
	SetDB(db)
	assert.True(t, IsConnected())
	assert.Same(t, db, GetDB())

	// A closed pool fails the ping and readiness goes back down.
	require.NoError(t, Close(db))
	assert.False(t, IsConnected())
}

func TestSetDBReplacesConnection(t *testing.T) {
	t.Cleanup(func() { SetDB(nil) })

	primeiro := openTestDB(t)
	segundo := openTestDB(t)

	SetDB(primeiro)
	SetDB(segundo)
	assert.Same(t, segundo, GetDB())
}
