package services

import (
	"testing"

	"storerate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Store{}, &models.Rating{}))
	return db
}

func seedStore(t *testing.T, db *gorm.DB, ownerID uint, name string) models.Store {
	store := models.Store{Name: name, OwnerID: ownerID}
	require.NoError(t, db.Create(&store).Error)
	return store
}

func seedRating(t *testing.T, db *gorm.DB, userID, storeID uint, value int) {
	require.NoError(t, db.Create(&models.Rating{UserID: userID, StoreID: storeID, Value: value}).Error)
}

func TestAverageForStore_NoRatings(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, 1, "Corner Shop")

	avg, ok, err := AverageForStore(db, store.ID)
	require.NoError(t, err)
	assert.False(t, ok, "store without ratings must report no data")
	assert.Equal(t, 0.0, avg)
}

func TestAverageForStore_Mean(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, 1, "Corner Shop")

	seedRating(t, db, 10, store.ID, 3)
	seedRating(t, db, 11, store.ID, 5)

	avg, ok, err := AverageForStore(db, store.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)

	seedRating(t, db, 12, store.ID, 4)

	avg, ok, err = AverageForStore(db, store.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestAverageForOwner_PoolsRatings(t *testing.T) {
	db := setupTestDB(t)

	const ownerID = 7
	first := seedStore(t, db, ownerID, "First Store")
	second := seedStore(t, db, ownerID, "Second Store")

	seedRating(t, db, 20, first.ID, 5)
	seedRating(t, db, 21, second.ID, 1)
	seedRating(t, db, 22, second.ID, 1)

	avg, ok, err := AverageForOwner(db, ownerID)
	require.NoError(t, err)
	assert.True(t, ok)

	// Pooled mean (5+1+1)/3, not the average of per-store averages (3.0)
	assert.InDelta(t, 7.0/3.0, avg, 1e-9)
	assert.Greater(t, 3.0, avg)
}

func TestAverageForOwner_NoStores(t *testing.T) {
	db := setupTestDB(t)

	avg, ok, err := AverageForOwner(db, 99)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0.0, avg)
}

func TestSummaryForStore(t *testing.T) {
	db := setupTestDB(t)
	store := seedStore(t, db, 1, "Corner Shop")

	avg, count, err := SummaryForStore(db, store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, 0.0, avg)

	seedRating(t, db, 30, store.ID, 2)
	seedRating(t, db, 31, store.ID, 4)

	avg, count, err = SummaryForStore(db, store.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.InDelta(t, 3.0, avg, 1e-9)
}
