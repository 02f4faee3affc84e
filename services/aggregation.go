package services

import (
	"storerate/models"

	"gorm.io/gorm"
)

// Averages are computed on read, never cached. A zero count means the store
// has no ratings, so "no data" never collapses into 0.

// SummaryForStore returns the arithmetic mean and the number of rating
// values for one store in a single query. The mean is 0 when count is 0.
func SummaryForStore(db *gorm.DB, storeID uint) (float64, int64, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := db.Model(&models.Rating{}).
		Where("store_id = ?", storeID).
		Select("AVG(value) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return 0, 0, err
	}
	if row.Count == 0 || row.Avg == nil {
		return 0, 0, nil
	}
	return *row.Avg, row.Count, nil
}

// AverageForStore reports the mean rating for one store. The second return
// value is false when no ratings exist.
func AverageForStore(db *gorm.DB, storeID uint) (float64, bool, error) {
	avg, count, err := SummaryForStore(db, storeID)
	if err != nil {
		return 0, false, err
	}
	return avg, count > 0, nil
}

// AverageForOwner pools every rating across the owner's stores before
// averaging, so a store with more ratings weighs proportionally more.
// This is deliberately not an average of per-store averages.
func AverageForOwner(db *gorm.DB, ownerID uint) (float64, bool, error) {
	var storeIDs []uint
	err := db.Model(&models.Store{}).
		Where("owner_id = ? AND is_deleted = false", ownerID).
		Pluck("id", &storeIDs).Error
	if err != nil {
		return 0, false, err
	}
	if len(storeIDs) == 0 {
		return 0, false, nil
	}

	var row struct {
		Avg   *float64
		Count int64
	}
	err = db.Model(&models.Rating{}).
		Where("store_id IN ?", storeIDs).
		Select("AVG(value) AS avg, COUNT(*) AS count").
		Scan(&row).Error
	if err != nil {
		return 0, false, err
	}
	if row.Count == 0 || row.Avg == nil {
		return 0, false, nil
	}
	return *row.Avg, true, nil
}
