package storeController

import (
	"log"

	"storerate/database"
	"storerate/middleware"
	"storerate/models"
	"storerate/services"

	"github.com/gofiber/fiber/v2"
)

// storeWithRating is the listing payload: the store plus its computed
// average. averageRating is null until the store has at least one rating.
type storeWithRating struct {
	ID            uint     `json:"id"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Address       string   `json:"address"`
	OwnerID       uint     `json:"ownerId"`
	AverageRating *float64 `json:"averageRating"`
	RatingCount   int64    `json:"ratingCount"`
}

func buildStoreListing(stores []models.Store) ([]storeWithRating, error) {
	db := database.Database.Db

	listing := make([]storeWithRating, 0, len(stores))
	for _, s := range stores {
		avg, count, err := services.SummaryForStore(db, s.ID)
		if err != nil {
			return nil, err
		}

		item := storeWithRating{
			ID:          s.ID,
			Name:        s.Name,
			Email:       s.Email,
			Address:     s.Address,
			OwnerID:     s.OwnerID,
			RatingCount: count,
		}
		if count > 0 {
			item.AverageRating = &avg
		}
		listing = append(listing, item)
	}
	return listing, nil
}

// ListStores returns every store with its computed average rating.
// An optional ?q= filters by name or address.
func ListStores(c *fiber.Ctx) error {
	search := c.Query("q")

	db := database.Database.Db
	query := db.Where("is_deleted = false")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR address LIKE ?", like, like)
	}

	var stores []models.Store
	if err := query.Order("name ASC").Find(&stores).Error; err != nil {
		log.Printf("Error fetching stores: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stores!", nil)
	}

	listing, err := buildStoreListing(stores)
	if err != nil {
		log.Printf("Error computing store averages: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stores!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store list.", fiber.Map{
		"stores": listing,
	})
}
