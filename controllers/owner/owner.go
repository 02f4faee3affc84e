package ownerController

import (
	"errors"
	"log"

	"storerate/database"
	"storerate/middleware"
	"storerate/models"
	"storerate/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Dashboard returns the caller's store, its pooled average rating and the
// list of ratings it received, with each rater's name and email.
func Dashboard(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var store models.Store
	err := db.Where("owner_id = ? AND is_deleted = false", identity.UserID).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "No store registered for this account!", nil)
		}
		log.Printf("Error fetching owner store: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	avg, hasRatings, err := services.AverageForOwner(db, identity.UserID)
	if err != nil {
		log.Printf("Error computing owner average: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	var ratings []models.Rating
	if err := db.Where("store_id = ?", store.ID).
		Preload("User").
		Order("updated_at DESC").
		Find(&ratings).Error; err != nil {
		log.Printf("Error fetching store ratings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	type ratingRow struct {
		UserID uint   `json:"userId"`
		Name   string `json:"name"`
		Email  string `json:"email"`
		Rating int    `json:"rating"`
	}
	rows := make([]ratingRow, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, ratingRow{
			UserID: r.UserID,
			Name:   r.User.Name,
			Email:  r.User.Email,
			Rating: r.Value,
		})
	}

	var avgValue interface{}
	if hasRatings {
		avgValue = avg
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Owner dashboard.", fiber.Map{
		"store":         store,
		"averageRating": avgValue,
		"ratings":       rows,
	})
}
