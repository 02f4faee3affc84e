package ratingController

import (
	"errors"
	"log"

	"storerate/database"
	"storerate/middleware"
	"storerate/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SubmitRating creates or overwrites the caller's rating for a store.
// One row per (user, store): a resubmission updates value and updated_at,
// never inserts a duplicate.
func SubmitRating(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	storeId, err := c.ParamsInt("id")
	if err != nil || storeId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid store id!", nil)
	}

	reqData := new(struct {
		UserID uint `json:"userId"`
		Rating int  `json:"rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// The client may echo its own user id; it must match the token.
	if reqData.UserID == 0 {
		reqData.UserID = identity.UserID
	}
	if authzErr := middleware.Authorize(identity, middleware.ActionRateStore, middleware.Resource{OwnerID: reqData.UserID}); authzErr != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only submit your own ratings!", fiber.Map{
			"reason": authzErr.Reason,
		})
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"rating": "Rating must be between 1 and 5!",
		})
	}

	db := database.Database.Db

	// Check referenced entities exist
	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.UserID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}
	var store models.Store
	if err := db.Where("id = ? AND is_deleted = false", storeId).First(&store).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Store not found!", nil)
	}

	existed := true
	var existing models.Rating
	if err := db.Where("user_id = ? AND store_id = ?", reqData.UserID, storeId).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error fetching existing rating: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
		}
		existed = false
	}

	// The unique index on (user_id, store_id) serializes concurrent
	// submits; the conflict clause turns the loser into an update so the
	// last committed write wins.
	rating := models.Rating{
		UserID:  reqData.UserID,
		StoreID: store.ID,
		Value:   reqData.Rating,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating).Error
	if err != nil {
		log.Printf("Error saving rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}

	// Re-read so the response carries the stored row, not the insert attempt
	if err := db.Where("user_id = ? AND store_id = ?", reqData.UserID, storeId).First(&rating).Error; err != nil {
		log.Printf("Error re-reading rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit rating!", nil)
	}

	if existed {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating updated successfully!", rating)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Rating submitted successfully!", rating)
}

// GetUserRating returns the caller's rating for a store, or null when the
// caller has not rated it yet. The client uses this to decide between the
// submit and modify states.
func GetUserRating(c *fiber.Ctx) error {
	identity, ok := middleware.IdentityFromCtx(c)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	storeId, err := c.ParamsInt("id")
	if err != nil || storeId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid store id!", nil)
	}

	if authzErr := middleware.Authorize(identity, middleware.ActionViewOwnRating, middleware.Resource{}); authzErr != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You do not have permission to access this resource!", fiber.Map{
			"reason": authzErr.Reason,
		})
	}

	var rating models.Rating
	err = database.Database.Db.
		Where("user_id = ? AND store_id = ?", identity.UserID, storeId).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusOK, true, "No rating yet.", fiber.Map{
				"userRating": nil,
			})
		}
		log.Printf("Error fetching rating: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating fetched.", fiber.Map{
		"userRating": rating,
	})
}
