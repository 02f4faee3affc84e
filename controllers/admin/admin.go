package adminController

import (
	"errors"
	"log"

	"storerate/config"
	"storerate/database"
	"storerate/middleware"
	"storerate/models"
	"storerate/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Dashboard returns the platform totals shown on the admin landing page.
func Dashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalStores, totalRatings int64
	if err := db.Model(&models.User{}).Where("is_deleted = false").Count(&totalUsers).Error; err != nil {
		log.Printf("Error counting users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}
	if err := db.Model(&models.Store{}).Where("is_deleted = false").Count(&totalStores).Error; err != nil {
		log.Printf("Error counting stores: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}
	if err := db.Model(&models.Rating{}).Count(&totalRatings).Error; err != nil {
		log.Printf("Error counting ratings: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch dashboard!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin dashboard.", fiber.Map{
		"total_users":   totalUsers,
		"total_stores":  totalStores,
		"total_ratings": totalRatings,
	})
}

// UserList returns every active account, passwords stripped by the model's
// JSON mapping.
func UserList(c *fiber.Ctx) error {
	var users []models.User
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("id ASC").
		Find(&users).Error; err != nil {
		log.Printf("Error fetching user list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch user list!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User list.", fiber.Map{
		"users": users,
	})
}

// StoreList returns every store with its computed average rating.
func StoreList(c *fiber.Ctx) error {
	db := database.Database.Db

	var stores []models.Store
	if err := db.Where("is_deleted = false").Order("id ASC").Find(&stores).Error; err != nil {
		log.Printf("Error fetching store list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch store list!", nil)
	}

	type storeRow struct {
		models.Store
		AverageRating *float64 `json:"averageRating"`
	}
	rows := make([]storeRow, 0, len(stores))
	for _, s := range stores {
		row := storeRow{Store: s}
		avg, hasRatings, err := services.AverageForStore(db, s.ID)
		if err != nil {
			log.Printf("Error computing store average: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch store list!", nil)
		}
		if hasRatings {
			row.AverageRating = &avg
		}
		rows = append(rows, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Store list.", fiber.Map{
		"stores": rows,
	})
}

// RatingList returns the full rating collection with rater and store names.
func RatingList(c *fiber.Ctx) error {
	var ratings []models.Rating
	if err := database.Database.Db.
		Preload("User").
		Preload("Store").
		Order("updated_at DESC").
		Find(&ratings).Error; err != nil {
		log.Printf("Error fetching rating list: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch rating list!", nil)
	}

	type ratingRow struct {
		ID        uint   `json:"id"`
		UserID    uint   `json:"userId"`
		UserName  string `json:"userName"`
		StoreID   uint   `json:"storeId"`
		StoreName string `json:"storeName"`
		Rating    int    `json:"rating"`
	}
	rows := make([]ratingRow, 0, len(ratings))
	for _, r := range ratings {
		rows = append(rows, ratingRow{
			ID:        r.ID,
			UserID:    r.UserID,
			UserName:  r.User.Name,
			StoreID:   r.StoreID,
			StoreName: r.Store.Name,
			Rating:    r.Value,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rating list.", fiber.Map{
		"ratings": rows,
	})
}

// CreateUser registers an account with an explicit role. Role is fixed at
// creation; there is no role-change flow.
func CreateUser(c *fiber.Ctx) error {
	reqData := new(struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Address  string `json:"address"`
		Role     string `json:"role"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	role := models.Role(reqData.Role)
	if !role.Valid() {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"role": "Role must be one of admin, store_owner or normal!",
		})
	}

	db := database.Database.Db

	// Check if email already exists
	if err := db.Where("email = ?", reqData.Email).First(&models.User{}).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process your request!", nil)
	}

	newUser := models.User{
		Name:     reqData.Name,
		Email:    reqData.Email,
		Password: string(hashedPassword),
		Address:  reqData.Address,
		Role:     role,
	}

	if err := db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email is already registered!", nil)
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User created successfully.", newUser)
}

// CreateStore registers a store bound to an existing store_owner account.
func CreateStore(c *fiber.Ctx) error {
	reqData := new(struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Address string `json:"address"`
		OwnerID uint   `json:"ownerId"`
	})

	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	db := database.Database.Db

	var owner models.User
	if err := db.Where("id = ? AND is_deleted = false", reqData.OwnerID).First(&owner).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Owner account not found!", nil)
	}
	if owner.Role != models.RoleStoreOwner {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"ownerId": "Owner must have the store_owner role!",
		})
	}

	newStore := models.Store{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Address: reqData.Address,
		OwnerID: owner.ID,
	}

	if err := db.Create(&newStore).Error; err != nil {
		log.Printf("Error saving store to database: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create store!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Store created successfully.", newStore)
}

// DeleteUser soft-deletes an account along with everything it anchors:
// the ratings it authored, and for store_owner accounts the owned stores
// plus the ratings those stores received.
func DeleteUser(c *fiber.Ctx) error {
	userId, err := c.ParamsInt("id")
	if err != nil || userId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		log.Printf("Error fetching user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	user.IsDeleted = true
	if err := db.Save(&user).Error; err != nil {
		log.Printf("Error deleting user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	if err := db.Where("user_id = ?", user.ID).Delete(&models.Rating{}).Error; err != nil {
		log.Printf("Error cascading rating delete: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}

	// A store may not outlive its owner: retire the stores too, and the
	// ratings they received.
	var storeIDs []uint
	if err := db.Model(&models.Store{}).
		Where("owner_id = ? AND is_deleted = false", user.ID).
		Pluck("id", &storeIDs).Error; err != nil {
		log.Printf("Error fetching owned stores: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
	}
	if len(storeIDs) > 0 {
		if err := db.Model(&models.Store{}).
			Where("id IN ?", storeIDs).
			Update("is_deleted", true).Error; err != nil {
			log.Printf("Error cascading store delete: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
		}
		if err := db.Where("store_id IN ?", storeIDs).Delete(&models.Rating{}).Error; err != nil {
			log.Printf("Error cascading rating delete: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete user!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User deleted successfully.", nil)
}
