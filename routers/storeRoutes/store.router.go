package storeRoutes

import (
	ratingController "storerate/controllers/rating"
	storeController "storerate/controllers/store"
	"storerate/middleware"
	ratingValidator "storerate/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupStoreRoutes(app *fiber.App) {
	storeGroup := app.Group("/stores")

	// Browsing is open to every authenticated role
	storeGroup.Get("/", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionListStores), storeController.ListStores)

	// Ratings belong to normal accounts only
	storeGroup.Post("/:id/rating", ratingValidator.SubmitRating(), middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionRateStore), ratingController.SubmitRating)
	storeGroup.Get("/:id/rating", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionViewOwnRating), ratingController.GetUserRating)
}
