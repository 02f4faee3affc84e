package adminRoutes

import (
	adminController "storerate/controllers/admin"
	"storerate/middleware"
	adminValidator "storerate/validators/admin"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionAdminDashboard), adminController.Dashboard)

	adminGroup.Get("/users", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionManageUsers), adminController.UserList)
	adminGroup.Post("/users", adminValidator.CreateUser(), middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionManageUsers), adminController.CreateUser)
	adminGroup.Delete("/users/:id", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionManageUsers), adminController.DeleteUser)

	adminGroup.Get("/stores", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionManageStores), adminController.StoreList)
	adminGroup.Post("/stores", adminValidator.CreateStore(), middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionManageStores), adminController.CreateStore)

	adminGroup.Get("/ratings", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionViewAllRatings), adminController.RatingList)
}
