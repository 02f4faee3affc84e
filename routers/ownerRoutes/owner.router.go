package ownerRoutes

import (
	ownerController "storerate/controllers/owner"
	"storerate/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupOwnerRoutes(app *fiber.App) {
	ownerGroup := app.Group("/owner")

	ownerGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireAction(middleware.ActionOwnerDashboard), ownerController.Dashboard)
}
