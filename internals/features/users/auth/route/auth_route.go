// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lecats_backend/internals/features/users/auth/controller"
	middlewares "lecats_backend/internals/middlewares"
	authMiddleware "lecats_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewAuthController(db)

	auth := app.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
