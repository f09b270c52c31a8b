package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lecats_backend/internals/constants"
	"lecats_backend/internals/features/users/user/controller"
	authMiddleware "lecats_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewUserController(db)

	users := app.Group("/api/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: Admin access required", constants.RoleAdmin),
	)
	users.Get("/", ctrl.List)
	users.Post("/", ctrl.Create)
	users.Put("/:id", ctrl.Update)
	users.Delete("/:id", ctrl.Delete)
}
