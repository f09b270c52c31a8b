package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lecats_backend/internals/constants"
	"lecats_backend/internals/features/reports/report/controller"
	authMiddleware "lecats_backend/internals/middlewares/auth"
)

func ReportRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewReportController(db)

	reports := app.Group("/api/reports",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: Admin access required", constants.RoleAdmin),
	)
	reports.Post("/generate", ctrl.Generate)
	reports.Post("/generate-pdf", ctrl.GeneratePDF)
}
