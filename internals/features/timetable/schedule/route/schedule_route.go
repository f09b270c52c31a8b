package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lecats_backend/internals/constants"
	"lecats_backend/internals/features/timetable/schedule/controller"
	authMiddleware "lecats_backend/internals/middlewares/auth"
)

func ScheduleRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := controller.NewScheduleController(db)

	hod := app.Group("/api/hod",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: HOD access required", constants.RoleHOD),
	)
	hod.Get("/data-for-timetable", ctrl.DataForTimetable)
	hod.Get("/schedules", ctrl.List)
	hod.Post("/schedules", ctrl.Create)
	hod.Delete("/schedules/:id", ctrl.Delete)
	hod.Post("/special-schedules", ctrl.CreateSpecial)
	hod.Get("/special-schedules", ctrl.ListSpecial)
}
