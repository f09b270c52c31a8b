package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lecats_backend/internals/constants"
	"lecats_backend/internals/features/attendance/attendance/controller"
	"lecats_backend/internals/helpers/storage"
	authMiddleware "lecats_backend/internals/middlewares/auth"
)

func AttendanceRoutes(app *fiber.App, db *gorm.DB, store storage.BlobStore) {
	crCtl := controller.NewCRAttendanceController(db)
	lecturerCtl := controller.NewLecturerAttendanceController(db, store)
	hodCtl := controller.NewHODAttendanceController(db)
	fileCtl := controller.NewFileController(store)

	cr := app.Group("/api",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: CR access required", constants.RoleCR),
	)
	cr.Post("/attendance", crCtl.Submit)
	cr.Get("/cr/todays-schedule", crCtl.TodaysSchedule)

	lecturer := app.Group("/api/lecturer",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: Lecturer access required", constants.RoleLecturer),
	)
	lecturer.Get("/dashboard-data", lecturerCtl.DashboardData)
	lecturer.Post("/attendance/:id/excuse", lecturerCtl.UploadExcuse)

	hod := app.Group("/api/hod/attendance",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: HOD access required", constants.RoleHOD),
	)
	hod.Get("/pending", hodCtl.Pending)
	hod.Post("/verify/:id", hodCtl.Verify)

	// download file excuse: cukup login, lintas role (HOD & lecturer sama-sama
	// butuh melihat lampiran)
	uploads := app.Group("/uploads", authMiddleware.AuthMiddleware(db))
	uploads.Get("/:filename", fileCtl.Download)
}
