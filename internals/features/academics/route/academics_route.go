package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lecats_backend/internals/constants"
	deptController "lecats_backend/internals/features/academics/departments/controller"
	programController "lecats_backend/internals/features/academics/programs/controller"
	semesterController "lecats_backend/internals/features/academics/semesters/controller"
	subjectController "lecats_backend/internals/features/academics/subjects/controller"
	authMiddleware "lecats_backend/internals/middlewares/auth"
)

// AcademicsRoutes: katalog publik read-only + manajemen Admin di path yang
// sama (beda method + gate).
func AcademicsRoutes(app *fiber.App, db *gorm.DB) {
	deptCtl := deptController.NewDepartmentController(db)
	programCtl := programController.NewProgramController(db)
	subjectCtl := subjectController.NewSubjectController(db)
	semesterCtl := semesterController.NewSemesterController(db)

	api := app.Group("/api")

	// katalog publik (tanpa auth)
	api.Get("/departments", deptCtl.List)
	api.Get("/programs", programCtl.List)
	api.Get("/subjects", subjectCtl.List)
	api.Get("/semesters", semesterCtl.List)
	api.Get("/semesters/active", semesterCtl.GetActive)

	admin := api.Group("",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Forbidden: Admin access required", constants.RoleAdmin),
	)

	admin.Post("/departments", deptCtl.Create)
	admin.Put("/departments/:id", deptCtl.Update)
	admin.Delete("/departments/:id", deptCtl.Delete)

	admin.Post("/programs", programCtl.Create)
	admin.Put("/programs/:id", programCtl.Update)
	admin.Delete("/programs/:id", programCtl.Delete)

	admin.Post("/subjects", subjectCtl.Create)
	admin.Put("/subjects/:id", subjectCtl.Update)
	admin.Delete("/subjects/:id", subjectCtl.Delete)

	admin.Post("/semesters", semesterCtl.Create)
	admin.Put("/semesters/:id", semesterCtl.Update)
	admin.Delete("/semesters/:id", semesterCtl.Delete)
	admin.Post("/semesters/activate/:id", semesterCtl.Activate)
	admin.Post("/semesters/deactivate", semesterCtl.Deactivate)
}
