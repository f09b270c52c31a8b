// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	academicsRoute "lecats_backend/internals/features/academics/route"
	attendanceRoute "lecats_backend/internals/features/attendance/attendance/route"
	reportRoute "lecats_backend/internals/features/reports/report/route"
	scheduleRoute "lecats_backend/internals/features/timetable/schedule/route"
	authRoute "lecats_backend/internals/features/users/auth/route"
	userRoute "lecats_backend/internals/features/users/user/route"
	"lecats_backend/internals/helpers/storage"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, store storage.BlobStore) {
	startTime = time.Now()

	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	userRoute.UserRoutes(app, db)

	log.Println("[INFO] Setting up AcademicsRoutes...")
	academicsRoute.AcademicsRoutes(app, db)

	log.Println("[INFO] Setting up ScheduleRoutes...")
	scheduleRoute.ScheduleRoutes(app, db)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	attendanceRoute.AttendanceRoutes(app, db, store)

	log.Println("[INFO] Setting up ReportRoutes...")
	reportRoute.ReportRoutes(app, db)
}
