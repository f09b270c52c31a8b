package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	semesterService "lecats_backend/internals/features/academics/semesters/service"
	"lecats_backend/internals/features/attendance/attendance/dto"
	"lecats_backend/internals/features/attendance/attendance/service"
	helper "lecats_backend/internals/helpers"
	"lecats_backend/internals/helpers/storage"
)

type LecturerAttendanceController struct {
	DB    *gorm.DB
	Store storage.BlobStore
}

func NewLecturerAttendanceController(db *gorm.DB, store storage.BlobStore) *LecturerAttendanceController {
	return &LecturerAttendanceController{DB: db, Store: store}
}

// DashboardData: semua slot lecturer di semester aktif, masing-masing dengan
// riwayat absensi (terbaru dulu) plus nama CR pengirim dan status excuse.
func (ctl *LecturerAttendanceController) DashboardData(c *fiber.Ctx) error {
	lecturerID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	active, err := semesterService.GetActive(ctl.DB)
	if err != nil {
		return err
	}

	type scheduleRow struct {
		ID          uuid.UUID
		SubjectName string
		DayOfWeek   string
		StartTime   datatypes.Time
		EndTime     datatypes.Time
	}
	var schedules []scheduleRow
	err = ctl.DB.Table("class_schedules").
		Select(`class_schedules.class_schedule_id AS id,
			subjects.subject_name AS subject_name,
			class_schedules.class_schedule_day_of_week AS day_of_week,
			class_schedules.class_schedule_start_time AS start_time,
			class_schedules.class_schedule_end_time AS end_time`).
		Joins("JOIN subjects ON subjects.subject_id = class_schedules.class_schedule_subject_id").
		Where("class_schedules.class_schedule_lecturer_id = ?", lecturerID).
		Where("class_schedules.class_schedule_semester_id = ?", active.SemesterID).
		Order("class_schedules.class_schedule_day_of_week, class_schedules.class_schedule_start_time").
		Scan(&schedules).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve schedules")
	}

	scheduleIDs := make([]uuid.UUID, 0, len(schedules))
	for _, s := range schedules {
		scheduleIDs = append(scheduleIDs, s.ID)
	}

	type historyRow struct {
		ID              uuid.UUID
		ClassScheduleID uuid.UUID
		Present         bool
		Timestamp       time.Time
		Verified        bool
		CRName          string
		ExcuseFile      *string
		ExcuseComment   *string
	}
	historyBySchedule := map[uuid.UUID][]dto.AttendanceHistoryItem{}
	if len(scheduleIDs) > 0 {
		var history []historyRow
		err = ctl.DB.Table("attendances").
			Select(`attendances.attendance_id AS id,
				attendances.attendance_class_schedule_id AS class_schedule_id,
				attendances.attendance_present AS present,
				attendances.attendance_timestamp AS timestamp,
				attendances.attendance_verified AS verified,
				users.user_full_name AS cr_name,
				attendances.attendance_excuse_file AS excuse_file,
				attendances.attendance_excuse_comment AS excuse_comment`).
			Joins("JOIN users ON users.user_id = attendances.attendance_cr_id").
			Where("attendances.attendance_class_schedule_id IN ?", scheduleIDs).
			Order("attendances.attendance_timestamp DESC").
			Scan(&history).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve attendance history")
		}
		for _, h := range history {
			historyBySchedule[h.ClassScheduleID] = append(historyBySchedule[h.ClassScheduleID], dto.AttendanceHistoryItem{
				ID:            h.ID,
				Present:       h.Present,
				Timestamp:     h.Timestamp,
				Verified:      h.Verified,
				CRName:        h.CRName,
				ExcuseFile:    h.ExcuseFile,
				ExcuseComment: h.ExcuseComment,
			})
		}
	}

	items := make([]dto.LecturerScheduleItem, 0, len(schedules))
	for _, s := range schedules {
		hist := historyBySchedule[s.ID]
		if hist == nil {
			hist = []dto.AttendanceHistoryItem{}
		}
		items = append(items, dto.LecturerScheduleItem{
			ID:                s.ID,
			SubjectName:       s.SubjectName,
			DayOfWeek:         s.DayOfWeek,
			StartTime:         helper.FormatClock(s.StartTime),
			EndTime:           helper.FormatClock(s.EndTime),
			AttendanceHistory: hist,
		})
	}

	return c.JSON(dto.LecturerDashboardResponse{Schedule: items})
}

// UploadExcuse menerima multipart form: field "comment" + file PDF "file".
func (ctl *LecturerAttendanceController) UploadExcuse(c *fiber.Ctx) error {
	lecturerID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance ID")
	}

	comment := c.FormValue("comment")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Excuse file is required")
	}
	src, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer src.Close()

	att, err := service.AttachExcuse(ctl.DB, ctl.Store, lecturerID, attendanceID,
		comment, fileHeader.Filename, src, time.Now())
	if err != nil {
		return err
	}

	return helper.Success(c, "Excuse submitted successfully", fiber.Map{
		"id":          att.AttendanceID,
		"excuse_file": att.AttendanceExcuseFile,
	})
}
