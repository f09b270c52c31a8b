package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	semesterService "lecats_backend/internals/features/academics/semesters/service"
	"lecats_backend/internals/features/attendance/attendance/dto"
	"lecats_backend/internals/features/attendance/attendance/service"
	helper "lecats_backend/internals/helpers"
)

type CRAttendanceController struct {
	DB *gorm.DB
}

func NewCRAttendanceController(db *gorm.DB) *CRAttendanceController {
	return &CRAttendanceController{DB: db}
}

var validate = validator.New()

func (ctl *CRAttendanceController) Submit(c *fiber.Ctx) error {
	crID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}

	var req dto.SubmitAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	scheduleID, _ := uuid.Parse(req.ClassScheduleID)
	att, err := service.Submit(ctl.DB, crID, deptID, scheduleID, *req.Present, time.Now())
	if err != nil {
		return err
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance submitted successfully", fiber.Map{
		"id": att.AttendanceID,
	})
}

// TodaysSchedule menampilkan slot hari ini (weekday UTC) untuk department CR
// pada semester aktif, plus flag submitted per slot. Kelas khusus yang jatuh
// hari ini ikut dilampirkan sebagai info.
func (ctl *CRAttendanceController) TodaysSchedule(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "CR account has no department")
	}
	active, err := semesterService.GetActive(ctl.DB)
	if err != nil {
		// tanpa semester aktif: jadwal hari ini memang kosong, bukan error
		var fe *fiber.Error
		if errors.As(err, &fe) && fe.Code == fiber.StatusNotFound {
			return c.JSON(fiber.Map{
				"schedule":        []dto.TodayScheduleItem{},
				"special_classes": []fiber.Map{},
			})
		}
		return err
	}

	now := time.Now().UTC()
	weekday := now.Weekday().String()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	type todayRow struct {
		ScheduleID   uuid.UUID
		SubjectName  string
		LecturerName string
		StartTime    datatypes.Time
		EndTime      datatypes.Time
	}
	var rows []todayRow
	err = ctl.DB.Table("class_schedules").
		Select(`class_schedules.class_schedule_id AS schedule_id,
			subjects.subject_name AS subject_name,
			users.user_full_name AS lecturer_name,
			class_schedules.class_schedule_start_time AS start_time,
			class_schedules.class_schedule_end_time AS end_time`).
		Joins("JOIN subjects ON subjects.subject_id = class_schedules.class_schedule_subject_id").
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Joins("JOIN users ON users.user_id = class_schedules.class_schedule_lecturer_id").
		Where("programs.program_department_id = ?", deptID).
		Where("class_schedules.class_schedule_semester_id = ?", active.SemesterID).
		Where("class_schedules.class_schedule_day_of_week = ?", weekday).
		Order("class_schedules.class_schedule_start_time").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve today's schedule")
	}

	scheduleIDs := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		scheduleIDs = append(scheduleIDs, r.ScheduleID)
	}

	submitted := map[uuid.UUID]bool{}
	if len(scheduleIDs) > 0 {
		var submittedIDs []uuid.UUID
		err = ctl.DB.Table("attendances").
			Select("attendance_class_schedule_id").
			Where("attendance_class_schedule_id IN ?", scheduleIDs).
			Where("attendance_submission_date = ?", today).
			Scan(&submittedIDs).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to check submissions")
		}
		for _, id := range submittedIDs {
			submitted[id] = true
		}
	}

	items := make([]dto.TodayScheduleItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.TodayScheduleItem{
			ScheduleID:   r.ScheduleID,
			SubjectName:  r.SubjectName,
			LecturerName: r.LecturerName,
			StartTime:    helper.FormatClock(r.StartTime),
			EndTime:      helper.FormatClock(r.EndTime),
			Submitted:    submitted[r.ScheduleID],
		})
	}

	type specialRow struct {
		SubjectName  string
		LecturerName string
		StartTime    datatypes.Time
		EndTime      datatypes.Time
	}
	var specials []specialRow
	err = ctl.DB.Table("special_schedules").
		Select(`subjects.subject_name AS subject_name,
			users.user_full_name AS lecturer_name,
			special_schedules.special_schedule_start_time AS start_time,
			special_schedules.special_schedule_end_time AS end_time`).
		Joins("JOIN subjects ON subjects.subject_id = special_schedules.special_schedule_subject_id").
		Joins("JOIN users ON users.user_id = special_schedules.special_schedule_lecturer_id").
		Where("special_schedules.special_schedule_target_department_id = ?", deptID).
		Where("special_schedules.special_schedule_class_date = ?", today).
		Order("special_schedules.special_schedule_start_time").
		Scan(&specials).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve special classes")
	}

	specialItems := make([]fiber.Map, 0, len(specials))
	for _, s := range specials {
		specialItems = append(specialItems, fiber.Map{
			"subject_name":  s.SubjectName,
			"lecturer_name": s.LecturerName,
			"start_time":    helper.FormatClock(s.StartTime),
			"end_time":      helper.FormatClock(s.EndTime),
		})
	}

	return c.JSON(fiber.Map{
		"schedule":        items,
		"special_classes": specialItems,
	})
}
