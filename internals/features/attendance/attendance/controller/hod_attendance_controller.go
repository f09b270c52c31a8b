package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lecats_backend/internals/features/attendance/attendance/dto"
	"lecats_backend/internals/features/attendance/attendance/service"
	helper "lecats_backend/internals/helpers"
)

type HODAttendanceController struct {
	DB *gorm.DB
}

func NewHODAttendanceController(db *gorm.DB) *HODAttendanceController {
	return &HODAttendanceController{DB: db}
}

// Pending: antrian verifikasi department HOD, terbaru dulu, diperkaya nama
// lecturer/CR/subject plus excuse yang sudah menempel.
func (ctl *HODAttendanceController) Pending(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}

	var rows []dto.PendingAttendanceResponse
	err = ctl.DB.Table("attendances").
		Select(`attendances.attendance_id AS id,
			lecturer.user_full_name AS lecturer_name,
			cr.user_full_name AS cr_name,
			subjects.subject_name AS course,
			attendances.attendance_present AS present,
			attendances.attendance_timestamp AS timestamp,
			attendances.attendance_excuse_comment AS excuse_comment,
			attendances.attendance_excuse_file AS excuse_file`).
		Joins("JOIN class_schedules ON class_schedules.class_schedule_id = attendances.attendance_class_schedule_id").
		Joins("JOIN subjects ON subjects.subject_id = class_schedules.class_schedule_subject_id").
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Joins("JOIN users AS lecturer ON lecturer.user_id = class_schedules.class_schedule_lecturer_id").
		Joins("JOIN users AS cr ON cr.user_id = attendances.attendance_cr_id").
		Where("programs.program_department_id = ?", deptID).
		Where("attendances.attendance_verified = ?", false).
		Order("attendances.attendance_timestamp DESC").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve pending attendance")
	}
	if rows == nil {
		rows = []dto.PendingAttendanceResponse{}
	}
	return c.JSON(rows)
}

func (ctl *HODAttendanceController) Verify(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}
	attendanceID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid attendance ID")
	}

	att, err := service.Verify(ctl.DB, deptID, attendanceID)
	if err != nil {
		return err
	}

	return helper.Success(c, "Attendance verified", fiber.Map{
		"id":       att.AttendanceID,
		"verified": att.AttendanceVerified,
	})
}
