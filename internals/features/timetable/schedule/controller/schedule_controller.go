package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lecats_backend/internals/constants"
	semesterService "lecats_backend/internals/features/academics/semesters/service"
	"lecats_backend/internals/features/timetable/schedule/dto"
	"lecats_backend/internals/features/timetable/schedule/model"
	"lecats_backend/internals/features/timetable/schedule/service"
	helper "lecats_backend/internals/helpers"
)

type ScheduleController struct {
	DB *gorm.DB
}

func NewScheduleController(db *gorm.DB) *ScheduleController {
	return &ScheduleController{DB: db}
}

var validate = validator.New()

// DataForTimetable menyiapkan opsi form buat HOD: lecturer department-nya
// sendiri plus subject dalam department, dilabeli "PROGRAM: CODE - NAME".
func (ctl *ScheduleController) DataForTimetable(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}

	var lecturers []dto.LecturerOption
	err = ctl.DB.Table("users").
		Select("users.user_id AS id, users.user_full_name AS full_name").
		Where("users.user_role = ? AND users.user_department_id = ?", constants.RoleLecturer, deptID).
		Order("users.user_full_name").
		Scan(&lecturers).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve lecturers")
	}

	type subjectRow struct {
		ID          uuid.UUID
		SubjectName string
		SubjectCode string
		ProgramName string
	}
	var subjectRows []subjectRow
	err = ctl.DB.Table("subjects").
		Select(`subjects.subject_id AS id,
			subjects.subject_name,
			subjects.subject_code,
			programs.program_name`).
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Where("programs.program_department_id = ?", deptID).
		Order("programs.program_name, subjects.subject_code").
		Scan(&subjectRows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}

	subjects := make([]dto.SubjectOption, 0, len(subjectRows))
	for _, s := range subjectRows {
		subjects = append(subjects, dto.SubjectOption{
			ID:   s.ID,
			Name: s.ProgramName + ": " + s.SubjectCode + " - " + s.SubjectName,
		})
	}
	if lecturers == nil {
		lecturers = []dto.LecturerOption{}
	}

	return c.JSON(dto.TimetableDataResponse{
		Lecturers: lecturers,
		Subjects:  subjects,
	})
}

type scheduleRow struct {
	ID           uuid.UUID
	SubjectName  string
	LecturerName string
	DayOfWeek    string
	StartTime    datatypes.Time
	EndTime      datatypes.Time
}

func toScheduleResponse(r scheduleRow) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:           r.ID,
		SubjectName:  r.SubjectName,
		LecturerName: r.LecturerName,
		DayOfWeek:    r.DayOfWeek,
		StartTime:    helper.FormatClock(r.StartTime),
		EndTime:      helper.FormatClock(r.EndTime),
	}
}

// List menampilkan jadwal department HOD pada semester aktif saja.
func (ctl *ScheduleController) List(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}
	active, err := semesterService.GetActive(ctl.DB)
	if err != nil {
		return err
	}

	var rows []scheduleRow
	err = ctl.DB.Table("class_schedules").
		Select(`class_schedules.class_schedule_id AS id,
			subjects.subject_name AS subject_name,
			users.user_full_name AS lecturer_name,
			class_schedules.class_schedule_day_of_week AS day_of_week,
			class_schedules.class_schedule_start_time AS start_time,
			class_schedules.class_schedule_end_time AS end_time`).
		Joins("JOIN subjects ON subjects.subject_id = class_schedules.class_schedule_subject_id").
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Joins("JOIN users ON users.user_id = class_schedules.class_schedule_lecturer_id").
		Where("programs.program_department_id = ?", deptID).
		Where("class_schedules.class_schedule_semester_id = ?", active.SemesterID).
		Order("class_schedules.class_schedule_day_of_week, class_schedules.class_schedule_start_time").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve schedules")
	}

	out := make([]dto.ScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toScheduleResponse(r))
	}
	return c.JSON(out)
}

// Create menempelkan jadwal ke semester aktif secara implisit. Subject harus
// milik department HOD; slot lintas department lewat special schedule.
func (ctl *ScheduleController) Create(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}

	var req dto.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := helper.ParseClock(req.StartTime)
	if err != nil {
		return err
	}
	end, err := helper.ParseClock(req.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fiber.NewError(fiber.StatusBadRequest, "end_time must be after start_time")
	}

	active, err := semesterService.GetActive(ctl.DB)
	if err != nil {
		return err
	}

	subjectID, _ := uuid.Parse(req.SubjectID)
	var subjectDeptID uuid.UUID
	err = ctl.DB.Table("subjects").
		Select("programs.program_department_id").
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Where("subjects.subject_id = ?", subjectID).
		Scan(&subjectDeptID).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to look up subject")
	}
	if subjectDeptID == uuid.Nil {
		return fiber.NewError(fiber.StatusNotFound, "Subject not found")
	}
	if subjectDeptID != deptID {
		return fiber.NewError(fiber.StatusForbidden, "Forbidden: Subject belongs to another department")
	}

	lecturerID, _ := uuid.Parse(req.LecturerID)
	schedule := model.ClassScheduleModel{
		ClassScheduleSubjectID:  subjectID,
		ClassScheduleLecturerID: lecturerID,
		ClassScheduleSemesterID: active.SemesterID,
		ClassScheduleDayOfWeek:  req.DayOfWeek,
		ClassScheduleStartTime:  start,
		ClassScheduleEndTime:    end,
	}
	if err := ctl.DB.Create(&schedule).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create schedule")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Schedule created successfully", fiber.Map{
		"id": schedule.ClassScheduleID,
	})
}

// Delete hanya boleh untuk jadwal department sendiri (rantai
// schedule → subject → program → department).
func (ctl *ScheduleController) Delete(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}
	scheduleID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid schedule ID")
	}

	ownerDeptID, err := service.DepartmentIDForSchedule(ctl.DB, scheduleID)
	if err != nil {
		return err
	}
	if ownerDeptID != deptID {
		return fiber.NewError(fiber.StatusForbidden, "Forbidden: Cannot delete schedule from another department")
	}

	if err := ctl.DB.Delete(&model.ClassScheduleModel{}, "class_schedule_id = ?", scheduleID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete schedule")
	}
	return helper.Success(c, "Schedule deleted", nil)
}

// CreateSpecial membuat kelas sekali jalan; boleh menarget department lain
// (kuliah tamu), jadi tidak ada pengecekan scope pada target.
func (ctl *ScheduleController) CreateSpecial(c *fiber.Ctx) error {
	hodID, err := helper.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req dto.CreateSpecialScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	classDate, err := helper.ParseDate(req.ClassDate)
	if err != nil {
		return err
	}
	start, err := helper.ParseClock(req.StartTime)
	if err != nil {
		return err
	}
	end, err := helper.ParseClock(req.EndTime)
	if err != nil {
		return err
	}
	if end <= start {
		return fiber.NewError(fiber.StatusBadRequest, "end_time must be after start_time")
	}

	subjectID, _ := uuid.Parse(req.SubjectID)
	lecturerID, _ := uuid.Parse(req.LecturerID)
	targetDeptID, _ := uuid.Parse(req.TargetDepartmentID)

	special := model.SpecialScheduleModel{
		SpecialScheduleSubjectID:          subjectID,
		SpecialScheduleLecturerID:         lecturerID,
		SpecialScheduleClassDate:          datatypes.Date(classDate),
		SpecialScheduleStartTime:          start,
		SpecialScheduleEndTime:            end,
		SpecialScheduleCreatingHodID:      hodID,
		SpecialScheduleTargetDepartmentID: targetDeptID,
	}
	if err := ctl.DB.Create(&special).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create special schedule")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Special schedule created successfully", fiber.Map{
		"id": special.SpecialScheduleID,
	})
}

// ListSpecial menampilkan kelas khusus yang menarget department HOD,
// mulai hari ini ke depan.
func (ctl *ScheduleController) ListSpecial(c *fiber.Ctx) error {
	deptID, err := helper.GetDepartmentUUID(c)
	if err != nil {
		return err
	}

	type specialRow struct {
		ID           uuid.UUID
		SubjectName  string
		LecturerName string
		ClassDate    time.Time
		StartTime    datatypes.Time
		EndTime      datatypes.Time
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)

	var rows []specialRow
	err = ctl.DB.Table("special_schedules").
		Select(`special_schedules.special_schedule_id AS id,
			subjects.subject_name AS subject_name,
			users.user_full_name AS lecturer_name,
			special_schedules.special_schedule_class_date AS class_date,
			special_schedules.special_schedule_start_time AS start_time,
			special_schedules.special_schedule_end_time AS end_time`).
		Joins("JOIN subjects ON subjects.subject_id = special_schedules.special_schedule_subject_id").
		Joins("JOIN users ON users.user_id = special_schedules.special_schedule_lecturer_id").
		Where("special_schedules.special_schedule_target_department_id = ?", deptID).
		Where("special_schedules.special_schedule_class_date >= ?", today).
		Order("special_schedules.special_schedule_class_date, special_schedules.special_schedule_start_time").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve special schedules")
	}

	out := make([]dto.SpecialScheduleResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SpecialScheduleResponse{
			ID:           r.ID,
			SubjectName:  r.SubjectName,
			LecturerName: r.LecturerName,
			ClassDate:    r.ClassDate.Format("2006-01-02"),
			StartTime:    helper.FormatClock(r.StartTime),
			EndTime:      helper.FormatClock(r.EndTime),
		})
	}
	return c.JSON(out)
}
