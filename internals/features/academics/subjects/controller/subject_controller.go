package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	programModel "lecats_backend/internals/features/academics/programs/model"
	"lecats_backend/internals/features/academics/subjects/dto"
	"lecats_backend/internals/features/academics/subjects/model"
	scheduleModel "lecats_backend/internals/features/timetable/schedule/model"
	helper "lecats_backend/internals/helpers"
)

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

var validate = validator.New()

func (ctl *SubjectController) List(c *fiber.Ctx) error {
	var rows []dto.SubjectResponse
	err := ctl.DB.Table("subjects").
		Select(`subjects.subject_id AS id,
			subjects.subject_name AS name,
			subjects.subject_code AS code,
			subjects.subject_program_id AS program_id,
			programs.program_name AS program_name,
			subjects.subject_year_of_study AS year_of_study`).
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Order("subjects.subject_name").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve subjects")
	}
	if rows == nil {
		rows = []dto.SubjectResponse{}
	}
	return c.JSON(rows)
}

func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	programID, _ := uuid.Parse(req.ProgramID)
	var program programModel.ProgramModel
	if err := ctl.DB.First(&program, "program_id = ?", programID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load program")
	}
	// year_of_study dibatasi 1..durasi program
	if req.YearOfStudy > program.ProgramDurationYears {
		return fiber.NewError(fiber.StatusBadRequest, "year_of_study exceeds program duration")
	}

	subject := model.SubjectModel{
		SubjectName:        req.Name,
		SubjectCode:        req.Code,
		SubjectProgramID:   programID,
		SubjectYearOfStudy: req.YearOfStudy,
	}
	if err := ctl.DB.Create(&subject).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Subject created successfully", fiber.Map{
		"id": subject.SubjectID,
	})
}

func (ctl *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	var subject model.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subject")
	}

	var req dto.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		subject.SubjectName = *req.Name
	}
	if req.Code != nil {
		subject.SubjectCode = *req.Code
	}
	if req.ProgramID != nil {
		programID, _ := uuid.Parse(*req.ProgramID)
		subject.SubjectProgramID = programID
	}
	if req.YearOfStudy != nil {
		subject.SubjectYearOfStudy = *req.YearOfStudy
	}

	var program programModel.ProgramModel
	if err := ctl.DB.First(&program, "program_id = ?", subject.SubjectProgramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load program")
	}
	if subject.SubjectYearOfStudy > program.ProgramDurationYears {
		return fiber.NewError(fiber.StatusBadRequest, "year_of_study exceeds program duration")
	}

	if err := ctl.DB.Save(&subject).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Subject code already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.Success(c, "Subject updated", nil)
}

// Delete ditolak selama subject masih dipakai timetable.
func (ctl *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid subject ID")
	}

	var subject model.SubjectModel
	if err := ctl.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Subject not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load subject")
	}

	var scheduleCount int64
	if err := ctl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_subject_id = ?", id).
		Count(&scheduleCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check schedules")
	}
	if scheduleCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Cannot delete: Subject is used in a timetable")
	}

	if err := ctl.DB.Delete(&subject).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.Success(c, "Subject deleted", nil)
}
