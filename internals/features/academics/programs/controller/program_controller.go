package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lecats_backend/internals/features/academics/programs/dto"
	"lecats_backend/internals/features/academics/programs/model"
	subjectModel "lecats_backend/internals/features/academics/subjects/model"
	helper "lecats_backend/internals/helpers"
)

type ProgramController struct {
	DB *gorm.DB
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db}
}

var validate = validator.New()

func (ctl *ProgramController) List(c *fiber.Ctx) error {
	var rows []dto.ProgramResponse
	err := ctl.DB.Table("programs").
		Select(`programs.program_id AS id,
			programs.program_name AS name,
			programs.program_level AS level,
			programs.program_department_id AS department_id,
			departments.department_name AS department_name,
			programs.program_duration_years AS duration_in_years`).
		Joins("JOIN departments ON departments.department_id = programs.program_department_id").
		Order("programs.program_name").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve programs")
	}
	if rows == nil {
		rows = []dto.ProgramResponse{}
	}
	return c.JSON(rows)
}

func (ctl *ProgramController) Create(c *fiber.Ctx) error {
	var req dto.CreateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	deptID, _ := uuid.Parse(req.DepartmentID)
	program := model.ProgramModel{
		ProgramName:          req.Name,
		ProgramLevel:         req.Level,
		ProgramDepartmentID:  deptID,
		ProgramDurationYears: req.DurationInYears,
	}
	if err := ctl.DB.Create(&program).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Program name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create program")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Program created successfully", fiber.Map{
		"id": program.ProgramID,
	})
}

func (ctl *ProgramController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid program ID")
	}

	var program model.ProgramModel
	if err := ctl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load program")
	}

	var req dto.UpdateProgramRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Name != nil {
		program.ProgramName = *req.Name
	}
	if req.Level != nil {
		program.ProgramLevel = *req.Level
	}
	if req.DepartmentID != nil {
		deptID, _ := uuid.Parse(*req.DepartmentID)
		program.ProgramDepartmentID = deptID
	}
	if req.DurationInYears != nil {
		program.ProgramDurationYears = *req.DurationInYears
	}

	if err := ctl.DB.Save(&program).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Program name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update program")
	}
	return helper.Success(c, "Program updated", nil)
}

// Delete ditolak selama masih ada subject di bawah program.
func (ctl *ProgramController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid program ID")
	}

	var program model.ProgramModel
	if err := ctl.DB.First(&program, "program_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Program not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load program")
	}

	var subjectCount int64
	if err := ctl.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_program_id = ?", id).
		Count(&subjectCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check subjects")
	}
	if subjectCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Cannot delete: Program has assigned subjects")
	}

	if err := ctl.DB.Delete(&program).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete program")
	}
	return helper.Success(c, "Program deleted", nil)
}
