package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lecats_backend/internals/features/academics/departments/dto"
	"lecats_backend/internals/features/academics/departments/model"
	programModel "lecats_backend/internals/features/academics/programs/model"
	userModel "lecats_backend/internals/features/users/user/model"
	helper "lecats_backend/internals/helpers"
)

type DepartmentController struct {
	DB *gorm.DB
}

func NewDepartmentController(db *gorm.DB) *DepartmentController {
	return &DepartmentController{DB: db}
}

var validate = validator.New()

// List dipakai katalog publik DAN surface admin: data yang sama, beda
// kebutuhan otorisasi di route.
func (ctl *DepartmentController) List(c *fiber.Ctx) error {
	var departments []model.DepartmentModel
	if err := ctl.DB.Order("department_name").Find(&departments).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve departments")
	}

	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, dto.ToDepartmentResponse(d))
	}
	return c.JSON(out)
}

func (ctl *DepartmentController) Create(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	dept := model.DepartmentModel{DepartmentName: req.Name}
	if err := ctl.DB.Create(&dept).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Department name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create department")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToDepartmentResponse(dept))
}

func (ctl *DepartmentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid department ID")
	}

	var dept model.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load department")
	}

	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.Name != nil {
		dept.DepartmentName = *req.Name
	}

	if err := ctl.DB.Save(&dept).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Department name already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update department")
	}
	return helper.Success(c, "Department updated", dto.ToDepartmentResponse(dept))
}

// Delete ditolak selama masih ada program atau user yang menempel.
func (ctl *DepartmentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid department ID")
	}

	var dept model.DepartmentModel
	if err := ctl.DB.First(&dept, "department_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load department")
	}

	var programCount int64
	if err := ctl.DB.Model(&programModel.ProgramModel{}).
		Where("program_department_id = ?", id).
		Count(&programCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check programs")
	}
	var userCount int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("user_department_id = ?", id).
		Count(&userCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check users")
	}
	if programCount > 0 || userCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Cannot delete: Department has programs or users")
	}

	if err := ctl.DB.Delete(&dept).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete department")
	}
	return helper.Success(c, "Department deleted", nil)
}
