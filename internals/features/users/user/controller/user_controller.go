package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	attendanceModel "lecats_backend/internals/features/attendance/attendance/model"
	scheduleModel "lecats_backend/internals/features/timetable/schedule/model"
	"lecats_backend/internals/features/users/user/dto"
	"lecats_backend/internals/features/users/user/model"
	helper "lecats_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

func (ctl *UserController) List(c *fiber.Ctx) error {
	var rows []dto.UserResponse
	err := ctl.DB.Table("users").
		Select(`users.user_id AS id,
			users.user_full_name AS full_name,
			users.user_email AS email,
			users.user_role AS role,
			COALESCE(departments.department_name, 'N/A') AS department_name`).
		Joins("LEFT JOIN departments ON departments.department_id = users.user_department_id").
		Order("users.user_full_name").
		Scan(&rows).Error
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve users")
	}
	if rows == nil {
		rows = []dto.UserResponse{}
	}
	return c.JSON(rows)
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.UserModel
	if err := ctl.DB.Where("user_email = ?", req.Email).First(&existing).Error; err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash password")
	}

	var deptID *uuid.UUID
	if req.DepartmentID != nil && *req.DepartmentID != "" {
		parsed, err := uuid.Parse(*req.DepartmentID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department ID")
		}
		deptID = &parsed
	}

	user := model.UserModel{
		UserFullName:     req.FullName,
		UserEmail:        req.Email,
		UserPassword:     string(hashed),
		UserRole:         req.Role,
		UserDepartmentID: deptID,
	}
	if err := ctl.DB.Create(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created successfully", fiber.Map{
		"id": user.UserID,
	})
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.FullName != nil {
		user.UserFullName = *req.FullName
	}
	if req.Email != nil {
		user.UserEmail = *req.Email
	}
	if req.Role != nil {
		user.UserRole = *req.Role
	}
	if req.DepartmentID != nil {
		if *req.DepartmentID == "" {
			user.UserDepartmentID = nil
		} else {
			parsed, err := uuid.Parse(*req.DepartmentID)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid department ID")
			}
			user.UserDepartmentID = &parsed
		}
	}

	if err := ctl.DB.Save(&user).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Email already registered")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update user")
	}
	return helper.Success(c, "User updated", nil)
}

// Delete ditolak kalau user masih punya jejak di timetable atau absensi.
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user ID")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "User not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load user")
	}

	var scheduleCount int64
	if err := ctl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_lecturer_id = ?", id).
		Count(&scheduleCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check schedules")
	}
	var attendanceCount int64
	if err := ctl.DB.Model(&attendanceModel.AttendanceModel{}).
		Where("attendance_cr_id = ?", id).
		Count(&attendanceCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check attendance")
	}
	if scheduleCount > 0 || attendanceCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Cannot delete: User has schedules or attendance records")
	}

	if err := ctl.DB.Delete(&user).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete user")
	}
	return helper.Success(c, "User deleted", nil)
}
