package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lecats_backend/internals/features/academics/semesters/dto"
	"lecats_backend/internals/features/academics/semesters/model"
	"lecats_backend/internals/features/academics/semesters/service"
	scheduleModel "lecats_backend/internals/features/timetable/schedule/model"
	helper "lecats_backend/internals/helpers"
)

type SemesterController struct {
	DB *gorm.DB
}

func NewSemesterController(db *gorm.DB) *SemesterController {
	return &SemesterController{DB: db}
}

var validate = validator.New()

// List diurutkan dari semester terbaru (tahun lalu nomor, descending).
func (ctl *SemesterController) List(c *fiber.Ctx) error {
	var semesters []model.SemesterModel
	if err := ctl.DB.Order("semester_year DESC, semester_number DESC").
		Find(&semesters).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to retrieve semesters")
	}

	out := make([]dto.SemesterResponse, 0, len(semesters))
	for _, s := range semesters {
		out = append(out, dto.ToSemesterResponse(s))
	}
	return c.JSON(out)
}

func (ctl *SemesterController) GetActive(c *fiber.Ctx) error {
	sem, err := service.GetActive(ctl.DB)
	if err != nil {
		return err
	}
	return c.JSON(dto.ToSemesterResponse(*sem))
}

func (ctl *SemesterController) Create(c *fiber.Ctx) error {
	var req dto.CreateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := helper.ParseDate(req.StartDate)
	if err != nil {
		return err
	}
	end, err := helper.ParseDate(req.EndDate)
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fiber.NewError(fiber.StatusBadRequest, "end_date must be after start_date")
	}

	sem := model.SemesterModel{
		SemesterYear:      req.Year,
		SemesterNumber:    req.SemesterNumber,
		SemesterStartDate: datatypes.Date(start),
		SemesterEndDate:   datatypes.Date(end),
	}
	if err := ctl.DB.Create(&sem).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Semester for this year and number already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create semester")
	}

	return c.Status(fiber.StatusCreated).JSON(dto.ToSemesterResponse(sem))
}

func (ctl *SemesterController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid semester ID")
	}

	var sem model.SemesterModel
	if err := ctl.DB.First(&sem, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Semester not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load semester")
	}

	var req dto.UpdateSemesterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Year != nil {
		sem.SemesterYear = *req.Year
	}
	if req.SemesterNumber != nil {
		sem.SemesterNumber = *req.SemesterNumber
	}
	if req.StartDate != nil {
		start, err := helper.ParseDate(*req.StartDate)
		if err != nil {
			return err
		}
		sem.SemesterStartDate = datatypes.Date(start)
	}
	if req.EndDate != nil {
		end, err := helper.ParseDate(*req.EndDate)
		if err != nil {
			return err
		}
		sem.SemesterEndDate = datatypes.Date(end)
	}

	if err := ctl.DB.Save(&sem).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return fiber.NewError(fiber.StatusConflict, "Semester for this year and number already exists")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update semester")
	}
	return helper.Success(c, "Semester updated", dto.ToSemesterResponse(sem))
}

// Delete ditolak selama semester masih dirujuk jadwal kelas.
func (ctl *SemesterController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid semester ID")
	}

	var sem model.SemesterModel
	if err := ctl.DB.First(&sem, "semester_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Semester not found")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to load semester")
	}

	var scheduleCount int64
	if err := ctl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_semester_id = ?", id).
		Count(&scheduleCount).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to check schedules")
	}
	if scheduleCount > 0 {
		return fiber.NewError(fiber.StatusConflict, "Cannot delete: Semester is used in a timetable")
	}

	if err := ctl.DB.Delete(&sem).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete semester")
	}
	return helper.Success(c, "Semester deleted", nil)
}

func (ctl *SemesterController) Activate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid semester ID")
	}

	sem, err := service.Activate(ctl.DB, id)
	if err != nil {
		return err
	}
	return helper.Success(c, "Semester activated", dto.ToSemesterResponse(*sem))
}

func (ctl *SemesterController) Deactivate(c *fiber.Ctx) error {
	changed, err := service.Deactivate(ctl.DB)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to deactivate semester")
	}
	if !changed {
		return helper.Success(c, "No active semester to deactivate", nil)
	}
	return helper.Success(c, "Semester deactivated", nil)
}
