package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentIDForSchedule menelusuri rantai kepemilikan
// schedule → subject → program → department dalam satu query.
// Semua operasi yang menjaga scope department (hapus jadwal, verifikasi,
// upload excuse) memakai resolver ini, bukan salinan join masing-masing.
func DepartmentIDForSchedule(db *gorm.DB, scheduleID uuid.UUID) (uuid.UUID, error) {
	var departmentID uuid.UUID
	err := db.Table("class_schedules").
		Select("programs.program_department_id").
		Joins("JOIN subjects ON subjects.subject_id = class_schedules.class_schedule_subject_id").
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Where("class_schedules.class_schedule_id = ?", scheduleID).
		Scan(&departmentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Schedule not found")
		}
		return uuid.Nil, err
	}
	if departmentID == uuid.Nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Schedule not found")
	}
	return departmentID, nil
}
