package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"lecats_backend/internals/features/academics/semesters/model"
)

// GetActive mengembalikan satu-satunya semester aktif, atau error 404
// "No active semester set" kalau tidak ada.
func GetActive(db *gorm.DB) (*model.SemesterModel, error) {
	var sem model.SemesterModel
	if err := db.Where("semester_is_active = ?", true).First(&sem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "No active semester set")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to look up active semester")
	}
	return &sem, nil
}

// Activate menjalankan deactivate-all + activate-one dalam SATU transaksi,
// menjaga invariant "maksimal satu semester aktif" tanpa jendela race.
func Activate(db *gorm.DB, semesterID uuid.UUID) (*model.SemesterModel, error) {
	var target model.SemesterModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&target, "semester_id = ?", semesterID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Semester not found")
			}
			return err
		}
		if err := tx.Model(&model.SemesterModel{}).
			Where("semester_is_active = ?", true).
			Update("semester_is_active", false).Error; err != nil {
			return err
		}
		if err := tx.Model(&target).Update("semester_is_active", true).Error; err != nil {
			return err
		}
		target.SemesterIsActive = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// Deactivate mematikan semester aktif; bukan error kalau memang tidak ada.
func Deactivate(db *gorm.DB) (bool, error) {
	res := db.Model(&model.SemesterModel{}).
		Where("semester_is_active = ?", true).
		Update("semester_is_active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
