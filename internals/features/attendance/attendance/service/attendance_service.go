package service

import (
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"lecats_backend/internals/features/attendance/attendance/model"
	scheduleService "lecats_backend/internals/features/timetable/schedule/service"
	helper "lecats_backend/internals/helpers"
	"lecats_backend/internals/helpers/storage"
)

// ExcuseWindow: lecturer boleh menempelkan excuse sampai 24 jam (inklusif)
// sejak timestamp submit CR.
const ExcuseWindow = 24 * time.Hour

// Submit membuat baris attendance untuk (schedule, hari UTC). Satu baris per
// hari per jadwal; duplikat ditolak 409. Pengecekan duplikat jalan di dalam
// transaksi, dan index unik gabungan menutup race read-then-insert.
func Submit(db *gorm.DB, crID, crDeptID, scheduleID uuid.UUID, present bool, now time.Time) (*model.AttendanceModel, error) {
	ownerDeptID, err := scheduleService.DepartmentIDForSchedule(db, scheduleID)
	if err != nil {
		return nil, err
	}
	if ownerDeptID != crDeptID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: Cannot submit attendance for another department")
	}

	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	att := model.AttendanceModel{
		AttendanceClassScheduleID: scheduleID,
		AttendanceCRID:            crID,
		AttendancePresent:         present,
		AttendanceTimestamp:       now,
		AttendanceSubmissionDate:  datatypes.Date(day),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		var dup model.AttendanceModel
		err := tx.Where("attendance_class_schedule_id = ? AND attendance_submission_date = ?", scheduleID, day).
			First(&dup).Error
		if err == nil {
			return fiber.NewError(fiber.StatusConflict, "Attendance for this class has already been submitted today")
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&att).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, fiber.NewError(fiber.StatusConflict, "Attendance for this class has already been submitted today")
		}
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to submit attendance")
	}
	return &att, nil
}

// AttachExcuse menempelkan komentar + file PDF pada baris attendance milik
// kelas lecturer sendiri. Re-upload menimpa file lama (nama file deterministik
// per attendance). File ditulis DULU; kalau update baris gagal, file dihapus
// supaya tidak ada blob yatim.
func AttachExcuse(db *gorm.DB, store storage.BlobStore, lecturerID, attendanceID uuid.UUID, comment, filename string, file io.Reader, now time.Time) (*model.AttendanceModel, error) {
	var att model.AttendanceModel
	if err := db.First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
	}

	var scheduleLecturerID uuid.UUID
	err := db.Table("class_schedules").
		Select("class_schedule_lecturer_id").
		Where("class_schedule_id = ?", att.AttendanceClassScheduleID).
		Scan(&scheduleLecturerID).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load schedule")
	}
	if scheduleLecturerID == uuid.Nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Schedule not found")
	}
	if scheduleLecturerID != lecturerID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: You can only submit excuses for your own classes")
	}

	// jendela inklusif: tepat 24 jam masih boleh
	if now.UTC().Sub(att.AttendanceTimestamp.UTC()) > ExcuseWindow {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Excuse submission window has expired (24 hours)")
	}

	if !strings.EqualFold(strings.TrimSpace(filepath.Ext(filename)), ".pdf") {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Only PDF files are allowed")
	}

	// prefix attendance id bikin nama unik per baris; re-upload dengan nama
	// asli sama otomatis menimpa
	storedName := "excuse_" + attendanceID.String() + "_" + storage.SanitizeFilename(filename)
	if _, err := store.Put(storedName, file); err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to store excuse file")
	}

	oldFile := att.AttendanceExcuseFile
	uploadedAt := now.UTC()
	att.AttendanceExcuseComment = &comment
	att.AttendanceExcuseFile = &storedName
	att.AttendanceExcuseUploadedAt = &uploadedAt

	if err := db.Save(&att).Error; err != nil {
		// jangan hapus blob yang masih dirujuk baris ter-commit: re-upload
		// dengan nama sama menimpa file lama sebelum update baris
		if oldFile == nil || *oldFile != storedName {
			_ = store.Remove(storedName)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to save excuse")
	}
	// file lama dari re-upload dengan nama berbeda tidak boleh jadi yatim
	if oldFile != nil && *oldFile != storedName {
		_ = store.Remove(*oldFile)
	}
	return &att, nil
}

// Verify menandai baris attendance terverifikasi. Idempoten: verifikasi ulang
// bukan error. HOD hanya boleh memverifikasi department-nya sendiri.
func Verify(db *gorm.DB, hodDeptID, attendanceID uuid.UUID) (*model.AttendanceModel, error) {
	var att model.AttendanceModel
	if err := db.First(&att, "attendance_id = ?", attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Attendance record not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load attendance")
	}

	ownerDeptID, err := scheduleService.DepartmentIDForSchedule(db, att.AttendanceClassScheduleID)
	if err != nil {
		return nil, err
	}
	if ownerDeptID != hodDeptID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Forbidden: Cannot verify attendance from another department")
	}

	if att.AttendanceVerified {
		return &att, nil
	}
	if err := db.Model(&att).Update("attendance_verified", true).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to verify attendance")
	}
	att.AttendanceVerified = true
	return &att, nil
}
