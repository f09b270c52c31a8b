package service

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	departmentModel "lecats_backend/internals/features/academics/departments/model"
	"lecats_backend/internals/features/reports/report/dto"
)

// VerifiedRow adalah satu baris absensi terverifikasi hasil query agregasi.
type VerifiedRow struct {
	LecturerName string
	Present      bool
}

// QueryVerifiedRows mengambil semua absensi terverifikasi milik department
// dalam rentang [start 00:00, end 23:59:59.999999999] UTC.
func QueryVerifiedRows(db *gorm.DB, departmentID uuid.UUID, start, end time.Time) ([]VerifiedRow, error) {
	rangeStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)

	var rows []VerifiedRow
	err := db.Table("attendances").
		Select(`users.user_full_name AS lecturer_name,
			attendances.attendance_present AS present`).
		Joins("JOIN class_schedules ON class_schedules.class_schedule_id = attendances.attendance_class_schedule_id").
		Joins("JOIN subjects ON subjects.subject_id = class_schedules.class_schedule_subject_id").
		Joins("JOIN programs ON programs.program_id = subjects.subject_program_id").
		Joins("JOIN users ON users.user_id = class_schedules.class_schedule_lecturer_id").
		Where("programs.program_department_id = ?", departmentID).
		Where("attendances.attendance_verified = ?", true).
		Where("attendances.attendance_timestamp BETWEEN ? AND ?", rangeStart, rangeEnd).
		Scan(&rows).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to query attendance")
	}
	return rows, nil
}

// round2 membulatkan ke 2 desimal (half away from zero, sama dengan
// pembulatan persentase di laporan PDF).
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// BuildReport melipat baris terverifikasi menjadi ringkasan + breakdown per
// lecturer. Murni in-memory: rate per lecturer dan rate keseluruhan dihitung
// dari hitungan yang sama, jadi attended+missed selalu == total.
func BuildReport(departmentName, period string, rows []VerifiedRow) dto.AttendanceReport {
	type counts struct {
		total    int
		attended int
	}
	byLecturer := map[string]*counts{}
	totalRecorded := 0
	totalAttended := 0

	for _, r := range rows {
		cnt, ok := byLecturer[r.LecturerName]
		if !ok {
			cnt = &counts{}
			byLecturer[r.LecturerName] = cnt
		}
		cnt.total++
		totalRecorded++
		if r.Present {
			cnt.attended++
			totalAttended++
		}
	}

	names := make([]string, 0, len(byLecturer))
	for name := range byLecturer {
		names = append(names, name)
	}
	sort.Strings(names)

	breakdown := make([]dto.LecturerBreakdown, 0, len(names))
	for _, name := range names {
		cnt := byLecturer[name]
		rate := 0.0
		if cnt.total > 0 {
			rate = round2(float64(cnt.attended) / float64(cnt.total) * 100)
		}
		breakdown = append(breakdown, dto.LecturerBreakdown{
			LecturerName:    name,
			TotalClasses:    cnt.total,
			ClassesAttended: cnt.attended,
			ClassesMissed:   cnt.total - cnt.attended,
			AttendanceRate:  rate,
		})
	}

	overall := 0.0
	if totalRecorded > 0 {
		overall = round2(float64(totalAttended) / float64(totalRecorded) * 100)
	}

	return dto.AttendanceReport{
		Summary: dto.ReportSummary{
			DepartmentName:        departmentName,
			Period:                period,
			TotalClassesRecorded:  totalRecorded,
			OverallAttendanceRate: overall,
		},
		Breakdown: breakdown,
	}
}

// Generate merangkai query + fold untuk satu department dan rentang tanggal.
func Generate(db *gorm.DB, departmentID uuid.UUID, start, end time.Time) (*dto.AttendanceReport, error) {
	var dept departmentModel.DepartmentModel
	if err := db.First(&dept, "department_id = ?", departmentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Department not found")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to load department")
	}

	rows, err := QueryVerifiedRows(db, departmentID, start, end)
	if err != nil {
		return nil, err
	}

	period := fmt.Sprintf("%s to %s", start.Format("2006-01-02"), end.Format("2006-01-02"))
	report := BuildReport(dept.DepartmentName, period, rows)
	return &report, nil
}
