// file: internals/features/attendance/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// AttendanceModel: satu baris per (class_schedule, hari kalender UTC).
// Siklus: dibuat oleh CR → opsional diberi excuse oleh lecturer pemilik
// (jendela 24 jam) → diverifikasi HOD. Tidak ada jalur delete.
type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceClassScheduleID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_schedule_day;column:attendance_class_schedule_id" json:"attendance_class_schedule_id"`
	AttendanceCRID            uuid.UUID `gorm:"type:uuid;not null;column:attendance_cr_id" json:"attendance_cr_id"`

	AttendancePresent bool `gorm:"not null;column:attendance_present" json:"attendance_present"`

	// Saat submit (UTC). SubmissionDate adalah tanggal kalender UTC dari
	// timestamp itu; index unik gabungan menutup race read-then-insert.
	AttendanceTimestamp      time.Time      `gorm:"type:timestamptz;not null;column:attendance_timestamp" json:"attendance_timestamp"`
	AttendanceSubmissionDate datatypes.Date `gorm:"not null;uniqueIndex:uq_attendance_schedule_day;column:attendance_submission_date" json:"attendance_submission_date"`

	AttendanceVerified bool `gorm:"not null;default:false;column:attendance_verified" json:"attendance_verified"`

	AttendanceExcuseComment    *string    `gorm:"type:text;column:attendance_excuse_comment" json:"attendance_excuse_comment,omitempty"`
	AttendanceExcuseFile       *string    `gorm:"type:varchar(300);column:attendance_excuse_file" json:"attendance_excuse_file,omitempty"`
	AttendanceExcuseUploadedAt *time.Time `gorm:"type:timestamptz;column:attendance_excuse_uploaded_at" json:"attendance_excuse_uploaded_at,omitempty"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (a *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	return nil
}
