// file: internals/features/timetable/schedule/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassScheduleModel adalah satu slot mingguan berulang untuk satu semester.
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_schedule_id" json:"class_schedule_id"`

	ClassScheduleSubjectID  uuid.UUID `gorm:"type:uuid;not null;index;column:class_schedule_subject_id" json:"class_schedule_subject_id"`
	ClassScheduleLecturerID uuid.UUID `gorm:"type:uuid;not null;index;column:class_schedule_lecturer_id" json:"class_schedule_lecturer_id"`
	ClassScheduleSemesterID uuid.UUID `gorm:"type:uuid;not null;index;column:class_schedule_semester_id" json:"class_schedule_semester_id"`

	// Nama hari penuh dalam bahasa Inggris (Monday..Sunday), sama dengan
	// format weekday yang dipakai pengecekan jadwal harian CR.
	ClassScheduleDayOfWeek string `gorm:"type:varchar(15);not null;column:class_schedule_day_of_week" json:"class_schedule_day_of_week"`

	ClassScheduleStartTime datatypes.Time `gorm:"not null;column:class_schedule_start_time" json:"class_schedule_start_time"`
	ClassScheduleEndTime   datatypes.Time `gorm:"not null;column:class_schedule_end_time" json:"class_schedule_end_time"`

	ClassScheduleCreatedAt time.Time `gorm:"type:timestamptz;column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

func (s *ClassScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.ClassScheduleID == uuid.Nil {
		s.ClassScheduleID = uuid.New()
	}
	return nil
}
