// file: internals/features/timetable/schedule/model/special_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SpecialScheduleModel adalah kelas sekali jalan (non-berulang) pada tanggal
// kalender tertentu; bisa menarget department lain (kuliah tamu lintas
// department).
type SpecialScheduleModel struct {
	SpecialScheduleID uuid.UUID `gorm:"type:uuid;primaryKey;column:special_schedule_id" json:"special_schedule_id"`

	SpecialScheduleSubjectID  uuid.UUID `gorm:"type:uuid;not null;column:special_schedule_subject_id" json:"special_schedule_subject_id"`
	SpecialScheduleLecturerID uuid.UUID `gorm:"type:uuid;not null;column:special_schedule_lecturer_id" json:"special_schedule_lecturer_id"`

	SpecialScheduleClassDate datatypes.Date `gorm:"not null;index;column:special_schedule_class_date" json:"special_schedule_class_date"`
	SpecialScheduleStartTime datatypes.Time `gorm:"not null;column:special_schedule_start_time" json:"special_schedule_start_time"`
	SpecialScheduleEndTime   datatypes.Time `gorm:"not null;column:special_schedule_end_time" json:"special_schedule_end_time"`

	SpecialScheduleCreatingHodID      uuid.UUID `gorm:"type:uuid;not null;column:special_schedule_creating_hod_id" json:"special_schedule_creating_hod_id"`
	SpecialScheduleTargetDepartmentID uuid.UUID `gorm:"type:uuid;not null;index;column:special_schedule_target_department_id" json:"special_schedule_target_department_id"`

	SpecialScheduleCreatedAt time.Time `gorm:"type:timestamptz;column:special_schedule_created_at;autoCreateTime" json:"special_schedule_created_at"`
}

func (SpecialScheduleModel) TableName() string { return "special_schedules" }

func (s *SpecialScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if s.SpecialScheduleID == uuid.Nil {
		s.SpecialScheduleID = uuid.New()
	}
	return nil
}
