// file: internals/features/academics/semesters/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SemesterModel struct {
	SemesterID uuid.UUID `gorm:"type:uuid;primaryKey;column:semester_id" json:"semester_id"`

	SemesterYear   int `gorm:"not null;uniqueIndex:uq_semesters_year_number;column:semester_year" json:"semester_year"`
	SemesterNumber int `gorm:"not null;uniqueIndex:uq_semesters_year_number;column:semester_number" json:"semester_number"`

	SemesterStartDate datatypes.Date `gorm:"not null;column:semester_start_date" json:"semester_start_date"`
	SemesterEndDate   datatypes.Date `gorm:"not null;column:semester_end_date" json:"semester_end_date"`

	// Maksimal satu semester aktif; transisi lewat service (satu transaksi),
	// bukan constraint DB.
	SemesterIsActive bool `gorm:"not null;default:false;column:semester_is_active" json:"semester_is_active"`

	SemesterCreatedAt time.Time `gorm:"type:timestamptz;column:semester_created_at;autoCreateTime" json:"semester_created_at"`
	SemesterUpdatedAt time.Time `gorm:"type:timestamptz;column:semester_updated_at;autoUpdateTime" json:"semester_updated_at"`
}

func (SemesterModel) TableName() string { return "semesters" }

func (s *SemesterModel) BeforeCreate(tx *gorm.DB) error {
	if s.SemesterID == uuid.Nil {
		s.SemesterID = uuid.New()
	}
	return nil
}
