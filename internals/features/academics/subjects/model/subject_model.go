// file: internals/features/academics/subjects/model/subject_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectModel struct {
	SubjectID        uuid.UUID `gorm:"type:uuid;primaryKey;column:subject_id" json:"subject_id"`
	SubjectName      string    `gorm:"type:varchar(200);not null;column:subject_name" json:"subject_name"`
	SubjectCode      string    `gorm:"type:varchar(20);not null;uniqueIndex;column:subject_code" json:"subject_code"`
	SubjectProgramID uuid.UUID `gorm:"type:uuid;not null;index;column:subject_program_id" json:"subject_program_id"`

	SubjectYearOfStudy int `gorm:"not null;default:1;column:subject_year_of_study" json:"subject_year_of_study"`

	SubjectCreatedAt time.Time `gorm:"type:timestamptz;column:subject_created_at;autoCreateTime" json:"subject_created_at"`
	SubjectUpdatedAt time.Time `gorm:"type:timestamptz;column:subject_updated_at;autoUpdateTime" json:"subject_updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

func (s *SubjectModel) BeforeCreate(tx *gorm.DB) error {
	if s.SubjectID == uuid.Nil {
		s.SubjectID = uuid.New()
	}
	return nil
}
