// file: internals/features/academics/programs/model/program_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgramModel struct {
	ProgramID           uuid.UUID `gorm:"type:uuid;primaryKey;column:program_id" json:"program_id"`
	ProgramName         string    `gorm:"type:varchar(200);not null;uniqueIndex;column:program_name" json:"program_name"`
	ProgramLevel        string    `gorm:"type:varchar(50);not null;column:program_level" json:"program_level"`
	ProgramDepartmentID uuid.UUID `gorm:"type:uuid;not null;index;column:program_department_id" json:"program_department_id"`

	// Lama studi dalam tahun; year_of_study subject divalidasi terhadap ini
	ProgramDurationYears int `gorm:"not null;column:program_duration_years" json:"program_duration_years"`

	ProgramCreatedAt time.Time `gorm:"type:timestamptz;column:program_created_at;autoCreateTime" json:"program_created_at"`
	ProgramUpdatedAt time.Time `gorm:"type:timestamptz;column:program_updated_at;autoUpdateTime" json:"program_updated_at"`
}

func (ProgramModel) TableName() string { return "programs" }

func (p *ProgramModel) BeforeCreate(tx *gorm.DB) error {
	if p.ProgramID == uuid.Nil {
		p.ProgramID = uuid.New()
	}
	return nil
}
