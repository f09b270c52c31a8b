// file: internals/features/academics/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DepartmentModel struct {
	DepartmentID   uuid.UUID `gorm:"type:uuid;primaryKey;column:department_id" json:"department_id"`
	DepartmentName string    `gorm:"type:varchar(150);not null;uniqueIndex;column:department_name" json:"department_name"`

	DepartmentCreatedAt time.Time `gorm:"type:timestamptz;column:department_created_at;autoCreateTime" json:"department_created_at"`
	DepartmentUpdatedAt time.Time `gorm:"type:timestamptz;column:department_updated_at;autoUpdateTime" json:"department_updated_at"`
}

func (DepartmentModel) TableName() string { return "departments" }

func (d *DepartmentModel) BeforeCreate(tx *gorm.DB) error {
	if d.DepartmentID == uuid.Nil {
		d.DepartmentID = uuid.New()
	}
	return nil
}
