// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`

	UserFullName string `gorm:"type:varchar(150);not null;column:user_full_name" json:"user_full_name"`
	UserEmail    string `gorm:"type:varchar(150);not null;uniqueIndex;column:user_email" json:"user_email"`
	UserPassword string `gorm:"type:varchar(256);not null;column:user_password" json:"-"`

	// Salah satu dari Admin/HOD/Lecturer/CR (lihat internals/constants)
	UserRole string `gorm:"type:varchar(20);not null;column:user_role" json:"user_role"`

	// Nullable: Admin tidak terikat department
	UserDepartmentID *uuid.UUID `gorm:"type:uuid;column:user_department_id" json:"user_department_id,omitempty"`

	UserCreatedAt time.Time `gorm:"type:timestamptz;column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"type:timestamptz;column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == uuid.Nil {
		u.UserID = uuid.New()
	}
	return nil
}
