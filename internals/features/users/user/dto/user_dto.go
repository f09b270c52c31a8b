package dto

import (
	"github.com/google/uuid"

	"lecats_backend/internals/features/users/user/model"
)

type CreateUserRequest struct {
	FullName     string  `json:"full_name" validate:"required,min=3,max=150"`
	Email        string  `json:"email" validate:"required,email"`
	Password     string  `json:"password" validate:"required,min=6"`
	Role         string  `json:"role" validate:"required,oneof=Admin HOD Lecturer CR"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
}

type UpdateUserRequest struct {
	FullName     *string `json:"full_name" validate:"omitempty,min=3,max=150"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Role         *string `json:"role" validate:"omitempty,oneof=Admin HOD Lecturer CR"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
}

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	DepartmentName string    `json:"department_name"`
}

func ToUserResponse(u model.UserModel, departmentName string) UserResponse {
	if departmentName == "" {
		departmentName = "N/A"
	}
	return UserResponse{
		ID:             u.UserID,
		FullName:       u.UserFullName,
		Email:          u.UserEmail,
		Role:           u.UserRole,
		DepartmentName: departmentName,
	}
}
