package dto

import (
	"github.com/google/uuid"
)

type CreateProgramRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=200"`
	Level           string `json:"level" validate:"required,max=50"`
	DepartmentID    string `json:"department_id" validate:"required,uuid"`
	DurationInYears int    `json:"duration_in_years" validate:"required,min=1,max=10"`
}

type UpdateProgramRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=2,max=200"`
	Level           *string `json:"level" validate:"omitempty,max=50"`
	DepartmentID    *string `json:"department_id" validate:"omitempty,uuid"`
	DurationInYears *int    `json:"duration_in_years" validate:"omitempty,min=1,max=10"`
}

type ProgramResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Level           string    `json:"level"`
	DepartmentID    uuid.UUID `json:"department_id"`
	DepartmentName  string    `json:"department_name"`
	DurationInYears int       `json:"duration_in_years"`
}
