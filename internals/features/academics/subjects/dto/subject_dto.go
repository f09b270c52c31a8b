package dto

import (
	"github.com/google/uuid"
)

type CreateSubjectRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=200"`
	Code        string `json:"code" validate:"required,min=2,max=20"`
	ProgramID   string `json:"program_id" validate:"required,uuid"`
	YearOfStudy int    `json:"year_of_study" validate:"required,min=1"`
}

type UpdateSubjectRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=200"`
	Code        *string `json:"code" validate:"omitempty,min=2,max=20"`
	ProgramID   *string `json:"program_id" validate:"omitempty,uuid"`
	YearOfStudy *int    `json:"year_of_study" validate:"omitempty,min=1"`
}

type SubjectResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	ProgramID   uuid.UUID `json:"program_id"`
	ProgramName string    `json:"program_name"`
	YearOfStudy int       `json:"year_of_study"`
}
