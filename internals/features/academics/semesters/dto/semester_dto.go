package dto

import (
	"time"

	"github.com/google/uuid"

	"lecats_backend/internals/features/academics/semesters/model"
)

type CreateSemesterRequest struct {
	Year           int    `json:"year" validate:"required,min=2000,max=2100"`
	SemesterNumber int    `json:"semester_number" validate:"required,min=1,max=3"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateSemesterRequest struct {
	Year           *int    `json:"year" validate:"omitempty,min=2000,max=2100"`
	SemesterNumber *int    `json:"semester_number" validate:"omitempty,min=1,max=3"`
	StartDate      *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type SemesterResponse struct {
	ID             uuid.UUID `json:"id"`
	Year           int       `json:"year"`
	SemesterNumber int       `json:"semester_number"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	IsActive       bool      `json:"is_active"`
}

func ToSemesterResponse(m model.SemesterModel) SemesterResponse {
	return SemesterResponse{
		ID:             m.SemesterID,
		Year:           m.SemesterYear,
		SemesterNumber: m.SemesterNumber,
		StartDate:      time.Time(m.SemesterStartDate).Format("2006-01-02"),
		EndDate:        time.Time(m.SemesterEndDate).Format("2006-01-02"),
		IsActive:       m.SemesterIsActive,
	}
}
