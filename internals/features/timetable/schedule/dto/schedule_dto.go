package dto

import (
	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	SubjectID  string `json:"subject_id" validate:"required,uuid"`
	LecturerID string `json:"lecturer_id" validate:"required,uuid"`
	DayOfWeek  string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	StartTime  string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime    string `json:"end_time" validate:"required,datetime=15:04"`
}

type ScheduleResponse struct {
	ID           uuid.UUID `json:"id"`
	SubjectName  string    `json:"subject_name"`
	LecturerName string    `json:"lecturer_name"`
	DayOfWeek    string    `json:"day_of_week"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
}

// Pilihan untuk form timetable HOD (lecturer & subject dalam department-nya)
type LecturerOption struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
}

type SubjectOption struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type TimetableDataResponse struct {
	Lecturers []LecturerOption `json:"lecturers"`
	Subjects  []SubjectOption  `json:"subjects"`
}

type CreateSpecialScheduleRequest struct {
	SubjectID          string `json:"subject_id" validate:"required,uuid"`
	LecturerID         string `json:"lecturer_id" validate:"required,uuid"`
	ClassDate          string `json:"class_date" validate:"required,datetime=2006-01-02"`
	StartTime          string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime            string `json:"end_time" validate:"required,datetime=15:04"`
	TargetDepartmentID string `json:"target_department_id" validate:"required,uuid"`
}

type SpecialScheduleResponse struct {
	ID           uuid.UUID `json:"id"`
	SubjectName  string    `json:"subject_name"`
	LecturerName string    `json:"lecturer_name"`
	ClassDate    string    `json:"class_date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
}
