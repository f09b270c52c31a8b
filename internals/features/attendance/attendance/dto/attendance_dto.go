package dto

import (
	"time"

	"github.com/google/uuid"
)

type SubmitAttendanceRequest struct {
	ClassScheduleID string `json:"class_schedule_id" validate:"required,uuid"`
	Present         *bool  `json:"present" validate:"required"`
}

// Item antrian verifikasi HOD, diperkaya nama lecturer/CR/subject + excuse.
type PendingAttendanceResponse struct {
	ID            uuid.UUID `json:"id"`
	LecturerName  string    `json:"lecturer_name"`
	CRName        string    `json:"cr_name"`
	Course        string    `json:"course"`
	Present       bool      `json:"present"`
	Timestamp     time.Time `json:"timestamp"`
	ExcuseComment *string   `json:"excuse_comment"`
	ExcuseFile    *string   `json:"excuse_file"`
}

type AttendanceHistoryItem struct {
	ID            uuid.UUID `json:"id"`
	Present       bool      `json:"present"`
	Timestamp     time.Time `json:"timestamp"`
	Verified      bool      `json:"verified"`
	CRName        string    `json:"cr_name"`
	ExcuseFile    *string   `json:"excuse_file"`
	ExcuseComment *string   `json:"excuse_comment"`
}

type LecturerScheduleItem struct {
	ID                uuid.UUID               `json:"id"`
	SubjectName       string                  `json:"subject_name"`
	DayOfWeek         string                  `json:"day_of_week"`
	StartTime         string                  `json:"start_time"`
	EndTime           string                  `json:"end_time"`
	AttendanceHistory []AttendanceHistoryItem `json:"attendance_history"`
}

type LecturerDashboardResponse struct {
	Schedule []LecturerScheduleItem `json:"schedule"`
}

type TodayScheduleItem struct {
	ScheduleID   uuid.UUID `json:"schedule_id"`
	SubjectName  string    `json:"subject_name"`
	LecturerName string    `json:"lecturer_name"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Submitted    bool      `json:"submitted"`
}
