package dto

type GenerateReportRequest struct {
	StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate      string `json:"end_date" validate:"required,datetime=2006-01-02"`
	DepartmentID string `json:"department_id" validate:"required,uuid"`
}

type LecturerBreakdown struct {
	LecturerName    string  `json:"lecturer_name"`
	TotalClasses    int     `json:"total_classes"`
	ClassesAttended int     `json:"classes_attended"`
	ClassesMissed   int     `json:"classes_missed"`
	AttendanceRate  float64 `json:"attendance_rate"`
}

type ReportSummary struct {
	DepartmentName        string  `json:"department_name"`
	Period                string  `json:"period"`
	TotalClassesRecorded  int     `json:"total_classes_recorded"`
	OverallAttendanceRate float64 `json:"overall_attendance_rate"`
}

type AttendanceReport struct {
	Summary   ReportSummary       `json:"summary"`
	Breakdown []LecturerBreakdown `json:"breakdown"`
}
