package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	departmentModel "lecats_backend/internals/features/academics/departments/model"
	programModel "lecats_backend/internals/features/academics/programs/model"
	semesterModel "lecats_backend/internals/features/academics/semesters/model"
	subjectModel "lecats_backend/internals/features/academics/subjects/model"
	attendanceModel "lecats_backend/internals/features/attendance/attendance/model"
	scheduleModel "lecats_backend/internals/features/timetable/schedule/model"
	userModel "lecats_backend/internals/features/users/user/model"
)

func TestBuildReportCountsAreConsistent(t *testing.T) {
	rows := []VerifiedRow{
		{LecturerName: "Dr. A", Present: true},
		{LecturerName: "Dr. A", Present: false},
		{LecturerName: "Dr. A", Present: true},
		{LecturerName: "Dr. B", Present: false},
	}
	report := BuildReport("Computer Science", "2026-01-01 to 2026-06-30", rows)

	assert.Equal(t, 4, report.Summary.TotalClassesRecorded)
	require.Len(t, report.Breakdown, 2)
	for _, b := range report.Breakdown {
		assert.Equal(t, b.TotalClasses, b.ClassesAttended+b.ClassesMissed, b.LecturerName)
	}
}

func TestBuildReportRatesRoundedTwoDecimals(t *testing.T) {
	// 1 dari 3 hadir → 33.333...% dibulatkan ke 33.33
	rows := []VerifiedRow{
		{LecturerName: "Dr. A", Present: true},
		{LecturerName: "Dr. A", Present: false},
		{LecturerName: "Dr. A", Present: false},
	}
	report := BuildReport("CS", "p", rows)

	require.Len(t, report.Breakdown, 1)
	assert.Equal(t, 33.33, report.Breakdown[0].AttendanceRate)
	assert.Equal(t, 33.33, report.Summary.OverallAttendanceRate)
}

func TestBuildReportOverallRateFromSummedTotals(t *testing.T) {
	// A: 1/1, B: 0/3 → overall 1/4 = 25.00, bukan rata-rata rate (50.00)
	rows := []VerifiedRow{
		{LecturerName: "Dr. A", Present: true},
		{LecturerName: "Dr. B", Present: false},
		{LecturerName: "Dr. B", Present: false},
		{LecturerName: "Dr. B", Present: false},
	}
	report := BuildReport("CS", "p", rows)
	assert.Equal(t, 25.00, report.Summary.OverallAttendanceRate)
}

func TestBuildReportSortedByLecturerName(t *testing.T) {
	rows := []VerifiedRow{
		{LecturerName: "Zainal", Present: true},
		{LecturerName: "Agus", Present: true},
		{LecturerName: "Maya", Present: false},
	}
	report := BuildReport("CS", "p", rows)

	require.Len(t, report.Breakdown, 3)
	assert.Equal(t, "Agus", report.Breakdown[0].LecturerName)
	assert.Equal(t, "Maya", report.Breakdown[1].LecturerName)
	assert.Equal(t, "Zainal", report.Breakdown[2].LecturerName)
}

func TestBuildReportEmpty(t *testing.T) {
	report := BuildReport("CS", "p", nil)
	assert.Equal(t, 0, report.Summary.TotalClassesRecorded)
	assert.Equal(t, 0.0, report.Summary.OverallAttendanceRate)
	assert.Empty(t, report.Breakdown)
}

func newReportDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&departmentModel.DepartmentModel{},
		&userModel.UserModel{},
		&programModel.ProgramModel{},
		&subjectModel.SubjectModel{},
		&semesterModel.SemesterModel{},
		&scheduleModel.ClassScheduleModel{},
		&attendanceModel.AttendanceModel{},
	))
	return db
}

// Satu lecturer, satu baris hadir terverifikasi: laporan berisi satu baris
// total=1 attended=1 rate=100.
func TestGenerateSingleVerifiedRow(t *testing.T) {
	db := newReportDB(t)

	dept := departmentModel.DepartmentModel{DepartmentName: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)

	lecturer := userModel.UserModel{
		UserFullName: "Dr. Lintang", UserEmail: "l@example.com",
		UserPassword: "x", UserRole: "Lecturer", UserDepartmentID: &dept.DepartmentID,
	}
	require.NoError(t, db.Create(&lecturer).Error)
	cr := userModel.UserModel{
		UserFullName: "Citra", UserEmail: "c@example.com",
		UserPassword: "x", UserRole: "CR", UserDepartmentID: &dept.DepartmentID,
	}
	require.NoError(t, db.Create(&cr).Error)

	program := programModel.ProgramModel{
		ProgramName: "BSc CS", ProgramLevel: "Bachelor",
		ProgramDepartmentID: dept.DepartmentID, ProgramDurationYears: 4,
	}
	require.NoError(t, db.Create(&program).Error)
	subject := subjectModel.SubjectModel{
		SubjectName: "Algorithms", SubjectCode: "CS201",
		SubjectProgramID: program.ProgramID, SubjectYearOfStudy: 2,
	}
	require.NoError(t, db.Create(&subject).Error)
	sem := semesterModel.SemesterModel{
		SemesterYear: 2026, SemesterNumber: 1,
		SemesterStartDate: datatypes.Date(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		SemesterEndDate:   datatypes.Date(time.Date(2026, 7, 31, 0, 0, 0, 0, time.UTC)),
		SemesterIsActive:  true,
	}
	require.NoError(t, db.Create(&sem).Error)
	schedule := scheduleModel.ClassScheduleModel{
		ClassScheduleSubjectID:  subject.SubjectID,
		ClassScheduleLecturerID: lecturer.UserID,
		ClassScheduleSemesterID: sem.SemesterID,
		ClassScheduleDayOfWeek:  "Monday",
		ClassScheduleStartTime:  datatypes.NewTime(9, 0, 0, 0),
		ClassScheduleEndTime:    datatypes.NewTime(11, 0, 0, 0),
	}
	require.NoError(t, db.Create(&schedule).Error)

	ts := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	att := attendanceModel.AttendanceModel{
		AttendanceClassScheduleID: schedule.ClassScheduleID,
		AttendanceCRID:            cr.UserID,
		AttendancePresent:         true,
		AttendanceTimestamp:       ts,
		AttendanceSubmissionDate:  datatypes.Date(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)),
		AttendanceVerified:        true,
	}
	require.NoError(t, db.Create(&att).Error)

	// baris belum terverifikasi tidak boleh ikut
	unverified := attendanceModel.AttendanceModel{
		AttendanceClassScheduleID: schedule.ClassScheduleID,
		AttendanceCRID:            cr.UserID,
		AttendancePresent:         false,
		AttendanceTimestamp:       ts.Add(24 * time.Hour),
		AttendanceSubmissionDate:  datatypes.Date(time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)),
		AttendanceVerified:        false,
	}
	require.NoError(t, db.Create(&unverified).Error)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	report, err := Generate(db, dept.DepartmentID, start, end)
	require.NoError(t, err)

	assert.Equal(t, "Computer Science", report.Summary.DepartmentName)
	assert.Equal(t, "2026-03-01 to 2026-03-31", report.Summary.Period)
	assert.Equal(t, 1, report.Summary.TotalClassesRecorded)
	assert.Equal(t, 100.00, report.Summary.OverallAttendanceRate)

	require.Len(t, report.Breakdown, 1)
	b := report.Breakdown[0]
	assert.Equal(t, "Dr. Lintang", b.LecturerName)
	assert.Equal(t, 1, b.TotalClasses)
	assert.Equal(t, 1, b.ClassesAttended)
	assert.Equal(t, 0, b.ClassesMissed)
	assert.Equal(t, 100.00, b.AttendanceRate)
}

func TestGenerateUnknownDepartment(t *testing.T) {
	db := newReportDB(t)
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err := Generate(db, uuid.New(), start, start)
	assert.Error(t, err)
}
