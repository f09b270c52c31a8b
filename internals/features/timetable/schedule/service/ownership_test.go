package service

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
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
	"lecats_backend/internals/features/timetable/schedule/model"
	userModel "lecats_backend/internals/features/users/user/model"
)

func TestDepartmentIDForSchedule(t *testing.T) {
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
		&model.ClassScheduleModel{},
	))

	dept := departmentModel.DepartmentModel{DepartmentName: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)
	lecturer := userModel.UserModel{
		UserFullName: "Dr. Lintang", UserEmail: "l@example.com",
		UserPassword: "x", UserRole: "Lecturer", UserDepartmentID: &dept.DepartmentID,
	}
	require.NoError(t, db.Create(&lecturer).Error)
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
	schedule := model.ClassScheduleModel{
		ClassScheduleSubjectID:  subject.SubjectID,
		ClassScheduleLecturerID: lecturer.UserID,
		ClassScheduleSemesterID: sem.SemesterID,
		ClassScheduleDayOfWeek:  "Monday",
		ClassScheduleStartTime:  datatypes.NewTime(9, 0, 0, 0),
		ClassScheduleEndTime:    datatypes.NewTime(11, 0, 0, 0),
	}
	require.NoError(t, db.Create(&schedule).Error)

	got, err := DepartmentIDForSchedule(db, schedule.ClassScheduleID)
	require.NoError(t, err)
	assert.Equal(t, dept.DepartmentID, got)

	_, err = DepartmentIDForSchedule(db, uuid.New())
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
