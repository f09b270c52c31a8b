package database

import (
	"gorm.io/gorm"

	departmentModel "lecats_backend/internals/features/academics/departments/model"
	programModel "lecats_backend/internals/features/academics/programs/model"
	semesterModel "lecats_backend/internals/features/academics/semesters/model"
	subjectModel "lecats_backend/internals/features/academics/subjects/model"
	attendanceModel "lecats_backend/internals/features/attendance/attendance/model"
	scheduleModel "lecats_backend/internals/features/timetable/schedule/model"
	authModel "lecats_backend/internals/features/users/auth/model"
	userModel "lecats_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel, urut dari entitas induk
// ke anak supaya foreign key logis tersedia duluan.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&departmentModel.DepartmentModel{},
		&userModel.UserModel{},
		&programModel.ProgramModel{},
		&subjectModel.SubjectModel{},
		&semesterModel.SemesterModel{},
		&scheduleModel.ClassScheduleModel{},
		&scheduleModel.SpecialScheduleModel{},
		&attendanceModel.AttendanceModel{},
		&authModel.TokenBlacklist{},
	)
}
