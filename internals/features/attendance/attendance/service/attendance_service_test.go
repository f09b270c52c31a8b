package service

import (
	"errors"
	"strings"
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
	"lecats_backend/internals/features/attendance/attendance/model"
	scheduleModel "lecats_backend/internals/features/timetable/schedule/model"
	userModel "lecats_backend/internals/features/users/user/model"
	"lecats_backend/internals/helpers/storage"
)

type fixture struct {
	db *gorm.DB

	deptID      uuid.UUID
	otherDeptID uuid.UUID
	lecturerID  uuid.UUID
	crID        uuid.UUID
	scheduleID  uuid.UUID
}

func newFixture(t *testing.T) *fixture {
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
		&model.AttendanceModel{},
	))

	dept := departmentModel.DepartmentModel{DepartmentName: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)
	otherDept := departmentModel.DepartmentModel{DepartmentName: "Mathematics"}
	require.NoError(t, db.Create(&otherDept).Error)

	lecturer := userModel.UserModel{
		UserFullName:     "Dr. Lintang",
		UserEmail:        "lintang@example.com",
		UserPassword:     "x",
		UserRole:         "Lecturer",
		UserDepartmentID: &dept.DepartmentID,
	}
	require.NoError(t, db.Create(&lecturer).Error)

	cr := userModel.UserModel{
		UserFullName:     "Citra",
		UserEmail:        "citra@example.com",
		UserPassword:     "x",
		UserRole:         "CR",
		UserDepartmentID: &dept.DepartmentID,
	}
	require.NoError(t, db.Create(&cr).Error)

	program := programModel.ProgramModel{
		ProgramName:          "BSc Computer Science",
		ProgramLevel:         "Bachelor",
		ProgramDepartmentID:  dept.DepartmentID,
		ProgramDurationYears: 4,
	}
	require.NoError(t, db.Create(&program).Error)

	subject := subjectModel.SubjectModel{
		SubjectName:        "Algorithms",
		SubjectCode:        "CS201",
		SubjectProgramID:   program.ProgramID,
		SubjectYearOfStudy: 2,
	}
	require.NoError(t, db.Create(&subject).Error)

	sem := semesterModel.SemesterModel{
		SemesterYear:      2026,
		SemesterNumber:    1,
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

	return &fixture{
		db:          db,
		deptID:      dept.DepartmentID,
		otherDeptID: otherDept.DepartmentID,
		lecturerID:  lecturer.UserID,
		crID:        cr.UserID,
		scheduleID:  schedule.ClassScheduleID,
	}
}

func fiberCode(t *testing.T, err error) int {
	t.Helper()
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	return fe.Code
}

func TestSubmitCreatesRow(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, true, now)
	require.NoError(t, err)
	assert.True(t, att.AttendancePresent)
	assert.False(t, att.AttendanceVerified)
	assert.Equal(t, now, att.AttendanceTimestamp.UTC())
}

func TestSubmitDuplicateSameDayRejected(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, true, now)
	require.NoError(t, err)

	_, err = Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now.Add(2*time.Hour))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusConflict, fiberCode(t, err))

	var count int64
	f.db.Model(&model.AttendanceModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSubmitNextDayAllowed(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	_, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, true, now)
	require.NoError(t, err)
	_, err = Submit(f.db, f.crID, f.deptID, f.scheduleID, true, now.Add(24*time.Hour))
	require.NoError(t, err)

	var count int64
	f.db.Model(&model.AttendanceModel{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestSubmitOtherDepartmentForbidden(t *testing.T) {
	f := newFixture(t)

	_, err := Submit(f.db, f.crID, f.otherDeptID, f.scheduleID, true, time.Now())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestSubmitUnknownScheduleNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := Submit(f.db, f.crID, f.deptID, uuid.New(), true, time.Now())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func newStore(t *testing.T) storage.BlobStore {
	t.Helper()
	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestAttachExcuseHappyPath(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	updated, err := AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"Sakit, ada surat dokter", "surat.pdf", strings.NewReader("%PDF-1.4"), now.Add(3*time.Hour))
	require.NoError(t, err)

	require.NotNil(t, updated.AttendanceExcuseFile)
	assert.Equal(t, "excuse_"+att.AttendanceID.String()+"_surat.pdf", *updated.AttendanceExcuseFile)
	require.NotNil(t, updated.AttendanceExcuseComment)
	assert.Equal(t, "Sakit, ada surat dokter", *updated.AttendanceExcuseComment)

	_, err = store.Path(*updated.AttendanceExcuseFile)
	assert.NoError(t, err)
}

func TestAttachExcuseWindowBoundary(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	// tepat 24 jam: masih dalam jendela
	_, err = AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"izin", "a.pdf", strings.NewReader("x"), now.Add(24*time.Hour))
	require.NoError(t, err)

	// lewat satu detik: ditolak
	_, err = AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"izin", "b.pdf", strings.NewReader("x"), now.Add(24*time.Hour+time.Second))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestAttachExcuseNotOwnerForbidden(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Now().UTC()

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	_, err = AttachExcuse(f.db, store, uuid.New(), att.AttendanceID,
		"izin", "a.pdf", strings.NewReader("x"), now)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))
}

func TestAttachExcuseRejectsNonPDF(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Now().UTC()

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	_, err = AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"izin", "foto.jpg", strings.NewReader("x"), now)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusBadRequest, fiberCode(t, err))
}

func TestAttachExcuseReuploadReplacesFile(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Now().UTC()

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	first, err := AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"v1", "lama.pdf", strings.NewReader("x"), now)
	require.NoError(t, err)
	oldName := *first.AttendanceExcuseFile

	second, err := AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"v2", "baru.pdf", strings.NewReader("y"), now.Add(time.Hour))
	require.NoError(t, err)
	newName := *second.AttendanceExcuseFile

	assert.NotEqual(t, oldName, newName)
	_, err = store.Path(newName)
	assert.NoError(t, err)
	// file lama sudah dibersihkan
	_, err = store.Path(oldName)
	assert.Error(t, err)
}

func TestAttachExcuseSameNameReuploadKeepsBlobOnRowFailure(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Now().UTC()

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	first, err := AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"v1", "surat.pdf", strings.NewReader("lama"), now)
	require.NoError(t, err)
	name := *first.AttendanceExcuseFile

	// blokir update baris: upload ulang dengan nama sama akan gagal di DB
	require.NoError(t, f.db.Exec(
		`CREATE TRIGGER block_attendance_update BEFORE UPDATE ON attendances
		 BEGIN SELECT RAISE(ABORT, 'blocked'); END`).Error)

	_, err = AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"v2", "surat.pdf", strings.NewReader("baru"), now.Add(time.Hour))
	require.Error(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, fiberCode(t, err))

	// baris ter-commit masih merujuk file ini: tidak boleh ikut terhapus
	_, err = store.Path(name)
	assert.NoError(t, err)
}

func TestAttachExcuseDanglingScheduleNotFound(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Now().UTC()

	orphan := model.AttendanceModel{
		AttendanceClassScheduleID: uuid.New(),
		AttendanceCRID:            f.crID,
		AttendancePresent:         false,
		AttendanceTimestamp:       now,
		AttendanceSubmissionDate:  datatypes.Date(time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)),
	}
	require.NoError(t, f.db.Create(&orphan).Error)

	_, err := AttachExcuse(f.db, store, f.lecturerID, orphan.AttendanceID,
		"izin", "a.pdf", strings.NewReader("x"), now)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestAttachExcuseUnknownAttendanceNotFound(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)

	_, err := AttachExcuse(f.db, store, f.lecturerID, uuid.New(),
		"izin", "a.pdf", strings.NewReader("x"), time.Now())
	require.Error(t, err)
	assert.Equal(t, fiber.StatusNotFound, fiberCode(t, err))
}

func TestVerifyFlipsFlagIdempotently(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, true, now)
	require.NoError(t, err)

	first, err := Verify(f.db, f.deptID, att.AttendanceID)
	require.NoError(t, err)
	assert.True(t, first.AttendanceVerified)

	// verifikasi ulang bukan error
	second, err := Verify(f.db, f.deptID, att.AttendanceID)
	require.NoError(t, err)
	assert.True(t, second.AttendanceVerified)
}

func TestVerifyOtherDepartmentForbidden(t *testing.T) {
	f := newFixture(t)
	now := time.Now().UTC()

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, true, now)
	require.NoError(t, err)

	_, err = Verify(f.db, f.otherDeptID, att.AttendanceID)
	require.Error(t, err)
	assert.Equal(t, fiber.StatusForbidden, fiberCode(t, err))

	// baris tidak berubah
	var reloaded model.AttendanceModel
	require.NoError(t, f.db.First(&reloaded, "attendance_id = ?", att.AttendanceID).Error)
	assert.False(t, reloaded.AttendanceVerified)
}

func TestLifecycleSubmitExcuseVerify(t *testing.T) {
	f := newFixture(t)
	store := newStore(t)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	att, err := Submit(f.db, f.crID, f.deptID, f.scheduleID, false, now)
	require.NoError(t, err)

	_, err = AttachExcuse(f.db, store, f.lecturerID, att.AttendanceID,
		"Rapat fakultas", "undangan.pdf", strings.NewReader("%PDF"), now.Add(time.Hour))
	require.NoError(t, err)

	verified, err := Verify(f.db, f.deptID, att.AttendanceID)
	require.NoError(t, err)
	assert.True(t, verified.AttendanceVerified)
	require.NotNil(t, verified.AttendanceExcuseComment)
	assert.Equal(t, "Rapat fakultas", *verified.AttendanceExcuseComment)
}

func TestSubmitErrorIsFiberError(t *testing.T) {
	f := newFixture(t)
	_, err := Submit(f.db, f.crID, f.otherDeptID, f.scheduleID, true, time.Now())

	var fe *fiber.Error
	assert.True(t, errors.As(err, &fe))
}
