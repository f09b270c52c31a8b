package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"lecats_backend/internals/features/academics/departments/model"
	programModel "lecats_backend/internals/features/academics/programs/model"
	userModel "lecats_backend/internals/features/users/user/model"
)

func newDepartmentApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.DepartmentModel{},
		&programModel.ProgramModel{},
		&userModel.UserModel{},
	))

	ctl := NewDepartmentController(db)
	app := fiber.New()
	app.Delete("/departments/:id", ctl.Delete)
	return app, db
}

func doDelete(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodDelete, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func TestDeleteDepartmentGuardedByPrograms(t *testing.T) {
	app, db := newDepartmentApp(t)

	dept := model.DepartmentModel{DepartmentName: "Computer Science"}
	require.NoError(t, db.Create(&dept).Error)
	program := programModel.ProgramModel{
		ProgramName: "BSc CS", ProgramLevel: "Bachelor",
		ProgramDepartmentID: dept.DepartmentID, ProgramDurationYears: 4,
	}
	require.NoError(t, db.Create(&program).Error)

	// masih ada program: ditolak
	resp := doDelete(t, app, "/departments/"+dept.DepartmentID.String())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	var count int64
	db.Model(&model.DepartmentModel{}).Count(&count)
	assert.EqualValues(t, 1, count)

	// tanpa dependent: berhasil
	require.NoError(t, db.Delete(&program).Error)
	resp = doDelete(t, app, "/departments/"+dept.DepartmentID.String())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	db.Model(&model.DepartmentModel{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestDeleteDepartmentGuardedByUsers(t *testing.T) {
	app, db := newDepartmentApp(t)

	dept := model.DepartmentModel{DepartmentName: "Mathematics"}
	require.NoError(t, db.Create(&dept).Error)
	user := userModel.UserModel{
		UserFullName: "Dr. Lintang", UserEmail: "l@example.com",
		UserPassword: "x", UserRole: "Lecturer", UserDepartmentID: &dept.DepartmentID,
	}
	require.NoError(t, db.Create(&user).Error)

	resp := doDelete(t, app, "/departments/"+dept.DepartmentID.String())
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)

	require.NoError(t, db.Delete(&user).Error)
	resp = doDelete(t, app, "/departments/"+dept.DepartmentID.String())
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDeleteDepartmentUnknownID(t *testing.T) {
	app, _ := newDepartmentApp(t)

	resp := doDelete(t, app, "/departments/2f5b1c0a-9a1f-4c80-9a51-3dd3f6d6e000")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doDelete(t, app, "/departments/bukan-uuid")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
