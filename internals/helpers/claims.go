package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Kunci Locals yang diisi middleware auth. Seragam untuk semua handler.
const (
	LocUserID       = "user_id"
	LocUserRole     = "userRole"
	LocFullName     = "full_name"
	LocDepartmentID = "department_id"
)

// GetUserUUID membaca user_id dari Locals. Seed admin tidak punya baris user,
// jadi endpoint yang butuh identitas baris DB wajib lewat sini.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID in context")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid UUID format")
	}
	return id, nil
}

// GetDepartmentUUID membaca department_id dari klaim (HOD / CR / Lecturer).
func GetDepartmentUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals(LocDepartmentID).(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "No department in token claims")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Invalid department ID in token claims")
	}
	return id, nil
}

func GetFullName(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocFullName).(string); ok {
		return v
	}
	return ""
}

func GetRole(c *fiber.Ctx) string {
	if v, ok := c.Locals(LocUserRole).(string); ok {
		return v
	}
	return ""
}
