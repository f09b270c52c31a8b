package dto

import (
	"github.com/google/uuid"

	"lecats_backend/internals/features/academics/departments/model"
)

type CreateDepartmentRequest struct {
	Name string `json:"name" validate:"required,min=2,max=150"`
}

type UpdateDepartmentRequest struct {
	Name *string `json:"name" validate:"omitempty,min=2,max=150"`
}

// Nama field publik stabil: id + name (katalog publik & admin sama datanya)
type DepartmentResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func ToDepartmentResponse(m model.DepartmentModel) DepartmentResponse {
	return DepartmentResponse{ID: m.DepartmentID, Name: m.DepartmentName}
}
