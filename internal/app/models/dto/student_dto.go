package dto

import (
	"time"

	"github.com/oyelaran/studentbase/internal/app/models"
)

// RegisterRequest represents a student registration payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=255,username" example:"ada.lovelace"`
	Password string `json:"password" binding:"required,min=8" example:"Password123"`
	Name     string `json:"name" binding:"required,min=2,max=255" example:"Ada Lovelace"`
}

// UpdateNameRequest represents a profile name update payload
type UpdateNameRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255" example:"Ada King"`
}

// StudentResponse represents a student in API responses
type StudentResponse struct {
	ID           string    `json:"id" example:"0b1f8c1e-7f43-4c8a-9f5d-2a9a6f6f3b1c"`
	Username     string    `json:"username" example:"ada.lovelace"`
	Name         string    `json:"name" example:"Ada Lovelace"`
	MatricNumber *string   `json:"matricNumber,omitempty" example:"MAT00042"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// StudentListResponse represents a paginated list of students
type StudentListResponse struct {
	Students   []StudentResponse `json:"students"`
	Pagination PaginationInfo    `json:"pagination"`
}

// MatricNumberResponse represents the result of a matric number assignment
type MatricNumberResponse struct {
	Username     string `json:"username" example:"ada.lovelace"`
	MatricNumber string `json:"matricNumber" example:"MAT00042"`
}

// NewStudentResponse maps a student model to its response DTO
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:           student.ID.String(),
		Username:     student.Username,
		Name:         student.Name,
		MatricNumber: student.MatricNumber,
		CreatedAt:    student.CreatedAt,
		UpdatedAt:    student.UpdatedAt,
	}
}

// NewStudentListResponse maps student models to a paginated list response
func NewStudentListResponse(students []*models.Student, pagination PaginationInfo) StudentListResponse {
	items := make([]StudentResponse, 0, len(students))
	for _, student := range students {
		items = append(items, NewStudentResponse(student))
	}

	return StudentListResponse{
		Students:   items,
		Pagination: pagination,
	}
}
