package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/app/repositories"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
	"github.com/oyelaran/studentbase/internal/pkg/helpers"
	"github.com/oyelaran/studentbase/internal/pkg/logger"
	"github.com/oyelaran/studentbase/internal/pkg/validation"
)

const maxMatricAssignAttempts = 3

// StudentService defines student profile operations
type StudentService interface {
	List(ctx context.Context, page, size int) (*dto.StudentListResponse, error)
	GetByUsername(ctx context.Context, username string) (*dto.StudentResponse, error)
	GetByMatricNumber(ctx context.Context, matricNumber string) (*dto.StudentResponse, error)
	GetProfile(ctx context.Context, studentID string) (*dto.StudentResponse, error)
	UpdateName(ctx context.Context, studentID string, req *dto.UpdateNameRequest) (*dto.StudentResponse, error)
	AssignMatricNumber(ctx context.Context, username string) (*dto.MatricNumberResponse, error)
}

// studentService implements StudentService
type studentService struct {
	studentRepo repositories.IStudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.IStudentRepository) StudentService {
	return &studentService{
		studentRepo: studentRepo,
	}
}

// List returns a page of students ordered by creation time
func (s *studentService) List(ctx context.Context, page, size int) (*dto.StudentListResponse, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	students, err := s.studentRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}

	total, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count students: %w", err)
	}

	response := dto.NewStudentListResponse(students, helpers.NewPaginationInfo(total, page, limit))
	return &response, nil
}

// GetByUsername returns the student with the given username
func (s *studentService) GetByUsername(ctx context.Context, username string) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// GetByMatricNumber returns the student with the given matric number
func (s *studentService) GetByMatricNumber(ctx context.Context, matricNumber string) (*dto.StudentResponse, error) {
	if !validation.CompiledPatterns.MatricNumber.MatchString(matricNumber) {
		return nil, apperrors.NewBadRequestError("invalid matric number format")
	}

	student, err := s.studentRepo.GetByMatricNumber(ctx, matricNumber)
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// GetProfile returns the profile of the authenticated student
func (s *studentService) GetProfile(ctx context.Context, studentID string) (*dto.StudentResponse, error) {
	id, err := parseStudentID(studentID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// UpdateName changes the display name of the authenticated student
func (s *studentService) UpdateName(ctx context.Context, studentID string, req *dto.UpdateNameRequest) (*dto.StudentResponse, error) {
	id, err := parseStudentID(studentID)
	if err != nil {
		return nil, err
	}

	valid := validation.NewStringValidation(req.Name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()
	if !valid {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("name must be %d-%d characters long", validation.NameMinLength, validation.NameMaxLength))
	}

	student, err := s.studentRepo.UpdateName(ctx, id, req.Name)
	if err != nil {
		return nil, err
	}

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// AssignMatricNumber assigns the next sequential matric number to a student.
// Concurrent assignments can collide on the unique index, so the sequence
// is recomputed and retried a few times before giving up.
func (s *studentService) AssignMatricNumber(ctx context.Context, username string) (*dto.MatricNumberResponse, error) {
	for attempt := 0; attempt < maxMatricAssignAttempts; attempt++ {
		count, err := s.studentRepo.CountAssignedMatricNumbers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count assigned matric numbers: %w", err)
		}

		matricNumber := fmt.Sprintf("MAT%05d", count+1)

		student, err := s.studentRepo.AssignMatricNumber(ctx, username, matricNumber)
		if err != nil {
			if errors.Is(err, apperrors.ErrMatricNumberExists) {
				logger.Warn().Str("matricNumber", matricNumber).Msg("Matric number collision, retrying")
				continue
			}
			return nil, err
		}

		logger.Info().Str("username", username).Str("matricNumber", matricNumber).Msg("Matric number assigned")

		return &dto.MatricNumberResponse{
			Username:     student.Username,
			MatricNumber: matricNumber,
		}, nil
	}

	return nil, apperrors.ErrMatricNumberExists
}
