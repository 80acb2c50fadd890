package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/oyelaran/studentbase/internal/app/models"
	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
)

func seedStudents(repo *fakeStudentRepository, count int) []*models.Student {
	students := make([]*models.Student, 0, count)
	for i := 0; i < count; i++ {
		students = append(students, repo.add(&models.Student{
			Username: fmt.Sprintf("student%02d", i),
			Password: "hash",
			Name:     fmt.Sprintf("Student %02d", i),
		}))
	}
	return students
}

func TestList(t *testing.T) {
	repo := newFakeStudentRepository()
	seedStudents(repo, 25)
	svc := NewStudentService(repo)

	resp, err := svc.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Students) != 10 {
		t.Errorf("len(Students) = %d, want 10", len(resp.Students))
	}
	if resp.Pagination.TotalItems != 25 {
		t.Errorf("TotalItems = %d, want 25", resp.Pagination.TotalItems)
	}
	if resp.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", resp.Pagination.TotalPages)
	}
	if resp.Pagination.CurrentPage != 2 {
		t.Errorf("CurrentPage = %d, want 2", resp.Pagination.CurrentPage)
	}
}

func TestListEmpty(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepository())

	resp, err := svc.List(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Students) != 0 {
		t.Errorf("len(Students) = %d, want 0", len(resp.Students))
	}
	if resp.Pagination.TotalItems != 0 {
		t.Errorf("TotalItems = %d, want 0", resp.Pagination.TotalItems)
	}
}

func TestGetByUsername(t *testing.T) {
	repo := newFakeStudentRepository()
	repo.add(&models.Student{Username: "ada.lovelace", Password: "hash", Name: "Ada Lovelace"})
	svc := NewStudentService(repo)

	resp, err := svc.GetByUsername(context.Background(), "ada.lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Name != "Ada Lovelace" {
		t.Errorf("Name = %q, want Ada Lovelace", resp.Name)
	}

	if _, err := svc.GetByUsername(context.Background(), "nobody"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}

func TestGetByMatricNumber(t *testing.T) {
	repo := newFakeStudentRepository()
	repo.add(&models.Student{
		Username:     "ada.lovelace",
		Password:     "hash",
		Name:         "Ada Lovelace",
		MatricNumber: ptr("MAT00001"),
	})
	svc := NewStudentService(repo)

	resp, err := svc.GetByMatricNumber(context.Background(), "MAT00001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Username != "ada.lovelace" {
		t.Errorf("Username = %q, want ada.lovelace", resp.Username)
	}

	if _, err := svc.GetByMatricNumber(context.Background(), "MAT99999"); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}

	_, err = svc.GetByMatricNumber(context.Background(), "not-a-matric")
	if !errors.Is(err, apperrors.ErrBadRequest) {
		t.Errorf("expected ErrBadRequest for malformed matric number, got %v", err)
	}
}

func TestGetProfile(t *testing.T) {
	repo := newFakeStudentRepository()
	student := repo.add(&models.Student{Username: "ada.lovelace", Password: "hash", Name: "Ada Lovelace"})
	svc := NewStudentService(repo)

	resp, err := svc.GetProfile(context.Background(), student.ID.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Username != "ada.lovelace" {
		t.Errorf("Username = %q, want ada.lovelace", resp.Username)
	}

	if _, err := svc.GetProfile(context.Background(), "not-a-uuid"); !errors.Is(err, apperrors.ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for malformed ID, got %v", err)
	}

	if _, err := svc.GetProfile(context.Background(), uuid.New().String()); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound for unknown ID, got %v", err)
	}
}

func TestUpdateName(t *testing.T) {
	repo := newFakeStudentRepository()
	student := repo.add(&models.Student{Username: "ada.lovelace", Password: "hash", Name: "Ada Lovelace"})
	svc := NewStudentService(repo)

	resp, err := svc.UpdateName(context.Background(), student.ID.String(), &dto.UpdateNameRequest{Name: "Ada King"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Name != "Ada King" {
		t.Errorf("Name = %q, want Ada King", resp.Name)
	}

	if _, err := svc.UpdateName(context.Background(), student.ID.String(), &dto.UpdateNameRequest{Name: "A"}); err == nil {
		t.Error("expected validation error for too short name")
	}
}

func TestAssignMatricNumber(t *testing.T) {
	repo := newFakeStudentRepository()
	repo.add(&models.Student{Username: "ada.lovelace", Password: "hash", Name: "Ada Lovelace"})
	svc := NewStudentService(repo)

	resp, err := svc.AssignMatricNumber(context.Background(), "ada.lovelace")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.MatricNumber != "MAT00001" {
		t.Errorf("MatricNumber = %q, want MAT00001", resp.MatricNumber)
	}
}

func TestAssignMatricNumberSequence(t *testing.T) {
	repo := newFakeStudentRepository()
	repo.add(&models.Student{Username: "ada.lovelace", Password: "hash", Name: "Ada Lovelace"})
	repo.add(&models.Student{Username: "alan.turing", Password: "hash", Name: "Alan Turing"})
	repo.add(&models.Student{Username: "grace.hopper", Password: "hash", Name: "Grace Hopper"})
	svc := NewStudentService(repo)

	want := []string{"MAT00001", "MAT00002", "MAT00003"}
	for i, username := range []string{"ada.lovelace", "alan.turing", "grace.hopper"} {
		resp, err := svc.AssignMatricNumber(context.Background(), username)
		if err != nil {
			t.Fatalf("unexpected error for %s: %v", username, err)
		}
		if resp.MatricNumber != want[i] {
			t.Errorf("MatricNumber = %q, want %q", resp.MatricNumber, want[i])
		}
	}
}

func TestAssignMatricNumberAlreadyAssigned(t *testing.T) {
	repo := newFakeStudentRepository()
	repo.add(&models.Student{
		Username:     "ada.lovelace",
		Password:     "hash",
		Name:         "Ada Lovelace",
		MatricNumber: ptr("MAT00001"),
	})
	svc := NewStudentService(repo)

	_, err := svc.AssignMatricNumber(context.Background(), "ada.lovelace")
	if !errors.Is(err, apperrors.ErrMatricAlreadyAssigned) {
		t.Errorf("expected ErrMatricAlreadyAssigned, got %v", err)
	}
}

func TestAssignMatricNumberUnknownStudent(t *testing.T) {
	svc := NewStudentService(newFakeStudentRepository())

	_, err := svc.AssignMatricNumber(context.Background(), "nobody")
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("expected ErrStudentNotFound, got %v", err)
	}
}
