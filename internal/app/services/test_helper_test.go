package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oyelaran/studentbase/internal/app/models"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

func ptr[T any](v T) *T {
	return &v
}

// quickHash creates a low-cost bcrypt hash for test fixtures
func quickHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// fakeStudentRepository is an in-memory IStudentRepository
type fakeStudentRepository struct {
	mu       sync.Mutex
	students map[string]*models.Student
}

func newFakeStudentRepository() *fakeStudentRepository {
	return &fakeStudentRepository{
		students: make(map[string]*models.Student),
	}
}

func (r *fakeStudentRepository) add(student *models.Student) *models.Student {
	if student.ID == uuid.Nil {
		student.ID = uuid.New()
	}
	now := time.Now()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
		student.UpdatedAt = now
	}
	r.students[student.Username] = student
	return student
}

func (r *fakeStudentRepository) Create(ctx context.Context, student *models.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.students[student.Username]; exists {
		return apperrors.ErrUsernameAlreadyExists
	}
	r.add(student)
	return nil
}

func (r *fakeStudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, student := range r.students {
		if student.ID == id {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if student, ok := r.students[username]; ok {
		return student, nil
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepository) GetByMatricNumber(ctx context.Context, matricNumber string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, student := range r.students {
		if student.MatricNumber != nil && *student.MatricNumber == matricNumber {
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

func (r *fakeStudentRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.students[username]
	return ok, nil
}

func (r *fakeStudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*models.Student, 0, len(r.students))
	for _, student := range r.students {
		all = append(all, student)
	}

	start := int(offset)
	if start >= len(all) {
		return nil, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (r *fakeStudentRepository) CountAll(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.students)), nil
}

func (r *fakeStudentRepository) CountAssignedMatricNumbers(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, student := range r.students {
		if student.MatricNumber != nil {
			count++
		}
	}
	return count, nil
}

func (r *fakeStudentRepository) AssignMatricNumber(ctx context.Context, username, matricNumber string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, student := range r.students {
		if student.MatricNumber != nil && *student.MatricNumber == matricNumber {
			return nil, apperrors.ErrMatricNumberExists
		}
	}

	student, ok := r.students[username]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if student.MatricNumber != nil {
		return nil, apperrors.ErrMatricAlreadyAssigned
	}

	student.MatricNumber = ptr(matricNumber)
	student.UpdatedAt = time.Now()
	return student, nil
}

func (r *fakeStudentRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.Student, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, student := range r.students {
		if student.ID == id {
			student.Name = name
			student.UpdatedAt = time.Now()
			return student, nil
		}
	}
	return nil, apperrors.ErrStudentNotFound
}

// fakeTokenRepository is an in-memory ITokenRepository
type fakeTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeTokenRepository() *fakeTokenRepository {
	return &fakeTokenRepository{
		tokens: make(map[string]*models.RefreshToken),
	}
}

func (r *fakeTokenRepository) CreateToken(ctx context.Context, token string, studentID uuid.UUID, expiryDate time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = &models.RefreshToken{
		Token:      uuid.MustParse(token),
		StudentID:  studentID,
		ExpiryDate: expiryDate,
		CreatedAt:  time.Now(),
	}
	return nil
}

func (r *fakeTokenRepository) GetTokenByValue(ctx context.Context, token string) (uuid.UUID, time.Time, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tokens[token]
	if !ok {
		return uuid.Nil, time.Time{}, false, apperrors.ErrTokenNotFound
	}
	if stored.IsRevoked {
		return uuid.Nil, time.Time{}, false, apperrors.ErrTokenRevoked
	}
	if stored.ExpiryDate.Before(time.Now()) {
		return uuid.Nil, time.Time{}, false, apperrors.ErrTokenExpired
	}
	return stored.StudentID, stored.ExpiryDate, stored.IsRevoked, nil
}

func (r *fakeTokenRepository) RevokeToken(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.tokens[token]
	if !ok {
		return apperrors.ErrTokenNotFound
	}
	stored.IsRevoked = true
	return nil
}

func (r *fakeTokenRepository) RevokeAllStudentTokens(ctx context.Context, studentID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, stored := range r.tokens {
		if stored.StudentID == studentID {
			stored.IsRevoked = true
		}
	}
	return nil
}

func (r *fakeTokenRepository) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for token, stored := range r.tokens {
		if stored.ExpiryDate.Before(time.Now()) {
			delete(r.tokens, token)
			deleted++
		}
	}
	return deleted, nil
}
