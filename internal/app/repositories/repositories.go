package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oyelaran/studentbase/internal/app/models"
)

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error)
	GetByUsername(ctx context.Context, username string) (*models.Student, error)
	GetByMatricNumber(ctx context.Context, matricNumber string) (*models.Student, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error)
	CountAll(ctx context.Context) (int64, error)
	CountAssignedMatricNumbers(ctx context.Context) (int64, error)
	AssignMatricNumber(ctx context.Context, username, matricNumber string) (*models.Student, error)
	UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.Student, error)
}

// ITokenRepository defines the interface for refresh token database operations
type ITokenRepository interface {
	CreateToken(ctx context.Context, token string, studentID uuid.UUID, expiryDate time.Time) error
	GetTokenByValue(ctx context.Context, token string) (uuid.UUID, time.Time, bool, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeAllStudentTokens(ctx context.Context, studentID uuid.UUID) error
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// Repositories bundles all repositories for dependency injection
type Repositories struct {
	Student IStudentRepository
	Token   ITokenRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Student: NewStudentRepository(db),
		Token:   NewTokenRepository(db),
	}
}

// joinColumns renders a column list for RETURNING clauses
func joinColumns(columns []string) string {
	return strings.Join(columns, ", ")
}
