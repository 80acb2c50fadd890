package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/oyelaran/studentbase/internal/app/models"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
	"github.com/oyelaran/studentbase/internal/pkg/dberrors"
	"github.com/oyelaran/studentbase/internal/pkg/logger"
)

// studentColumns are the columns scanned into a models.Student
var studentColumns = []string{"id", "username", "password", "name", "matric_number", "created_at", "updated_at"}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// scanStudent scans a single student row
func scanStudent(row pgx.Row) (*models.Student, error) {
	student := &models.Student{}
	err := row.Scan(
		&student.ID,
		&student.Username,
		&student.Password,
		&student.Name,
		&student.MatricNumber,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return student, nil
}

// Create inserts a new student. The database generates the id and timestamps.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("username", "password", "name").
		Values(student.Username, student.Password, student.Name).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create student SQL")
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		if column, ok := dberrors.IsNotNullViolation(err); ok {
			return apperrors.NewBadRequestError(fmt.Sprintf("missing required field: %s", column))
		}
		logger.Error().Err(err).Str("username", student.Username).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by primary key
func (r *StudentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student by id query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("id", id.String()).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByUsername retrieves a student by username
func (r *StudentRepository) GetByUsername(ctx context.Context, username string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student by username query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("username", username).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// GetByMatricNumber retrieves a student by matric number
func (r *StudentRepository) GetByMatricNumber(ctx context.Context, matricNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"matric_number": matricNumber}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build get student by matric number query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("matricNumber", matricNumber).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// UsernameExists checks whether a username is already taken
func (r *StudentRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("students").
		Where(squirrel.Eq{"username": username}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("failed to build username exists query: %w", err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("username", username).Msg("Error checking username existence")
		return false, fmt.Errorf("error checking username existence: %w", err)
	}

	return exists, nil
}

// List retrieves students ordered by creation time with offset/limit paging
func (r *StudentRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("created_at ASC", "id ASC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list students query")
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0, limit)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// CountAll returns the total number of students
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("students").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count students query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting students")
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}

// CountAssignedMatricNumbers returns the number of students with a matric number
func (r *StudentRepository) CountAssignedMatricNumbers(ctx context.Context) (int64, error) {
	sql, args, err := r.sb.Select("COUNT(matric_number)").
		From("students").
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("failed to build count matric numbers query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		logger.Error().Err(err).Msg("Error counting assigned matric numbers")
		return 0, fmt.Errorf("error counting assigned matric numbers: %w", err)
	}

	return count, nil
}

// AssignMatricNumber sets the matric number for a student who does not have one yet.
// Returns the updated student, or an error describing why the assignment failed.
func (r *StudentRepository) AssignMatricNumber(ctx context.Context, username, matricNumber string) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		Set("matric_number", matricNumber).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"username": username}).
		Where("matric_number IS NULL").
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build assign matric number query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err == nil {
		return student, nil
	}

	if dberrors.IsDuplicateConstraintError(err, "students_matric_number_key") {
		return nil, apperrors.ErrMatricNumberExists
	}

	if errors.Is(err, pgx.ErrNoRows) {
		// Either the student does not exist or already has a matric number
		exists, existsErr := r.UsernameExists(ctx, username)
		if existsErr != nil {
			return nil, existsErr
		}
		if exists {
			return nil, apperrors.ErrMatricAlreadyAssigned
		}
		return nil, apperrors.ErrStudentNotFound
	}

	logger.Error().Err(err).Str("username", username).Str("matricNumber", matricNumber).Msg("Error assigning matric number")
	return nil, fmt.Errorf("error assigning matric number: %w", err)
}

// UpdateName updates a student's display name
func (r *StudentRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (*models.Student, error) {
	sql, args, err := r.sb.Update("students").
		Set("name", name).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + joinColumns(studentColumns)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("failed to build update name query: %w", err)
	}

	student, err := scanStudent(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("id", id.String()).Msg("Error updating student name")
		return nil, fmt.Errorf("error updating student name: %w", err)
	}

	return student, nil
}
