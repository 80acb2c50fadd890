package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/oyelaran/studentbase/internal/app/models"
	"github.com/oyelaran/studentbase/internal/app/repositories"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
	"github.com/oyelaran/studentbase/internal/pkg/auth"
)

// demoStudent is a development fixture
type demoStudent struct {
	Username string
	Password string
	Name     string
}

var demoStudents = []demoStudent{
	{Username: "ada.lovelace", Password: "Password123", Name: "Ada Lovelace"},
	{Username: "alan.turing", Password: "Password123", Name: "Alan Turing"},
	{Username: "grace.hopper", Password: "Password123", Name: "Grace Hopper"},
}

// CreateDefaultData inserts demo students for development environments.
// Existing usernames are skipped so the seed is safe to run repeatedly.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := repositories.NewStudentRepository(dbPool)

	for _, demo := range demoStudents {
		exists, err := studentRepo.UsernameExists(ctx, demo.Username)
		if err != nil {
			return fmt.Errorf("failed to check seed student %s: %w", demo.Username, err)
		}
		if exists {
			continue
		}

		hashedPassword, err := auth.HashPassword(demo.Password)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}

		student := &models.Student{
			Username: demo.Username,
			Password: hashedPassword,
			Name:     demo.Name,
		}

		if err := studentRepo.Create(ctx, student); err != nil {
			// A concurrent seed run may have won the race, that is fine
			if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
				continue
			}
			return fmt.Errorf("failed to create seed student %s: %w", demo.Username, err)
		}

		lgr.Info().Str("username", demo.Username).Msg("Seed student created")
	}

	return nil
}
