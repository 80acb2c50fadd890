package services

import (
	"context"
	"errors"
	"fmt"
	"unicode"

	"github.com/google/uuid"
	"github.com/oyelaran/studentbase/internal/app/models"
	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/app/repositories"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
	"github.com/oyelaran/studentbase/internal/pkg/auth"
	"github.com/oyelaran/studentbase/internal/pkg/logger"
	"github.com/oyelaran/studentbase/internal/pkg/validation"
)

// AuthService defines authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}

// authService implements AuthService
type authService struct {
	studentRepo repositories.IStudentRepository
	tokenRepo   repositories.ITokenRepository
	jwtService  *auth.JWTService
}

// NewAuthService creates a new authentication service
func NewAuthService(
	studentRepo repositories.IStudentRepository,
	tokenRepo repositories.ITokenRepository,
	jwtService *auth.JWTService,
) AuthService {
	return &authService{
		studentRepo: studentRepo,
		tokenRepo:   tokenRepo,
		jwtService:  jwtService,
	}
}

// Register creates a new student account with a hashed password
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.StudentResponse, error) {
	if err := s.validateUsername(req.Username); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	if err := s.validateName(req.Name); err != nil {
		return nil, err
	}

	exists, err := s.studentRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	student := &models.Student{
		Username: req.Username,
		Password: hashedPassword,
		Name:     req.Name,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		// The unique index is the final arbiter under concurrent registration
		if errors.Is(err, apperrors.ErrUsernameAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	logger.Info().Str("username", student.Username).Str("id", student.ID.String()).Msg("Student registered")

	response := dto.NewStudentResponse(student)
	return &response, nil
}

// Login authenticates a student and issues a token pair
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	student, err := s.studentRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			// Same error as a wrong password, do not leak which usernames exist
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to retrieve student: %w", err)
	}

	if !auth.CheckPassword(student.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.generateTokenResponse(ctx, student)
}

// RefreshToken rotates a refresh token and issues a new token pair
func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	studentID, _, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	// Rotate: the presented token is single use
	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		logger.Error().Err(err).Msg("Failed to revoke refresh token during rotation")
		return nil, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.generateTokenResponse(ctx, student)
}

// Logout revokes every active refresh token of the student owning the presented token
func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	studentID, _, _, err := s.tokenRepo.GetTokenByValue(ctx, refreshToken)
	if err != nil {
		return err
	}

	return s.tokenRepo.RevokeAllStudentTokens(ctx, studentID)
}

// generateTokenResponse creates a token pair and persists the refresh token
func (s *authService) generateTokenResponse(ctx context.Context, student *models.Student) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(student)
	if err != nil {
		logger.Error().Err(err).Str("username", student.Username).Msg("Failed to generate token pair")
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	expiry := s.jwtService.GetRefreshTokenExpiry()
	if err := s.tokenRepo.CreateToken(ctx, refreshToken, student.ID, expiry); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		TokenType:        "Bearer",
		ExpiresIn:        expiresIn,
		RefreshToken:     refreshToken,
		RefreshExpiresIn: refreshExpiresIn,
		Student:          dto.NewStudentResponse(student),
	}, nil
}

// validateUsername checks username format and length
func (s *authService) validateUsername(username string) error {
	valid := validation.NewStringValidation(username).
		WithMinLength(validation.UsernameMinLength).
		WithMaxLength(validation.UsernameMaxLength).
		WithPattern(validation.CompiledPatterns.Username).
		Validate()

	if !valid {
		return apperrors.NewCustomError(apperrors.ErrInvalidUsername,
			fmt.Sprintf("username must be %d-%d characters of letters, digits, dots, underscores or hyphens",
				validation.UsernameMinLength, validation.UsernameMaxLength))
	}

	return nil
}

// validatePassword checks password strength requirements
func (s *authService) validatePassword(password string) error {
	if len(password) < validation.PasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			fmt.Sprintf("password must be at least %d characters long", validation.PasswordMinLength))
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword,
			"password must contain at least one letter and one digit")
	}

	return nil
}

// validateName checks display name length
func (s *authService) validateName(name string) error {
	valid := validation.NewStringValidation(name).
		WithMinLength(validation.NameMinLength).
		WithMaxLength(validation.NameMaxLength).
		Validate()

	if !valid {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("name must be %d-%d characters long", validation.NameMinLength, validation.NameMaxLength))
	}

	return nil
}

// parseStudentID converts a claim subject into a student ID
func parseStudentID(id string) (uuid.UUID, error) {
	studentID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, apperrors.ErrTokenInvalid
	}
	return studentID, nil
}
