package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/oyelaran/studentbase/internal/app/models"
)

func newTestJWTService(accessExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: 720 * time.Hour,
		TokenIssuer:     "studentbase.test",
	})
}

func testStudent() *models.Student {
	return &models.Student{
		ID:       uuid.New(),
		Username: "ada.lovelace",
		Name:     "Ada Lovelace",
	}
}

func TestGenerateTokenPair(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	student := testStudent()

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if accessToken == "" {
		t.Error("expected non-empty access token")
	}

	if _, err := uuid.Parse(refreshToken); err != nil {
		t.Errorf("refresh token is not a UUID: %v", err)
	}

	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}

	if refreshExpiresIn != int((720 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d, want %d", refreshExpiresIn, int((720*time.Hour).Seconds()))
	}
}

func TestValidateToken(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	student := testStudent()

	accessToken, _, _, _, err := svc.GenerateTokenPair(student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(accessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if claims.StudentID != student.ID.String() {
		t.Errorf("StudentID = %q, want %q", claims.StudentID, student.ID.String())
	}

	if claims.Username != student.Username {
		t.Errorf("Username = %q, want %q", claims.Username, student.Username)
	}

	if claims.Issuer != "studentbase.test" {
		t.Errorf("Issuer = %q, want studentbase.test", claims.Issuer)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService(time.Hour)
	other := NewJWTService(JWTConfig{
		SecretKey:       "different-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "studentbase.test",
	})

	accessToken, _, _, _, err := svc.GenerateTokenPair(testStudent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := other.ValidateToken(accessToken); err == nil {
		t.Error("expected validation with wrong secret to fail")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc := newTestJWTService(-time.Minute)

	accessToken, _, _, _, err := svc.GenerateTokenPair(testStudent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = svc.ValidateToken(accessToken)
	if !errors.Is(err, ErrExpiredToken) {
		t.Errorf("expected ErrExpiredToken, got %v", err)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "no prefix", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateAndExtractClaims(t *testing.T) {
	svc := newTestJWTService(time.Hour)

	if _, err := svc.ValidateAndExtractClaims(""); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for empty token, got %v", err)
	}

	accessToken, _, _, _, err := svc.GenerateTokenPair(testStudent())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateAndExtractClaims(accessToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.StudentID == "" || claims.Username == "" {
		t.Error("expected populated identity claims")
	}
}
