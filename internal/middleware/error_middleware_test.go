package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/oyelaran/studentbase/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid credentials", err: apperrors.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized},
		{name: "token expired", err: apperrors.ErrTokenExpired, wantStatus: http.StatusUnauthorized},
		{name: "token revoked", err: apperrors.ErrTokenRevoked, wantStatus: http.StatusUnauthorized},
		{name: "student not found", err: apperrors.ErrStudentNotFound, wantStatus: http.StatusNotFound},
		{name: "username exists", err: apperrors.ErrUsernameAlreadyExists, wantStatus: http.StatusConflict},
		{name: "matric exists", err: apperrors.ErrMatricNumberExists, wantStatus: http.StatusConflict},
		{name: "matric already assigned", err: apperrors.ErrMatricAlreadyAssigned, wantStatus: http.StatusConflict},
		{name: "validation failed", err: apperrors.ErrValidationFailed, wantStatus: http.StatusBadRequest},
		{name: "bad request with message", err: apperrors.NewBadRequestError("invalid matric number format"), wantStatus: http.StatusBadRequest},
		{name: "wrapped sentinel", err: errors.Join(errors.New("context"), apperrors.ErrStudentNotFound), wantStatus: http.StatusNotFound},
		{name: "unknown error", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
