package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oyelaran/studentbase/internal/app/models/dto"
	"github.com/oyelaran/studentbase/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextStudentID = "studentID"
	ContextUsername  = "username"
)

// JWTAuth validates the bearer token and stores the student identity on the context
func JWTAuth(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authorization header is missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, dto.ErrorCodeTokenInvalid, "Invalid authorization header format")
			return
		}

		claims, err := jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeTokenExpired, "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeTokenInvalid, "Invalid token")
			return
		}

		c.Set(ContextStudentID, claims.StudentID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: dto.NewErrorDetail(code, message),
	})
}
