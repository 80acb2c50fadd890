package dto

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// HandleValidationError writes a standard validation error response for binding failures.
func HandleValidationError(c *gin.Context, err error) {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Request validation failed")

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fieldErrors := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			field := strings.ToLower(fieldErr.Field()[:1]) + fieldErr.Field()[1:]
			fieldErrors[field] = validationMessage(fieldErr)
		}
		detail = detail.WithFieldErrors(fieldErrors)
	} else {
		detail.Message = "Invalid request body"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{Error: detail})
}

// validationMessage produces a readable message for a single field error
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "This field is required"
	case "min":
		return fmt.Sprintf("Must be at least %s characters long", fieldErr.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long", fieldErr.Param())
	case "username":
		return "May only contain letters, digits, dots, underscores and hyphens"
	case "matricnumber":
		return "Must be in the form MAT followed by five digits"
	default:
		return fmt.Sprintf("Failed validation on '%s'", fieldErr.Tag())
	}
}
