package middleware

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/oyelaran/studentbase/internal/pkg/validation"
)

// RegisterCustomValidators installs domain validation rules on gin's validator engine
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("username", validUsername); err != nil {
		return err
	}

	return v.RegisterValidation("matricnumber", validMatricNumber)
}

func validUsername(fl validator.FieldLevel) bool {
	return validation.CompiledPatterns.Username.MatchString(fl.Field().String())
}

func validMatricNumber(fl validator.FieldLevel) bool {
	return validation.CompiledPatterns.MatricNumber.MatchString(fl.Field().String())
}
