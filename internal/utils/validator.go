package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	field := strings.ToLower(e.Field())

	switch e.Tag() {
	case "required":
		return "The " + field + " field is required"
	case "min":
		switch e.Kind().String() {
		case "string":
			return "The " + field + " must be at least " + e.Param() + " characters"
		default:
			return "The " + field + " must be at least " + e.Param()
		}
	case "max":
		switch e.Kind().String() {
		case "string":
			return "The " + field + " must not be greater than " + e.Param() + " characters"
		default:
			return "The " + field + " must not be greater than " + e.Param()
		}
	default:
		return "The " + field + " field is invalid"
	}
}
