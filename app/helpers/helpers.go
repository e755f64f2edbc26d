package helpers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := snakeCase(err.Field())
		switch err.Tag() {
		case "required":
			errorMessages[field] = "This field is required."
		case "email":
			errorMessages[field] = "Enter a valid email address."
		case "gte":
			errorMessages[field] = fmt.Sprintf("Must be greater than or equal to %s.", err.Param())
		case "min":
			errorMessages[field] = fmt.Sprintf("Must be at least %s characters.", err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("Must be at most %s characters.", err.Param())
		case "oneof":
			errorMessages[field] = fmt.Sprintf("Must be one of: %s.", err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("Failed %s validation.", err.Tag())
		}
	}
	return errorMessages
}

func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteRune('_')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}
