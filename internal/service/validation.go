package service

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Codigos de rechazo de validación expuestos en las respuestas HTTP.
const (
	CodeMissingField       = "MissingField"
	CodeInvalidEmailFormat = "InvalidEmailFormat"
	CodeInvalidLength      = "InvalidLength"
)

// ValidationError describe un rechazo estructurado de la validación.
type ValidationError struct {
	Code    string
	Field   string
	Details string
}

func (e *ValidationError) Error() string {
	return e.Details
}

// Parte local, "@", dominio, ".", segmento superior; sin espacios, un solo "@".
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type lengthBound struct {
	field string
	min   int
	max   int
}

var contactBounds = []lengthBound{
	{field: "name", min: 2, max: 100},
	{field: "subject", min: 5, max: 200},
	{field: "message", min: 10, max: 2000},
}

// ValidateContactInput verifica presencia, formato y longitudes de los cuatro
// campos del formulario. Es una función pura: no normaliza ni persiste nada.
// Orden de chequeo: presencia, formato de email, name, subject, message.
func ValidateContactInput(name, email, subject, message string) *ValidationError {
	fields := []struct {
		name  string
		value string
	}{
		{name: "name", value: name},
		{name: "email", value: email},
		{name: "subject", value: subject},
		{name: "message", value: message},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return &ValidationError{
				Code:    CodeMissingField,
				Field:   f.name,
				Details: fmt.Sprintf("field %q is required", f.name),
			}
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(email)) {
		return &ValidationError{
			Code:    CodeInvalidEmailFormat,
			Field:   "email",
			Details: "email must be a valid address like name@example.com",
		}
	}

	trimmed := map[string]string{
		"name":    strings.TrimSpace(name),
		"subject": strings.TrimSpace(subject),
		"message": strings.TrimSpace(message),
	}
	for _, b := range contactBounds {
		length := utf8.RuneCountInString(trimmed[b.field])
		if length < b.min || length > b.max {
			return &ValidationError{
				Code:    CodeInvalidLength,
				Field:   b.field,
				Details: fmt.Sprintf("field %q must be between %d and %d characters", b.field, b.min, b.max),
			}
		}
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
