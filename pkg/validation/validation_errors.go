package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Email":    "Email",
	"Password": "Password",
	"Name":     "Name",

	// Candidate profile fields
	"Bio":             "Bio",
	"Skills":          "Skills",
	"ExperienceYears": "Years of experience",
	"DesiredLocation": "Desired location",

	// Job fields
	"Title":          "Title",
	"Description":    "Description",
	"RequiredSkills": "Required skills",
	"Location":       "Location",
	"Company":        "Company",
	"SalaryMin":      "Minimum salary",
	"SalaryMax":      "Maximum salary",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must have at least %s item(s)", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must have at most %s item(s)", label, param)

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "gte":
		return fmt.Sprintf("%s: must be %s or greater", label, param)

	case "gtefield":
		return fmt.Sprintf("%s: must not be smaller than %s", label, getFieldLabel(param))

	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces, and common punctuation (. ' - /) are allowed", label)

	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)

	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
