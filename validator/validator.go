package validator

import (
	"class-notes/models"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	classNamePattern = regexp.MustCompile(`^[\p{L}\p{N} \-_.,&()']+$`)
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validator wraps the go-playground validator
type Validator struct {
	validate *validator.Validate
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag"`
	Value   string `json:"value,omitempty"`
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Message)
	}
	return strings.Join(messages, "; ")
}

// New creates a new validator instance
func New() *Validator {
	v := validator.New()

	// Use JSON tags as field names in messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("classname", validateClassName)
	v.RegisterValidation("dateformat", validateDateFormat)

	return &Validator{validate: v}
}

// Validate validates a struct and returns validation errors
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, toValidationError(fe.Field(), fe))
	}

	return validationErrs
}

// ValidateFields checks a note's content fields against the schema rules.
// Keys the schema doesn't declare are rejected.
func (v *Validator) ValidateFields(schema models.Schema, fields map[string]string) error {
	var validationErrs ValidationErrors

	unknown := make([]string, 0)
	for name := range fields {
		if _, ok := schema.Field(name); !ok {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		validationErrs = append(validationErrs, ValidationError{
			Field:   name,
			Message: fmt.Sprintf("%s is not a field of %s notes", name, schema.Name),
			Tag:     "unknown",
		})
	}

	for _, field := range schema.Fields {
		err := v.validate.Var(fields[field.Name], field.Rules)
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			validationErrs = append(validationErrs, toValidationError(field.Name, fe))
		}
	}

	if len(validationErrs) == 0 {
		return nil
	}
	return validationErrs
}

// ValidateClassName checks a class name taken from a path or flag
func (v *Validator) ValidateClassName(name string) error {
	err := v.validate.Var(name, "required,max=100,classname")
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var validationErrs ValidationErrors
	for _, fe := range fieldErrs {
		validationErrs = append(validationErrs, toValidationError("class_name", fe))
	}
	return validationErrs
}

func toValidationError(field string, fe validator.FieldError) ValidationError {
	return ValidationError{
		Field:   field,
		Message: msgForTag(field, fe),
		Tag:     fe.Tag(),
		Value:   fmt.Sprintf("%v", fe.Value()),
	}
}

// msgForTag returns a human-readable error message for a validation tag
func msgForTag(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "classname":
		return fmt.Sprintf("%s contains invalid characters (only letters, numbers, spaces, and -_.,&()' are allowed)", field)
	case "dateformat":
		return fmt.Sprintf("%s must be in YYYY-MM-DD format", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

// Custom validators

// validateClassName allows letters (any language), numbers, spaces and a few symbols.
// Path separators are excluded since class names end up in export file names.
func validateClassName(fl validator.FieldLevel) bool {
	return classNamePattern.MatchString(fl.Field().String())
}

// validateDateFormat accepts real calendar days written as YYYY-MM-DD
func validateDateFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if !datePattern.MatchString(value) {
		return false
	}
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}
