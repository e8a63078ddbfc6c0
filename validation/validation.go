// Package validation checks contact form submissions before they reach the store.
package validation

import (
	"errors"
	"fmt"
	"portfolio/models"
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Kind classifies why a field was rejected.
type Kind string

const (
	MissingField  Kind = "MissingField"
	TooShort      Kind = "TooShort"
	InvalidFormat Kind = "InvalidFormat"
)

const defaultMinNameLength = 1

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// FieldError describes one rejected field, keyed by its JSON name.
type FieldError struct {
	Field   string `json:"field"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Error carries every field that failed, in struct order.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Kind))
	}
	return "invalid submission: " + strings.Join(parts, ", ")
}

// Validator validates contact submissions. It is safe for concurrent use.
type Validator struct {
	validate        *validator.Validate
	minNameLength   int
	allowedSubjects map[string]struct{}
}

// Option configures a Validator.
type Option func(*Validator)

// WithAllowedSubjects restricts the subject to the given values.
// With no values any non-empty subject is accepted.
func WithAllowedSubjects(subjects ...string) Option {
	return func(v *Validator) {
		for _, s := range subjects {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if v.allowedSubjects == nil {
				v.allowedSubjects = make(map[string]struct{})
			}
			v.allowedSubjects[s] = struct{}{}
		}
	}
}

// WithMinNameLength raises the minimum length of first and last names.
func WithMinNameLength(n int) Option {
	return func(v *Validator) {
		if n > 0 {
			v.minNameLength = n
		}
	}
}

// New builds a Validator with the contact form rules registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate:      validator.New(validator.WithRequiredStructEnabled()),
		minNameLength: defaultMinNameLength,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.validate.RegisterValidation("contactemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return utf8.RuneCountInString(fl.Field().String()) >= v.minNameLength
	})
	_ = v.validate.RegisterValidation("subject", func(fl validator.FieldLevel) bool {
		if len(v.allowedSubjects) == 0 {
			return true
		}
		_, ok := v.allowedSubjects[fl.Field().String()]
		return ok
	})

	return v
}

// Validate normalizes the submission and checks it.
// On failure the returned error is an *Error listing every bad field.
func (v *Validator) Validate(sub models.ContactSubmission) (models.ContactSubmission, error) {
	sub = Normalize(sub)

	err := v.validate.Struct(sub)
	if err == nil {
		return sub, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return models.ContactSubmission{}, fmt.Errorf("validate submission: %w", err)
	}

	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, v.toFieldError(fe))
	}
	return models.ContactSubmission{}, out
}

// Normalize trims surrounding whitespace from every field. Single-line fields
// end up in mail headers, so each run of control characters in them becomes
// one space.
func Normalize(sub models.ContactSubmission) models.ContactSubmission {
	sub.FirstName = singleLine(sub.FirstName)
	sub.LastName = singleLine(sub.LastName)
	sub.Email = singleLine(sub.Email)
	sub.Phone = singleLine(sub.Phone)
	sub.Subject = singleLine(sub.Subject)
	sub.Message = strings.TrimSpace(sub.Message)
	return sub
}

func singleLine(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) == -1 {
		return strings.TrimSpace(s)
	}

	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if unicode.IsControl(r) {
			if !inRun {
				b.WriteByte(' ')
			}
			inRun = true
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func (v *Validator) toFieldError(fe validator.FieldError) FieldError {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return FieldError{Field: field, Kind: MissingField, Message: field + " is required"}
	case "min":
		return FieldError{Field: field, Kind: TooShort,
			Message: fmt.Sprintf("%s must be at least %s characters", field, fe.Param())}
	case "personname":
		return FieldError{Field: field, Kind: TooShort,
			Message: fmt.Sprintf("%s must be at least %d characters", field, v.minNameLength)}
	case "contactemail":
		return FieldError{Field: field, Kind: InvalidFormat, Message: "please enter a valid email address"}
	case "subject":
		return FieldError{Field: field, Kind: InvalidFormat, Message: "please select a subject"}
	default:
		return FieldError{Field: field, Kind: InvalidFormat, Message: field + " is invalid"}
	}
}
