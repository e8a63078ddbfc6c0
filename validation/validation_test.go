package validation

import (
	"portfolio/models"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSubmission() models.ContactSubmission {
	return models.ContactSubmission{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Subject:   "Hello",
		Message:   "This is a test message.",
	}
}

func TestValidate_Valid(t *testing.T) {
	v := New()

	in := validSubmission()
	in.FirstName = "  John "
	in.Phone = " +44 20 7946 0000 "

	out, err := v.Validate(in)
	require.NoError(t, err)
	assert.Equal(t, "John", out.FirstName)
	assert.Equal(t, "+44 20 7946 0000", out.Phone)
	assert.Equal(t, "john@example.com", out.Email)
}

func TestValidate_SingleRule(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ContactSubmission)
		field  string
		kind   Kind
	}{
		{
			name:   "missing first name",
			mutate: func(s *models.ContactSubmission) { s.FirstName = "" },
			field:  "firstName",
			kind:   MissingField,
		},
		{
			name:   "blank last name",
			mutate: func(s *models.ContactSubmission) { s.LastName = "   " },
			field:  "lastName",
			kind:   MissingField,
		},
		{
			name:   "email without domain dot",
			mutate: func(s *models.ContactSubmission) { s.Email = "john@example" },
			field:  "email",
			kind:   InvalidFormat,
		},
		{
			name:   "email with two at signs",
			mutate: func(s *models.ContactSubmission) { s.Email = "john@@example.com" },
			field:  "email",
			kind:   InvalidFormat,
		},
		{
			name:   "missing email",
			mutate: func(s *models.ContactSubmission) { s.Email = "" },
			field:  "email",
			kind:   MissingField,
		},
		{
			name:   "missing subject",
			mutate: func(s *models.ContactSubmission) { s.Subject = "" },
			field:  "subject",
			kind:   MissingField,
		},
		{
			name:   "message of nine characters",
			mutate: func(s *models.ContactSubmission) { s.Message = "123456789" },
			field:  "message",
			kind:   TooShort,
		},
		{
			name:   "missing message",
			mutate: func(s *models.ContactSubmission) { s.Message = "" },
			field:  "message",
			kind:   MissingField,
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmission()
			tt.mutate(&in)

			_, err := v.Validate(in)
			require.Error(t, err)

			var verr *Error
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Fields, 1)
			assert.Equal(t, tt.field, verr.Fields[0].Field)
			assert.Equal(t, tt.kind, verr.Fields[0].Kind)
			assert.NotEmpty(t, verr.Fields[0].Message)
		})
	}
}

func TestValidate_ReportsAllFields(t *testing.T) {
	v := New()

	_, err := v.Validate(models.ContactSubmission{Email: "nope", Message: "short"})

	var verr *Error
	require.ErrorAs(t, err, &verr)

	got := map[string]Kind{}
	for _, f := range verr.Fields {
		got[f.Field] = f.Kind
	}
	assert.Equal(t, map[string]Kind{
		"firstName": MissingField,
		"lastName":  MissingField,
		"email":     InvalidFormat,
		"subject":   MissingField,
		"message":   TooShort,
	}, got)
	assert.Contains(t, err.Error(), "message: TooShort")
}

func TestValidate_MessageLengthCountsRunes(t *testing.T) {
	v := New()

	in := validSubmission()
	in.Message = strings.Repeat("é", 10)

	_, err := v.Validate(in)
	assert.NoError(t, err)
}

func TestWithAllowedSubjects(t *testing.T) {
	v := New(WithAllowedSubjects("collaboration", "consultation", "project", "other"))

	in := validSubmission()
	in.Subject = "project"
	_, err := v.Validate(in)
	require.NoError(t, err)

	in.Subject = "Hello"
	_, err = v.Validate(in)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "subject", verr.Fields[0].Field)
	assert.Equal(t, InvalidFormat, verr.Fields[0].Kind)
}

func TestWithMinNameLength(t *testing.T) {
	v := New(WithMinNameLength(2))

	in := validSubmission()
	in.LastName = "D"

	_, err := v.Validate(in)
	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "lastName", verr.Fields[0].Field)
	assert.Equal(t, TooShort, verr.Fields[0].Kind)
	assert.Contains(t, verr.Fields[0].Message, "2 characters")

	in.LastName = "Do"
	_, err = v.Validate(in)
	assert.NoError(t, err)
}

func TestNormalize_CollapsesControlCharacters(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf header injection", "S\r\nX-Inject: 1", "S X-Inject: 1"},
		{"lone newline", "Hello\nWorld", "Hello World"},
		{"tab and nul", "A\t\x00B", "A B"},
		{"trailing control", "Hello\r\n", "Hello"},
		{"unicode next line", "A\u0085B", "A B"},
		{"plain", "  Hello world  ", "Hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validSubmission()
			in.Subject = tt.in
			in.FirstName = tt.in
			in.LastName = tt.in
			in.Phone = tt.in

			out := Normalize(in)
			assert.Equal(t, tt.want, out.Subject)
			assert.Equal(t, tt.want, out.FirstName)
			assert.Equal(t, tt.want, out.LastName)
			assert.Equal(t, tt.want, out.Phone)
		})
	}
}

func TestNormalize_MessageKeepsLineBreaks(t *testing.T) {
	in := validSubmission()
	in.Message = "\n First line.\r\nSecond line.\n"

	out := Normalize(in)
	assert.Equal(t, "First line.\r\nSecond line.", out.Message)
}
