package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a contact form submission as stored.
// ID and CreatedAt are assigned by the store; messages are never updated.
type ContactMessage struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone,omitempty" db:"phone"`
	Subject   string    `json:"subject" db:"subject"`
	Message   string    `json:"message" db:"message"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FullName joins first and last name the way notifications address the sender.
func (m ContactMessage) FullName() string {
	return m.FirstName + " " + m.LastName
}

// ContactSubmission is the payload for POST /api/contact.
// Rules live in the validation package; the tags here only drive it.
type ContactSubmission struct {
	FirstName string `json:"firstName" validate:"required,personname"`
	LastName  string `json:"lastName" validate:"required,personname"`
	Email     string `json:"email" validate:"required,contactemail"`
	Phone     string `json:"phone"`
	Subject   string `json:"subject" validate:"required,subject"`
	Message   string `json:"message" validate:"required,min=10"`
}

// ContactResponse is returned with 201 once a message is stored.
// EmailSent reports whether any notification channel accepted it.
type ContactResponse struct {
	Message    string    `json:"message"`
	ID         uuid.UUID `json:"id"`
	EmailSent  bool      `json:"emailSent"`
	EmailError string    `json:"emailError,omitempty"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}
