package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"portfolio/database"
	"portfolio/models"
	"portfolio/notify"
	"portfolio/validation"

	"github.com/gin-gonic/gin"
)

// Notifier delivers a stored contact message to the site owner.
type Notifier interface {
	Notify(ctx context.Context, msg models.ContactMessage) notify.Result
}

const invalidFormMessage = "Invalid form data"

// maxContactBodyBytes bounds the JSON body of a contact submission.
const maxContactBodyBytes = 64 << 10

// SubmitContact validates, stores and then notifies. A message that was
// stored is acknowledged with 201 even when no channel delivered it.
func SubmitContact(store database.Store, v *validation.Validator, notifier Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxContactBodyBytes)

		var sub models.ContactSubmission
		if err := c.ShouldBindJSON(&sub); err != nil {
			slog.Info("contact bind error", "error", err)
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{Message: "Request body too large"})
				return
			}
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Message: invalidFormMessage,
				Errors:  []validation.FieldError{bindFieldError(err)},
			})
			return
		}

		sub, err := v.Validate(sub)
		if err != nil {
			var verr *validation.Error
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse{Message: invalidFormMessage, Errors: verr.Fields})
				return
			}
			slog.Error("contact validation error", "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to process message"})
			return
		}

		msg, err := store.CreateContactMessage(c.Request.Context(), sub)
		if err != nil {
			slog.Error("CreateContactMessage database error", "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to process message"})
			return
		}

		slog.Info("contact message stored", "id", msg.ID, "email", msg.Email)

		// The message is already stored; a client disconnect must not abort delivery.
		result := notifier.Notify(context.WithoutCancel(c.Request.Context()), *msg)

		resp := models.ContactResponse{
			Message:   "Message saved successfully",
			ID:        msg.ID,
			EmailSent: result.Delivered,
		}
		if !result.Delivered {
			resp.EmailError = result.LastError
		}
		c.JSON(http.StatusCreated, resp)
	}
}

func bindFieldError(err error) validation.FieldError {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.FieldError{
			Field:   typeErr.Field,
			Kind:    validation.InvalidFormat,
			Message: typeErr.Field + " must be a " + typeErr.Type.String(),
		}
	}
	return validation.FieldError{
		Field:   "body",
		Kind:    validation.InvalidFormat,
		Message: "request body must be a JSON object",
	}
}
