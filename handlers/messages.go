package handlers

import (
	"log/slog"
	"net/http"
	"portfolio/database"
	"portfolio/models"

	"github.com/gin-gonic/gin"
)

// ListMessages serves every stored contact message, newest first.
func ListMessages(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		messages, err := store.ListContactMessages(ctx)
		if err != nil {
			slog.Error("ListContactMessages database error", "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to fetch messages"})
			return
		}

		if messages == nil {
			messages = []models.ContactMessage{}
		}
		c.JSON(http.StatusOK, messages)
	}
}
