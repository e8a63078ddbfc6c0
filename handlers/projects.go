package handlers

import (
	"log/slog"
	"net/http"
	"portfolio/database"
	"portfolio/models"

	"github.com/gin-gonic/gin"
)

// ListProjects serves the project catalog in display order.
func ListProjects(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		projects, err := store.ListProjects(ctx)
		if err != nil {
			slog.Error("ListProjects database error", "error", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Message: "Failed to fetch projects"})
			return
		}

		if projects == nil {
			projects = []models.Project{}
		}
		c.JSON(http.StatusOK, projects)
	}
}
