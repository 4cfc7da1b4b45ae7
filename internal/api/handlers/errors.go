package handlers

import (
	"net/http"

	"seffaflik/internal/api/models"
	"seffaflik/internal/model"

	"github.com/gin-gonic/gin"
)

func abortWith(c *gin.Context, status int, code, message string, details map[string]any) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func badRequest(c *gin.Context, err error) {
	abortWith(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error(), nil)
}

// invalidQuery reports a failed input check before any upstream call.
func invalidQuery(c *gin.Context, err *model.Error) {
	abortWith(c, http.StatusBadRequest, err.Code, err.Message, nil)
}

func notFound(c *gin.Context, what, name string) {
	abortWith(c, http.StatusNotFound, "NOT_FOUND", what+" not found", map[string]any{"name": name})
}
