package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"project-test-api/internal/response"
)

// handleServiceError translates service-layer errors into HTTP responses.
// Application errors keep their fixed message; anything else becomes a
// generic 500 so internal detail never reaches the client.
func handleServiceError(c *gin.Context, err error, fallback string) {
	var appErr *response.AppError
	if errors.As(err, &appErr) {
		response.SendError(c, response.StatusForCode(appErr.Code), appErr.Code, appErr.Message)
		return
	}
	response.SendError(c, http.StatusInternalServerError, response.ErrCodeInternal, fallback)
}
