package types

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/mauiplayer/radio-api/pkg/errors"
)

// RequestIDKey is the gin context key holding the request id
const RequestIDKey = "request_id"

// SendSuccess sends a standardized success response with data
func SendSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SendError logs err with its cause chain and responds with the status and
// client facing message of the AppError it carries. Anything else is a 500.
func SendError(c *gin.Context, err error) {
	status := apperrors.GetHTTPCode(err)
	message := http.StatusText(http.StatusInternalServerError)

	event := log.Error()
	if status < http.StatusInternalServerError {
		event = log.Warn()
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if len(appErr.Details) > 0 {
			event = event.Fields(appErr.Details)
		}
	}

	event.
		Err(err).
		Str("code", string(apperrors.GetCode(err))).
		Str("path", c.Request.URL.Path).
		Str(RequestIDKey, c.GetString(RequestIDKey)).
		Int("status", status).
		Msg(message)

	c.JSON(status, ErrorResponse{Error: message})
}

// AbortWithError stops the handler chain and responds like SendError
func AbortWithError(c *gin.Context, err error) {
	c.Abort()
	SendError(c, err)
}
