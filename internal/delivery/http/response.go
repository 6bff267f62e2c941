package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"shiptrack/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.WithField("status", statusCode).Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

// respondError translates service errors at the handler boundary. The
// 500 body stays generic; the real cause only goes to the log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).Error("internal error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
