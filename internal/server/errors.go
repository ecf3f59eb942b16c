package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carbon-footprint/backend/internal/activity"
	"carbon-footprint/backend/internal/emission"
	"carbon-footprint/backend/internal/footprint"
	"carbon-footprint/backend/internal/logging"
	userservice "carbon-footprint/backend/internal/user/service"
)

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, emission.ErrInvalidArgument), errors.Is(err, emission.ErrUnsupportedCategoryValue):
		return http.StatusBadRequest
	case errors.Is(err, activity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, userservice.ErrEmailAlreadyRegistered):
		return http.StatusConflict
	case errors.Is(err, footprint.ErrAggregationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes {"error": ...} with the mapped status. Server-side failures are logged.
func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).Error().Err(err).
			Str("component", "server").
			Str("path", c.FullPath()).
			Msg("request failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

// badRequest reports a malformed body.
func badRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
