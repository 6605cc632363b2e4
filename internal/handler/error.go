package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/snnyvrz/library-api/internal/service"
	"github.com/snnyvrz/library-api/internal/validation"
)

// ErrorHandler renders the last error attached to the context with c.Error.
// Handlers never write error bodies themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message, fields := translate(err)

		log := zerolog.Ctx(c.Request.Context())
		if status >= http.StatusInternalServerError {
			log.Error().Err(err).Int("status", status).Msg("request failed")
		} else {
			log.Warn().Err(err).Int("status", status).Msg("request rejected")
		}

		writeError(c, status, message, fields)
	}
}

// translate maps an error to its status code and client message.
// Conflict stays a 500, matching the API's established contract.
func translate(err error) (int, string, []validation.FieldError) {
	var verr *validation.Error
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Message, verr.Fields
	}

	var serr *service.Error
	if errors.As(err, &serr) {
		switch serr.Kind {
		case service.KindNotFound:
			return http.StatusNotFound, serr.Message, nil
		case service.KindInvalid:
			return http.StatusBadRequest, serr.Message, nil
		case service.KindConflict:
			return http.StatusInternalServerError, serr.Message, nil
		}
	}

	return http.StatusInternalServerError, "internal server error", nil
}

func NoRoute(c *gin.Context) {
	writeError(c, http.StatusNotFound, "resource not found", nil)
}

func NoMethod(c *gin.Context) {
	writeError(c, http.StatusMethodNotAllowed, "method not allowed", nil)
}
