package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/dto"
	"github.com/snnyvrz/library-api/internal/validation"
)

// Response is the envelope every JSON body is wrapped in. Exactly one of
// Data and Error is set.
type Response struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
	Error     *APIError `json:"error"`
}

type APIError struct {
	Status  int                     `json:"status"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors,omitempty"`
}

// Typed envelopes, used by the swagger annotations and by tests to decode
// bodies.

type AuthorResponse struct {
	Timestamp time.Time  `json:"timestamp"`
	Data      dto.Author `json:"data"`
	Error     *APIError  `json:"error"`
}

type AuthorListResponse struct {
	Timestamp time.Time    `json:"timestamp"`
	Data      []dto.Author `json:"data"`
	Error     *APIError    `json:"error"`
}

type BookResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Data      dto.Book  `json:"data"`
	Error     *APIError `json:"error"`
}

type BookListResponse struct {
	Timestamp time.Time  `json:"timestamp"`
	Data      []dto.Book `json:"data"`
	Error     *APIError  `json:"error"`
}

type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data" swaggertype:"object"`
	Error     *APIError `json:"error"`
}

func writeData(c *gin.Context, status int, data any) {
	c.JSON(status, Response{
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

func writeError(c *gin.Context, status int, message string, fields []validation.FieldError) {
	c.AbortWithStatusJSON(status, Response{
		Timestamp: time.Now().UTC(),
		Error: &APIError{
			Status:  status,
			Message: message,
			Errors:  fields,
		},
	})
}
