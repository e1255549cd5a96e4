package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/looplj/authhub/internal/log"
	"github.com/looplj/authhub/internal/objects"
	"github.com/looplj/authhub/internal/server/biz"
)

// statusForError maps service failure kinds to HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, biz.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, biz.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, biz.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, biz.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// JSONError renders a service error as a JSON response. Internal failures
// are logged and replaced with a generic message.
func JSONError(c *gin.Context, err error) {
	status := statusForError(err)

	if status == http.StatusInternalServerError {
		log.Error(c.Request.Context(), "request failed", log.Cause(err))

		err = biz.ErrInternal
	}

	_ = c.Error(err)
	c.JSON(status, objects.ErrorResponse{
		Error: objects.Error{
			Type:    http.StatusText(status),
			Message: err.Error(),
		},
	})
}

// JSONBadRequest renders a request validation failure.
func JSONBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, objects.ErrorResponse{
		Error: objects.Error{
			Type:    http.StatusText(http.StatusBadRequest),
			Message: err.Error(),
		},
	})
}
