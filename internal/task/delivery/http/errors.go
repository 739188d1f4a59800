package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenyi45/task-manager/internal/task"
	"github.com/Kenyi45/task-manager/pkg/response"
)

// mapError translates usecase errors into HTTP status codes.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrNotFound):
		response.Error(c, http.StatusNotFound, err)
	case errors.Is(err, task.ErrForbidden):
		response.Error(c, http.StatusForbidden, err)
	case errors.Is(err, task.ErrTitleRequired),
		errors.Is(err, task.ErrTitleTooShort),
		errors.Is(err, task.ErrTitleTooLong),
		errors.Is(err, task.ErrDescriptionTooLong),
		errors.Is(err, task.ErrNothingToUpdate),
		errors.Is(err, task.ErrInvalidOrdering):
		response.Error(c, http.StatusBadRequest, err)
	default:
		h.l.Errorf(c.Request.Context(), "task handler: %v", err)
		response.InternalError(c)
	}
}
