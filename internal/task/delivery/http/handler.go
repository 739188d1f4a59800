package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kenyi45/task-manager/internal/middleware"
	"github.com/Kenyi45/task-manager/internal/task"
	"github.com/Kenyi45/task-manager/pkg/paging"
	"github.com/Kenyi45/task-manager/pkg/response"
)

// List handles the paginated task listing.
// @Summary List tasks
// @Description Lists the authenticated user's tasks, newest first
// @Tags Tasks
// @Produce json
// @Param page query int false "1-based page number"
// @Param page_size query int false "Page size"
// @Param search query string false "Substring filter over title and description"
// @Param ordering query string false "created_at or title, optionally prefixed with -"
// @Success 200 {object} response.PaginatedResp
// @Failure 401 {object} response.DetailResp
// @Security BearerAuth
// @Router /api/tasks/ [get]
func (h *handler) List(c *gin.Context) {
	sc := middleware.ScopeFromContext(c)

	page := queryInt(c, "page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := queryInt(c, "page_size", h.cfg.DefaultPageSize)
	if pageSize < 1 {
		pageSize = h.cfg.DefaultPageSize
	}
	if pageSize > h.cfg.MaxPageSize {
		pageSize = h.cfg.MaxPageSize
	}

	out, err := h.uc.List(c.Request.Context(), sc, task.ListInput{
		Search:   c.Query("search"),
		Ordering: c.Query("ordering"),
		Limit:    pageSize,
		Offset:   paging.Offset(page, pageSize),
	})
	if err != nil {
		h.mapError(c, err)
		return
	}

	next, previous := paging.Links(c.Request.URL, page, pageSize, int(out.Total))
	response.Paginated(c, out.Total, next, previous, toTaskRespList(out.Tasks, sc))
}

// Create handles task creation.
// @Summary Create task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param task body task.CreateInput true "Title and optional description"
// @Success 201 {object} taskResp
// @Failure 400 {object} response.ErrorResp
// @Security BearerAuth
// @Router /api/tasks/ [post]
func (h *handler) Create(c *gin.Context) {
	sc := middleware.ScopeFromContext(c)

	var input task.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}

	t, err := h.uc.Create(c.Request.Context(), sc, input)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.Created(c, toTaskResp(t, sc))
}

// Get handles single task retrieval.
// @Summary Get task
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} taskDetailResp
// @Failure 404 {object} response.ErrorResp
// @Security BearerAuth
// @Router /api/tasks/{id}/ [get]
func (h *handler) Get(c *gin.Context) {
	sc := middleware.ScopeFromContext(c)

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	t, err := h.uc.Get(c.Request.Context(), sc, id)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, toTaskDetailResp(t, sc))
}

// Update handles full (PUT) and partial (PATCH) updates.
// @Summary Update task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param task body task.UpdateInput true "Fields to update"
// @Success 200 {object} taskResp
// @Failure 400 {object} response.ErrorResp
// @Failure 404 {object} response.ErrorResp
// @Security BearerAuth
// @Router /api/tasks/{id}/ [patch]
func (h *handler) Update(c *gin.Context) {
	sc := middleware.ScopeFromContext(c)

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	var input task.UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, err)
		return
	}
	input.Full = c.Request.Method == http.MethodPut

	t, err := h.uc.Update(c.Request.Context(), sc, id, input)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, toTaskResp(t, sc))
}

// Delete handles task removal.
// @Summary Delete task
// @Tags Tasks
// @Param id path int true "Task ID"
// @Success 204
// @Failure 404 {object} response.ErrorResp
// @Security BearerAuth
// @Router /api/tasks/{id}/ [delete]
func (h *handler) Delete(c *gin.Context) {
	sc := middleware.ScopeFromContext(c)

	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), sc, id); err != nil {
		h.mapError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *handler) pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.mapError(c, task.ErrNotFound)
		return 0, false
	}
	return uint(id), true
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
