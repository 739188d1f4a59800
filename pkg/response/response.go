package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the resource body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 with the created resource.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContent sends 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Paginated sends a page-number paginated list body.
func Paginated(c *gin.Context, count int64, next, previous *string, results any) {
	c.JSON(http.StatusOK, PaginatedResp{
		Count:    count,
		Next:     next,
		Previous: previous,
		Results:  results,
	})
}

// Error sends an error body with the given status.
func Error(c *gin.Context, status int, err error) {
	c.JSON(status, ErrorResp{Error: err.Error()})
}

// Detail sends an auth-style error body with the given status.
func Detail(c *gin.Context, status int, msg string) {
	c.JSON(status, DetailResp{Detail: msg})
}

// InternalError sends 500 without leaking the underlying error.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResp{Error: DefaultErrorMessage})
}

// Unauthorized sends 401.
func Unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, DetailResp{Detail: msg})
}
