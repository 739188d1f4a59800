package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kenyi45/task-manager/internal/auth"
	"github.com/Kenyi45/task-manager/pkg/response"
)

type refreshRequest struct {
	Refresh string `json:"refresh"`
}

type refreshResponse struct {
	Access string `json:"access"`
}

// Login handles credential submission.
// @Summary Obtain token pair
// @Description Verifies credentials and returns an access/refresh pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body auth.LoginInput true "Username and password"
// @Success 200 {object} model.TokenPair
// @Failure 401 {object} response.DetailResp
// @Router /api/token/ [post]
func (h *handler) Login(c *gin.Context) {
	var input auth.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Detail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	pair, err := h.uc.Login(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			response.Detail(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.l.Errorf(c.Request.Context(), "auth handler: login failed: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, pair)
}

// Refresh handles access token renewal.
// @Summary Refresh access token
// @Description Exchanges a valid refresh token for a new access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param token body refreshRequest true "Refresh token"
// @Success 200 {object} refreshResponse
// @Failure 401 {object} response.DetailResp
// @Router /api/token/refresh/ [post]
func (h *handler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Refresh == "" {
		response.Detail(c, http.StatusBadRequest, "refresh token is required")
		return
	}

	access, err := h.uc.Refresh(c.Request.Context(), req.Refresh)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidToken) {
			response.Detail(c, http.StatusUnauthorized, err.Error())
			return
		}
		h.l.Errorf(c.Request.Context(), "auth handler: refresh failed: %v", err)
		response.InternalError(c)
		return
	}

	response.OK(c, refreshResponse{Access: access})
}
