package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/handler/dto"
)

// Signup handles POST /api/auth/signup.
func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.userService.Signup(c.Request.Context(), domain.SignupInput{
		Email:        req.Email,
		Password:     req.Password,
		UniversityID: req.UniversityID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(res))
}

// Login handles POST /api/auth/login.
func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(res))
}

// Verify handles GET /api/auth/verify: it resolves the bearer token to the
// current user or rejects it.
func (h *Handler) Verify(c *ginext.Context) {
	user, err := h.userService.Authenticate(c.Request.Context(), bearerToken(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
