package handler

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/05ryt31/No-more-FOMO/internal/handler/dto"
)

// ListUniversities handles GET /api/universities.
func (h *Handler) ListUniversities(c *ginext.Context) {
	universities, err := h.universityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.UniversityResponse, 0, len(universities))
	for _, u := range universities {
		res = append(res, dto.ToUniversityResponse(u))
	}

	c.JSON(http.StatusOK, ginext.H{"universities": res})
}

// GetUniversity handles GET /api/universities/:id. The id "default" resolves
// to the configured fallback campus.
func (h *Handler) GetUniversity(c *ginext.Context) {
	id := c.Param("id")

	if id == "default" {
		u, derr := h.universityService.Default(c.Request.Context())
		if derr != nil {
			h.handleError(c, derr)
			return
		}
		c.JSON(http.StatusOK, dto.ToUniversityResponse(u))
		return
	}

	u, err := h.universityService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUniversityResponse(u))
}
