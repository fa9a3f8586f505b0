package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/wb-go/wbf/ginext"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/handler/dto"
)

// RegisterForEvent handles POST /api/events/:id/register. Re-registering is
// idempotent: the existing record is moved back to "going".
func (h *Handler) RegisterForEvent(c *ginext.Context) {
	var req dto.RegisterRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
			return
		}
	}

	reg, err := h.registrationService.Register(c.Request.Context(), bearerToken(c), c.Param("id"), req.CustomFields)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

// MarkInterested handles POST /api/events/:id/interested.
func (h *Handler) MarkInterested(c *ginext.Context) {
	reg, err := h.registrationService.MarkInterested(c.Request.Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

// CancelRegistration handles POST /api/events/:id/cancel. The record is kept
// with status "cancelled" rather than deleted.
func (h *Handler) CancelRegistration(c *ginext.Context) {
	reg, err := h.registrationService.Cancel(c.Request.Context(), bearerToken(c), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

// ListMyRegistrations handles GET /api/me/registrations.
func (h *Handler) ListMyRegistrations(c *ginext.Context) {
	var status *domain.RegistrationStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.RegistrationStatus(raw)
		status = &s
	}

	regs, err := h.registrationService.ListByUser(c.Request.Context(), bearerToken(c), status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.RegistrationWithEventResponse, 0, len(regs))
	for _, r := range regs {
		res = append(res, dto.ToRegistrationWithEventResponse(r))
	}

	c.JSON(http.StatusOK, ginext.H{"registrations": res})
}

// GetRegistrationStatus handles GET /api/me/registrations/status. It returns
// the caller's status for each requested event, omitting events with none.
func (h *Handler) GetRegistrationStatus(c *ginext.Context) {
	raw := c.Query("event_ids")
	if raw == "" {
		h.handleError(c, fmt.Errorf("%w: event_ids is required", domain.ErrValidation))
		return
	}

	var ids []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			ids = append(ids, v)
		}
	}

	statuses, err := h.registrationService.StatusMap(c.Request.Context(), bearerToken(c), ids)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"statuses": statuses})
}
