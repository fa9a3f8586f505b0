package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
	"github.com/05ryt31/No-more-FOMO/internal/handler/dto"
	"github.com/05ryt31/No-more-FOMO/internal/service"
)

// ListEvents handles GET /api/events.
func (h *Handler) ListEvents(c *ginext.Context) {
	input := service.ListEventsInput{
		UniversityID: c.Query("university_id"),
		TimeFilter:   domain.TimeFilter(c.Query("time_filter")),
		Token:        bearerToken(c),
	}

	if raw := c.Query("interests"); raw != "" {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				input.Interests = append(input.Interests, v)
			}
		}
	}

	var err error
	if input.Limit, err = intQuery(c, "limit", 0); err != nil {
		h.handleError(c, err)
		return
	}
	if input.Offset, err = intQuery(c, "offset", 0); err != nil {
		h.handleError(c, err)
		return
	}

	events, err := h.eventService.List(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	res := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		res = append(res, dto.ToAnnotatedEventResponse(e))
	}

	c.JSON(http.StatusOK, ginext.H{"events": res})
}

// GetEvent handles GET /api/events/:id.
func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// GetEventCategories handles GET /api/categories.
func (h *Handler) GetEventCategories(c *ginext.Context) {
	categories, err := h.eventService.Categories(c.Request.Context(), c.Query("university_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"categories": categories})
}

// GetEventETA handles GET /api/events/:id/eta. The origin is optional; when
// absent the estimate falls back to the campus center.
func (h *Handler) GetEventETA(c *ginext.Context) {
	origin, err := coordsQuery(c)
	if err != nil {
		h.handleError(c, err)
		return
	}

	var buffer *time.Duration
	if raw := c.Query("buffer_minutes"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			h.handleError(c, fmt.Errorf("%w: buffer_minutes must be a non-negative integer", domain.ErrValidation))
			return
		}
		d := time.Duration(minutes) * time.Minute
		buffer = &d
	}

	res, err := h.etaService.Estimate(c.Request.Context(), c.Param("id"), origin, buffer)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToETAResponse(res))
}

// CreateEvent handles POST /api/organizer/events.
func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	startAt, err := parseEventTime(req.StartDate, req.StartTime)
	if err != nil {
		h.handleError(c, fmt.Errorf("%w: invalid start date/time", domain.ErrValidation))
		return
	}

	input := domain.CreateEventInput{
		UniversityID: req.UniversityID,
		Title:        req.Title,
		StartAt:      startAt,
		CoordsLat:    req.Lat,
		CoordsLng:    req.Lng,
		Categories:   req.Categories,
	}
	if req.Description != "" {
		input.Description = &req.Description
	}
	if req.Location != "" {
		input.Location = &req.Location
	}
	if req.ImageURL != "" {
		input.Image = &req.ImageURL
	}
	if req.EndDate != "" && req.EndTime != "" {
		endAt, err := parseEventTime(req.EndDate, req.EndTime)
		if err != nil {
			h.handleError(c, fmt.Errorf("%w: invalid end date/time", domain.ErrValidation))
			return
		}
		input.EndAt = &endAt
	}

	event, err := h.eventService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

// ExtractEvent handles POST /api/organizer/extract.
func (h *Handler) ExtractEvent(c *ginext.Context) {
	var req dto.ExtractEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request body"})
		return
	}

	extracted, err := h.eventService.Extract(c.Request.Context(), req.Text)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, extracted)
}

func intQuery(c *ginext.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", domain.ErrValidation, name)
	}
	return v, nil
}

// coordsQuery parses the optional lat/lng pair. Supplying only one half of
// the pair is a client error, absence of both is fine.
func coordsQuery(c *ginext.Context) (*geo.Coordinates, error) {
	rawLat, rawLng := c.Query("lat"), c.Query("lng")
	if rawLat == "" && rawLng == "" {
		return nil, nil
	}
	if rawLat == "" || rawLng == "" {
		return nil, fmt.Errorf("%w: lat and lng must be supplied together", domain.ErrValidation)
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lat must be a number", domain.ErrValidation)
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: lng must be a number", domain.ErrValidation)
	}

	coords := &geo.Coordinates{Lat: lat, Lng: lng}
	if !coords.Valid() {
		return nil, fmt.Errorf("%w: lat/lng out of range", domain.ErrValidation)
	}
	return coords, nil
}

func parseEventTime(date, clock string) (time.Time, error) {
	return time.Parse("2006-01-02 15:04", date+" "+clock)
}
