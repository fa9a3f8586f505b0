package dto

import (
	"time"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
)

type EventResponse struct {
	ID                 string   `json:"id"`
	UniversityID       string   `json:"university_id"`
	Title              string   `json:"title"`
	Description        *string  `json:"description,omitempty"`
	Start              string   `json:"start"`
	End                *string  `json:"end,omitempty"`
	Location           *string  `json:"location,omitempty"`
	CoordsLat          *float64 `json:"coords_lat,omitempty"`
	CoordsLng          *float64 `json:"coords_lng,omitempty"`
	Categories         []string `json:"categories"`
	Image              *string  `json:"image,omitempty"`
	Popularity         int      `json:"popularity"`
	RegistrationStatus *string  `json:"user_registration_status,omitempty"`
	CreatedAt          string   `json:"created_at"`
}

type RegistrationResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"user_id"`
	EventID      string         `json:"event_id"`
	Status       string         `json:"status"`
	CustomFields map[string]any `json:"custom_fields,omitempty"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type RegistrationWithEventResponse struct {
	RegistrationResponse
	Event EventResponse `json:"event"`
}

type UserResponse struct {
	ID           string   `json:"id"`
	Email        string   `json:"email"`
	UniversityID string   `json:"university_id"`
	Interests    []string `json:"interests"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UniversityResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Timezone  string  `json:"tz"`
	CenterLat float64 `json:"center_lat"`
	CenterLng float64 `json:"center_lng"`
}

// ETAResponse is always 200: Available=false is the degraded "ETA
// unavailable" state, distinct from "cannot make it".
type ETAResponse struct {
	Available       bool   `json:"available"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	DurationText    string `json:"duration_text,omitempty"`
	Distance        string `json:"distance,omitempty"`
	LeaveBy         string `json:"leave_by,omitempty"`
	CanMakeIt       bool   `json:"can_make_it"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:           e.ID,
		UniversityID: e.UniversityID,
		Title:        e.Title,
		Description:  e.Description,
		Start:        e.StartAt.Format(time.RFC3339),
		Location:     e.Location,
		CoordsLat:    e.CoordsLat,
		CoordsLng:    e.CoordsLng,
		Categories:   e.Categories,
		Image:        e.Image,
		Popularity:   e.Popularity,
		CreatedAt:    e.CreatedAt.Format(time.RFC3339),
	}
	if e.EndAt != nil {
		end := e.EndAt.Format(time.RFC3339)
		resp.End = &end
	}
	return resp
}

func ToAnnotatedEventResponse(e *domain.AnnotatedEvent) EventResponse {
	resp := ToEventResponse(&e.Event)
	if e.RegistrationStatus != nil {
		status := string(*e.RegistrationStatus)
		resp.RegistrationStatus = &status
	}
	return resp
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		EventID:      r.EventID,
		Status:       string(r.Status),
		CustomFields: r.CustomFields,
		CreatedAt:    r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.UpdatedAt.Format(time.RFC3339),
	}
}

func ToRegistrationWithEventResponse(r *domain.RegistrationWithEvent) RegistrationWithEventResponse {
	return RegistrationWithEventResponse{
		RegistrationResponse: ToRegistrationResponse(&r.Registration),
		Event:                ToEventResponse(&r.Event),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		UniversityID: u.UniversityID,
		Interests:    u.Interests,
	}
}

func ToAuthResponse(res *domain.AuthResult) AuthResponse {
	return AuthResponse{
		Token: res.Token,
		User:  ToUserResponse(res.User),
	}
}

func ToUniversityResponse(u *domain.University) UniversityResponse {
	return UniversityResponse{
		ID:        u.ID,
		Name:      u.Name,
		Timezone:  u.Timezone,
		CenterLat: u.CenterLat,
		CenterLng: u.CenterLng,
	}
}

func ToETAResponse(r *domain.ETAResult) ETAResponse {
	if !r.Available {
		return ETAResponse{Available: false}
	}
	return ETAResponse{
		Available:       true,
		DurationMinutes: r.DurationMinutes,
		DurationText:    geo.FormatDuration(r.DurationMinutes),
		Distance:        r.Distance,
		LeaveBy:         r.LeaveBy.Format(time.RFC3339),
		CanMakeIt:       r.CanMakeIt,
	}
}
