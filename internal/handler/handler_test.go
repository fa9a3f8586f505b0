package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
	"github.com/05ryt31/No-more-FOMO/internal/handler/dto"
	hmocks "github.com/05ryt31/No-more-FOMO/internal/handler/mocks"
	"github.com/05ryt31/No-more-FOMO/internal/service"
)

type routerMocks struct {
	events        *hmocks.MockEventSvc
	registrations *hmocks.MockRegistrationSvc
	users         *hmocks.MockUserSvc
	universities  *hmocks.MockUniversitySvc
	eta           *hmocks.MockETASvc
}

func setupRouter(t *testing.T) (routerMocks, http.Handler) {
	t.Helper()
	m := routerMocks{
		events:        hmocks.NewMockEventSvc(t),
		registrations: hmocks.NewMockRegistrationSvc(t),
		users:         hmocks.NewMockUserSvc(t),
		universities:  hmocks.NewMockUniversitySvc(t),
		eta:           hmocks.NewMockETASvc(t),
	}

	h := NewHandler(m.events, m.registrations, m.users, m.universities, m.eta)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/verify", h.Verify)
		api.GET("/universities", h.ListUniversities)
		api.GET("/universities/:id", h.GetUniversity)
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/eta", h.GetEventETA)
		api.GET("/categories", h.GetEventCategories)
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/interested", h.MarkInterested)
		api.POST("/events/:id/cancel", h.CancelRegistration)
		api.GET("/me/registrations", h.ListMyRegistrations)
		api.GET("/me/registrations/status", h.GetRegistrationStatus)
		api.POST("/organizer/events", h.CreateEvent)
		api.POST("/organizer/extract", h.ExtractEvent)
	}

	return m, r
}

// --- Events ---

func TestHandler_ListEvents_Success(t *testing.T) {
	m, r := setupRouter(t)

	going := domain.RegistrationStatusGoing
	events := []*domain.AnnotatedEvent{
		{Event: domain.Event{ID: "e1", Title: "Welcome Mixer", StartAt: time.Now().Add(time.Hour)}, RegistrationStatus: &going},
		{Event: domain.Event{ID: "e2", Title: "Career Fair", StartAt: time.Now().Add(2 * time.Hour)}},
	}

	m.events.EXPECT().List(mock.Anything, mock.MatchedBy(func(in service.ListEventsInput) bool {
		return in.UniversityID == "ucla" &&
			in.TimeFilter == domain.TimeFilterHappeningSoon &&
			in.Limit == 10 &&
			in.Token == "tok"
	})).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?university_id=ucla&time_filter=happening-soon&limit=10", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Events []dto.EventResponse `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 2)
	require.NotNil(t, resp.Events[0].RegistrationStatus)
	assert.Equal(t, "going", *resp.Events[0].RegistrationStatus)
	assert.Nil(t, resp.Events[1].RegistrationStatus)
}

func TestHandler_ListEvents_BadLimit(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?university_id=ucla&limit=abc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_ValidationError(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().List(mock.Anything, mock.Anything).Return(nil, domain.ErrValidation)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEventETA_Success(t *testing.T) {
	m, r := setupRouter(t)

	leaveBy := time.Now().Add(time.Hour).Truncate(time.Second)
	m.eta.EXPECT().Estimate(mock.Anything, "e1", mock.MatchedBy(func(origin *geo.Coordinates) bool {
		return origin != nil && origin.Lat == 34.0689 && origin.Lng == -118.4452
	}), mock.Anything).Return(&domain.ETAResult{
		Available:       true,
		DurationMinutes: 12,
		Distance:        "0.9 km",
		LeaveBy:         leaveBy,
		CanMakeIt:       true,
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/e1/eta?lat=34.0689&lng=-118.4452", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ETAResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, 12, resp.DurationMinutes)
	assert.Equal(t, "12 min", resp.DurationText)
	assert.True(t, resp.CanMakeIt)
}

func TestHandler_GetEventETA_Unavailable(t *testing.T) {
	m, r := setupRouter(t)

	m.eta.EXPECT().Estimate(mock.Anything, "e1", mock.Anything, mock.Anything).
		Return(domain.ETAUnavailable(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/e1/eta", nil)
	r.ServeHTTP(w, req)

	// Degraded, not an error: the client renders the card without an ETA.
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ETAResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Available)
}

func TestHandler_GetEventETA_HalfCoordinatePair(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/e1/eta?lat=34.0689", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Registrations ---

func TestHandler_RegisterForEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	reg := &domain.Registration{
		ID:      "r1",
		UserID:  "u1",
		EventID: "e1",
		Status:  domain.RegistrationStatusGoing,
	}

	m.registrations.EXPECT().Register(mock.Anything, "tok", "e1", mock.MatchedBy(func(f map[string]any) bool {
		return f["dietary"] == "vegetarian"
	})).Return(reg, nil)

	body := []byte(`{"custom_fields":{"dietary":"vegetarian"}}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "going", resp.Status)
}

func TestHandler_RegisterForEvent_Unauthorized(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().Register(mock.Anything, "", "e1", mock.Anything).
		Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/register", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MarkInterested_Conflict(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().MarkInterested(mock.Anything, "tok", "e1").
		Return(nil, domain.ErrAlreadyRegistered)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/interested", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelRegistration_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.registrations.EXPECT().Cancel(mock.Anything, "tok", "e1").
		Return(nil, domain.ErrRegistrationNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/e1/cancel", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetRegistrationStatus_RequiresEventIDs(t *testing.T) {
	_, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/me/registrations/status", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Auth ---

func TestHandler_Signup_Success(t *testing.T) {
	m, r := setupRouter(t)

	res := &domain.AuthResult{
		Token: "signed-token",
		User:  &domain.User{ID: "u1", Email: "alice@ucla.edu", UniversityID: "ucla", Interests: []string{}},
	}

	m.users.EXPECT().Signup(mock.Anything, mock.MatchedBy(func(in domain.SignupInput) bool {
		return in.Email == "alice@ucla.edu" && in.UniversityID == "ucla"
	})).Return(res, nil)

	body, _ := json.Marshal(dto.SignupRequest{
		Email:        "alice@ucla.edu",
		Password:     "hunter2secret",
		UniversityID: "ucla",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "alice@ucla.edu", resp.User.Email)
}

func TestHandler_Signup_EmailTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	body, _ := json.Marshal(dto.SignupRequest{
		Email:        "alice@ucla.edu",
		Password:     "hunter2secret",
		UniversityID: "ucla",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Signup_BadBody(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"email":"not-an-email"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	m, r := setupRouter(t)

	m.users.EXPECT().Login(mock.Anything, "alice@ucla.edu", "wrong-password").
		Return(nil, domain.ErrUnauthorized)

	body, _ := json.Marshal(dto.LoginRequest{Email: "alice@ucla.edu", Password: "wrong-password"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_Verify_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{ID: "u1", Email: "alice@ucla.edu", UniversityID: "ucla", Interests: []string{"music"}}
	m.users.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.ID)
}

// --- Universities ---

func TestHandler_GetUniversity_Default(t *testing.T) {
	m, r := setupRouter(t)

	m.universities.EXPECT().Default(mock.Anything).
		Return(&domain.University{ID: "ucla", Name: "UCLA", Timezone: "America/Los_Angeles"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/universities/default", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.UniversityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ucla", resp.ID)
}

func TestHandler_GetUniversity_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.universities.EXPECT().GetByID(mock.Anything, "nowhere").
		Return(nil, domain.ErrUniversityNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/universities/nowhere", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Organizer ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	m, r := setupRouter(t)

	event := &domain.Event{
		ID:           "e1",
		UniversityID: "ucla",
		Title:        "Welcome Mixer",
		StartAt:      time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Categories:   []string{"social"},
	}

	m.events.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateEventInput) bool {
		return in.Title == "Welcome Mixer" &&
			in.StartAt.Equal(time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC))
	})).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		UniversityID: "ucla",
		Title:        "Welcome Mixer",
		StartDate:    "2026-09-12",
		StartTime:    "18:00",
		Categories:   []string{"social"},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizer/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Welcome Mixer", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := []byte(`{"university_id":"ucla","title":"X","start_date":"tomorrow","start_time":"18:00"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizer/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ExtractEvent_UpstreamFailure(t *testing.T) {
	m, r := setupRouter(t)

	m.events.EXPECT().Extract(mock.Anything, "some announcement").
		Return(nil, domain.ErrExtractFailed)

	body, _ := json.Marshal(dto.ExtractEventRequest{Text: "some announcement"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/organizer/extract", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
