package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/wb-go/wbf/ginext"

	"github.com/05ryt31/No-more-FOMO/internal/domain"
	"github.com/05ryt31/No-more-FOMO/internal/geo"
	"github.com/05ryt31/No-more-FOMO/internal/handler/dto"
	"github.com/05ryt31/No-more-FOMO/internal/service"
)

type EventSvc interface {
	List(ctx context.Context, input service.ListEventsInput) ([]*domain.AnnotatedEvent, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	Categories(ctx context.Context, universityID string) ([]string, error)
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	Extract(ctx context.Context, text string) (*domain.ExtractedEvent, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, token, eventID string, customFields map[string]any) (*domain.Registration, error)
	MarkInterested(ctx context.Context, token, eventID string) (*domain.Registration, error)
	Cancel(ctx context.Context, token, eventID string) (*domain.Registration, error)
	StatusMap(ctx context.Context, token string, eventIDs []string) (map[string]domain.RegistrationStatus, error)
	ListByUser(ctx context.Context, token string, status *domain.RegistrationStatus) ([]*domain.RegistrationWithEvent, error)
}

type UserSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.AuthResult, error)
	Login(ctx context.Context, email, password string) (*domain.AuthResult, error)
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

type UniversitySvc interface {
	List(ctx context.Context) ([]*domain.University, error)
	GetByID(ctx context.Context, id string) (*domain.University, error)
	Default(ctx context.Context) (*domain.University, error)
}

type ETASvc interface {
	Estimate(ctx context.Context, eventID string, origin *geo.Coordinates, buffer *time.Duration) (*domain.ETAResult, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	userService         UserSvc
	universityService   UniversitySvc
	etaService          ETASvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	userService UserSvc,
	universityService UniversitySvc,
	etaService ETASvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		userService:         userService,
		universityService:   universityService,
		etaService:          etaService,
	}
}

// bearerToken pulls the opaque credential out of the Authorization header.
// Absence is not an error here: read paths treat it as anonymous, write
// paths fail closed inside the service.
func bearerToken(c *ginext.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrUniversityNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyRegistered):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrExtractFailed):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
