package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	Verify(c *ginext.Context)
	ListUniversities(c *ginext.Context)
	GetUniversity(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	GetEventCategories(c *ginext.Context)
	GetEventETA(c *ginext.Context)
	RegisterForEvent(c *ginext.Context)
	MarkInterested(c *ginext.Context)
	CancelRegistration(c *ginext.Context)
	ListMyRegistrations(c *ginext.Context)
	GetRegistrationStatus(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	ExtractEvent(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Auth
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.GET("/auth/verify", h.Verify)

		// Universities
		api.GET("/universities", h.ListUniversities)
		api.GET("/universities/:id", h.GetUniversity)

		// Events
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)
		api.GET("/events/:id/eta", h.GetEventETA)
		api.GET("/categories", h.GetEventCategories)

		// Registrations
		api.POST("/events/:id/register", h.RegisterForEvent)
		api.POST("/events/:id/interested", h.MarkInterested)
		api.POST("/events/:id/cancel", h.CancelRegistration)
		api.GET("/me/registrations", h.ListMyRegistrations)
		api.GET("/me/registrations/status", h.GetRegistrationStatus)

		// Organizer
		api.POST("/organizer/events", h.CreateEvent)
		api.POST("/organizer/extract", h.ExtractEvent)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
