// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"attendance/internal/delivery/api/middleware"
	"attendance/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CheckinHandler  *handler.CheckinHandler
	GeofenceHandler *handler.GeofenceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	checkinHandler  *handler.CheckinHandler
	geofenceHandler *handler.GeofenceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		checkinHandler:  params.CheckinHandler,
		geofenceHandler: params.GeofenceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// API v1 routes
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	eventGroup := apiV1.Group("/events/:eventId")
	{
		// Attendee routes, always acting on the caller
		eventGroup.GET("/checkins/me", r.checkinHandler.GetMyCheckin)
		eventGroup.GET("/checkins/:userId/status", r.checkinHandler.GetCheckinStatus)
		eventGroup.GET("/checkin-qr", r.checkinHandler.GetCheckinQR)
		eventGroup.POST("/location", r.geofenceHandler.TrackLocation)
		eventGroup.POST("/radius-check", r.geofenceHandler.CheckInRadius)
		eventGroup.POST("/auto-checkout", r.geofenceHandler.AutoCheckOut)

		// Administrator routes
		eventGroup.POST("/checkins", r.checkinHandler.CheckIn, r.authMiddleware.RequireEventAdmin)
		eventGroup.GET("/checkins", r.checkinHandler.ListCheckedIn, r.authMiddleware.RequireEventAdmin)
		eventGroup.DELETE("/checkins/:userId", r.checkinHandler.CheckOut, r.authMiddleware.RequireEventAdmin)
		eventGroup.GET("/geofence", r.geofenceHandler.GeofenceStatus, r.authMiddleware.RequireEventAdmin)
	}
}
