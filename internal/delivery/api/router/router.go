// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"geofence/config"
	"geofence/internal/delivery/api/middleware"
	"geofence/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler  *handler.LocationHandler
	RegionHandler    *handler.RegionHandler
	ProximityHandler *handler.ProximityHandler
	HealthHandler    *handler.HealthHandler
	AuthMiddleware   *middleware.AuthMiddleware
	Registry         *prometheus.Registry
	Config           *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler  *handler.LocationHandler
	regionHandler    *handler.RegionHandler
	proximityHandler *handler.ProximityHandler
	healthHandler    *handler.HealthHandler
	authMiddleware   *middleware.AuthMiddleware
	registry         *prometheus.Registry
	config           *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler:  params.LocationHandler,
		regionHandler:    params.RegionHandler,
		proximityHandler: params.ProximityHandler,
		healthHandler:    params.HealthHandler,
		authMiddleware:   params.AuthMiddleware,
		registry:         params.Registry,
		config:           params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
			Registry: r.registry,
		})))
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate) // All API v1 routes require authentication

	locationsGroup := apiV1.Group("/locations")
	{
		locationsGroup.POST("", r.locationHandler.SubmitLocation)
		locationsGroup.GET("", r.locationHandler.GetLocation)
	}

	regionsGroup := apiV1.Group("/regions")
	{
		regionsGroup.GET("", r.regionHandler.ListActiveRegions)
		regionsGroup.POST("", r.regionHandler.CreateRegion)
		regionsGroup.GET("/nearby", r.regionHandler.ListRegionsNear)
		regionsGroup.GET("/:id", r.regionHandler.GetRegion)
		regionsGroup.DELETE("/:id", r.regionHandler.DeactivateRegion)
		regionsGroup.GET("/:id/qr", r.regionHandler.GetRegionQR)
	}

	apiV1.POST("/proximity/check", r.proximityHandler.CheckProximity)
	apiV1.GET("/notifications", r.proximityHandler.GetNotificationHistory)
}
