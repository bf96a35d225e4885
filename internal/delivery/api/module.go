package api

import (
	"geofence/internal/delivery/api/middleware"
	"geofence/internal/delivery/api/router/handler"

	"go.uber.org/fx"
)

// Module provides the HTTP API FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		handler.NewLocationHandler,
		handler.NewRegionHandler,
		handler.NewProximityHandler,
		middleware.NewAuthMiddleware,
		fx.Annotate(
			NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	),
)
