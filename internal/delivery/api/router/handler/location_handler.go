package handler

import (
	"log/slog"
	"net/http"
	"time"

	"geofence/internal/delivery/api/response"
	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/domain/entity"
	"geofence/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// SubmitLocationRequest represents the request body for a location report
type SubmitLocationRequest struct {
	Latitude  *float64   `json:"latitude" validate:"required"`
	Longitude *float64   `json:"longitude" validate:"required"`
	Accuracy  float64    `json:"accuracy" validate:"gt=0"`
	Timestamp *time.Time `json:"timestamp" validate:"required"`
}

// SubmitLocationResponse is the outcome of a location report
type SubmitLocationResponse struct {
	Accepted      bool                              `json:"accepted"`
	Dispatched    int                               `json:"dispatched"`
	Notifications []*usecase.DispatchedNotification `json:"notifications"`
	Location      *entity.UserLocation              `json:"location"`
}

// SubmitLocation stores the caller's position and runs the proximity check
func (h *LocationHandler) SubmitLocation(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SubmitLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid location input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.locationUC.SubmitLocation(c.Request().Context(), &usecase.SubmitLocationInput{
		UserID:     userID,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		Accuracy:   req.Accuracy,
		ObservedAt: *req.Timestamp,
	})
	if err != nil {
		return err
	}

	notifications := result.Notifications
	if notifications == nil {
		notifications = []*usecase.DispatchedNotification{}
	}

	return response.Success(c, http.StatusOK, &SubmitLocationResponse{
		Accepted:      result.Accepted,
		Dispatched:    result.Dispatched,
		Notifications: notifications,
		Location:      result.Location,
	})
}

// GetLocation returns the caller's stored position
func (h *LocationHandler) GetLocation(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, location)
}
