package handler

import (
	"log/slog"
	"net/http"

	"geofence/internal/delivery/api/response"
	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProximityHandlerParams holds dependencies for ProximityHandler, injected by Fx.
type ProximityHandlerParams struct {
	fx.In

	ProximityUC  usecase.ProximityUsecase
	Notification usecase.NotificationUsecase
	Logger       *slog.Logger
}

// ProximityHandler serves proximity checks and notification history
type ProximityHandler struct {
	proximityUC    usecase.ProximityUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// NewProximityHandler is the constructor for ProximityHandler
func NewProximityHandler(params ProximityHandlerParams) *ProximityHandler {
	return &ProximityHandler{
		proximityUC:    params.ProximityUC,
		notificationUC: params.Notification,
		logger:         params.Logger,
	}
}

// HistoryRequest holds the paging query parameters
type HistoryRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// CheckProximity re-evaluates the caller's stored location
func (h *ProximityHandler) CheckProximity(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	result, err := h.proximityUC.CheckProximity(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	notifications := result.Notifications
	if notifications == nil {
		notifications = []*usecase.DispatchedNotification{}
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"dispatched":    result.Dispatched(),
		"notifications": notifications,
	})
}

// GetNotificationHistory lists the caller's notifications, newest first
func (h *ProximityHandler) GetNotificationHistory(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req HistoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid paging parameters")
	}

	records, err := h.notificationUC.GetNotificationHistory(c.Request().Context(), userID, req.Limit, req.Offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, records)
}
