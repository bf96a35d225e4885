package handler

import (
	"log/slog"
	"net/http"

	"geofence/internal/delivery/api/response"
	deliverycontext "geofence/internal/delivery/context"
	"geofence/internal/domain/entity"
	"geofence/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RegionHandlerParams holds dependencies for RegionHandler, injected by Fx.
type RegionHandlerParams struct {
	fx.In

	RegionUC usecase.RegionUsecase
	Logger   *slog.Logger
}

// RegionHandler holds dependencies for region-related handlers
type RegionHandler struct {
	regionUC usecase.RegionUsecase
	logger   *slog.Logger
}

// NewRegionHandler is the constructor for RegionHandler
func NewRegionHandler(params RegionHandlerParams) *RegionHandler {
	return &RegionHandler{
		regionUC: params.RegionUC,
		logger:   params.Logger,
	}
}

// CreateRegionRequest represents the request body for creating a region
type CreateRegionRequest struct {
	ExperienceID string   `json:"experience_id" validate:"required,uuid"`
	Latitude     *float64 `json:"latitude" validate:"required"`
	Longitude    *float64 `json:"longitude" validate:"required"`
	Radius       float64  `json:"radius" validate:"required"`
}

// NearbyRegionsRequest holds the query parameters of a nearby search
type NearbyRegionsRequest struct {
	Latitude  *float64 `query:"lat" validate:"required"`
	Longitude *float64 `query:"lng" validate:"required"`
	Radius    float64  `query:"radius" validate:"gte=0"`
}

// CreateRegion creates a region owned by the caller
func (h *RegionHandler) CreateRegion(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateRegionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid region input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	region, err := h.regionUC.CreateRegion(c.Request().Context(), &usecase.CreateRegionInput{
		ExperienceID: uuid.MustParse(req.ExperienceID),
		Latitude:     *req.Latitude,
		Longitude:    *req.Longitude,
		RadiusMeters: req.Radius,
		CreatedBy:    userID,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, region)
}

// DeactivateRegion soft-deletes a region created by the caller
func (h *RegionHandler) DeactivateRegion(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REGION_ID", "Invalid region ID format")
	}

	if err := h.regionUC.DeactivateRegion(c.Request().Context(), regionID, userID); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":        regionID,
		"is_active": false,
	})
}

// GetRegion returns a single region
func (h *RegionHandler) GetRegion(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REGION_ID", "Invalid region ID format")
	}

	region, err := h.regionUC.GetRegion(c.Request().Context(), regionID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, region)
}

// ListActiveRegions returns every active region, newest first
func (h *RegionHandler) ListActiveRegions(c echo.Context) error {
	regions, err := h.regionUC.ListActiveRegions(c.Request().Context())
	if err != nil {
		return err
	}
	if regions == nil {
		regions = []*entity.GeofenceRegion{}
	}

	return response.Success(c, http.StatusOK, regions)
}

// ListRegionsNear returns regions around a point, nearest first
func (h *RegionHandler) ListRegionsNear(c echo.Context) error {
	var req NearbyRegionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	regions, err := h.regionUC.ListRegionsNear(c.Request().Context(), *req.Latitude, *req.Longitude, req.Radius)
	if err != nil {
		return err
	}
	if regions == nil {
		regions = []*entity.RegionWithExperience{}
	}

	return response.Success(c, http.StatusOK, regions)
}

// GetRegionQR renders the region deep link as a PNG
func (h *RegionHandler) GetRegionQR(c echo.Context) error {
	regionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_REGION_ID", "Invalid region ID format")
	}

	png, err := h.regionUC.GenerateRegionQR(c.Request().Context(), regionID)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
