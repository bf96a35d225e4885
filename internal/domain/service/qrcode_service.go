package service

import (
	"geofence/internal/domain/entity"
)

// QRCodeService renders region deep links as QR codes
type QRCodeService interface {
	// GenerateRegionQR returns a PNG encoding a deep link to the region
	GenerateRegionQR(region *entity.GeofenceRegion) ([]byte, error)
}
