package qrcode

import (
	"encoding/json"
	"strings"

	"geofence/config"
	"geofence/internal/domain/entity"
	"geofence/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	deepLinkBase         string
}

// RegionQRData is encoded when no deep-link base URL is configured
type RegionQRData struct {
	Type         string `json:"type"`
	RegionID     string `json:"region_id"`
	ExperienceID string `json:"experience_id"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, deepLinkBase string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		deepLinkBase:         strings.TrimRight(deepLinkBase, "/"),
	}
}

// NewQRCodeServiceFromConfig is the Fx constructor
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	var size int
	var level string
	if cfg.QRCode != nil {
		size = cfg.QRCode.Size
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return NewQRCodeService(size, level, cfg.Push.DeepLinkBaseURL)
}

// GenerateRegionQR renders the region deep link as a PNG
func (s *qrcodeService) GenerateRegionQR(region *entity.GeofenceRegion) ([]byte, error) {
	content, err := s.content(region)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(region *entity.GeofenceRegion) (string, error) {
	if s.deepLinkBase != "" {
		return s.deepLinkBase + "/regions/" + region.ID.String(), nil
	}

	data, err := json.Marshal(RegionQRData{
		Type:         "geofence_region",
		RegionID:     region.ID.String(),
		ExperienceID: region.ExperienceID.String(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(data), nil
}
