package qrcode

import (
	"fmt"
	"strings"

	"guessr/config"
	"guessr/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewQRCodeServiceFromConfig builds the service from the qrcode section.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// ResultURL is the share link of a session's result page
func (s *qrcodeService) ResultURL(sessionID uuid.UUID) string {
	return fmt.Sprintf("%s/results/%s", s.baseURL, sessionID)
}

// GenerateResultQR renders the result URL as a PNG
func (s *qrcodeService) GenerateResultQR(sessionID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.ResultURL(sessionID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
