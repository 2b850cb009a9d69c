package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for result share QR codes
type QRCodeService interface {
	// GenerateResultQR renders a PNG QR code pointing at a session's results page
	GenerateResultQR(sessionID uuid.UUID) ([]byte, error)

	// ResultURL returns the URL encoded in the QR code
	ResultURL(sessionID uuid.UUID) string
}
