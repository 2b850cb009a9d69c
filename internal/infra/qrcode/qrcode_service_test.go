package qrcode

import (
	"testing"

	"guessr/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "https://guessr.example")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateResultQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://guessr.example")

	qrBytes, err := service.GenerateResultQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateResultQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", "https://guessr.example")

			qrBytes, err := service.GenerateResultQR(uuid.New())
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}

func TestQRCodeService_ResultURL(t *testing.T) {
	sessionID := uuid.MustParse("0b6e3c52-8d1f-4a51-9f0e-3f0c0a4f1d11")

	service := NewQRCodeService(256, "M", "https://guessr.example/")
	assert.Equal(t, "https://guessr.example/results/0b6e3c52-8d1f-4a51-9f0e-3f0c0a4f1d11", service.ResultURL(sessionID))

	fromConfig := NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "http://localhost:3000"},
	})
	assert.Equal(t, "http://localhost:3000/results/0b6e3c52-8d1f-4a51-9f0e-3f0c0a4f1d11", fromConfig.ResultURL(sessionID))
}
