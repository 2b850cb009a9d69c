package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocation_SelectMedia(t *testing.T) {
	tests := []struct {
		name   string
		media  []*MediaAsset
		wantID int64
	}{
		{
			name: "primary ready wins",
			media: []*MediaAsset{
				{ID: 1, Status: MediaStatusReady},
				{ID: 2, Status: MediaStatusReady, IsPrimary: true},
			},
			wantID: 2,
		},
		{
			name: "primary not ready falls back to first ready",
			media: []*MediaAsset{
				{ID: 1, Status: MediaStatusProcessing, IsPrimary: true},
				{ID: 2, Status: MediaStatusError},
				{ID: 3, Status: MediaStatusReady},
			},
			wantID: 3,
		},
		{
			name: "nothing ready",
			media: []*MediaAsset{
				{ID: 1, Status: MediaStatusPending},
			},
			wantID: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc := &Location{IsActive: true, Media: tt.media}
			got := loc.SelectMedia()
			if tt.wantID == 0 {
				assert.Nil(t, got)
				assert.False(t, loc.IsEligible())

				return
			}
			if assert.NotNil(t, got) {
				assert.Equal(t, tt.wantID, got.ID)
			}
			assert.True(t, loc.IsEligible())
		})
	}
}

func TestLocation_InactiveIsNotEligible(t *testing.T) {
	loc := &Location{IsActive: false, Media: []*MediaAsset{{ID: 1, Status: MediaStatusReady}}}

	assert.False(t, loc.IsEligible())
}

func TestCoordinate_IsValid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 36.6227, Lng: 138.5969}.IsValid())
	assert.True(t, Coordinate{Lat: -90, Lng: 180}.IsValid())
	assert.False(t, Coordinate{Lat: 91, Lng: 0}.IsValid())
	assert.False(t, Coordinate{Lat: 0, Lng: -181}.IsValid())
}

func TestCoordinate_PointRoundTrip(t *testing.T) {
	c := Coordinate{Lat: 35.6812, Lng: 139.7671}

	p := c.Point()
	assert.Equal(t, 139.7671, p.Lon())
	assert.Equal(t, 35.6812, p.Lat())
	assert.Equal(t, c, CoordinateFromPoint(p))
}
