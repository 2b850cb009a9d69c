package entity

import (
	"time"
)

// Difficulty is the editorial difficulty label of a location.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// MediaStatus tracks the processing state of an uploaded image.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "pending"
	MediaStatusProcessing MediaStatus = "processing"
	MediaStatusReady      MediaStatus = "ready"
	MediaStatusError      MediaStatus = "error"
)

// Location is a real-world place that can be used as a challenge.
type Location struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Prefecture  string        `json:"prefecture"`
	City        string        `json:"city"`
	Address     string        `json:"address,omitempty"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	Description string        `json:"description,omitempty"`
	Features    []string      `json:"features"`
	Difficulty  Difficulty    `json:"difficulty"`
	IsActive    bool          `json:"is_active"`
	Media       []*MediaAsset `json:"media,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// MediaAsset is a photograph of a Location. It is deleted with its Location.
type MediaAsset struct {
	ID           int64       `json:"id"`
	LocationID   int64       `json:"location_id"`
	URL          string      `json:"url"`
	ThumbnailURL string      `json:"thumbnail_url,omitempty"`
	Alt          string      `json:"alt,omitempty"`
	Width        *int        `json:"width,omitempty"`
	Height       *int        `json:"height,omitempty"`
	IsPrimary    bool        `json:"is_primary"`
	Status       MediaStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Coordinate returns the true position of the location.
func (l *Location) Coordinate() Coordinate {
	return Coordinate{Lat: l.Latitude, Lng: l.Longitude}
}

// ReadyMedia returns the media that finished processing, primary first.
func (l *Location) ReadyMedia() []*MediaAsset {
	ready := make([]*MediaAsset, 0, len(l.Media))
	for _, m := range l.Media {
		if m.Status != MediaStatusReady {
			continue
		}
		if m.IsPrimary {
			ready = append([]*MediaAsset{m}, ready...)
		} else {
			ready = append(ready, m)
		}
	}

	return ready
}

// SelectMedia picks the image shown for a round: the primary ready image,
// otherwise the first ready one. Nil when nothing is ready.
func (l *Location) SelectMedia() *MediaAsset {
	ready := l.ReadyMedia()
	if len(ready) == 0 {
		return nil
	}

	return ready[0]
}

// IsEligible reports whether the location can be drawn as a challenge.
func (l *Location) IsEligible() bool {
	return l.IsActive && l.SelectMedia() != nil
}

// FindMedia returns the media with the given id, if attached.
func (l *Location) FindMedia(id int64) *MediaAsset {
	for _, m := range l.Media {
		if m.ID == id {
			return m
		}
	}

	return nil
}
