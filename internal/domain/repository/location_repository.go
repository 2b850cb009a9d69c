// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"guessr/internal/domain/entity"
	"guessr/internal/errors"
)

// ErrLocationNotFound is returned when a location does not exist.
var ErrLocationNotFound = errors.New("location not found")

// LocationRepository is the challenge catalog.
type LocationRepository interface {
	// SampleUniqueActive draws up to n distinct eligible locations (active, with
	// at least one ready image) in random order, media attached.
	// It returns fewer than n only when fewer are eligible.
	SampleUniqueActive(ctx context.Context, n int) ([]*entity.Location, error)

	// FindByID retrieves a location with its media.
	FindByID(ctx context.Context, id int64) (*entity.Location, error)

	// FindByIDs retrieves several locations with their media, in no particular order.
	FindByIDs(ctx context.Context, ids []int64) ([]*entity.Location, error)

	// Create persists a location and its media, filling generated ids.
	Create(ctx context.Context, location *entity.Location) error

	// Count returns the number of stored locations.
	Count(ctx context.Context) (int64, error)
}
