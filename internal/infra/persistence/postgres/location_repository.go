package postgres

import (
	"context"

	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/repository"
	"guessr/internal/errors"
	"guessr/internal/infra/persistence/model"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new instance of LocationRepository
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

// SampleUniqueActive draws n random eligible locations in one query.
// ORDER BY random() is fine for a catalog of a few thousand rows.
func (repo *locationRepository) SampleUniqueActive(ctx context.Context, n int) ([]*entity.Location, error) {
	if n <= 0 {
		return []*entity.Location{}, nil
	}

	var models []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Media", "status = ?", string(entity.MediaStatusReady)).
		Where("is_active = ?", true).
		Where("EXISTS (SELECT 1 FROM location_images li WHERE li.location_id = locations.id AND li.status = ?)", string(entity.MediaStatusReady)).
		Order("random()").
		Limit(n).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to sample locations")
	}

	return toLocationDomains(models), nil
}

func (repo *locationRepository) FindByID(ctx context.Context, id int64) (*entity.Location, error) {
	var m model.LocationModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Media").
		First(&m, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find location")
	}

	return toLocationDomain(&m), nil
}

func (repo *locationRepository) FindByIDs(ctx context.Context, ids []int64) ([]*entity.Location, error) {
	if len(ids) == 0 {
		return []*entity.Location{}, nil
	}

	var models []*model.LocationModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Preload("Media").
		Where("id IN ?", ids).
		Find(&models).Error
	if err != nil {
		return nil, domainerrors.NewStorageUnavailableError(err, "failed to find locations")
	}

	return toLocationDomains(models), nil
}

func (repo *locationRepository) Create(ctx context.Context, location *entity.Location) error {
	m := fromLocationDomain(location)
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Create(m).Error; err != nil {
		return domainerrors.NewStorageUnavailableError(err, "failed to create location")
	}

	// copy back generated identifiers
	location.ID = m.ID
	location.CreatedAt = m.CreatedAt
	location.UpdatedAt = m.UpdatedAt
	for i := range m.Media {
		if i < len(location.Media) {
			location.Media[i].ID = m.Media[i].ID
			location.Media[i].LocationID = m.ID
			location.Media[i].CreatedAt = m.Media[i].CreatedAt
		}
	}

	return nil
}

func (repo *locationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Model(&model.LocationModel{}).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewStorageUnavailableError(err, "failed to count locations")
	}

	return count, nil
}

func toLocationDomains(models []*model.LocationModel) []*entity.Location {
	locations := make([]*entity.Location, 0, len(models))
	for _, m := range models {
		locations = append(locations, toLocationDomain(m))
	}

	return locations
}

func toLocationDomain(m *model.LocationModel) *entity.Location {
	lat, _ := m.Latitude.Float64()
	lng, _ := m.Longitude.Float64()

	media := make([]*entity.MediaAsset, 0, len(m.Media))
	for i := range m.Media {
		media = append(media, toMediaDomain(&m.Media[i]))
	}

	features := []string(m.Features)
	if features == nil {
		features = []string{}
	}

	return &entity.Location{
		ID:          m.ID,
		Name:        m.Name,
		Prefecture:  m.Prefecture,
		City:        m.City,
		Address:     m.Address,
		Latitude:    lat,
		Longitude:   lng,
		Description: m.Description,
		Features:    features,
		Difficulty:  entity.Difficulty(m.Difficulty),
		IsActive:    m.IsActive,
		Media:       media,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMediaDomain(m *model.MediaModel) *entity.MediaAsset {
	return &entity.MediaAsset{
		ID:           m.ID,
		LocationID:   m.LocationID,
		URL:          m.URL,
		ThumbnailURL: m.ThumbnailURL,
		Alt:          m.Alt,
		Width:        m.Width,
		Height:       m.Height,
		IsPrimary:    m.IsPrimary,
		Status:       entity.MediaStatus(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

func fromLocationDomain(l *entity.Location) *model.LocationModel {
	media := make([]model.MediaModel, 0, len(l.Media))
	for _, a := range l.Media {
		media = append(media, model.MediaModel{
			ID:           a.ID,
			LocationID:   l.ID,
			URL:          a.URL,
			ThumbnailURL: a.ThumbnailURL,
			Alt:          a.Alt,
			Width:        a.Width,
			Height:       a.Height,
			IsPrimary:    a.IsPrimary,
			Status:       string(a.Status),
			CreatedAt:    a.CreatedAt,
		})
	}

	difficulty := string(l.Difficulty)
	if difficulty == "" {
		difficulty = string(entity.DifficultyMedium)
	}

	return &model.LocationModel{
		ID:          l.ID,
		Name:        l.Name,
		Prefecture:  l.Prefecture,
		City:        l.City,
		Address:     l.Address,
		Latitude:    decimal.NewFromFloat(l.Latitude),
		Longitude:   decimal.NewFromFloat(l.Longitude),
		Description: l.Description,
		Features:    datatypes.JSONSlice[string](l.Features),
		Difficulty:  difficulty,
		IsActive:    l.IsActive,
		Media:       media,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}
