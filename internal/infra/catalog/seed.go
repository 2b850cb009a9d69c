// Package catalog loads the challenge catalog from a YAML seed file.
package catalog

import (
	"context"
	"log/slog"
	"strings"

	"guessr/config"
	"guessr/internal/domain/entity"
	"guessr/internal/domain/lifecycle"
	"guessr/internal/domain/repository"
	"guessr/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.uber.org/fx"
)

// SeedMedia is one image entry of the seed file.
type SeedMedia struct {
	URL          string `validate:"required,url"`
	ThumbnailURL string `validate:"omitempty,url"`
	Alt          string
	Width        *int `validate:"omitempty,gt=0"`
	Height       *int `validate:"omitempty,gt=0"`
	IsPrimary    bool
}

// SeedLocation is one location entry of the seed file.
type SeedLocation struct {
	Name        string  `validate:"required,max=255"`
	Prefecture  string  `validate:"required,max=50"`
	City        string  `validate:"required,max=100"`
	Address     string
	Latitude    float64 `validate:"latitude"`
	Longitude   float64 `validate:"longitude"`
	Description string
	Features    []string
	Difficulty  string      `validate:"omitempty,oneof=easy medium hard"`
	Media       []SeedMedia `validate:"required,min=1,dive"`
}

// SeedFile is the document root.
type SeedFile struct {
	Locations []SeedLocation `validate:"dive"`
}

// LoadSeed parses and validates a seed file. Seeded media is marked ready.
func LoadSeed(path string) ([]*entity.Location, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed %s failed", path)
	}

	var seed SeedFile
	if err := k.UnmarshalWithConf("", &seed, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &seed,
			WeaklyTypedInput: true,
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal seed %s failed", path)
	}

	if err := validator.New().Struct(&seed); err != nil {
		return nil, errors.Wrapf(err, "invalid seed %s", path)
	}

	locations := make([]*entity.Location, 0, len(seed.Locations))
	for _, s := range seed.Locations {
		locations = append(locations, s.toEntity())
	}

	return locations, nil
}

func (s SeedLocation) toEntity() *entity.Location {
	difficulty := entity.Difficulty(s.Difficulty)
	if difficulty == "" {
		difficulty = entity.DifficultyMedium
	}
	features := s.Features
	if features == nil {
		features = []string{}
	}

	media := make([]*entity.MediaAsset, 0, len(s.Media))
	for _, m := range s.Media {
		media = append(media, &entity.MediaAsset{
			URL:          m.URL,
			ThumbnailURL: m.ThumbnailURL,
			Alt:          m.Alt,
			Width:        m.Width,
			Height:       m.Height,
			IsPrimary:    m.IsPrimary,
			Status:       entity.MediaStatusReady,
		})
	}

	return &entity.Location{
		Name:        s.Name,
		Prefecture:  s.Prefecture,
		City:        s.City,
		Address:     s.Address,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Description: s.Description,
		Features:    features,
		Difficulty:  difficulty,
		IsActive:    true,
		Media:       media,
	}
}

// Seeder fills an empty catalog from the configured seed file.
type Seeder struct {
	txManager repository.TransactionManager
	seedPath  string
	logger    *slog.Logger
}

// NewSeeder creates a Seeder for the configured seed path.
func NewSeeder(txManager repository.TransactionManager, cfg *config.Config, logger *slog.Logger) *Seeder {
	var path string
	if cfg.Storage != nil {
		path = cfg.Storage.SeedPath
	}

	return &Seeder{txManager: txManager, seedPath: path, logger: logger}
}

// Run inserts the seed in one transaction. It is a no-op when no seed path is
// configured or the catalog already has locations.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	if s.seedPath == "" {
		return 0, nil
	}

	locations, err := LoadSeed(s.seedPath)
	if err != nil {
		return 0, err
	}

	inserted := 0
	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		count, err := f.LocationRepo().Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, l := range locations {
			if err := f.LocationRepo().Create(ctx, l); err != nil {
				return errors.Wrapf(err, "failed to seed location %s", l.Name)
			}
			inserted++
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// SeedParams defines the dependencies of RegisterSeeder.
type SeedParams struct {
	fx.In
	fx.Lifecycle

	Seeder *Seeder
	Logger *slog.Logger
}

// RegisterSeeder runs the seeder once on application start.
func RegisterSeeder(params SeedParams) {
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			inserted, err := params.Seeder.Run(ctx)
			if err != nil {
				return errors.Wrap(err, "failed to seed catalog")
			}
			if inserted > 0 {
				params.Logger.Info("Catalog seeded", slog.Int("locations", inserted))
			}

			return nil
		},
	})
}
