package catalog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"guessr/config"
	"guessr/internal/domain/entity"
	"guessr/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeed = `locations:
  - name: 草津温泉
    prefecture: 群馬県
    city: 草津町
    latitude: 36.6227
    longitude: 138.5969
    features: [硫黄泉]
    difficulty: easy
    media:
      - url: https://images.example.com/kusatsu.jpg
        thumbnailUrl: https://images.example.com/kusatsu-thumb.jpg
        isPrimary: true
  - name: 銀山温泉
    prefecture: 山形県
    city: 尾花沢市
    latitude: 38.5697
    longitude: 140.5306
    media:
      - url: https://images.example.com/ginzan.jpg
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "locations.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadSeed(t *testing.T) {
	locations, err := LoadSeed(writeSeed(t, sampleSeed))
	require.NoError(t, err)
	require.Len(t, locations, 2)

	kusatsu := locations[0]
	assert.Equal(t, "草津温泉", kusatsu.Name)
	assert.InDelta(t, 36.6227, kusatsu.Latitude, 1e-9)
	assert.Equal(t, entity.DifficultyEasy, kusatsu.Difficulty)
	assert.Equal(t, []string{"硫黄泉"}, kusatsu.Features)
	assert.True(t, kusatsu.IsEligible())
	assert.Equal(t, "https://images.example.com/kusatsu-thumb.jpg", kusatsu.Media[0].ThumbnailURL)

	ginzan := locations[1]
	assert.Equal(t, entity.DifficultyMedium, ginzan.Difficulty)
	assert.Equal(t, []string{}, ginzan.Features)
}

func TestLoadSeed_Invalid(t *testing.T) {
	_, err := LoadSeed(writeSeed(t, `locations:
  - name: nowhere
    prefecture: x
    city: y
    latitude: 123
    longitude: 0
    media:
      - url: https://images.example.com/a.jpg
`))
	assert.Error(t, err)

	_, err = LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSeed_ShippedCatalog(t *testing.T) {
	locations, err := LoadSeed(filepath.Join("..", "..", "..", "config", "seed", "locations.yaml"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(locations), 5)
}

func TestSeeder_RunOnlyWhenEmpty(t *testing.T) {
	store := memory.NewStore()
	cfg := &config.Config{Storage: &config.StorageConfig{SeedPath: writeSeed(t, sampleSeed)}}
	seeder := NewSeeder(memory.NewTransactionManager(store), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	inserted, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = seeder.Run(ctx)
	require.NoError(t, err)
	assert.Zero(t, inserted)

	count, err := memory.NewLocationRepository(store).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestSeeder_NoPath(t *testing.T) {
	seeder := NewSeeder(memory.NewTransactionManager(memory.NewStore()), &config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	inserted, err := seeder.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inserted)
}
