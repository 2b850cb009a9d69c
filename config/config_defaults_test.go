package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	require.NotNil(t, cfg.Storage)
	require.NotNil(t, cfg.Game)
	require.NotNil(t, cfg.Ranking)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, defaultStorageTimeout, cfg.Storage.Timeout)
	assert.Equal(t, 5, cfg.Game.DefaultRoundCount)
	assert.Equal(t, 10, cfg.Game.MaxRoundCount)
	assert.Equal(t, 90.0, cfg.Game.MapBounds.MaxLat)
	assert.Equal(t, 10, cfg.Ranking.DefaultLimit)
	assert.Equal(t, 100, cfg.Ranking.MaxLimit)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Storage: &StorageConfig{Driver: StorageDriverMemory, Timeout: time.Second},
		Game: &GameConfig{
			DefaultRoundCount: 3,
			MaxRoundCount:     7,
			MapBounds:         MapBounds{MinLat: 31, MinLng: 129, MaxLat: 46, MaxLng: 146},
		},
	}

	applyDefaults(cfg)

	assert.Equal(t, StorageDriverMemory, cfg.Storage.Driver)
	assert.Equal(t, time.Second, cfg.Storage.Timeout)
	assert.Equal(t, 3, cfg.Game.DefaultRoundCount)
	assert.Equal(t, 7, cfg.Game.MaxRoundCount)
	assert.Equal(t, 146.0, cfg.Game.MapBounds.MaxLng)
}

func TestRankingConfig_Location(t *testing.T) {
	var nilCfg *RankingConfig
	assert.Equal(t, time.Local, nilCfg.Location())
	assert.Equal(t, time.Local, (&RankingConfig{Timezone: "Not/AZone"}).Location())

	loc := (&RankingConfig{Timezone: "UTC"}).Location()
	assert.Equal(t, "UTC", loc.String())
}

func TestRankingConfig_ResolveLocation(t *testing.T) {
	t.Run("caches the zone", func(t *testing.T) {
		cfg := &RankingConfig{Timezone: "Asia/Tokyo"}
		require.NoError(t, cfg.ResolveLocation())

		first := cfg.Location()
		assert.Equal(t, "Asia/Tokyo", first.String())
		assert.Same(t, first, cfg.Location())
	})

	t.Run("empty means server local", func(t *testing.T) {
		cfg := &RankingConfig{}
		require.NoError(t, cfg.ResolveLocation())
		assert.Equal(t, time.Local, cfg.Location())
	})

	t.Run("misspelled zone fails", func(t *testing.T) {
		cfg := &RankingConfig{Timezone: "Asia/Tokio"}
		err := cfg.ResolveLocation()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid ranking timezone "Asia/Tokio"`)
	})
}

func TestNew_RejectsUnknownRankingTimezone(t *testing.T) {
	t.Setenv("RANKING_TIMEZONE", "Asia/Tokio")

	cfg, err := New()
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "invalid ranking timezone")
}
