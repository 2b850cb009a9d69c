package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_Ordered(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)

	assert.Equal(t, []string{"00001_create_catalog.sql", "00002_create_game.sql", "00003_add_user_avatar.sql"}, names)
}

func TestMigrations_HaveUpAndDown(t *testing.T) {
	names, err := Files()
	require.NoError(t, err)

	for _, name := range names {
		f, err := fs.Open(name)
		require.NoError(t, err)

		body, err := io.ReadAll(f)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		assert.True(t, strings.Contains(string(body), "-- +goose Up"), name)
		assert.True(t, strings.Contains(string(body), "-- +goose Down"), name)
	}
}

func TestMigrations_RankingSessionIsUnique(t *testing.T) {
	body, err := fs.ReadFile("00002_create_game.sql")
	require.NoError(t, err)

	assert.Contains(t, string(body), "CONSTRAINT uq_rankings_session UNIQUE (session_id)")
}
