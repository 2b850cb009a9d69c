package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"seedPath": "",
		},
		"game": map[string]any{
			"maxRoundCount": 10,
			"mapBounds": map[string]any{
				"minLat": 31.0,
			},
		},
		"ranking": map[string]any{
			"timezone": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_SEEDPATH", want: "storage.seedPath"},
		{envKey: "GAME_MAXROUNDCOUNT", want: "game.maxRoundCount"},
		{envKey: "GAME_MAPBOUNDS_MINLAT", want: "game.mapBounds.minLat"},
		{envKey: "RANKING_TIMEZONE", want: "ranking.timezone"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
