// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"time"

	"guessr/config"
)

const defaultStorageTimeout = 5 * time.Second

// withStorageTimeout bounds one operation by the configured storage timeout.
func withStorageTimeout(ctx context.Context, cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := defaultStorageTimeout
	if cfg != nil && cfg.Storage != nil && cfg.Storage.Timeout > 0 {
		timeout = cfg.Storage.Timeout
	}

	return context.WithTimeout(ctx, timeout)
}

// rankingLocation is the zone date buckets are cut in.
func rankingLocation(cfg *config.Config) *time.Location {
	if cfg == nil || cfg.Ranking == nil {
		return time.Local
	}

	return cfg.Ranking.Location()
}

// normalizeLimit applies the configured default and cap to a page size.
func normalizeLimit(cfg *config.Config, limit int) int {
	def, maxLimit := 10, 100
	if cfg != nil && cfg.Ranking != nil {
		if cfg.Ranking.DefaultLimit > 0 {
			def = cfg.Ranking.DefaultLimit
		}
		if cfg.Ranking.MaxLimit > 0 {
			maxLimit = cfg.Ranking.MaxLimit
		}
	}

	switch {
	case limit <= 0:
		return def
	case limit > maxLimit:
		return maxLimit
	default:
		return limit
	}
}

// denseRank assigns 1-based ranks to rows already in leaderboard order.
// Adjacent rows that tie under same share a rank and the next rank is not skipped.
func denseRank[T any](rows []T, same func(prev, cur T) bool, set func(row T, rank int)) {
	rank := 0
	for i, row := range rows {
		if i == 0 || !same(rows[i-1], row) {
			rank++
		}
		set(row, rank)
	}
}
