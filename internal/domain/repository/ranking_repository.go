package repository

import (
	"context"

	"guessr/internal/domain/entity"
	"guessr/internal/errors"

	"github.com/google/uuid"
)

// ErrRankingExists is returned when a session already has a ranking entry.
var ErrRankingExists = errors.New("ranking already recorded for session")

// ScoreSummary aggregates every ranking entry.
type ScoreSummary struct {
	TotalGames   int
	AverageScore float64
	BestScore    int
}

// RankingRepository persists ranking entries and answers leaderboard queries.
// List methods return rows already ordered; ranks are assigned by the caller.
type RankingRepository interface {
	// Create inserts an entry; ErrRankingExists when the session is already recorded.
	Create(ctx context.Context, entry *entity.RankingEntry) error

	// ListDaily returns entries for rankDate ordered by score desc,
	// rounds completed desc, completion time asc.
	ListDaily(ctx context.Context, rankDate string, limit int) ([]*entity.DailyRank, error)

	// ListWeekly groups entries with rank date >= fromDate per player, ordered by
	// total score desc then average score desc.
	ListWeekly(ctx context.Context, fromDate string, limit int) ([]*entity.WeeklyRank, error)

	// ListAllTime returns players with games ordered by best score desc, total games desc.
	ListAllTime(ctx context.Context, limit int) ([]*entity.AllTimeRank, error)

	// AllTimePosition returns the dense all-time rank of a player, 0 if unranked.
	AllTimePosition(ctx context.Context, userID uuid.UUID) (int, error)

	// StatsForDate summarises the entries of one date bucket.
	StatsForDate(ctx context.Context, rankDate string) (*entity.TodayStats, error)

	// ListRecentByUser returns a player's latest entries, newest first.
	ListRecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.RankingEntry, error)

	// Summary aggregates all entries.
	Summary(ctx context.Context) (*ScoreSummary, error)

	// ActivitySince counts entries per date bucket from fromDate on, oldest first.
	ActivitySince(ctx context.Context, fromDate string) ([]entity.DailyActivity, error)
}
