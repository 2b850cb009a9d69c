package usecase

import (
	"context"

	"guessr/internal/domain/entity"

	"github.com/google/uuid"
)

// DailyRanking is a leaderboard for one date bucket.
type DailyRanking struct {
	Date    string              `json:"date"`
	Entries []*entity.DailyRank `json:"entries"`
}

// WeeklyRanking aggregates the trailing week, WeekStart inclusive.
type WeeklyRanking struct {
	WeekStart string               `json:"week_start"`
	Entries   []*entity.WeeklyRank `json:"entries"`
}

// RankingUsecase aggregates completed sessions into leaderboards.
type RankingUsecase interface {
	// RecordCompletion stores the ranking entry of a completed, user-owned
	// session and folds it into the player's aggregates. Recording the same
	// session twice is a no-op.
	RecordCompletion(ctx context.Context, session *entity.Session) error

	// RecordCompletionBySession loads the session and records it.
	RecordCompletionBySession(ctx context.Context, sessionID uuid.UUID) error

	DailyRankings(ctx context.Context, date string, limit int) (*DailyRanking, error)
	WeeklyRankings(ctx context.Context, limit int) (*WeeklyRanking, error)
	AllTimeRankings(ctx context.Context, limit int) ([]*entity.AllTimeRank, error)
	TodayStats(ctx context.Context) (*entity.TodayStats, error)
	GlobalStats(ctx context.Context) (*entity.GlobalStats, error)
}
