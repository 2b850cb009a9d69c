package entity

import (
	"time"

	"github.com/google/uuid"
)

// RankingEntry is the immutable leaderboard record of one completed session.
type RankingEntry struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	SessionID       uuid.UUID `json:"session_id"`
	Score           int       `json:"score"`
	RoundsCompleted int       `json:"rounds_completed"`
	AverageDistance float64   `json:"average_distance"`
	CompletedAt     time.Time `json:"completed_at"`
	RankDate        string    `json:"rank_date"` // YYYY-MM-DD in the ranking time zone.
}

// DailyRank is one row of a daily leaderboard.
type DailyRank struct {
	Rank            int       `json:"rank"`
	UserID          uuid.UUID `json:"user_id"`
	UserName        string    `json:"user_name"`
	SessionID       uuid.UUID `json:"session_id"`
	Score           int       `json:"score"`
	RoundsCompleted int       `json:"rounds_completed"`
	AverageDistance float64   `json:"average_distance"`
	CompletedAt     time.Time `json:"completed_at"`
}

// WeeklyRank aggregates one player's entries over the trailing week.
type WeeklyRank struct {
	Rank         int       `json:"rank"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	TotalScore   int       `json:"total_score"`
	GamesPlayed  int       `json:"games_played"`
	AverageScore int       `json:"average_score"`
	BestScore    int       `json:"best_score"`
}

// AllTimeRank is one row of the lifetime leaderboard.
type AllTimeRank struct {
	Rank         int       `json:"rank"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	BestScore    int       `json:"best_score"`
	TotalGames   int       `json:"total_games"`
	TotalScore   int       `json:"total_score"`
	AverageScore float64   `json:"average_score"`
}

// TodayStats summarises today's completed sessions.
type TodayStats struct {
	Date          string `json:"date"`
	TotalGames    int    `json:"total_games"`
	AverageScore  int    `json:"average_score"`
	MaxScore      int    `json:"max_score"`
	UniquePlayers int    `json:"unique_players"`
}

// PlayerStats is a player's profile with recent results.
type PlayerStats struct {
	User        *User           `json:"user"`
	RecentGames []*RankingEntry `json:"recent_games"`
	AllTimeRank int             `json:"all_time_rank"` // 0 when the player has no completed game.
}

// DailyActivity counts completed sessions for one date bucket.
type DailyActivity struct {
	Date  string `json:"date"`
	Games int    `json:"games"`
}

// GlobalStats summarises the whole game.
type GlobalStats struct {
	TotalPlayers   int             `json:"total_players"`
	TotalGames     int             `json:"total_games"`
	AverageScore   int             `json:"average_score"`
	BestScore      int             `json:"best_score"`
	RecentActivity []DailyActivity `json:"recent_activity"`
}
