// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"guessr/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// StartSessionInput defines the data required to start a game.
type StartSessionInput struct {
	UserID     *uuid.UUID
	RoundCount int // zero uses the configured default
}

// SubmitGuessInput carries one guess for the current round.
type SubmitGuessInput struct {
	SessionID uuid.UUID
	Guess     entity.Coordinate
	TimeSpent *float64

	// Round is the 0-based round the client believes it is answering.
	// When set, it must match the session cursor.
	Round *int
}

// TimeExpiredInput closes the current round without a guess.
// Round is mandatory: a timer that fires after the round was answered must
// not close the next one.
type TimeExpiredInput struct {
	SessionID uuid.UUID
	TimeSpent *float64
	Round     int
}

// --- Output DTOs ---

// ChallengeLocation is what a player may see of a location before answering.
// Everything that names or places it is revealed only in RoundResult.
type ChallengeLocation struct {
	ID         int64             `json:"id"`
	Difficulty entity.Difficulty `json:"difficulty"`
}

// RoundChallenge is the payload of the round awaiting an answer.
type RoundChallenge struct {
	RoundIndex int                  `json:"round_index"`
	Location   *ChallengeLocation   `json:"location"`
	Media      *entity.MediaAsset   `json:"media"`
	Gallery    []*entity.MediaAsset `json:"gallery"`
}

// MapView is the playable rectangle; guesses outside it are rejected.
type MapView struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// SessionView is a session seen from the client, with the current challenge
// when the session still has an unanswered round.
type SessionView struct {
	SessionID    uuid.UUID            `json:"session_id"`
	UserID       *uuid.UUID           `json:"user_id,omitempty"`
	Status       entity.SessionStatus `json:"status"`
	CurrentRound int                  `json:"current_round"`
	TotalRounds  int                  `json:"total_rounds"`
	TotalScore   int                  `json:"total_score"`
	StartedAt    time.Time            `json:"started_at"`
	CompletedAt  *time.Time           `json:"completed_at,omitempty"`
	MapBounds    *MapView             `json:"map_bounds"`
	Challenge    *RoundChallenge      `json:"challenge,omitempty"`
}

// CorrectLocation reveals the answer of a resolved round.
type CorrectLocation struct {
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Name       string  `json:"name"`
	Prefecture string  `json:"prefecture"`
	City       string  `json:"city"`
}

// RoundResult is returned after a guess or a timeout.
type RoundResult struct {
	Distance        *float64         `json:"distance"` // nil when the round timed out
	Score           int              `json:"score"`
	CorrectLocation *CorrectLocation `json:"correct_location"`
	IsComplete      bool             `json:"is_complete"`
	IsTimeUp        bool             `json:"is_time_up"`
	TotalScore      int              `json:"total_score"`
	CurrentRound    int              `json:"current_round"`
	TotalRounds     int              `json:"total_rounds"`
}

// RoundDetail is one round of a results page.
type RoundDetail struct {
	RoundIndex int                `json:"round_index"`
	Guess      *entity.Coordinate `json:"guess,omitempty"`
	Distance   *float64           `json:"distance,omitempty"`
	Score      *int               `json:"score,omitempty"`
	TimeSpent  *float64           `json:"time_spent,omitempty"`
	TimedOut   bool               `json:"timed_out"`
	AnsweredAt *time.Time         `json:"answered_at,omitempty"`
	Location   *entity.Location   `json:"location"`
	Media      *entity.MediaAsset `json:"media"`
}

// SessionResults is a full session with every round enriched.
type SessionResults struct {
	SessionID       uuid.UUID            `json:"session_id"`
	UserID          *uuid.UUID           `json:"user_id,omitempty"`
	Status          entity.SessionStatus `json:"status"`
	CurrentRound    int                  `json:"current_round"`
	TotalRounds     int                  `json:"total_rounds"`
	TotalScore      int                  `json:"total_score"`
	AverageDistance float64              `json:"average_distance"`
	StartedAt       time.Time            `json:"started_at"`
	CompletedAt     *time.Time           `json:"completed_at,omitempty"`
	Rounds          []*RoundDetail       `json:"rounds"`
}

// GameUsecase is the session engine.
type GameUsecase interface {
	StartSession(ctx context.Context, input StartSessionInput) (*SessionView, error)
	GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)
	SubmitGuess(ctx context.Context, input SubmitGuessInput) (*RoundResult, error)
	TimeExpired(ctx context.Context, input TimeExpiredInput) (*RoundResult, error)
	GetResults(ctx context.Context, sessionID uuid.UUID) (*SessionResults, error)
	ResultQRCode(ctx context.Context, sessionID uuid.UUID) ([]byte, error)
	AbandonStale(ctx context.Context, olderThan time.Duration) (int64, error)
}
