package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SessionModel is the GORM-specific struct for the 'game_sessions' table.
// Rounds are stored as one JSON document so a round advance is a single-row update.
type SessionModel struct {
	ID           uuid.UUID                         `gorm:"type:uuid;primary_key"`
	UserID       *uuid.UUID                        `gorm:"type:uuid;index:idx_game_sessions_user"`
	Rounds       datatypes.JSONType[[]RoundRecord] `gorm:"type:jsonb;not null"`
	CurrentRound int                               `gorm:"not null;default:0"`
	TotalRounds  int                               `gorm:"not null"`
	TotalScore   int                               `gorm:"not null;default:0"`
	Status       string                            `gorm:"type:varchar(20);not null;index:idx_game_sessions_status"`
	StartedAt    time.Time                         `gorm:"not null"`
	CompletedAt  *time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "game_sessions"
}

// RoundRecord is the JSON shape of one round inside SessionModel.Rounds.
type RoundRecord struct {
	LocationID int64        `json:"location_id"`
	MediaID    int64        `json:"media_id"`
	Guess      *GuessRecord `json:"guess,omitempty"`
	Distance   *float64     `json:"distance,omitempty"`
	Score      *int         `json:"score,omitempty"`
	TimeSpent  *float64     `json:"time_spent,omitempty"`
	TimedOut   bool         `json:"timed_out,omitempty"`
	AnsweredAt *time.Time   `json:"answered_at,omitempty"`
}

// GuessRecord is a stored guess position.
type GuessRecord struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
