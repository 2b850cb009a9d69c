package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a player. Guests are users too; they just never set a name.
type User struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the player.
	Name         string    `json:"name"`          // Display name shown on leaderboards.
	Avatar       string    `json:"avatar"`        // Avatar image URL; empty when unset.
	TotalGames   int       `json:"total_games"`   // Number of completed sessions.
	TotalScore   int       `json:"total_score"`   // Sum of all completed session scores.
	BestScore    int       `json:"best_score"`    // Highest single session score.
	AverageScore float64   `json:"average_score"` // TotalScore / TotalGames, two decimals.
	CreatedAt    time.Time `json:"created_at"`    // Timestamp of when this player was created.
	UpdatedAt    time.Time `json:"updated_at"`    // Timestamp of the last modification.
}
