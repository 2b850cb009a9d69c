package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RankingModel mirrors the 'rankings' table. One row per completed session.
type RankingModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index:idx_rankings_user"`
	SessionID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_rankings_session"`
	Score           int             `gorm:"not null"`
	RoundsCompleted int             `gorm:"not null"`
	AverageDistance decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	CompletedAt     time.Time       `gorm:"not null"`
	RankDate        string          `gorm:"type:varchar(10);not null;index:idx_rankings_rank_date"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (RankingModel) TableName() string {
	return "rankings"
}
