package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Avatar       string          `gorm:"type:text;not null;default:''"`
	TotalGames   int             `gorm:"not null;default:0"`
	TotalScore   int64           `gorm:"not null;default:0"`
	BestScore    int             `gorm:"not null;default:0;index:idx_users_best_score"`
	AverageScore decimal.Decimal `gorm:"type:decimal(8,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
