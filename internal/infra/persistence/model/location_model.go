package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID          int64                       `gorm:"primaryKey;autoIncrement"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Prefecture  string                      `gorm:"type:varchar(50);not null;index:idx_locations_prefecture"`
	City        string                      `gorm:"type:varchar(100);not null"`
	Address     string                      `gorm:"type:text"`
	Latitude    decimal.Decimal             `gorm:"type:decimal(10,8);not null"`
	Longitude   decimal.Decimal             `gorm:"type:decimal(11,8);not null"`
	Description string                      `gorm:"type:text"`
	Features    datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Difficulty  string                      `gorm:"type:varchar(10);not null;default:medium"`
	IsActive    bool                        `gorm:"not null;default:true;index:idx_locations_active"`
	Media       []MediaModel                `gorm:"foreignKey:LocationID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}

// MediaModel is the GORM-specific struct for the 'location_images' table.
type MediaModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	LocationID   int64  `gorm:"not null;index:idx_location_images_location"`
	URL          string `gorm:"type:text;not null"`
	ThumbnailURL string `gorm:"type:text"`
	Alt          string `gorm:"type:varchar(255)"`
	Width        *int
	Height       *int
	IsPrimary    bool   `gorm:"not null;default:false"`
	Status       string `gorm:"type:varchar(20);not null;default:pending"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MediaModel) TableName() string {
	return "location_images"
}
