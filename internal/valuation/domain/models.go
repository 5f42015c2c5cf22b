// Package domain contains persistence models for asset valuations.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// AssetValuation records the estimated value of an asset as of a date.
type AssetValuation struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID  snowflake.ID `gorm:"not null;index" json:"agency_id"`
	AssetID   snowflake.ID `gorm:"not null;index;column:asset_id" json:"asset_id"`
	Value     float64      `gorm:"not null;column:current_value" json:"value"`
	AsOnDate  time.Time    `gorm:"not null;column:as_on_date" json:"as_on_date"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (AssetValuation) TableName() string { return "asset_valuations" }
