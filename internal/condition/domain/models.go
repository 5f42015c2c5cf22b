// Package domain contains persistence models for asset condition tracking.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// DefinedCondition is an agency-defined condition label ("Good", "Needs
// repair", ...).
type DefinedCondition struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID    snowflake.ID `gorm:"not null;index" json:"agency_id"`
	Description string       `gorm:"not null" json:"description"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (DefinedCondition) TableName() string { return "defined_conditions" }

// AssetCondition records the condition of an asset as of a date.
type AssetCondition struct {
	ID                 snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID           snowflake.ID `gorm:"not null;index" json:"agency_id"`
	AssetID            snowflake.ID `gorm:"not null;index;column:asset_id" json:"asset_id"`
	DefinedConditionID snowflake.ID `gorm:"not null;index;column:defined_condition_id" json:"defined_condition_id"`
	AsOnDate           time.Time    `gorm:"not null;column:as_on_date" json:"as_on_date"`
	CreatedAt          time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	DefinedCondition *DefinedCondition `gorm:"foreignKey:DefinedConditionID" json:"defined_condition,omitempty"`
}

// TableName sets the database table name.
func (AssetCondition) TableName() string { return "asset_conditions" }
