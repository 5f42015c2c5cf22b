// Package domain contains persistence models for the asset catalog:
// manufacturers, asset categories and asset specifications.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

type Manufacturer struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID    snowflake.ID `gorm:"not null;index" json:"agency_id"`
	Description string       `gorm:"not null" json:"description"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Manufacturer) TableName() string { return "manufacturers" }

type AssetCategory struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID    snowflake.ID `gorm:"not null;index" json:"agency_id"`
	Description string       `gorm:"not null" json:"description"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (AssetCategory) TableName() string { return "asset_categories" }

type AssetSpec struct {
	ID              snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID        snowflake.ID `gorm:"not null;index" json:"agency_id"`
	AssetCategoryID snowflake.ID `gorm:"not null;index;column:asset_category_id" json:"asset_category_id"`
	ManufacturerID  snowflake.ID `gorm:"not null;index;column:manufacturer_id" json:"manufacturer_id"`
	YearMake        int          `gorm:"not null;column:year_make" json:"year_make"`
	Model           string       `gorm:"not null" json:"model"`
	Description     string       `gorm:"not null" json:"description"`
	CreatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Manufacturer  *Manufacturer  `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
	AssetCategory *AssetCategory `gorm:"foreignKey:AssetCategoryID" json:"asset_category,omitempty"`
}

// TableName sets the database table name.
func (AssetSpec) TableName() string { return "asset_specs" }
