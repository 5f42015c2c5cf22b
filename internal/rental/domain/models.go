// Package domain contains the rental model and the overlap checker.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	assetdomain "github.com/smallbiznis/rentora/internal/asset/domain"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
)

// Rental records an asset with a customer for a period. ToDate is nil
// while the rental is ongoing.
type Rental struct {
	ID         snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID   snowflake.ID `gorm:"not null;index" json:"agency_id"`
	AssetID    snowflake.ID `gorm:"not null;index;column:asset_id" json:"asset_id"`
	CustomerID snowflake.ID `gorm:"not null;index;column:customer_id" json:"customer_id"`
	DailyRate  float64      `gorm:"not null;column:daily_rate" json:"daily_rate"`
	FromDate   time.Time    `gorm:"not null;column:from_date" json:"from_date"`
	ToDate     *time.Time   `gorm:"column:to_date" json:"to_date"`
	Notes      string       `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Asset    *assetdomain.Asset       `gorm:"foreignKey:AssetID" json:"asset,omitempty"`
	Customer *customerdomain.Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

// TableName sets the database table name.
func (Rental) TableName() string { return "rentals" }

// Ongoing reports whether the asset is still with the customer.
func (r Rental) Ongoing() bool { return r.ToDate == nil }
