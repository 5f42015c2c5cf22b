package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	"gorm.io/datatypes"
)

type Asset struct {
	ID            snowflake.ID      `gorm:"primaryKey" json:"id"`
	AgencyID      snowflake.ID      `gorm:"not null;index" json:"agency_id"`
	SpecID        snowflake.ID      `gorm:"not null;index;column:spec_id" json:"spec_id"`
	SerialNumber  string            `gorm:"type:text;column:serial_number" json:"serial_number,omitempty"`
	TagNumber     string            `gorm:"type:text;column:tag_number" json:"tag_number,omitempty"`
	AcquiredDate  time.Time         `gorm:"not null;column:acquired_date" json:"acquired_date"`
	PurchasePrice float64           `gorm:"not null;column:purchase_price" json:"purchase_price"`
	Metadata      datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`

	Spec *catalogdomain.AssetSpec `gorm:"foreignKey:SpecID" json:"spec,omitempty"`
}

// TableName sets the database table name.
func (Asset) TableName() string { return "assets" }

// AssetFile stores file metadata attached to an asset.
type AssetFile struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID    snowflake.ID `gorm:"not null;index" json:"agency_id"`
	AssetID     snowflake.ID `gorm:"not null;index;column:asset_id" json:"asset_id"`
	FileName    string       `gorm:"not null;column:file_name" json:"file_name"`
	ContentType string       `gorm:"type:text;column:content_type" json:"content_type"`
	SizeBytes   int64        `gorm:"column:size_bytes" json:"size_bytes"`
	StoragePath string       `gorm:"type:text;column:storage_path" json:"-"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (AssetFile) TableName() string { return "asset_files" }
