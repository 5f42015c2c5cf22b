package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertManufacturer(ctx context.Context, db *gorm.DB, m *Manufacturer) error
	ListManufacturers(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]Manufacturer, error)
	DeleteManufacturer(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error

	InsertAssetCategory(ctx context.Context, db *gorm.DB, c *AssetCategory) error
	ListAssetCategories(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]AssetCategory, error)
	DeleteAssetCategory(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error

	InsertAssetSpec(ctx context.Context, db *gorm.DB, spec *AssetSpec) error
	ListAssetSpecs(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]AssetSpec, error)
	FindAssetSpecByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*AssetSpec, error)
	DeleteAssetSpec(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error
}
