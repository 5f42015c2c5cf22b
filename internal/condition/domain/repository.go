package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	InsertDefined(ctx context.Context, db *gorm.DB, dc *DefinedCondition) error
	ListDefined(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]DefinedCondition, error)
	FindDefinedByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*DefinedCondition, error)
	DeleteDefined(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error

	InsertCondition(ctx context.Context, db *gorm.DB, c *AssetCondition) error
	ListConditions(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, assetID snowflake.ID) ([]AssetCondition, error)
	DeleteCondition(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error
}
