package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, v *AssetValuation) error
	List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, assetID snowflake.ID) ([]AssetValuation, error)
	Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error
}
