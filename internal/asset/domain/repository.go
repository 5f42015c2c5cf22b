package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/pkg/db/pagination"
	"gorm.io/gorm"
)

type ListAssetFilter struct {
	SpecID snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, asset *Asset) error
	Update(ctx context.Context, db *gorm.DB, asset *Asset) error
	Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*Asset, error)
	List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, filter ListAssetFilter, page pagination.Pagination) ([]*Asset, error)

	InsertFile(ctx context.Context, db *gorm.DB, file *AssetFile) error
	ListFiles(ctx context.Context, db *gorm.DB, agencyID, assetID snowflake.ID) ([]AssetFile, error)
	DeleteFile(ctx context.Context, db *gorm.DB, agencyID, fileID snowflake.ID) error
}
