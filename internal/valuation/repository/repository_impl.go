package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/valuation/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, v *domain.AssetValuation) error {
	return db.WithContext(ctx).Create(v).Error
}

func (r *repo) List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, assetID snowflake.ID) ([]domain.AssetValuation, error) {
	var items []domain.AssetValuation
	stmt := db.WithContext(ctx).
		Where("agency_id = ?", agencyID)
	if assetID != 0 {
		stmt = stmt.Where("asset_id = ?", assetID)
	}
	err := stmt.
		Order("as_on_date desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Delete(&domain.AssetValuation{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
