package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/condition/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertDefined(ctx context.Context, db *gorm.DB, dc *domain.DefinedCondition) error {
	return db.WithContext(ctx).Create(dc).Error
}

func (r *repo) ListDefined(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]domain.DefinedCondition, error) {
	var items []domain.DefinedCondition
	err := db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindDefinedByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*domain.DefinedCondition, error) {
	var dc domain.DefinedCondition
	err := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		First(&dc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &dc, nil
}

func (r *repo) DeleteDefined(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Delete(&domain.DefinedCondition{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) InsertCondition(ctx context.Context, db *gorm.DB, c *domain.AssetCondition) error {
	return db.WithContext(ctx).Create(c).Error
}

func (r *repo) ListConditions(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, assetID snowflake.ID) ([]domain.AssetCondition, error) {
	var items []domain.AssetCondition
	stmt := db.WithContext(ctx).
		Where("agency_id = ?", agencyID)
	if assetID != 0 {
		stmt = stmt.Where("asset_id = ?", assetID)
	}
	err := stmt.
		Preload("DefinedCondition").
		Order("as_on_date desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteCondition(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Delete(&domain.AssetCondition{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
