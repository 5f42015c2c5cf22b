package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/asset/domain"
	"github.com/smallbiznis/rentora/pkg/db/option"
	"github.com/smallbiznis/rentora/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, asset *domain.Asset) error {
	return db.WithContext(ctx).Create(asset).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, asset *domain.Asset) error {
	tx := db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("agency_id = ? AND id = ?", asset.AgencyID, asset.ID).
		Select("serial_number", "tag_number", "acquired_date", "purchase_price", "updated_at").
		Updates(asset)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Delete(&domain.Asset{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*domain.Asset, error) {
	var asset domain.Asset
	err := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Preload("Spec").
		Preload("Spec.Manufacturer").
		Preload("Spec.AssetCategory").
		First(&asset).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, filter domain.ListAssetFilter, page pagination.Pagination) ([]*domain.Asset, error) {
	var assets []*domain.Asset
	stmt := db.WithContext(ctx).
		Model(&domain.Asset{}).
		Where("agency_id = ?", agencyID)
	if filter.SpecID != 0 {
		stmt = stmt.Where("spec_id = ?", filter.SpecID)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Preload("Spec").
		Preload("Spec.Manufacturer").
		Preload("Spec.AssetCategory").
		Order("created_at desc, id desc").
		Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *repo) InsertFile(ctx context.Context, db *gorm.DB, file *domain.AssetFile) error {
	return db.WithContext(ctx).Create(file).Error
}

func (r *repo) ListFiles(ctx context.Context, db *gorm.DB, agencyID, assetID snowflake.ID) ([]domain.AssetFile, error) {
	var files []domain.AssetFile
	err := db.WithContext(ctx).
		Where("agency_id = ? AND asset_id = ?", agencyID, assetID).
		Order("created_at desc").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *repo) DeleteFile(ctx context.Context, db *gorm.DB, agencyID, fileID snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, fileID).
		Delete(&domain.AssetFile{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
