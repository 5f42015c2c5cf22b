package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) InsertManufacturer(ctx context.Context, db *gorm.DB, m *domain.Manufacturer) error {
	return db.WithContext(ctx).Create(m).Error
}

func (r *repo) ListManufacturers(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]domain.Manufacturer, error) {
	var items []domain.Manufacturer
	err := db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("description asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteManufacturer(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	return deleteScoped(ctx, db, &domain.Manufacturer{}, agencyID, id)
}

func (r *repo) InsertAssetCategory(ctx context.Context, db *gorm.DB, c *domain.AssetCategory) error {
	return db.WithContext(ctx).Create(c).Error
}

func (r *repo) ListAssetCategories(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]domain.AssetCategory, error) {
	var items []domain.AssetCategory
	err := db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Order("description asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteAssetCategory(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	return deleteScoped(ctx, db, &domain.AssetCategory{}, agencyID, id)
}

func (r *repo) InsertAssetSpec(ctx context.Context, db *gorm.DB, spec *domain.AssetSpec) error {
	return db.WithContext(ctx).Create(spec).Error
}

func (r *repo) ListAssetSpecs(ctx context.Context, db *gorm.DB, agencyID snowflake.ID) ([]domain.AssetSpec, error) {
	var items []domain.AssetSpec
	err := db.WithContext(ctx).
		Where("agency_id = ?", agencyID).
		Preload("Manufacturer").
		Preload("AssetCategory").
		Order("description asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) FindAssetSpecByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*domain.AssetSpec, error) {
	var spec domain.AssetSpec
	err := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Preload("Manufacturer").
		Preload("AssetCategory").
		First(&spec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (r *repo) DeleteAssetSpec(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	return deleteScoped(ctx, db, &domain.AssetSpec{}, agencyID, id)
}

func deleteScoped(ctx context.Context, db *gorm.DB, model any, agencyID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Delete(model)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
