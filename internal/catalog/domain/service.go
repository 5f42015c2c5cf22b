package domain

import (
	"context"
	"errors"
)

type CreateManufacturerRequest struct {
	Description string
}

type CreateAssetCategoryRequest struct {
	Description string
}

type CreateAssetSpecRequest struct {
	AssetCategoryID string
	ManufacturerID  string
	YearMake        int
	Model           string
	Description     string
}

type Service interface {
	CreateManufacturer(context.Context, CreateManufacturerRequest) (Manufacturer, error)
	ListManufacturers(ctx context.Context) ([]Manufacturer, error)
	DeleteManufacturer(ctx context.Context, id string) error

	CreateAssetCategory(context.Context, CreateAssetCategoryRequest) (AssetCategory, error)
	ListAssetCategories(ctx context.Context) ([]AssetCategory, error)
	DeleteAssetCategory(ctx context.Context, id string) error

	CreateAssetSpec(context.Context, CreateAssetSpecRequest) (AssetSpec, error)
	ListAssetSpecs(ctx context.Context) ([]AssetSpec, error)
	GetAssetSpec(ctx context.Context, id string) (AssetSpec, error)
	DeleteAssetSpec(ctx context.Context, id string) error
}

var (
	ErrInvalidAgency      = errors.New("invalid_agency")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidModel       = errors.New("invalid_model")
	ErrInvalidYearMake    = errors.New("invalid_year_make")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
	ErrSpecInUse          = errors.New("spec_in_use")
)
