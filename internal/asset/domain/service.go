package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/rentora/pkg/db/pagination"
)

type CreateAssetRequest struct {
	SpecID        string
	SerialNumber  string
	TagNumber     string
	AcquiredDate  time.Time
	PurchasePrice float64
}

type UpdateAssetRequest struct {
	ID            string
	SerialNumber  *string
	TagNumber     *string
	AcquiredDate  *time.Time
	PurchasePrice *float64
}

type ListAssetRequest struct {
	PageToken string
	PageSize  int32
	SpecID    string
}

type ListAssetResponse struct {
	pagination.PageInfo
	Assets []Asset `json:"assets"`
}

type AddFileRequest struct {
	AssetID     string
	FileName    string
	ContentType string
	SizeBytes   int64
	StoragePath string
}

type Service interface {
	Create(context.Context, CreateAssetRequest) (Asset, error)
	Update(context.Context, UpdateAssetRequest) (Asset, error)
	Delete(ctx context.Context, id string) error
	List(context.Context, ListAssetRequest) (ListAssetResponse, error)
	GetByID(ctx context.Context, id string) (Asset, error)

	AddFile(context.Context, AddFileRequest) (AssetFile, error)
	ListFiles(ctx context.Context, assetID string) ([]AssetFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}

var (
	ErrInvalidAgency   = errors.New("invalid_agency")
	ErrInvalidSpec     = errors.New("invalid_spec")
	ErrInvalidPrice    = errors.New("invalid_price")
	ErrInvalidDate     = errors.New("invalid_date")
	ErrInvalidFileName = errors.New("invalid_file_name")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
)
