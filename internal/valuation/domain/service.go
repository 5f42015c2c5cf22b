package domain

import (
	"context"
	"errors"
	"time"
)

type RecordValuationRequest struct {
	AssetID  string
	Value    float64
	AsOnDate time.Time
}

type ListValuationRequest struct {
	AssetID string
}

type Service interface {
	Record(context.Context, RecordValuationRequest) (AssetValuation, error)
	List(context.Context, ListValuationRequest) ([]AssetValuation, error)
	Delete(ctx context.Context, id string) error
}

var (
	ErrInvalidAgency = errors.New("invalid_agency")
	ErrInvalidValue  = errors.New("invalid_value")
	ErrInvalidDate   = errors.New("invalid_date")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
