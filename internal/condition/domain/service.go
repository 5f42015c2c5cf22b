package domain

import (
	"context"
	"errors"
	"time"
)

type CreateDefinedConditionRequest struct {
	Description string
}

type RecordConditionRequest struct {
	AssetID            string
	DefinedConditionID string
	AsOnDate           time.Time
}

type ListConditionRequest struct {
	AssetID string
}

type Service interface {
	CreateDefinedCondition(context.Context, CreateDefinedConditionRequest) (DefinedCondition, error)
	ListDefinedConditions(ctx context.Context) ([]DefinedCondition, error)
	DeleteDefinedCondition(ctx context.Context, id string) error

	RecordCondition(context.Context, RecordConditionRequest) (AssetCondition, error)
	ListConditions(context.Context, ListConditionRequest) ([]AssetCondition, error)
	DeleteCondition(ctx context.Context, id string) error
}

var (
	ErrInvalidAgency      = errors.New("invalid_agency")
	ErrInvalidDescription = errors.New("invalid_description")
	ErrInvalidDate        = errors.New("invalid_date")
	ErrInvalidID          = errors.New("invalid_id")
	ErrNotFound           = errors.New("not_found")
)
