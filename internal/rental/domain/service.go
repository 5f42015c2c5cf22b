package domain

import (
	"context"
	"errors"
	"time"
)

type CreateRentalRequest struct {
	AssetID    string
	CustomerID string
	DailyRate  float64
	FromDate   time.Time
	ToDate     *time.Time
	Notes      string
}

type UpdateRentalRequest struct {
	ID        string
	DailyRate *float64
	FromDate  *time.Time
	ToDate    *time.Time
	ClearTo   bool
	Notes     *string
}

type ReturnRentalRequest struct {
	ID         string
	ReturnDate *time.Time
}

type ListRentalRequest struct {
	CustomerID string
	AssetID    string
}

type Service interface {
	Create(context.Context, CreateRentalRequest) (Rental, error)
	Update(context.Context, UpdateRentalRequest) (Rental, error)
	Return(context.Context, ReturnRentalRequest) (Rental, error)
	Delete(ctx context.Context, id string) error
	List(context.Context, ListRentalRequest) ([]Rental, error)
	GetByID(ctx context.Context, id string) (Rental, error)
	ListByCustomer(ctx context.Context, customerID string) ([]Rental, error)
}

var (
	ErrInvalidAgency     = errors.New("invalid_agency")
	ErrInvalidAsset      = errors.New("invalid_asset")
	ErrInvalidCustomer   = errors.New("invalid_customer")
	ErrInvalidRate       = errors.New("invalid_rate")
	ErrInvalidDate       = errors.New("invalid_date")
	ErrInvalidID         = errors.New("invalid_id")
	ErrNotFound          = errors.New("not_found")
	ErrAlreadyReturned   = errors.New("already_returned")
	ErrReturnBeforeStart = errors.New("return_before_start")
)
