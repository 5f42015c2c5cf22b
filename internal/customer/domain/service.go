package domain

import (
	"context"
	"errors"
	"time"

	"github.com/smallbiznis/rentora/pkg/db/pagination"
)

type ListCustomerRequest struct {
	PageToken   string
	PageSize    int32
	Name        string
	Email       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type ListCustomerFilter struct {
	Name        string
	Email       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

type ListCustomerResponse struct {
	pagination.PageInfo
	Customers []Customer `json:"customers"`
}

type CreateCustomerRequest struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	AddressLine1 string
	AddressLine2 string
	City         string
	State        string
	PostalCode   string
	Country      string
}

type UpdateCustomerRequest struct {
	ID           string
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	AddressLine1 *string
	AddressLine2 *string
	City         *string
	State        *string
	PostalCode   *string
	Country      *string
}

type GetCustomerRequest struct {
	ID string
}

type AddFileRequest struct {
	CustomerID  string
	FileName    string
	ContentType string
	SizeBytes   int64
	StoragePath string
}

type Service interface {
	Create(context.Context, CreateCustomerRequest) (Customer, error)
	Update(context.Context, UpdateCustomerRequest) (Customer, error)
	Delete(ctx context.Context, id string) error
	List(context.Context, ListCustomerRequest) (ListCustomerResponse, error)
	GetByID(context.Context, GetCustomerRequest) (Customer, error)

	AddFile(context.Context, AddFileRequest) (CustomerFile, error)
	ListFiles(ctx context.Context, customerID string) ([]CustomerFile, error)
	DeleteFile(ctx context.Context, fileID string) error
}

var (
	ErrInvalidAgency = errors.New("invalid_agency")
	ErrInvalidName   = errors.New("invalid_name")
	ErrInvalidEmail  = errors.New("invalid_email")
	ErrInvalidID     = errors.New("invalid_id")
	ErrNotFound      = errors.New("not_found")
)
