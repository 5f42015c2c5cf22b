package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

const (
	RoleOwner  = "OWNER"
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER" // Read-only / Limited
)

type Service interface {
	Create(ctx context.Context, userID snowflake.ID, req CreateAgencyRequest) (*AgencyResponse, error)
	GetByID(ctx context.Context, id string) (*AgencyResponse, error)
	ListAgenciesByUser(ctx context.Context, userID snowflake.ID) ([]AgencyListResponseItem, error)
	GetSettings(ctx context.Context, agencyID snowflake.ID) (*SettingsResponse, error)
	UpdateSettings(ctx context.Context, agencyID snowflake.ID, req UpdateSettingsRequest) (*SettingsResponse, error)
}

type CreateAgencyRequest struct {
	Name         string
	ContactEmail string
	ContactPhone string
	Country      string
}

type UpdateSettingsRequest struct {
	Country        *string
	DefaultTaxRate *float64
	InvoicePrefix  *string
}

type AgencyResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Country      string `json:"country"`
}

type AgencyListResponseItem struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type SettingsResponse struct {
	AgencyID       string  `json:"agency_id"`
	Country        string  `json:"country"`
	CurrencyCode   string  `json:"currency_code"`
	CurrencySymbol string  `json:"currency_symbol"`
	CurrencyName   string  `json:"currency_name"`
	DefaultTaxRate float64 `json:"default_tax_rate"`
	InvoicePrefix  string  `json:"invoice_prefix"`
}

var (
	ErrInvalidName    = errors.New("invalid_name")
	ErrInvalidUser    = errors.New("invalid_user")
	ErrInvalidAgency  = errors.New("invalid_agency")
	ErrInvalidTaxRate = errors.New("invalid_tax_rate")
	ErrInvalidPrefix  = errors.New("invalid_prefix")
	ErrAgencyNotFound = errors.New("agency not found")
	ErrForbidden      = errors.New("forbidden")
)
