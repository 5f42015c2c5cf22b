// Package domain contains persistence models for the agency service.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Agency represents a tenant.
type Agency struct {
	ID           snowflake.ID      `gorm:"primaryKey" json:"id"`
	Name         string            `gorm:"type:text;not null" json:"name"`
	Slug         string            `gorm:"type:text;not null;uniqueIndex:ux_agencies_slug" json:"slug"`
	ContactEmail string            `gorm:"type:text;column:contact_email" json:"contact_email"`
	ContactPhone string            `gorm:"type:text;column:contact_phone" json:"contact_phone"`
	AddressLine1 string            `gorm:"type:text;column:address_line1" json:"address_line1"`
	AddressLine2 string            `gorm:"type:text;column:address_line2" json:"address_line2"`
	City         string            `gorm:"type:text" json:"city"`
	State        string            `gorm:"type:text" json:"state"`
	PostalCode   string            `gorm:"type:text;column:postal_code" json:"postal_code"`
	Country      string            `gorm:"type:text" json:"country"`
	IsDefault    bool              `gorm:"column:is_default" json:"is_default"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata"`
	CreatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Agency) TableName() string { return "agencies" }

// AgencyMember represents membership of a user in an agency.
type AgencyMember struct {
	ID        snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID  snowflake.ID `gorm:"not null;index;uniqueIndex:ux_agency_user,priority:1" json:"agency_id"`
	UserID    snowflake.ID `gorm:"not null;index;uniqueIndex:ux_agency_user,priority:2" json:"user_id"`
	Role      string       `gorm:"type:text;not null" json:"role"`
	CreatedAt time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (AgencyMember) TableName() string { return "agency_members" }

// AgencySettings stores billing defaults for an agency. The currency
// columns are a snapshot derived from the agency country and refreshed on
// every settings read.
type AgencySettings struct {
	AgencyID       snowflake.ID `gorm:"primaryKey" json:"agency_id"`
	CurrencyCode   string       `gorm:"type:text;not null;column:currency_code" json:"currency_code"`
	CurrencySymbol string       `gorm:"type:text;not null;column:currency_symbol" json:"currency_symbol"`
	CurrencyName   string       `gorm:"type:text;not null;column:currency_name" json:"currency_name"`
	DefaultTaxRate float64      `gorm:"not null;default:0;column:default_tax_rate" json:"default_tax_rate"`
	InvoicePrefix  string       `gorm:"type:text;not null;default:'INV';column:invoice_prefix" json:"invoice_prefix"`
	CreatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (AgencySettings) TableName() string { return "agency_settings" }
