package domain

import (
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

type Customer struct {
	ID           snowflake.ID      `gorm:"primaryKey" json:"id"`
	AgencyID     snowflake.ID      `gorm:"not null;index" json:"agency_id"`
	FirstName    string            `gorm:"not null;column:first_name" json:"first_name"`
	LastName     string            `gorm:"not null;column:last_name" json:"last_name"`
	Email        string            `gorm:"not null" json:"email"`
	Phone        string            `gorm:"type:text" json:"phone,omitempty"`
	AddressLine1 string            `gorm:"type:text;column:address_line1" json:"address_line1,omitempty"`
	AddressLine2 string            `gorm:"type:text;column:address_line2" json:"address_line2,omitempty"`
	City         string            `gorm:"type:text" json:"city,omitempty"`
	State        string            `gorm:"type:text" json:"state,omitempty"`
	PostalCode   string            `gorm:"type:text;column:postal_code" json:"postal_code,omitempty"`
	Country      string            `gorm:"type:text" json:"country,omitempty"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb;not null;default:'{}'" json:"metadata,omitempty"`
	CreatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt    time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Customer) TableName() string { return "customers" }

// DisplayName is the name shown on invoices and overlap conflicts.
func (c Customer) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
	if full == "" {
		return c.Email
	}
	return full
}

// CustomerFile stores file metadata attached to a customer. The bytes live
// on disk under the configured upload directory.
type CustomerFile struct {
	ID          snowflake.ID `gorm:"primaryKey" json:"id"`
	AgencyID    snowflake.ID `gorm:"not null;index" json:"agency_id"`
	CustomerID  snowflake.ID `gorm:"not null;index" json:"customer_id"`
	FileName    string       `gorm:"not null;column:file_name" json:"file_name"`
	ContentType string       `gorm:"type:text;column:content_type" json:"content_type"`
	SizeBytes   int64        `gorm:"column:size_bytes" json:"size_bytes"`
	StoragePath string       `gorm:"type:text;column:storage_path" json:"-"`
	CreatedAt   time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName sets the database table name.
func (CustomerFile) TableName() string { return "customer_files" }
