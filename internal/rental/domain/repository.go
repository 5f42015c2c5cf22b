package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type ListRentalFilter struct {
	CustomerID snowflake.ID
	AssetID    snowflake.ID
}

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, rental *Rental) error
	Update(ctx context.Context, db *gorm.DB, rental *Rental) error
	Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*Rental, error)
	List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, filter ListRentalFilter) ([]Rental, error)

	// ListForAsset returns the asset's rentals with customer display names,
	// excluding excludeID when non-zero, ordered from_date asc, id asc so
	// the first reported conflict is deterministic.
	ListForAsset(ctx context.Context, db *gorm.DB, agencyID, assetID, excludeID snowflake.ID) ([]RentalWithCustomer, error)
}
