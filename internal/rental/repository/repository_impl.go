package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/rental/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, rental *domain.Rental) error {
	return db.WithContext(ctx).Create(rental).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, rental *domain.Rental) error {
	tx := db.WithContext(ctx).
		Model(&domain.Rental{}).
		Where("agency_id = ? AND id = ?", rental.AgencyID, rental.ID).
		Select("daily_rate", "from_date", "to_date", "notes", "updated_at").
		Updates(map[string]any{
			"daily_rate": rental.DailyRate,
			"from_date":  rental.FromDate,
			"to_date":    rental.ToDate,
			"notes":      rental.Notes,
			"updated_at": rental.UpdatedAt,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Delete(&domain.Rental{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*domain.Rental, error) {
	var rental domain.Rental
	err := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		Preload("Asset").
		Preload("Asset.Spec").
		Preload("Asset.Spec.Manufacturer").
		Preload("Asset.Spec.AssetCategory").
		Preload("Customer").
		First(&rental).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rental, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, filter domain.ListRentalFilter) ([]domain.Rental, error) {
	var rentals []domain.Rental
	stmt := db.WithContext(ctx).
		Where("agency_id = ?", agencyID)
	if filter.CustomerID != 0 {
		stmt = stmt.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.AssetID != 0 {
		stmt = stmt.Where("asset_id = ?", filter.AssetID)
	}
	err := stmt.
		Preload("Asset").
		Preload("Asset.Spec").
		Preload("Asset.Spec.Manufacturer").
		Preload("Asset.Spec.AssetCategory").
		Preload("Customer").
		Order("from_date desc").
		Find(&rentals).Error
	if err != nil {
		return nil, err
	}
	return rentals, nil
}

func (r *repo) ListForAsset(ctx context.Context, db *gorm.DB, agencyID, assetID, excludeID snowflake.ID) ([]domain.RentalWithCustomer, error) {
	type row struct {
		ID        snowflake.ID `gorm:"column:id"`
		FromDate  time.Time    `gorm:"column:from_date"`
		ToDate    *time.Time   `gorm:"column:to_date"`
		FirstName string       `gorm:"column:first_name"`
		LastName  string       `gorm:"column:last_name"`
		Email     string       `gorm:"column:email"`
	}

	stmt := db.WithContext(ctx).
		Table("rentals").
		Select("rentals.id, rentals.from_date, rentals.to_date, customers.first_name, customers.last_name, customers.email").
		Joins("JOIN customers ON customers.id = rentals.customer_id").
		Where("rentals.agency_id = ? AND rentals.asset_id = ?", agencyID, assetID)
	if excludeID != 0 {
		stmt = stmt.Where("rentals.id <> ?", excludeID)
	}

	var rows []row
	err := stmt.
		Order("rentals.from_date asc, rentals.id asc").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rentals := make([]domain.RentalWithCustomer, 0, len(rows))
	for _, item := range rows {
		name := strings.TrimSpace(strings.TrimSpace(item.FirstName) + " " + strings.TrimSpace(item.LastName))
		if name == "" {
			name = item.Email
		}
		rentals = append(rentals, domain.RentalWithCustomer{
			ID:           item.ID,
			From:         item.FromDate,
			To:           item.ToDate,
			CustomerName: name,
		})
	}
	return rentals, nil
}
