package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/customer/domain"
	"github.com/smallbiznis/rentora/pkg/db/option"
	"github.com/smallbiznis/rentora/pkg/db/pagination"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Insert(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	return db.WithContext(ctx).Create(customer).Error
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, customer *domain.Customer) error {
	tx := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("agency_id = ? AND id = ?", customer.AgencyID, customer.ID).
		Select("first_name", "last_name", "email", "phone",
			"address_line1", "address_line2", "city", "state", "postal_code",
			"country", "updated_at").
		Updates(customer)
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
		Delete(&domain.Customer{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*domain.Customer, error) {
	var customer domain.Customer
	err := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, id).
		First(&customer).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, filter domain.ListCustomerFilter, page pagination.Pagination) ([]*domain.Customer, error) {
	var customers []*domain.Customer
	stmt := db.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("agency_id = ?", agencyID)
	if filter.Name != "" {
		pattern := "%" + filter.Name + "%"
		stmt = stmt.Where("first_name LIKE ? OR last_name LIKE ?", pattern, pattern)
	}
	if filter.Email != "" {
		stmt = stmt.Where("email = ?", filter.Email)
	}
	if filter.CreatedFrom != nil {
		stmt = stmt.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		stmt = stmt.Where("created_at <= ?", *filter.CreatedTo)
	}
	stmt = option.ApplyPagination(page).Apply(stmt)
	err := stmt.
		Order("created_at desc, id desc").
		Find(&customers).Error
	if err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *repo) InsertFile(ctx context.Context, db *gorm.DB, file *domain.CustomerFile) error {
	return db.WithContext(ctx).Create(file).Error
}

func (r *repo) ListFiles(ctx context.Context, db *gorm.DB, agencyID, customerID snowflake.ID) ([]domain.CustomerFile, error) {
	var files []domain.CustomerFile
	err := db.WithContext(ctx).
		Where("agency_id = ? AND customer_id = ?", agencyID, customerID).
		Order("created_at desc").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *repo) FindFileByID(ctx context.Context, db *gorm.DB, agencyID, fileID snowflake.ID) (*domain.CustomerFile, error) {
	var file domain.CustomerFile
	err := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, fileID).
		First(&file).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *repo) DeleteFile(ctx context.Context, db *gorm.DB, agencyID, fileID snowflake.ID) error {
	tx := db.WithContext(ctx).
		Where("agency_id = ? AND id = ?", agencyID, fileID).
		Delete(&domain.CustomerFile{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
