package domain

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/pkg/db/pagination"
	"gorm.io/gorm"
)

type Repository interface {
	Insert(ctx context.Context, db *gorm.DB, customer *Customer) error
	Update(ctx context.Context, db *gorm.DB, customer *Customer) error
	Delete(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) error
	FindByID(ctx context.Context, db *gorm.DB, agencyID, id snowflake.ID) (*Customer, error)
	List(ctx context.Context, db *gorm.DB, agencyID snowflake.ID, filter ListCustomerFilter, page pagination.Pagination) ([]*Customer, error)

	InsertFile(ctx context.Context, db *gorm.DB, file *CustomerFile) error
	ListFiles(ctx context.Context, db *gorm.DB, agencyID, customerID snowflake.ID) ([]CustomerFile, error)
	FindFileByID(ctx context.Context, db *gorm.DB, agencyID, fileID snowflake.ID) (*CustomerFile, error)
	DeleteFile(ctx context.Context, db *gorm.DB, agencyID, fileID snowflake.ID) error
}
