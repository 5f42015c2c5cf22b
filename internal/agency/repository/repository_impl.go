package repository

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agency/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) domain.Repository {
	return &repository{db: tx}
}

func (r *repository) CreateAgency(ctx context.Context, agency domain.Agency) error {
	return r.db.WithContext(ctx).Create(&agency).Error
}

func (r *repository) UpdateAgencyFields(ctx context.Context, agencyID snowflake.ID, fields map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&domain.Agency{}).Where("id = ?", agencyID).Updates(fields)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return domain.ErrAgencyNotFound
	}
	return nil
}

func (r *repository) GetAgency(ctx context.Context, agencyID snowflake.ID) (*domain.Agency, error) {
	var agency domain.Agency
	err := r.db.WithContext(ctx).First(&agency, "id = ?", agencyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrAgencyNotFound
	}
	if err != nil {
		return nil, err
	}
	return &agency, nil
}

func (r *repository) AddMember(ctx context.Context, member domain.AgencyMember) error {
	return r.db.WithContext(ctx).Create(&member).Error
}

func (r *repository) ListAgenciesByUser(ctx context.Context, userID snowflake.ID) ([]domain.AgencyListItem, error) {
	var items []domain.AgencyListItem
	err := r.db.WithContext(ctx).Raw(
		`SELECT a.id, a.name, m.role, a.created_at
		 FROM agencies a
		 JOIN agency_members m ON m.agency_id = a.id
		 WHERE m.user_id = ?
		 ORDER BY a.created_at ASC`,
		userID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}

	return items, nil
}

func (r *repository) IsMember(ctx context.Context, agencyID snowflake.ID, userID snowflake.ID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.AgencyMember{}).
		Where("agency_id = ? AND user_id = ?", agencyID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) GetSettings(ctx context.Context, agencyID snowflake.ID) (*domain.AgencySettings, error) {
	var settings domain.AgencySettings
	err := r.db.WithContext(ctx).First(&settings, "agency_id = ?", agencyID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *repository) SaveSettings(ctx context.Context, settings *domain.AgencySettings) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "agency_id"}},
			UpdateAll: true,
		}).
		Create(settings).Error
}
