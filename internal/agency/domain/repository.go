package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type AgencyListItem struct {
	ID        snowflake.ID
	Name      string
	Role      string
	CreatedAt time.Time
}

type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateAgency(ctx context.Context, agency Agency) error
	UpdateAgencyFields(ctx context.Context, agencyID snowflake.ID, fields map[string]any) error
	GetAgency(ctx context.Context, agencyID snowflake.ID) (*Agency, error)
	AddMember(ctx context.Context, member AgencyMember) error
	ListAgenciesByUser(ctx context.Context, userID snowflake.ID) ([]AgencyListItem, error)
	IsMember(ctx context.Context, agencyID snowflake.ID, userID snowflake.ID) (bool, error)
	GetSettings(ctx context.Context, agencyID snowflake.ID) (*AgencySettings, error)
	SaveSettings(ctx context.Context, settings *AgencySettings) error
}
