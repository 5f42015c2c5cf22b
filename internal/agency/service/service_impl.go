package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/rentora/internal/agency/domain"
	"github.com/smallbiznis/rentora/internal/currency"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const defaultInvoicePrefix = "INV"

type service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func NewService(db *gorm.DB, log *zap.Logger, repo domain.Repository, genID *snowflake.Node) domain.Service {
	return &service{
		db:    db,
		log:   log.Named("agency.service"),
		repo:  repo,
		genID: genID,
	}
}

func (s *service) Create(ctx context.Context, userID snowflake.ID, req domain.CreateAgencyRequest) (*domain.AgencyResponse, error) {
	if userID == 0 {
		return nil, domain.ErrInvalidUser
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	agencyID := s.genID.Generate()
	agency := domain.Agency{
		ID:           agencyID,
		Name:         name,
		Slug:         slug.Make(name),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		ContactPhone: strings.TrimSpace(req.ContactPhone),
		Country:      strings.TrimSpace(req.Country),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.CreateAgency(ctx, agency); err != nil {
			return err
		}

		member := domain.AgencyMember{
			ID:        s.genID.Generate(),
			AgencyID:  agencyID,
			UserID:    userID,
			Role:      domain.RoleOwner,
			CreatedAt: now,
		}

		return repo.AddMember(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	return &domain.AgencyResponse{
		ID:           agencyID.String(),
		Name:         name,
		Slug:         agency.Slug,
		ContactEmail: agency.ContactEmail,
		ContactPhone: agency.ContactPhone,
		Country:      agency.Country,
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*domain.AgencyResponse, error) {
	raw := strings.TrimSpace(id)
	if raw == "" {
		return nil, domain.ErrInvalidAgency
	}
	agencyID, err := snowflake.ParseString(raw)
	if err != nil {
		return nil, domain.ErrInvalidAgency
	}

	agency, err := s.repo.GetAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	return &domain.AgencyResponse{
		ID:           agency.ID.String(),
		Name:         agency.Name,
		Slug:         agency.Slug,
		ContactEmail: agency.ContactEmail,
		ContactPhone: agency.ContactPhone,
		Country:      agency.Country,
	}, nil
}

func (s *service) ListAgenciesByUser(ctx context.Context, userID snowflake.ID) ([]domain.AgencyListResponseItem, error) {
	if userID == 0 {
		return nil, domain.ErrInvalidUser
	}

	items, err := s.repo.ListAgenciesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.AgencyListResponseItem, 0, len(items))
	for _, item := range items {
		resp = append(resp, domain.AgencyListResponseItem{
			ID:        item.ID.String(),
			Name:      item.Name,
			Role:      item.Role,
			CreatedAt: item.CreatedAt,
		})
	}

	return resp, nil
}

// GetSettings returns the agency settings, refreshing the currency snapshot
// from the agency country so a country change is reflected on the next read.
func (s *service) GetSettings(ctx context.Context, agencyID snowflake.ID) (*domain.SettingsResponse, error) {
	if agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}

	agency, err := s.repo.GetAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	settings, err := s.refreshSettings(ctx, agency)
	if err != nil {
		return nil, err
	}

	return settingsResponse(agency, settings), nil
}

func (s *service) UpdateSettings(ctx context.Context, agencyID snowflake.ID, req domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	if agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}

	if req.DefaultTaxRate != nil && (*req.DefaultTaxRate < 0 || *req.DefaultTaxRate > 100) {
		return nil, domain.ErrInvalidTaxRate
	}
	if req.InvoicePrefix != nil && strings.TrimSpace(*req.InvoicePrefix) == "" {
		return nil, domain.ErrInvalidPrefix
	}

	agency, err := s.repo.GetAgency(ctx, agencyID)
	if err != nil {
		return nil, err
	}

	if req.Country != nil {
		country := strings.TrimSpace(*req.Country)
		if err := s.repo.UpdateAgencyFields(ctx, agencyID, map[string]any{
			"country":    country,
			"updated_at": time.Now().UTC(),
		}); err != nil {
			return nil, err
		}
		agency.Country = country
	}

	settings, err := s.refreshSettings(ctx, agency)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.DefaultTaxRate != nil && settings.DefaultTaxRate != *req.DefaultTaxRate {
		settings.DefaultTaxRate = *req.DefaultTaxRate
		changed = true
	}
	if req.InvoicePrefix != nil {
		prefix := strings.TrimSpace(*req.InvoicePrefix)
		if settings.InvoicePrefix != prefix {
			settings.InvoicePrefix = prefix
			changed = true
		}
	}
	if changed {
		settings.UpdatedAt = time.Now().UTC()
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settingsResponse(agency, settings), nil
}

// refreshSettings loads the settings row, creating it on first access, and
// re-derives the currency snapshot from the agency country.
func (s *service) refreshSettings(ctx context.Context, agency *domain.Agency) (*domain.AgencySettings, error) {
	info, known := currency.Lookup(agency.Country)
	if !known && strings.TrimSpace(agency.Country) != "" {
		s.log.Debug("unknown country, defaulting currency to USD",
			zap.String("agency_id", agency.ID.String()),
			zap.String("country", agency.Country),
		)
	}

	now := time.Now().UTC()
	settings, err := s.repo.GetSettings(ctx, agency.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = &domain.AgencySettings{
			AgencyID:       agency.ID,
			CurrencyCode:   info.Code,
			CurrencySymbol: info.Symbol,
			CurrencyName:   info.Name,
			InvoicePrefix:  defaultInvoicePrefix,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}
	if err != nil {
		return nil, err
	}

	if settings.CurrencyCode != info.Code || settings.CurrencySymbol != info.Symbol || settings.CurrencyName != info.Name {
		settings.CurrencyCode = info.Code
		settings.CurrencySymbol = info.Symbol
		settings.CurrencyName = info.Name
		settings.UpdatedAt = now
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

func settingsResponse(agency *domain.Agency, settings *domain.AgencySettings) *domain.SettingsResponse {
	return &domain.SettingsResponse{
		AgencyID:       agency.ID.String(),
		Country:        agency.Country,
		CurrencyCode:   settings.CurrencyCode,
		CurrencySymbol: settings.CurrencySymbol,
		CurrencyName:   settings.CurrencyName,
		DefaultTaxRate: settings.DefaultTaxRate,
		InvoicePrefix:  settings.InvoicePrefix,
	}
}
