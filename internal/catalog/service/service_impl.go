package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	"github.com/smallbiznis/rentora/internal/catalog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) CreateManufacturer(ctx context.Context, req domain.CreateManufacturerRequest) (domain.Manufacturer, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Manufacturer{}, domain.ErrInvalidAgency
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.Manufacturer{}, domain.ErrInvalidDescription
	}

	now := time.Now().UTC()
	m := domain.Manufacturer{
		ID:          s.genID.Generate(),
		AgencyID:    agencyID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.InsertManufacturer(ctx, s.db, &m); err != nil {
		return domain.Manufacturer{}, err
	}
	return m, nil
}

func (s *Service) ListManufacturers(ctx context.Context) ([]domain.Manufacturer, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}
	return s.repo.ListManufacturers(ctx, s.db, agencyID)
}

func (s *Service) DeleteManufacturer(ctx context.Context, id string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}
	return s.repo.DeleteManufacturer(ctx, s.db, agencyID, parsed)
}

func (s *Service) CreateAssetCategory(ctx context.Context, req domain.CreateAssetCategoryRequest) (domain.AssetCategory, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.AssetCategory{}, domain.ErrInvalidAgency
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.AssetCategory{}, domain.ErrInvalidDescription
	}

	now := time.Now().UTC()
	c := domain.AssetCategory{
		ID:          s.genID.Generate(),
		AgencyID:    agencyID,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.InsertAssetCategory(ctx, s.db, &c); err != nil {
		return domain.AssetCategory{}, err
	}
	return c, nil
}

func (s *Service) ListAssetCategories(ctx context.Context) ([]domain.AssetCategory, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}
	return s.repo.ListAssetCategories(ctx, s.db, agencyID)
}

func (s *Service) DeleteAssetCategory(ctx context.Context, id string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}
	return s.repo.DeleteAssetCategory(ctx, s.db, agencyID, parsed)
}

func (s *Service) CreateAssetSpec(ctx context.Context, req domain.CreateAssetSpecRequest) (domain.AssetSpec, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.AssetSpec{}, domain.ErrInvalidAgency
	}

	categoryID, err := s.parseID(req.AssetCategoryID)
	if err != nil {
		return domain.AssetSpec{}, err
	}
	manufacturerID, err := s.parseID(req.ManufacturerID)
	if err != nil {
		return domain.AssetSpec{}, err
	}

	model := strings.TrimSpace(req.Model)
	if model == "" {
		return domain.AssetSpec{}, domain.ErrInvalidModel
	}
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.AssetSpec{}, domain.ErrInvalidDescription
	}
	if req.YearMake < 1900 || req.YearMake > time.Now().UTC().Year()+1 {
		return domain.AssetSpec{}, domain.ErrInvalidYearMake
	}

	now := time.Now().UTC()
	spec := domain.AssetSpec{
		ID:              s.genID.Generate(),
		AgencyID:        agencyID,
		AssetCategoryID: categoryID,
		ManufacturerID:  manufacturerID,
		YearMake:        req.YearMake,
		Model:           model,
		Description:     description,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.repo.InsertAssetSpec(ctx, s.db, &spec); err != nil {
		return domain.AssetSpec{}, err
	}
	return spec, nil
}

func (s *Service) ListAssetSpecs(ctx context.Context) ([]domain.AssetSpec, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}
	return s.repo.ListAssetSpecs(ctx, s.db, agencyID)
}

func (s *Service) GetAssetSpec(ctx context.Context, id string) (domain.AssetSpec, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.AssetSpec{}, domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.AssetSpec{}, err
	}
	spec, err := s.repo.FindAssetSpecByID(ctx, s.db, agencyID, parsed)
	if err != nil {
		return domain.AssetSpec{}, err
	}
	if spec == nil {
		return domain.AssetSpec{}, domain.ErrNotFound
	}
	return *spec, nil
}

func (s *Service) DeleteAssetSpec(ctx context.Context, id string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}
	return s.repo.DeleteAssetSpec(ctx, s.db, agencyID, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
