package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	"github.com/smallbiznis/rentora/internal/condition/domain"
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
		log:   p.Log.Named("condition.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) CreateDefinedCondition(ctx context.Context, req domain.CreateDefinedConditionRequest) (domain.DefinedCondition, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.DefinedCondition{}, domain.ErrInvalidAgency
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		return domain.DefinedCondition{}, domain.ErrInvalidDescription
	}

	dc := domain.DefinedCondition{
		ID:          s.genID.Generate(),
		AgencyID:    agencyID,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.InsertDefined(ctx, s.db, &dc); err != nil {
		return domain.DefinedCondition{}, err
	}
	return dc, nil
}

func (s *Service) ListDefinedConditions(ctx context.Context) ([]domain.DefinedCondition, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}
	return s.repo.ListDefined(ctx, s.db, agencyID)
}

func (s *Service) DeleteDefinedCondition(ctx context.Context, id string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}
	return s.repo.DeleteDefined(ctx, s.db, agencyID, parsed)
}

func (s *Service) RecordCondition(ctx context.Context, req domain.RecordConditionRequest) (domain.AssetCondition, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.AssetCondition{}, domain.ErrInvalidAgency
	}

	assetID, err := s.parseID(req.AssetID)
	if err != nil {
		return domain.AssetCondition{}, err
	}
	definedID, err := s.parseID(req.DefinedConditionID)
	if err != nil {
		return domain.AssetCondition{}, err
	}
	if req.AsOnDate.IsZero() {
		return domain.AssetCondition{}, domain.ErrInvalidDate
	}

	defined, err := s.repo.FindDefinedByID(ctx, s.db, agencyID, definedID)
	if err != nil {
		return domain.AssetCondition{}, err
	}
	if defined == nil {
		return domain.AssetCondition{}, domain.ErrNotFound
	}

	c := domain.AssetCondition{
		ID:                 s.genID.Generate(),
		AgencyID:           agencyID,
		AssetID:            assetID,
		DefinedConditionID: definedID,
		AsOnDate:           req.AsOnDate.UTC(),
		CreatedAt:          time.Now().UTC(),
	}
	if err := s.repo.InsertCondition(ctx, s.db, &c); err != nil {
		return domain.AssetCondition{}, err
	}
	c.DefinedCondition = defined
	return c, nil
}

func (s *Service) ListConditions(ctx context.Context, req domain.ListConditionRequest) ([]domain.AssetCondition, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}

	var assetID snowflake.ID
	if strings.TrimSpace(req.AssetID) != "" {
		parsed, err := s.parseID(req.AssetID)
		if err != nil {
			return nil, err
		}
		assetID = parsed
	}

	return s.repo.ListConditions(ctx, s.db, agencyID, assetID)
}

func (s *Service) DeleteCondition(ctx context.Context, id string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}
	return s.repo.DeleteCondition(ctx, s.db, agencyID, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
