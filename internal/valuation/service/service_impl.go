package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	"github.com/smallbiznis/rentora/internal/valuation/domain"
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
		log:   p.Log.Named("valuation.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

func (s *Service) Record(ctx context.Context, req domain.RecordValuationRequest) (domain.AssetValuation, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.AssetValuation{}, domain.ErrInvalidAgency
	}

	assetID, err := s.parseID(req.AssetID)
	if err != nil {
		return domain.AssetValuation{}, err
	}
	if req.Value < 0 {
		return domain.AssetValuation{}, domain.ErrInvalidValue
	}
	if req.AsOnDate.IsZero() {
		return domain.AssetValuation{}, domain.ErrInvalidDate
	}

	v := domain.AssetValuation{
		ID:        s.genID.Generate(),
		AgencyID:  agencyID,
		AssetID:   assetID,
		Value:     req.Value,
		AsOnDate:  req.AsOnDate.UTC(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, s.db, &v); err != nil {
		return domain.AssetValuation{}, err
	}
	return v, nil
}

func (s *Service) List(ctx context.Context, req domain.ListValuationRequest) ([]domain.AssetValuation, error) {
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

	return s.repo.List(ctx, s.db, agencyID, assetID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, s.db, agencyID, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
