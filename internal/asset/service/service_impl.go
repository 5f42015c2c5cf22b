package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	"github.com/smallbiznis/rentora/internal/asset/domain"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	"github.com/smallbiznis/rentora/pkg/db/pagination"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Repo        domain.Repository
	CatalogRepo catalogdomain.Repository
}

type Service struct {
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	repo        domain.Repository
	catalogRepo catalogdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:          p.DB,
		log:         p.Log.Named("asset.service"),
		genID:       p.GenID,
		repo:        p.Repo,
		catalogRepo: p.CatalogRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateAssetRequest) (domain.Asset, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Asset{}, domain.ErrInvalidAgency
	}

	specID, err := s.parseID(req.SpecID)
	if err != nil {
		return domain.Asset{}, domain.ErrInvalidSpec
	}
	spec, err := s.catalogRepo.FindAssetSpecByID(ctx, s.db, agencyID, specID)
	if err != nil {
		return domain.Asset{}, err
	}
	if spec == nil {
		return domain.Asset{}, domain.ErrInvalidSpec
	}

	if req.PurchasePrice < 0 {
		return domain.Asset{}, domain.ErrInvalidPrice
	}
	if req.AcquiredDate.IsZero() {
		return domain.Asset{}, domain.ErrInvalidDate
	}

	now := time.Now().UTC()
	asset := domain.Asset{
		ID:            s.genID.Generate(),
		AgencyID:      agencyID,
		SpecID:        specID,
		SerialNumber:  strings.TrimSpace(req.SerialNumber),
		TagNumber:     strings.TrimSpace(req.TagNumber),
		AcquiredDate:  req.AcquiredDate.UTC(),
		PurchasePrice: req.PurchasePrice,
		Metadata:      datatypes.JSONMap{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Insert(ctx, s.db, &asset); err != nil {
		return domain.Asset{}, err
	}
	asset.Spec = spec

	return asset, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateAssetRequest) (domain.Asset, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Asset{}, domain.ErrInvalidAgency
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Asset{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, agencyID, id)
	if err != nil {
		return domain.Asset{}, err
	}
	if existing == nil {
		return domain.Asset{}, domain.ErrNotFound
	}

	if req.SerialNumber != nil {
		existing.SerialNumber = strings.TrimSpace(*req.SerialNumber)
	}
	if req.TagNumber != nil {
		existing.TagNumber = strings.TrimSpace(*req.TagNumber)
	}
	if req.AcquiredDate != nil {
		if req.AcquiredDate.IsZero() {
			return domain.Asset{}, domain.ErrInvalidDate
		}
		existing.AcquiredDate = req.AcquiredDate.UTC()
	}
	if req.PurchasePrice != nil {
		if *req.PurchasePrice < 0 {
			return domain.Asset{}, domain.ErrInvalidPrice
		}
		existing.PurchasePrice = *req.PurchasePrice
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Asset{}, err
	}

	return *existing, nil
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

func (s *Service) List(ctx context.Context, req domain.ListAssetRequest) (domain.ListAssetResponse, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ListAssetResponse{}, domain.ErrInvalidAgency
	}

	var filter domain.ListAssetFilter
	if strings.TrimSpace(req.SpecID) != "" {
		specID, err := s.parseID(req.SpecID)
		if err != nil {
			return domain.ListAssetResponse{}, err
		}
		filter.SpecID = specID
	}

	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = 50
	}

	items, err := s.repo.List(ctx, s.db, agencyID, filter, pagination.Pagination{
		PageToken: req.PageToken,
		PageSize:  int(pageSize),
	})
	if err != nil {
		return domain.ListAssetResponse{}, err
	}

	pageInfo := pagination.BuildCursorPageInfo(items, pageSize, func(asset *domain.Asset) string {
		token, err := pagination.EncodeCursor(pagination.Cursor{
			ID:        asset.ID.String(),
			CreatedAt: asset.CreatedAt.Format(time.RFC3339),
		})
		if err != nil {
			return ""
		}
		return token
	})
	if pageInfo != nil && pageInfo.HasMore && len(items) > int(pageSize) {
		items = items[:pageSize]
	}

	assets := make([]domain.Asset, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		assets = append(assets, *item)
	}

	resp := domain.ListAssetResponse{Assets: assets}
	if pageInfo != nil {
		resp.PageInfo = *pageInfo
	}

	return resp, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Asset, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Asset{}, domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Asset{}, err
	}
	asset, err := s.repo.FindByID(ctx, s.db, agencyID, parsed)
	if err != nil {
		return domain.Asset{}, err
	}
	if asset == nil {
		return domain.Asset{}, domain.ErrNotFound
	}
	return *asset, nil
}

func (s *Service) AddFile(ctx context.Context, req domain.AddFileRequest) (domain.AssetFile, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.AssetFile{}, domain.ErrInvalidAgency
	}

	assetID, err := s.parseID(req.AssetID)
	if err != nil {
		return domain.AssetFile{}, err
	}
	asset, err := s.repo.FindByID(ctx, s.db, agencyID, assetID)
	if err != nil {
		return domain.AssetFile{}, err
	}
	if asset == nil {
		return domain.AssetFile{}, domain.ErrNotFound
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		return domain.AssetFile{}, domain.ErrInvalidFileName
	}

	file := domain.AssetFile{
		ID:          s.genID.Generate(),
		AgencyID:    agencyID,
		AssetID:     assetID,
		FileName:    fileName,
		ContentType: strings.TrimSpace(req.ContentType),
		SizeBytes:   req.SizeBytes,
		StoragePath: req.StoragePath,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.InsertFile(ctx, s.db, &file); err != nil {
		return domain.AssetFile{}, err
	}

	return file, nil
}

func (s *Service) ListFiles(ctx context.Context, assetID string) ([]domain.AssetFile, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(assetID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFiles(ctx, s.db, agencyID, parsed)
}

func (s *Service) DeleteFile(ctx context.Context, fileID string) error {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(fileID)
	if err != nil {
		return err
	}
	return s.repo.DeleteFile(ctx, s.db, agencyID, parsed)
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
