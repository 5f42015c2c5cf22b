package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	assetdomain "github.com/smallbiznis/rentora/internal/asset/domain"
	"github.com/smallbiznis/rentora/internal/clock"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	"github.com/smallbiznis/rentora/internal/rental/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB           *gorm.DB
	Log          *zap.Logger
	GenID        *snowflake.Node
	Clock        clock.Clock
	Repo         domain.Repository
	AssetRepo    assetdomain.Repository
	CustomerRepo customerdomain.Repository
}

type Service struct {
	db           *gorm.DB
	log          *zap.Logger
	genID        *snowflake.Node
	clock        clock.Clock
	repo         domain.Repository
	assetRepo    assetdomain.Repository
	customerRepo customerdomain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:           p.DB,
		log:          p.Log.Named("rental.service"),
		genID:        p.GenID,
		clock:        p.Clock,
		repo:         p.Repo,
		assetRepo:    p.AssetRepo,
		customerRepo: p.CustomerRepo,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRentalRequest) (domain.Rental, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Rental{}, domain.ErrInvalidAgency
	}

	assetID, err := s.parseID(req.AssetID)
	if err != nil {
		return domain.Rental{}, domain.ErrInvalidAsset
	}
	customerID, err := s.parseID(req.CustomerID)
	if err != nil {
		return domain.Rental{}, domain.ErrInvalidCustomer
	}
	if req.DailyRate <= 0 {
		return domain.Rental{}, domain.ErrInvalidRate
	}
	if req.FromDate.IsZero() {
		return domain.Rental{}, domain.ErrInvalidDate
	}
	if req.ToDate != nil && req.ToDate.Before(req.FromDate) {
		return domain.Rental{}, domain.ErrInvalidDate
	}

	asset, err := s.assetRepo.FindByID(ctx, s.db, agencyID, assetID)
	if err != nil {
		return domain.Rental{}, err
	}
	if asset == nil {
		return domain.Rental{}, domain.ErrInvalidAsset
	}
	customer, err := s.customerRepo.FindByID(ctx, s.db, agencyID, customerID)
	if err != nil {
		return domain.Rental{}, err
	}
	if customer == nil {
		return domain.Rental{}, domain.ErrInvalidCustomer
	}

	now := time.Now().UTC()
	rental := domain.Rental{
		ID:         s.genID.Generate(),
		AgencyID:   agencyID,
		AssetID:    assetID,
		CustomerID: customerID,
		DailyRate:  req.DailyRate,
		FromDate:   req.FromDate.UTC(),
		ToDate:     normalizeTo(req.ToDate),
		Notes:      strings.TrimSpace(req.Notes),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// A row lock on the asset serializes concurrent bookings: without it,
	// two transactions could both run the overlap scan, both see no
	// conflict, and both commit under READ COMMITTED.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAsset(tx, agencyID, assetID); err != nil {
			return err
		}
		existing, err := s.repo.ListForAsset(ctx, tx, agencyID, assetID, 0)
		if err != nil {
			return err
		}
		if conflict, ok := domain.CheckOverlap(domain.Interval{From: rental.FromDate, To: rental.ToDate}, existing); ok {
			return &domain.ConflictError{Conflict: conflict}
		}
		return s.repo.Insert(ctx, tx, &rental)
	})
	if err != nil {
		return domain.Rental{}, err
	}

	rental.Asset = asset
	rental.Customer = customer
	return rental, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRentalRequest) (domain.Rental, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Rental{}, domain.ErrInvalidAgency
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Rental{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, agencyID, id)
	if err != nil {
		return domain.Rental{}, err
	}
	if existing == nil {
		return domain.Rental{}, domain.ErrNotFound
	}

	if req.DailyRate != nil {
		if *req.DailyRate <= 0 {
			return domain.Rental{}, domain.ErrInvalidRate
		}
		existing.DailyRate = *req.DailyRate
	}
	if req.FromDate != nil {
		if req.FromDate.IsZero() {
			return domain.Rental{}, domain.ErrInvalidDate
		}
		existing.FromDate = req.FromDate.UTC()
	}
	if req.ClearTo {
		existing.ToDate = nil
	} else if req.ToDate != nil {
		existing.ToDate = normalizeTo(req.ToDate)
	}
	if existing.ToDate != nil && existing.ToDate.Before(existing.FromDate) {
		return domain.Rental{}, domain.ErrInvalidDate
	}
	if req.Notes != nil {
		existing.Notes = strings.TrimSpace(*req.Notes)
	}
	existing.UpdatedAt = time.Now().UTC()

	// Re-check against the asset's other rentals, excluding this one,
	// under the same asset row lock the create path takes.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockAsset(tx, agencyID, existing.AssetID); err != nil {
			return err
		}
		others, err := s.repo.ListForAsset(ctx, tx, agencyID, existing.AssetID, existing.ID)
		if err != nil {
			return err
		}
		if conflict, ok := domain.CheckOverlap(domain.Interval{From: existing.FromDate, To: existing.ToDate}, others); ok {
			return &domain.ConflictError{Conflict: conflict}
		}
		return s.repo.Update(ctx, tx, existing)
	})
	if err != nil {
		return domain.Rental{}, err
	}

	return *existing, nil
}

// Return marks a rental's asset as returned. The return date defaults to
// the current date and must not precede the rental start; a rental can be
// returned only once.
func (s *Service) Return(ctx context.Context, req domain.ReturnRentalRequest) (domain.Rental, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Rental{}, domain.ErrInvalidAgency
	}

	id, err := s.parseID(req.ID)
	if err != nil {
		return domain.Rental{}, err
	}

	existing, err := s.repo.FindByID(ctx, s.db, agencyID, id)
	if err != nil {
		return domain.Rental{}, err
	}
	if existing == nil {
		return domain.Rental{}, domain.ErrNotFound
	}
	if existing.ToDate != nil {
		return domain.Rental{}, domain.ErrAlreadyReturned
	}

	returnDate := s.clock.Now()
	if req.ReturnDate != nil {
		returnDate = req.ReturnDate.UTC()
	}
	if returnDate.Before(existing.FromDate) {
		return domain.Rental{}, domain.ErrReturnBeforeStart
	}

	existing.ToDate = &returnDate
	existing.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, existing); err != nil {
		return domain.Rental{}, err
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

func (s *Service) List(ctx context.Context, req domain.ListRentalRequest) ([]domain.Rental, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return nil, domain.ErrInvalidAgency
	}

	var filter domain.ListRentalFilter
	if strings.TrimSpace(req.CustomerID) != "" {
		customerID, err := s.parseID(req.CustomerID)
		if err != nil {
			return nil, err
		}
		filter.CustomerID = customerID
	}
	if strings.TrimSpace(req.AssetID) != "" {
		assetID, err := s.parseID(req.AssetID)
		if err != nil {
			return nil, err
		}
		filter.AssetID = assetID
	}

	return s.repo.List(ctx, s.db, agencyID, filter)
}

func (s *Service) GetByID(ctx context.Context, id string) (domain.Rental, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(ctx)
	if !ok || agencyID == 0 {
		return domain.Rental{}, domain.ErrInvalidAgency
	}
	parsed, err := s.parseID(id)
	if err != nil {
		return domain.Rental{}, err
	}
	rental, err := s.repo.FindByID(ctx, s.db, agencyID, parsed)
	if err != nil {
		return domain.Rental{}, err
	}
	if rental == nil {
		return domain.Rental{}, domain.ErrNotFound
	}
	return *rental, nil
}

func (s *Service) ListByCustomer(ctx context.Context, customerID string) ([]domain.Rental, error) {
	return s.List(ctx, domain.ListRentalRequest{CustomerID: customerID})
}

func (s *Service) parseID(value string) (snowflake.ID, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// lockAsset takes a FOR UPDATE lock on the asset row so concurrent
// bookings for the same asset serialize on the overlap check. The SQLite
// test database has no row locks; it strips the clause and serializes
// writes itself.
func lockAsset(tx *gorm.DB, agencyID, assetID snowflake.ID) error {
	var id snowflake.ID
	return tx.Raw(
		`SELECT id FROM assets WHERE agency_id = ? AND id = ? FOR UPDATE`,
		agencyID, assetID,
	).Scan(&id).Error
}

func normalizeTo(to *time.Time) *time.Time {
	if to == nil {
		return nil
	}
	utc := to.UTC()
	return &utc
}
