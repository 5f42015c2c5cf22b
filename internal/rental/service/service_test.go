package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	assetdomain "github.com/smallbiznis/rentora/internal/asset/domain"
	assetrepository "github.com/smallbiznis/rentora/internal/asset/repository"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	"github.com/smallbiznis/rentora/internal/clock"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	customerrepository "github.com/smallbiznis/rentora/internal/customer/repository"
	"github.com/smallbiznis/rentora/internal/rental/domain"
	"github.com/smallbiznis/rentora/internal/rental/repository"
	"github.com/smallbiznis/rentora/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc   domain.Service
	db    *gorm.DB
	node  *snowflake.Node
	clock *clock.FakeClock
}

func newTestService(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	err = dbConn.AutoMigrate(
		&catalogdomain.Manufacturer{},
		&catalogdomain.AssetCategory{},
		&catalogdomain.AssetSpec{},
		&assetdomain.Asset{},
		&customerdomain.Customer{},
		&domain.Rental{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	fake := clock.NewFakeClock(time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC))
	svc := New(Params{
		DB:           dbConn,
		Log:          zap.NewNop(),
		GenID:        node,
		Clock:        fake,
		Repo:         repository.Provide(),
		AssetRepo:    assetrepository.Provide(),
		CustomerRepo: customerrepository.Provide(),
	})
	return &fixture{svc: svc, db: dbConn, node: node, clock: fake}
}

func (f *fixture) agencyContext() (context.Context, snowflake.ID) {
	agencyID := f.node.Generate()
	return agencyctx.WithAgencyID(context.Background(), int64(agencyID)), agencyID
}

func (f *fixture) seedAsset(t *testing.T, agencyID snowflake.ID) assetdomain.Asset {
	t.Helper()
	asset := assetdomain.Asset{
		ID:           f.node.Generate(),
		AgencyID:     agencyID,
		SpecID:       f.node.Generate(),
		SerialNumber: "SN-1001",
		AcquiredDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := f.db.Create(&asset).Error; err != nil {
		t.Fatalf("failed to seed asset: %v", err)
	}
	return asset
}

func (f *fixture) seedCustomer(t *testing.T, agencyID snowflake.ID, first, last string) customerdomain.Customer {
	t.Helper()
	customer := customerdomain.Customer{
		ID:        f.node.Generate(),
		AgencyID:  agencyID,
		FirstName: first,
		LastName:  last,
		Email:     first + "@example.com",
	}
	if err := f.db.Create(&customer).Error; err != nil {
		t.Fatalf("failed to seed customer: %v", err)
	}
	return customer
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func TestCreateRejectsOverlap(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")
	ben := f.seedCustomer(t, agencyID, "Ben", "Carter")

	_, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.February, 1),
		ToDate:     dayPtr(2026, time.February, 14),
	})
	if err != nil {
		t.Fatalf("failed to create first rental: %v", err)
	}

	_, err = f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ben.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.February, 10),
		ToDate:     dayPtr(2026, time.February, 20),
	})
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if conflict.Conflict.CustomerName != "Ana Silva" {
		t.Fatalf("expected conflict with Ana Silva, got %s", conflict.Conflict.CustomerName)
	}

	rentals, err := f.svc.List(ctx, domain.ListRentalRequest{})
	if err != nil {
		t.Fatalf("failed to list rentals: %v", err)
	}
	if len(rentals) != 1 {
		t.Fatalf("expected the conflicting rental not to be saved, got %d rentals", len(rentals))
	}
}

func TestCreateOngoingBlocksFutureRental(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")
	ben := f.seedCustomer(t, agencyID, "Ben", "Carter")

	_, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.January, 1),
	})
	if err != nil {
		t.Fatalf("failed to create ongoing rental: %v", err)
	}

	_, err = f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ben.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.June, 1),
		ToDate:     dayPtr(2026, time.June, 10),
	})
	var conflict *domain.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError against ongoing rental, got %v", err)
	}
}

func TestCreateAllowsAdjacentPeriods(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")
	ben := f.seedCustomer(t, agencyID, "Ben", "Carter")

	_, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.February, 1),
		ToDate:     dayPtr(2026, time.February, 14),
	})
	if err != nil {
		t.Fatalf("failed to create first rental: %v", err)
	}

	_, err = f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ben.ID.String(),
		DailyRate:  12,
		FromDate:   day(2026, time.February, 15),
		ToDate:     dayPtr(2026, time.February, 28),
	})
	if err != nil {
		t.Fatalf("expected adjacent periods to be allowed, got %v", err)
	}
}

func TestUpdateExcludesOwnRentalFromCheck(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")

	created, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.February, 1),
		ToDate:     dayPtr(2026, time.February, 14),
	})
	if err != nil {
		t.Fatalf("failed to create rental: %v", err)
	}

	updated, err := f.svc.Update(ctx, domain.UpdateRentalRequest{
		ID:     created.ID.String(),
		ToDate: dayPtr(2026, time.February, 20),
	})
	if err != nil {
		t.Fatalf("expected extending own rental to succeed, got %v", err)
	}
	if updated.ToDate == nil || !updated.ToDate.Equal(day(2026, time.February, 20)) {
		t.Fatalf("expected to_date Feb 20, got %v", updated.ToDate)
	}
}

func TestReturnDefaultsToCurrentDate(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")

	created, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.March, 1),
	})
	if err != nil {
		t.Fatalf("failed to create rental: %v", err)
	}

	returned, err := f.svc.Return(ctx, domain.ReturnRentalRequest{ID: created.ID.String()})
	if err != nil {
		t.Fatalf("failed to return rental: %v", err)
	}
	if returned.ToDate == nil || !returned.ToDate.Equal(f.clock.Now()) {
		t.Fatalf("expected return date %v, got %v", f.clock.Now(), returned.ToDate)
	}

	if _, err := f.svc.Return(ctx, domain.ReturnRentalRequest{ID: created.ID.String()}); err != domain.ErrAlreadyReturned {
		t.Fatalf("expected ErrAlreadyReturned, got %v", err)
	}
}

func TestReturnBeforeStartRejected(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")

	created, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.March, 10),
	})
	if err != nil {
		t.Fatalf("failed to create rental: %v", err)
	}

	_, err = f.svc.Return(ctx, domain.ReturnRentalRequest{
		ID:         created.ID.String(),
		ReturnDate: dayPtr(2026, time.March, 5),
	})
	if err != domain.ErrReturnBeforeStart {
		t.Fatalf("expected ErrReturnBeforeStart, got %v", err)
	}
}

func TestBookingLocksAssetRow(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")

	// Capture locking queries before the SQLite test helper strips them.
	var locks []string
	err := f.db.Callback().Row().Before("sqlite_strip_for_update_row").Register("capture_row_locks", func(d *gorm.DB) {
		sql := d.Statement.SQL.String()
		if strings.Contains(sql, "FOR UPDATE") {
			locks = append(locks, sql)
		}
	})
	if err != nil {
		t.Fatalf("failed to register callback: %v", err)
	}

	created, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.February, 1),
		ToDate:     dayPtr(2026, time.February, 14),
	})
	if err != nil {
		t.Fatalf("failed to create rental: %v", err)
	}
	if len(locks) != 1 {
		t.Fatalf("expected create to lock the asset row once, saw %d locking queries", len(locks))
	}
	if !strings.Contains(locks[0], "FROM assets") {
		t.Fatalf("expected the lock to target the assets table, got %q", locks[0])
	}

	locks = nil
	_, err = f.svc.Update(ctx, domain.UpdateRentalRequest{
		ID:     created.ID.String(),
		ToDate: dayPtr(2026, time.February, 20),
	})
	if err != nil {
		t.Fatalf("failed to update rental: %v", err)
	}
	if len(locks) != 1 {
		t.Fatalf("expected update to lock the asset row once, saw %d locking queries", len(locks))
	}
}

func TestCreateValidatesReferences(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	asset := f.seedAsset(t, agencyID)
	ana := f.seedCustomer(t, agencyID, "Ana", "Silva")

	_, err := f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    f.node.Generate().String(),
		CustomerID: ana.ID.String(),
		DailyRate:  10,
		FromDate:   day(2026, time.March, 1),
	})
	if err != domain.ErrInvalidAsset {
		t.Fatalf("expected ErrInvalidAsset, got %v", err)
	}

	_, err = f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: f.node.Generate().String(),
		DailyRate:  10,
		FromDate:   day(2026, time.March, 1),
	})
	if err != domain.ErrInvalidCustomer {
		t.Fatalf("expected ErrInvalidCustomer, got %v", err)
	}

	_, err = f.svc.Create(ctx, domain.CreateRentalRequest{
		AssetID:    asset.ID.String(),
		CustomerID: ana.ID.String(),
		DailyRate:  0,
		FromDate:   day(2026, time.March, 1),
	})
	if err != domain.ErrInvalidRate {
		t.Fatalf("expected ErrInvalidRate, got %v", err)
	}
}
