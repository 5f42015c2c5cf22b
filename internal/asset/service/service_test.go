package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	"github.com/smallbiznis/rentora/internal/asset/domain"
	"github.com/smallbiznis/rentora/internal/asset/repository"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	catalogrepository "github.com/smallbiznis/rentora/internal/catalog/repository"
	"github.com/smallbiznis/rentora/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	svc  domain.Service
	db   *gorm.DB
	node *snowflake.Node
}

func newTestService(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&catalogdomain.Manufacturer{},
		&catalogdomain.AssetCategory{},
		&catalogdomain.AssetSpec{},
		&domain.Asset{},
		&domain.AssetFile{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	svc := New(Params{
		DB:          dbConn,
		Log:         zap.NewNop(),
		GenID:       node,
		Repo:        repository.Provide(),
		CatalogRepo: catalogrepository.Provide(),
	})
	return &fixture{svc: svc, db: dbConn, node: node}
}

func (f *fixture) agencyContext() (context.Context, snowflake.ID) {
	agencyID := f.node.Generate()
	return agencyctx.WithAgencyID(context.Background(), int64(agencyID)), agencyID
}

func (f *fixture) seedSpec(t *testing.T, agencyID snowflake.ID) catalogdomain.AssetSpec {
	t.Helper()

	spec := catalogdomain.AssetSpec{
		ID:              f.node.Generate(),
		AgencyID:        agencyID,
		AssetCategoryID: f.node.Generate(),
		ManufacturerID:  f.node.Generate(),
		YearMake:        2024,
		Model:           "EX-200",
		Description:     "Excavator",
	}
	if err := f.db.Create(&spec).Error; err != nil {
		t.Fatalf("failed to seed spec: %v", err)
	}
	return spec
}

func TestCreateRejectsUnknownSpec(t *testing.T) {
	f := newTestService(t)
	ctx, _ := f.agencyContext()

	_, err := f.svc.Create(ctx, domain.CreateAssetRequest{
		SpecID:       f.node.Generate().String(),
		AcquiredDate: time.Now(),
	})
	if err != domain.ErrInvalidSpec {
		t.Fatalf("expected ErrInvalidSpec, got %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	spec := f.seedSpec(t, agencyID)

	created, err := f.svc.Create(ctx, domain.CreateAssetRequest{
		SpecID:        spec.ID.String(),
		SerialNumber:  "SN-001",
		TagNumber:     "TAG-7",
		AcquiredDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice: 125000,
	})
	if err != nil {
		t.Fatalf("failed to create asset: %v", err)
	}

	got, err := f.svc.GetByID(ctx, created.ID.String())
	if err != nil {
		t.Fatalf("failed to get asset: %v", err)
	}
	if got.SerialNumber != "SN-001" {
		t.Fatalf("expected serial SN-001, got %s", got.SerialNumber)
	}
	if got.SpecID != spec.ID {
		t.Fatalf("expected spec %s, got %s", spec.ID, got.SpecID)
	}
}

func TestCreateIsAgencyScoped(t *testing.T) {
	f := newTestService(t)
	ctxA, agencyA := f.agencyContext()
	ctxB, _ := f.agencyContext()
	spec := f.seedSpec(t, agencyA)

	// The spec belongs to agency A, so agency B cannot attach assets to it.
	_, err := f.svc.Create(ctxB, domain.CreateAssetRequest{
		SpecID:       spec.ID.String(),
		AcquiredDate: time.Now(),
	})
	if err != domain.ErrInvalidSpec {
		t.Fatalf("expected ErrInvalidSpec for foreign spec, got %v", err)
	}

	created, err := f.svc.Create(ctxA, domain.CreateAssetRequest{
		SpecID:       spec.ID.String(),
		AcquiredDate: time.Now(),
	})
	if err != nil {
		t.Fatalf("failed to create asset: %v", err)
	}

	if _, err := f.svc.GetByID(ctxB, created.ID.String()); err != domain.ErrNotFound {
		t.Fatalf("expected ErrNotFound across agencies, got %v", err)
	}
}

func TestUpdatePartialFields(t *testing.T) {
	f := newTestService(t)
	ctx, agencyID := f.agencyContext()
	spec := f.seedSpec(t, agencyID)

	created, err := f.svc.Create(ctx, domain.CreateAssetRequest{
		SpecID:        spec.ID.String(),
		SerialNumber:  "SN-001",
		AcquiredDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		PurchasePrice: 1000,
	})
	if err != nil {
		t.Fatalf("failed to create asset: %v", err)
	}

	tag := "TAG-9"
	updated, err := f.svc.Update(ctx, domain.UpdateAssetRequest{
		ID:        created.ID.String(),
		TagNumber: &tag,
	})
	if err != nil {
		t.Fatalf("failed to update asset: %v", err)
	}
	if updated.TagNumber != "TAG-9" {
		t.Fatalf("expected tag TAG-9, got %s", updated.TagNumber)
	}
	if updated.SerialNumber != "SN-001" {
		t.Fatalf("expected serial untouched, got %s", updated.SerialNumber)
	}
}
