package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	"github.com/smallbiznis/rentora/internal/agency/repository"
	"github.com/smallbiznis/rentora/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestService(t *testing.T) (agencydomain.Service, *gorm.DB, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&agencydomain.Agency{},
		&agencydomain.AgencyMember{},
		&agencydomain.AgencySettings{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	repo := repository.NewRepository(dbConn)
	return NewService(dbConn, zap.NewNop(), repo, node), dbConn, node
}

func TestCreateAddsOwnerMember(t *testing.T) {
	svc, dbConn, node := newTestService(t)
	userID := node.Generate()

	resp, err := svc.Create(context.Background(), userID, agencydomain.CreateAgencyRequest{
		Name:    "Acme Rentals",
		Country: "IN",
	})
	if err != nil {
		t.Fatalf("failed to create agency: %v", err)
	}
	if resp.Slug != "acme-rentals" {
		t.Fatalf("expected slug acme-rentals, got %s", resp.Slug)
	}

	var count int64
	if err := dbConn.Model(&agencydomain.AgencyMember{}).
		Where("user_id = ? AND role = ?", userID, agencydomain.RoleOwner).
		Count(&count).Error; err != nil {
		t.Fatalf("failed to count members: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 owner membership, got %d", count)
	}
}

func TestGetSettingsDerivesCurrencyFromCountry(t *testing.T) {
	svc, _, node := newTestService(t)
	userID := node.Generate()

	resp, err := svc.Create(context.Background(), userID, agencydomain.CreateAgencyRequest{
		Name:    "Tokyo Fleet",
		Country: "JP",
	})
	if err != nil {
		t.Fatalf("failed to create agency: %v", err)
	}
	agencyID, err := snowflake.ParseString(resp.ID)
	if err != nil {
		t.Fatalf("failed to parse agency id: %v", err)
	}

	settings, err := svc.GetSettings(context.Background(), agencyID)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.CurrencyCode != "JPY" {
		t.Fatalf("expected JPY, got %s", settings.CurrencyCode)
	}
	if settings.InvoicePrefix != "INV" {
		t.Fatalf("expected default prefix INV, got %s", settings.InvoicePrefix)
	}
}

func TestUpdateSettingsCountryChangeRefreshesCurrency(t *testing.T) {
	svc, _, node := newTestService(t)
	userID := node.Generate()

	resp, err := svc.Create(context.Background(), userID, agencydomain.CreateAgencyRequest{
		Name:    "Crosstown Hire",
		Country: "US",
	})
	if err != nil {
		t.Fatalf("failed to create agency: %v", err)
	}
	agencyID, _ := snowflake.ParseString(resp.ID)

	if _, err := svc.GetSettings(context.Background(), agencyID); err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}

	country := "Germany"
	taxRate := 19.0
	settings, err := svc.UpdateSettings(context.Background(), agencyID, agencydomain.UpdateSettingsRequest{
		Country:        &country,
		DefaultTaxRate: &taxRate,
	})
	if err != nil {
		t.Fatalf("failed to update settings: %v", err)
	}
	if settings.CurrencyCode != "EUR" {
		t.Fatalf("expected EUR after country change, got %s", settings.CurrencyCode)
	}
	if settings.DefaultTaxRate != 19.0 {
		t.Fatalf("expected tax rate 19, got %v", settings.DefaultTaxRate)
	}
}

func TestUpdateSettingsUnknownCountryDefaultsToUSD(t *testing.T) {
	svc, _, node := newTestService(t)
	userID := node.Generate()

	resp, err := svc.Create(context.Background(), userID, agencydomain.CreateAgencyRequest{
		Name:    "Atlantis Rentals",
		Country: "Atlantis",
	})
	if err != nil {
		t.Fatalf("failed to create agency: %v", err)
	}
	agencyID, _ := snowflake.ParseString(resp.ID)

	settings, err := svc.GetSettings(context.Background(), agencyID)
	if err != nil {
		t.Fatalf("failed to get settings: %v", err)
	}
	if settings.CurrencyCode != "USD" {
		t.Fatalf("expected USD fallback, got %s", settings.CurrencyCode)
	}
}

func TestUpdateSettingsRejectsBadTaxRate(t *testing.T) {
	svc, _, node := newTestService(t)
	userID := node.Generate()

	resp, err := svc.Create(context.Background(), userID, agencydomain.CreateAgencyRequest{
		Name:    "Rate Check",
		Country: "US",
	})
	if err != nil {
		t.Fatalf("failed to create agency: %v", err)
	}
	agencyID, _ := snowflake.ParseString(resp.ID)

	bad := -1.0
	if _, err := svc.UpdateSettings(context.Background(), agencyID, agencydomain.UpdateSettingsRequest{
		DefaultTaxRate: &bad,
	}); err != agencydomain.ErrInvalidTaxRate {
		t.Fatalf("expected ErrInvalidTaxRate, got %v", err)
	}
}
