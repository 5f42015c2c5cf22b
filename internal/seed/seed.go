// Package seed bootstraps the default agency and admin user so a fresh
// install is usable without manual setup.
package seed

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	authdomain "github.com/smallbiznis/rentora/internal/auth/domain"
	"github.com/smallbiznis/rentora/internal/auth/password"
	conditiondomain "github.com/smallbiznis/rentora/internal/condition/domain"
	"github.com/smallbiznis/rentora/internal/currency"
	"gorm.io/gorm"
)

const (
	defaultAgencyName  = "Main"
	defaultAgencySlug  = "main"
	defaultCountry     = "US"
	defaultAdminEmail  = "admin@rentora.local"
	defaultAdminPass   = "admin"
	defaultAdminName   = "Rentora Admin"
	defaultTaxRate     = 0
	defaultInvoiceCode = "INV"
)

// defaultConditions mirror the labels a fresh install starts with.
var defaultConditions = []string{"New", "Under Repair", "Retired", "Missing"}

// EnsureDefaultAgency creates the default agency, its settings, and the
// starter condition labels if they do not exist yet.
func EnsureDefaultAgency(db *gorm.DB) error {
	return ensureDefaultAgency(db, 0)
}

// EnsureDefaultAgencyWithID is EnsureDefaultAgency pinned to a fixed
// agency id, for installs that reference the agency from config.
func EnsureDefaultAgencyWithID(db *gorm.DB, agencyID int64) error {
	return ensureDefaultAgency(db, snowflake.ID(agencyID))
}

func ensureDefaultAgency(db *gorm.DB, agencyID snowflake.ID) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := ensureAgencyTx(ctx, tx, node, agencyID)
		return err
	})
}

// EnsureDefaultAgencyAndAdmin additionally creates the admin user and
// makes it the agency owner. The admin's password is a known default,
// so the account is flagged for a forced password change on first login.
func EnsureDefaultAgencyAndAdmin(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		agency, err := ensureAgencyTx(ctx, tx, node, 0)
		if err != nil {
			return err
		}

		var user authdomain.User
		err = tx.WithContext(ctx).
			Where("provider = ? AND email = ?", "local", defaultAdminEmail).
			First(&user).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			hashed, err := password.Hash(defaultAdminPass)
			if err != nil {
				return err
			}
			now := time.Now().UTC()
			user = authdomain.User{
				ID:           node.Generate(),
				ExternalID:   defaultAdminEmail,
				Provider:     "local",
				DisplayName:  defaultAdminName,
				Email:        strings.ToLower(defaultAdminEmail),
				PasswordHash: &hashed,
				IsDefault:    true,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := tx.WithContext(ctx).Create(&user).Error; err != nil {
				return err
			}
		}

		var member agencydomain.AgencyMember
		err = tx.WithContext(ctx).
			Where("agency_id = ? AND user_id = ?", agency.ID, user.ID).
			First(&member).Error
		if err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			member = agencydomain.AgencyMember{
				ID:        node.Generate(),
				AgencyID:  agency.ID,
				UserID:    user.ID,
				Role:      agencydomain.RoleOwner,
				CreatedAt: time.Now().UTC(),
			}
			if err := tx.WithContext(ctx).Create(&member).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func ensureAgencyTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node, agencyID snowflake.ID) (agencydomain.Agency, error) {
	var agency agencydomain.Agency
	err := tx.WithContext(ctx).Where("slug = ?", defaultAgencySlug).First(&agency).Error
	if err == nil {
		return agency, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return agencydomain.Agency{}, err
	}

	if agencyID == 0 {
		agencyID = node.Generate()
	}
	now := time.Now().UTC()
	agency = agencydomain.Agency{
		ID:        agencyID,
		Name:      defaultAgencyName,
		Slug:      defaultAgencySlug,
		Country:   defaultCountry,
		IsDefault: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tx.WithContext(ctx).Create(&agency).Error; err != nil {
		return agencydomain.Agency{}, err
	}

	info := currency.ForCountry(agency.Country)
	settings := agencydomain.AgencySettings{
		AgencyID:       agency.ID,
		CurrencyCode:   info.Code,
		CurrencySymbol: info.Symbol,
		CurrencyName:   info.Name,
		DefaultTaxRate: defaultTaxRate,
		InvoicePrefix:  defaultInvoiceCode,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := tx.WithContext(ctx).Create(&settings).Error; err != nil {
		return agencydomain.Agency{}, err
	}

	for _, description := range defaultConditions {
		condition := conditiondomain.DefinedCondition{
			ID:          node.Generate(),
			AgencyID:    agency.ID,
			Description: description,
			CreatedAt:   now,
		}
		if err := tx.WithContext(ctx).Create(&condition).Error; err != nil {
			return agencydomain.Agency{}, err
		}
	}

	return agency, nil
}
