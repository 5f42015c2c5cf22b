package migration

import (
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	assetdomain "github.com/smallbiznis/rentora/internal/asset/domain"
	auditdomain "github.com/smallbiznis/rentora/internal/audit/domain"
	authdomain "github.com/smallbiznis/rentora/internal/auth/domain"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	conditiondomain "github.com/smallbiznis/rentora/internal/condition/domain"
	"github.com/smallbiznis/rentora/internal/config"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	rentaldomain "github.com/smallbiznis/rentora/internal/rental/domain"
	"github.com/smallbiznis/rentora/internal/seed"
	valuationdomain "github.com/smallbiznis/rentora/internal/valuation/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// The versioned SQL is postgres-only; sqlite and mysql installs
			// derive the schema from the models instead.
			if err := conn.AutoMigrate(
				&authdomain.User{},
				&authdomain.Session{},
				&agencydomain.Agency{},
				&agencydomain.AgencyMember{},
				&agencydomain.AgencySettings{},
				&customerdomain.Customer{},
				&customerdomain.CustomerFile{},
				&catalogdomain.Manufacturer{},
				&catalogdomain.AssetCategory{},
				&catalogdomain.AssetSpec{},
				&assetdomain.Asset{},
				&assetdomain.AssetFile{},
				&conditiondomain.DefinedCondition{},
				&conditiondomain.AssetCondition{},
				&valuationdomain.AssetValuation{},
				&rentaldomain.Rental{},
				&auditdomain.AuditLog{},
			); err != nil {
				return err
			}
		}

		if cfg.DefaultAgencyID != 0 {
			if err := seed.EnsureDefaultAgencyWithID(conn, cfg.DefaultAgencyID); err != nil {
				return err
			}
		} else if err := seed.EnsureDefaultAgency(conn); err != nil {
			return err
		}
		if cfg.BootstrapAdmin {
			return seed.EnsureDefaultAgencyAndAdmin(conn)
		}
		return nil
	}),
)
