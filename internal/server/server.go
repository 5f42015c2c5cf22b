package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/rentora/internal/agency"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	"github.com/smallbiznis/rentora/internal/asset"
	assetdomain "github.com/smallbiznis/rentora/internal/asset/domain"
	"github.com/smallbiznis/rentora/internal/audit"
	auditdomain "github.com/smallbiznis/rentora/internal/audit/domain"
	"github.com/smallbiznis/rentora/internal/auth"
	authdomain "github.com/smallbiznis/rentora/internal/auth/domain"
	"github.com/smallbiznis/rentora/internal/auth/session"
	"github.com/smallbiznis/rentora/internal/billing/render"
	"github.com/smallbiznis/rentora/internal/catalog"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
	"github.com/smallbiznis/rentora/internal/clock"
	"github.com/smallbiznis/rentora/internal/condition"
	conditiondomain "github.com/smallbiznis/rentora/internal/condition/domain"
	"github.com/smallbiznis/rentora/internal/config"
	"github.com/smallbiznis/rentora/internal/customer"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	"github.com/smallbiznis/rentora/internal/observability"
	obsmiddleware "github.com/smallbiznis/rentora/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/rentora/internal/observability/metrics"
	obstracing "github.com/smallbiznis/rentora/internal/observability/tracing"
	"github.com/smallbiznis/rentora/internal/ratelimit"
	"github.com/smallbiznis/rentora/internal/rental"
	rentaldomain "github.com/smallbiznis/rentora/internal/rental/domain"
	"github.com/smallbiznis/rentora/internal/valuation"
	valuationdomain "github.com/smallbiznis/rentora/internal/valuation/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	audit.Module,
	auth.Module,
	session.Module,
	agency.Module,
	customer.Module,
	catalog.Module,
	asset.Module,
	condition.Module,
	valuation.Module,
	rental.Module,
	ratelimit.Module,
	render.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug: obsCfg.Debug(),
	}))
	r.Use(obstracing.GinMiddleware(obsCfg.ServiceName))
	r.Use(httpMetrics.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	return NewEngine(obsCfg, httpMetrics)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine       *gin.Engine
	cfg          config.Config
	db           *gorm.DB
	clock        clock.Clock
	authsvc      authdomain.Service
	sessions     *session.Manager
	loginLimiter *ratelimit.LoginLimiter
	agencySvc    agencydomain.Service
	customerSvc  customerdomain.Service
	catalogSvc   catalogdomain.Service
	assetSvc     assetdomain.Service
	conditionSvc conditiondomain.Service
	valuationSvc valuationdomain.Service
	rentalSvc    rentaldomain.Service
	auditSvc     auditdomain.Service
	renderer     render.Renderer
}

type ServerParams struct {
	fx.In

	Gin          *gin.Engine
	Cfg          config.Config
	DB           *gorm.DB
	Clock        clock.Clock
	Authsvc      authdomain.Service
	Sessions     *session.Manager
	LoginLimiter *ratelimit.LoginLimiter
	AgencySvc    agencydomain.Service
	CustomerSvc  customerdomain.Service
	CatalogSvc   catalogdomain.Service
	AssetSvc     assetdomain.Service
	ConditionSvc conditiondomain.Service
	ValuationSvc valuationdomain.Service
	RentalSvc    rentaldomain.Service
	AuditSvc     auditdomain.Service
	Renderer     render.Renderer
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:       p.Gin,
		cfg:          p.Cfg,
		db:           p.DB,
		clock:        p.Clock,
		authsvc:      p.Authsvc,
		sessions:     p.Sessions,
		loginLimiter: p.LoginLimiter,
		agencySvc:    p.AgencySvc,
		customerSvc:  p.CustomerSvc,
		catalogSvc:   p.CatalogSvc,
		assetSvc:     p.AssetSvc,
		conditionSvc: p.ConditionSvc,
		valuationSvc: p.ValuationSvc,
		rentalSvc:    p.RentalSvc,
		auditSvc:     p.AuditSvc,
		renderer:     p.Renderer,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.Me)
	auth.POST("/change-password", s.AuthRequired(), s.ChangePassword)

	user := auth.Group("/user", s.AuthRequired())
	{
		user.GET("/agencies", s.ListUserAgencies)
		user.POST("/agencies", s.CreateAgency)
		user.POST("/using/:agencyId", s.UseAgency)
	}
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	api.GET("/countries", s.ListCountries)

	api.Use(s.AuthRequired())
	api.Use(s.AgencyContext())

	manage := s.RequireRole(agencydomain.RoleOwner, agencydomain.RoleAdmin)

	// -------- Agency --------
	api.GET("/agencies/:id", s.GetAgencyByID)
	api.GET("/agency-settings", s.GetAgencySettings)
	api.PUT("/agency-settings", manage, s.UpdateAgencySettings)

	// -------- Customers --------
	api.GET("/customers", s.ListCustomers)
	api.POST("/customers", manage, s.CreateCustomer)
	api.GET("/customers/:id", s.GetCustomerByID)
	api.PATCH("/customers/:id", manage, s.UpdateCustomer)
	api.DELETE("/customers/:id", manage, s.DeleteCustomer)
	api.GET("/customers/:id/files", s.ListCustomerFiles)
	api.POST("/customers/:id/files", manage, s.UploadCustomerFile)
	api.DELETE("/customers/:id/files/:fileId", manage, s.DeleteCustomerFile)
	api.GET("/customers/:id/invoice", s.DownloadCustomerInvoice)

	// -------- Catalog --------
	api.GET("/manufacturers", s.ListManufacturers)
	api.POST("/manufacturers", manage, s.CreateManufacturer)
	api.DELETE("/manufacturers/:id", manage, s.DeleteManufacturer)

	api.GET("/asset-categories", s.ListAssetCategories)
	api.POST("/asset-categories", manage, s.CreateAssetCategory)
	api.DELETE("/asset-categories/:id", manage, s.DeleteAssetCategory)

	api.GET("/asset-specs", s.ListAssetSpecs)
	api.POST("/asset-specs", manage, s.CreateAssetSpec)
	api.GET("/asset-specs/:id", s.GetAssetSpecByID)
	api.DELETE("/asset-specs/:id", manage, s.DeleteAssetSpec)

	// -------- Assets --------
	api.GET("/assets", s.ListAssets)
	api.POST("/assets", manage, s.CreateAsset)
	api.GET("/assets/:id", s.GetAssetByID)
	api.PATCH("/assets/:id", manage, s.UpdateAsset)
	api.DELETE("/assets/:id", manage, s.DeleteAsset)
	api.GET("/assets/:id/files", s.ListAssetFiles)
	api.POST("/assets/:id/files", manage, s.UploadAssetFile)
	api.DELETE("/assets/:id/files/:fileId", manage, s.DeleteAssetFile)

	// -------- Conditions --------
	api.GET("/defined-conditions", s.ListDefinedConditions)
	api.POST("/defined-conditions", manage, s.CreateDefinedCondition)
	api.DELETE("/defined-conditions/:id", manage, s.DeleteDefinedCondition)

	api.GET("/asset-conditions", s.ListAssetConditions)
	api.POST("/asset-conditions", manage, s.RecordAssetCondition)
	api.DELETE("/asset-conditions/:id", manage, s.DeleteAssetCondition)

	// -------- Valuations --------
	api.GET("/asset-valuations", s.ListAssetValuations)
	api.POST("/asset-valuations", manage, s.RecordAssetValuation)
	api.DELETE("/asset-valuations/:id", manage, s.DeleteAssetValuation)

	// -------- Rentals --------
	api.GET("/rentals", s.ListRentals)
	api.POST("/rentals", manage, s.CreateRental)
	api.GET("/rentals/:id", s.GetRentalByID)
	api.PATCH("/rentals/:id", manage, s.UpdateRental)
	api.DELETE("/rentals/:id", manage, s.DeleteRental)
	api.PATCH("/rentals/:id/return", manage, s.ReturnRental)
	api.GET("/rentals/:id/invoice", s.DownloadRentalInvoice)

	// -------- Audit --------
	api.GET("/audit-logs", manage, s.ListAuditLogs)
}
