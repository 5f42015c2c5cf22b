package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	catalogdomain "github.com/smallbiznis/rentora/internal/catalog/domain"
)

type CreateManufacturerRequest struct {
	Description string `json:"description"`
}

type CreateAssetCategoryRequest struct {
	Description string `json:"description"`
}

type CreateAssetSpecRequest struct {
	AssetCategoryID string `json:"asset_category_id"`
	ManufacturerID  string `json:"manufacturer_id"`
	YearMake        int    `json:"year_make"`
	Model           string `json:"model"`
	Description     string `json:"description"`
}

func (s *Server) ListManufacturers(c *gin.Context) {
	manufacturers, err := s.catalogSvc.ListManufacturers(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": manufacturers})
}

func (s *Server) CreateManufacturer(c *gin.Context) {
	var req CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	manufacturer, err := s.catalogSvc.CreateManufacturer(c.Request.Context(), catalogdomain.CreateManufacturerRequest{
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := manufacturer.ID.String()
	s.audit(c, "manufacturer.created", "manufacturer", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"data": manufacturer})
}

func (s *Server) DeleteManufacturer(c *gin.Context) {
	id := c.Param("id")
	if err := s.catalogSvc.DeleteManufacturer(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "manufacturer.deleted", "manufacturer", &id, nil)

	c.Status(http.StatusNoContent)
}

func (s *Server) ListAssetCategories(c *gin.Context) {
	categories, err := s.catalogSvc.ListAssetCategories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (s *Server) CreateAssetCategory(c *gin.Context) {
	var req CreateAssetCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	category, err := s.catalogSvc.CreateAssetCategory(c.Request.Context(), catalogdomain.CreateAssetCategoryRequest{
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := category.ID.String()
	s.audit(c, "asset_category.created", "asset_category", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"data": category})
}

func (s *Server) DeleteAssetCategory(c *gin.Context) {
	id := c.Param("id")
	if err := s.catalogSvc.DeleteAssetCategory(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "asset_category.deleted", "asset_category", &id, nil)

	c.Status(http.StatusNoContent)
}

func (s *Server) ListAssetSpecs(c *gin.Context) {
	specs, err := s.catalogSvc.ListAssetSpecs(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": specs})
}

func (s *Server) CreateAssetSpec(c *gin.Context) {
	var req CreateAssetSpecRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	spec, err := s.catalogSvc.CreateAssetSpec(c.Request.Context(), catalogdomain.CreateAssetSpecRequest{
		AssetCategoryID: req.AssetCategoryID,
		ManufacturerID:  req.ManufacturerID,
		YearMake:        req.YearMake,
		Model:           req.Model,
		Description:     req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := spec.ID.String()
	s.audit(c, "asset_spec.created", "asset_spec", &targetID, map[string]any{
		"model": spec.Model,
	})

	c.JSON(http.StatusOK, gin.H{"data": spec})
}

func (s *Server) GetAssetSpecByID(c *gin.Context) {
	spec, err := s.catalogSvc.GetAssetSpec(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": spec})
}

func (s *Server) DeleteAssetSpec(c *gin.Context) {
	id := c.Param("id")
	if err := s.catalogSvc.DeleteAssetSpec(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "asset_spec.deleted", "asset_spec", &id, nil)

	c.Status(http.StatusNoContent)
}

func isCatalogValidationError(err error) bool {
	switch {
	case errors.Is(err, catalogdomain.ErrInvalidAgency),
		errors.Is(err, catalogdomain.ErrInvalidDescription),
		errors.Is(err, catalogdomain.ErrInvalidModel),
		errors.Is(err, catalogdomain.ErrInvalidYearMake),
		errors.Is(err, catalogdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
