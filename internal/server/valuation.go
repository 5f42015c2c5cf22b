package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	valuationdomain "github.com/smallbiznis/rentora/internal/valuation/domain"
)

type RecordAssetValuationRequest struct {
	AssetID  string    `json:"asset_id"`
	Value    float64   `json:"value"`
	AsOnDate time.Time `json:"as_on_date"`
}

func (s *Server) ListAssetValuations(c *gin.Context) {
	valuations, err := s.valuationSvc.List(c.Request.Context(), valuationdomain.ListValuationRequest{
		AssetID: c.Query("asset_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": valuations})
}

func (s *Server) RecordAssetValuation(c *gin.Context) {
	var req RecordAssetValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	valuation, err := s.valuationSvc.Record(c.Request.Context(), valuationdomain.RecordValuationRequest{
		AssetID:  req.AssetID,
		Value:    req.Value,
		AsOnDate: req.AsOnDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := valuation.ID.String()
	s.audit(c, "asset_valuation.recorded", "asset_valuation", &targetID, map[string]any{
		"asset_id": req.AssetID,
	})

	c.JSON(http.StatusOK, gin.H{"data": valuation})
}

func (s *Server) DeleteAssetValuation(c *gin.Context) {
	id := c.Param("id")
	if err := s.valuationSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "asset_valuation.deleted", "asset_valuation", &id, nil)

	c.Status(http.StatusNoContent)
}

func isValuationValidationError(err error) bool {
	switch {
	case errors.Is(err, valuationdomain.ErrInvalidAgency),
		errors.Is(err, valuationdomain.ErrInvalidValue),
		errors.Is(err, valuationdomain.ErrInvalidDate),
		errors.Is(err, valuationdomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
