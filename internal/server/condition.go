package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	conditiondomain "github.com/smallbiznis/rentora/internal/condition/domain"
)

type CreateDefinedConditionRequest struct {
	Description string `json:"description"`
}

type RecordAssetConditionRequest struct {
	AssetID            string    `json:"asset_id"`
	DefinedConditionID string    `json:"defined_condition_id"`
	AsOnDate           time.Time `json:"as_on_date"`
}

func (s *Server) ListDefinedConditions(c *gin.Context) {
	conditions, err := s.conditionSvc.ListDefinedConditions(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": conditions})
}

func (s *Server) CreateDefinedCondition(c *gin.Context) {
	var req CreateDefinedConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	condition, err := s.conditionSvc.CreateDefinedCondition(c.Request.Context(), conditiondomain.CreateDefinedConditionRequest{
		Description: req.Description,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := condition.ID.String()
	s.audit(c, "defined_condition.created", "defined_condition", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"data": condition})
}

func (s *Server) DeleteDefinedCondition(c *gin.Context) {
	id := c.Param("id")
	if err := s.conditionSvc.DeleteDefinedCondition(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "defined_condition.deleted", "defined_condition", &id, nil)

	c.Status(http.StatusNoContent)
}

func (s *Server) ListAssetConditions(c *gin.Context) {
	conditions, err := s.conditionSvc.ListConditions(c.Request.Context(), conditiondomain.ListConditionRequest{
		AssetID: c.Query("asset_id"),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": conditions})
}

func (s *Server) RecordAssetCondition(c *gin.Context) {
	var req RecordAssetConditionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	condition, err := s.conditionSvc.RecordCondition(c.Request.Context(), conditiondomain.RecordConditionRequest{
		AssetID:            req.AssetID,
		DefinedConditionID: req.DefinedConditionID,
		AsOnDate:           req.AsOnDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := condition.ID.String()
	s.audit(c, "asset_condition.recorded", "asset_condition", &targetID, map[string]any{
		"asset_id": req.AssetID,
	})

	c.JSON(http.StatusOK, gin.H{"data": condition})
}

func (s *Server) DeleteAssetCondition(c *gin.Context) {
	id := c.Param("id")
	if err := s.conditionSvc.DeleteCondition(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "asset_condition.deleted", "asset_condition", &id, nil)

	c.Status(http.StatusNoContent)
}

func isConditionValidationError(err error) bool {
	switch {
	case errors.Is(err, conditiondomain.ErrInvalidAgency),
		errors.Is(err, conditiondomain.ErrInvalidDescription),
		errors.Is(err, conditiondomain.ErrInvalidDate),
		errors.Is(err, conditiondomain.ErrInvalidID):
		return true
	default:
		return false
	}
}
