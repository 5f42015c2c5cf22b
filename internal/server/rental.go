package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	rentaldomain "github.com/smallbiznis/rentora/internal/rental/domain"
)

type CreateRentalRequest struct {
	AssetID    string     `json:"asset_id"`
	CustomerID string     `json:"customer_id"`
	DailyRate  float64    `json:"daily_rate"`
	FromDate   time.Time  `json:"from_date"`
	ToDate     *time.Time `json:"to_date"`
	Notes      string     `json:"notes"`
}

type UpdateRentalRequest struct {
	DailyRate *float64   `json:"daily_rate"`
	FromDate  *time.Time `json:"from_date"`
	ToDate    *time.Time `json:"to_date"`
	ClearTo   bool       `json:"clear_to_date"`
	Notes     *string    `json:"notes"`
}

type ReturnRentalRequest struct {
	ReturnDate *time.Time `json:"return_date"`
}

type ListRentalQuery struct {
	CustomerID string `form:"customer_id"`
	AssetID    string `form:"asset_id"`
}

func (s *Server) ListRentals(c *gin.Context) {
	var query ListRentalQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rentals, err := s.rentalSvc.List(c.Request.Context(), rentaldomain.ListRentalRequest{
		CustomerID: query.CustomerID,
		AssetID:    query.AssetID,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rentals})
}

func (s *Server) CreateRental(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rental, err := s.rentalSvc.Create(c.Request.Context(), rentaldomain.CreateRentalRequest{
		AssetID:    req.AssetID,
		CustomerID: req.CustomerID,
		DailyRate:  req.DailyRate,
		FromDate:   req.FromDate,
		ToDate:     req.ToDate,
		Notes:      req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := rental.ID.String()
	s.audit(c, "rental.created", "rental", &targetID, map[string]any{
		"asset_id":    req.AssetID,
		"customer_id": req.CustomerID,
	})

	c.JSON(http.StatusOK, gin.H{"data": rental})
}

func (s *Server) GetRentalByID(c *gin.Context) {
	rental, err := s.rentalSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": rental})
}

func (s *Server) UpdateRental(c *gin.Context) {
	var req UpdateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	rental, err := s.rentalSvc.Update(c.Request.Context(), rentaldomain.UpdateRentalRequest{
		ID:        c.Param("id"),
		DailyRate: req.DailyRate,
		FromDate:  req.FromDate,
		ToDate:    req.ToDate,
		ClearTo:   req.ClearTo,
		Notes:     req.Notes,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := rental.ID.String()
	s.audit(c, "rental.updated", "rental", &targetID, nil)

	c.JSON(http.StatusOK, gin.H{"data": rental})
}

func (s *Server) DeleteRental(c *gin.Context) {
	id := c.Param("id")
	if err := s.rentalSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "rental.deleted", "rental", &id, nil)

	c.Status(http.StatusNoContent)
}

func (s *Server) ReturnRental(c *gin.Context) {
	var req ReturnRentalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
	}

	rental, err := s.rentalSvc.Return(c.Request.Context(), rentaldomain.ReturnRentalRequest{
		ID:         c.Param("id"),
		ReturnDate: req.ReturnDate,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := rental.ID.String()
	s.audit(c, "rental.returned", "rental", &targetID, map[string]any{
		"to_date": rental.ToDate,
	})

	c.JSON(http.StatusOK, gin.H{"data": rental})
}

func isRentalValidationError(err error) bool {
	switch {
	case errors.Is(err, rentaldomain.ErrInvalidAgency),
		errors.Is(err, rentaldomain.ErrInvalidAsset),
		errors.Is(err, rentaldomain.ErrInvalidCustomer),
		errors.Is(err, rentaldomain.ErrInvalidRate),
		errors.Is(err, rentaldomain.ErrInvalidDate),
		errors.Is(err, rentaldomain.ErrInvalidID),
		errors.Is(err, rentaldomain.ErrReturnBeforeStart):
		return true
	default:
		return false
	}
}
