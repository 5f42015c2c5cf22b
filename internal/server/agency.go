package server

import (
	"errors"
	"net/http"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	"github.com/smallbiznis/rentora/internal/agencyctx"
)

type CreateAgencyRequest struct {
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	Country      string `json:"country"`
}

type UpdateAgencySettingsRequest struct {
	Country        *string  `json:"country"`
	DefaultTaxRate *float64 `json:"default_tax_rate"`
	InvoicePrefix  *string  `json:"invoice_prefix"`
}

func (s *Server) ListUserAgencies(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	agencies, err := s.agencySvc.ListAgenciesByUser(c.Request.Context(), userID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": agencies})
}

func (s *Server) CreateAgency(c *gin.Context) {
	userID, ok := s.userIDFromSession(c)
	if !ok {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	var req CreateAgencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.agencySvc.Create(c.Request.Context(), userID, agencydomain.CreateAgencyRequest{
		Name:         req.Name,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Country:      req.Country,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if s.auditSvc != nil {
		actorID := userID.String()
		_ = s.auditSvc.Record(c.Request.Context(), nil, &actorID, "agency.created", "agency", &resp.ID, map[string]any{
			"name": resp.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

// UseAgency pins the given agency as the session's active agency. The
// caller must already be a member.
func (s *Server) UseAgency(c *gin.Context) {
	session := sessionFromContext(c)
	if session == nil {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	agencyID, err := snowflake.ParseString(c.Param("agencyId"))
	if err != nil || agencyID == 0 {
		AbortWithError(c, agencydomain.ErrInvalidAgency)
		return
	}

	member, err := s.agencyMember(c, agencyID, session.UserID)
	if err != nil || member == nil {
		AbortWithError(c, agencydomain.ErrForbidden)
		return
	}

	memberships, err := s.agencySvc.ListAgenciesByUser(c.Request.Context(), session.UserID)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	agencyIDs := make([]int64, 0, len(memberships))
	for _, item := range memberships {
		if parsed, parseErr := snowflake.ParseString(item.ID); parseErr == nil {
			agencyIDs = append(agencyIDs, int64(parsed))
		}
	}

	active := int64(agencyID)
	if err := s.authsvc.UpdateSessionAgencyContext(c.Request.Context(), session.ID, &active, agencyIDs); err != nil {
		AbortWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) GetAgencyByID(c *gin.Context) {
	resp, err := s.agencySvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) GetAgencySettings(c *gin.Context) {
	agencyID, ok := agencyctx.AgencyIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, agencydomain.ErrInvalidAgency)
		return
	}

	resp, err := s.agencySvc.GetSettings(c.Request.Context(), agencyID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) UpdateAgencySettings(c *gin.Context) {
	agencyID, ok := agencyctx.AgencyIDFromContext(c.Request.Context())
	if !ok {
		AbortWithError(c, agencydomain.ErrInvalidAgency)
		return
	}

	var req UpdateAgencySettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.agencySvc.UpdateSettings(c.Request.Context(), agencyID, agencydomain.UpdateSettingsRequest{
		Country:        req.Country,
		DefaultTaxRate: req.DefaultTaxRate,
		InvoicePrefix:  req.InvoicePrefix,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.audit(c, "agency.settings_updated", "agency", nil, map[string]any{
		"agency_id": agencyID.String(),
	})

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func isAgencyValidationError(err error) bool {
	switch {
	case errors.Is(err, agencydomain.ErrInvalidName),
		errors.Is(err, agencydomain.ErrInvalidUser),
		errors.Is(err, agencydomain.ErrInvalidAgency),
		errors.Is(err, agencydomain.ErrInvalidTaxRate),
		errors.Is(err, agencydomain.ErrInvalidPrefix):
		return true
	default:
		return false
	}
}
