package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	"github.com/smallbiznis/rentora/internal/agencyctx"
	"github.com/smallbiznis/rentora/internal/billing"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
)

// DownloadCustomerInvoice renders a PDF covering the customer's rentals,
// optionally restricted to a month and/or year via query parameters.
func (s *Server) DownloadCustomerInvoice(c *gin.Context) {
	month, err := parseOptionalInt(c.Query("month"))
	if err != nil || month < 0 || month > 12 {
		AbortWithError(c, newValidationError("month", "invalid_month", "month must be between 1 and 12"))
		return
	}
	year, err := parseOptionalInt(c.Query("year"))
	if err != nil || year < 0 {
		AbortWithError(c, newValidationError("year", "invalid_year", "invalid year"))
		return
	}

	customerID := c.Param("id")
	customer, err := s.customerSvc.GetByID(c.Request.Context(), customerdomain.GetCustomerRequest{ID: customerID})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	rentals, err := s.rentalSvc.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	agency, cfg, err := s.invoiceContext(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := billing.AssembleInvoice(customer, agency, cfg, rentals, month, year, s.clock.Now())

	if err := s.writePDF(c, data); err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := customer.ID.String()
	s.audit(c, "invoice.generated", "customer", &targetID, map[string]any{
		"invoice_number": data.InvoiceNumber,
		"month":          month,
		"year":           year,
	})
}

// DownloadRentalInvoice renders a PDF for a single rental.
func (s *Server) DownloadRentalInvoice(c *gin.Context) {
	rental, err := s.rentalSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	customer, err := s.customerSvc.GetByID(c.Request.Context(), customerdomain.GetCustomerRequest{ID: rental.CustomerID.String()})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	agency, cfg, err := s.invoiceContext(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	data := billing.AssembleRentalInvoice(customer, agency, cfg, rental, s.clock.Now())

	if err := s.writePDF(c, data); err != nil {
		AbortWithError(c, err)
		return
	}

	targetID := rental.ID.String()
	s.audit(c, "invoice.generated", "rental", &targetID, map[string]any{
		"invoice_number": data.InvoiceNumber,
	})
}

// invoiceContext loads the active agency's profile and billing defaults.
func (s *Server) invoiceContext(c *gin.Context) (billing.InvoiceAgency, billing.InvoiceConfig, error) {
	agencyID, ok := agencyctx.AgencyIDFromContext(c.Request.Context())
	if !ok {
		return billing.InvoiceAgency{}, billing.InvoiceConfig{}, agencydomain.ErrInvalidAgency
	}

	settings, err := s.agencySvc.GetSettings(c.Request.Context(), agencyID)
	if err != nil {
		return billing.InvoiceAgency{}, billing.InvoiceConfig{}, err
	}

	var agency agencydomain.Agency
	if err := s.db.WithContext(c.Request.Context()).First(&agency, "id = ?", agencyID).Error; err != nil {
		return billing.InvoiceAgency{}, billing.InvoiceConfig{}, err
	}

	cfg := billing.InvoiceConfig{
		TaxRate:        settings.DefaultTaxRate,
		Prefix:         settings.InvoicePrefix,
		CurrencySymbol: settings.CurrencySymbol,
	}

	return billing.NewInvoiceAgency(agency), cfg, nil
}

func (s *Server) writePDF(c *gin.Context, data billing.InvoiceData) error {
	reader, err := s.renderer.RenderInvoice(c.Request.Context(), data)
	if err != nil {
		return err
	}

	document, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", data.InvoiceNumber+".pdf"))
	c.Data(http.StatusOK, "application/pdf", document)
	return nil
}
