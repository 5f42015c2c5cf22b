package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/oklog/ulid/v2"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	rentaldomain "github.com/smallbiznis/rentora/internal/rental/domain"
)

const (
	StatusActive   = "active"
	StatusReturned = "returned"

	dueInDays = 30
)

// currencySymbolFallbacks maps currency glyphs the PDF base font cannot
// render to ASCII substitutes.
var currencySymbolFallbacks = map[string]string{
	"₹": "Rs ",  // Indian Rupee
	"₱": "PHP ", // Philippine Peso
	"₩": "KRW ", // Korean Won
	"₴": "UAH ", // Ukrainian Hryvnia
	"₺": "TRY ", // Turkish Lira
	"₫": "VND ", // Vietnamese Dong
	"৳": "BDT ", // Bangladeshi Taka
	"₨": "Rs ",  // Various rupee currencies
}

// SafeSymbol substitutes currency symbols outside the base font's
// coverage with an ASCII fallback. Unknown symbols pass through as-is.
func SafeSymbol(symbol string) string {
	if symbol == "" {
		return "$"
	}
	if fallback, ok := currencySymbolFallbacks[symbol]; ok {
		return fallback
	}
	return symbol
}

// InvoiceAgency is the issuing agency snapshot printed on the invoice.
type InvoiceAgency struct {
	Name    string
	Address string
	Email   string
	Phone   string
}

// NewInvoiceAgency flattens an agency record into the invoice header
// snapshot, joining the populated address parts.
func NewInvoiceAgency(agency agencydomain.Agency) InvoiceAgency {
	parts := make([]string, 0, 6)
	for _, part := range []string{
		agency.AddressLine1,
		agency.AddressLine2,
		agency.City,
		agency.State,
		agency.PostalCode,
		agency.Country,
	} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return InvoiceAgency{
		Name:    agency.Name,
		Address: strings.Join(parts, ", "),
		Email:   agency.ContactEmail,
		Phone:   agency.ContactPhone,
	}
}

// InvoiceCustomer is the "bill to" snapshot.
type InvoiceCustomer struct {
	Name  string
	Email string
	Phone string
}

// InvoiceConfig carries the agency settings an invoice depends on.
type InvoiceConfig struct {
	TaxRate        float64
	Prefix         string
	CurrencySymbol string
}

// LineItem is one rental prorated into the billing window.
type LineItem struct {
	RentalID         snowflake.ID
	AssetDescription string
	AssetModel       string
	Manufacturer     string
	FromDate         time.Time
	ToDate           time.Time
	DailyRate        float64
	Days             int
	Amount           float64
	Status           string
}

// InvoiceData is a fully assembled invoice. It is ephemeral: built per
// request, rendered, and never stored.
type InvoiceData struct {
	InvoiceNumber  string
	InvoiceDate    time.Time
	DueDate        time.Time
	InvoicePeriod  string
	Customer       InvoiceCustomer
	Agency         InvoiceAgency
	Items          []LineItem
	Subtotal       float64
	Tax            float64
	TaxRate        float64
	Total          float64
	CurrencySymbol string
}

// AssembleInvoice builds an invoice for a customer's rentals, optionally
// filtered to a billing window (month and/or year, zero = absent).
// Rentals wholly outside the window are dropped; the rest are prorated
// and billed at days x daily rate. Invoice numbers for filtered periods
// are period-scoped and may repeat if regenerated for the same window.
func AssembleInvoice(customer customerdomain.Customer, agency InvoiceAgency, cfg InvoiceConfig, rentals []rentaldomain.Rental, month, year int, now time.Time) InvoiceData {
	items := make([]LineItem, 0, len(rentals))
	var subtotal float64
	for _, rental := range rentals {
		if !OverlapsPeriod(rental.FromDate, rental.ToDate, month, year, now) {
			continue
		}
		period := DaysInPeriod(rental.FromDate, rental.ToDate, month, year, now)
		item := newLineItem(rental, period)
		subtotal += item.Amount
		items = append(items, item)
	}

	tax := subtotal * cfg.TaxRate / 100
	return InvoiceData{
		InvoiceNumber:  invoiceNumber(cfg.Prefix, customer.ID.String(), month, year),
		InvoiceDate:    now,
		DueDate:        now.AddDate(0, 0, dueInDays),
		InvoicePeriod:  periodLabel(month, year),
		Customer:       newInvoiceCustomer(customer),
		Agency:         agency,
		Items:          items,
		Subtotal:       subtotal,
		Tax:            tax,
		TaxRate:        cfg.TaxRate,
		Total:          subtotal + tax,
		CurrencySymbol: SafeSymbol(cfg.CurrencySymbol),
	}
}

// AssembleRentalInvoice builds an invoice covering a single rental's
// full span, with no period filter.
func AssembleRentalInvoice(customer customerdomain.Customer, agency InvoiceAgency, cfg InvoiceConfig, rental rentaldomain.Rental, now time.Time) InvoiceData {
	period := DaysInPeriod(rental.FromDate, rental.ToDate, 0, 0, now)
	item := newLineItem(rental, period)

	tax := item.Amount * cfg.TaxRate / 100
	return InvoiceData{
		InvoiceNumber:  fmt.Sprintf("%s-R%s-%s", cfg.Prefix, rental.ID.String(), ulid.Make().String()),
		InvoiceDate:    now,
		DueDate:        now.AddDate(0, 0, dueInDays),
		Customer:       newInvoiceCustomer(customer),
		Agency:         agency,
		Items:          []LineItem{item},
		Subtotal:       item.Amount,
		Tax:            tax,
		TaxRate:        cfg.TaxRate,
		Total:          item.Amount + tax,
		CurrencySymbol: SafeSymbol(cfg.CurrencySymbol),
	}
}

func newLineItem(rental rentaldomain.Rental, period Period) LineItem {
	item := LineItem{
		RentalID:         rental.ID,
		AssetDescription: "Unknown Asset",
		FromDate:         period.PeriodStart,
		ToDate:           period.PeriodEnd,
		DailyRate:        rental.DailyRate,
		Days:             period.Days,
		Amount:           float64(period.Days) * rental.DailyRate,
		Status:           StatusActive,
	}
	if rental.ToDate != nil {
		item.Status = StatusReturned
	}
	if rental.Asset != nil && rental.Asset.Spec != nil {
		spec := rental.Asset.Spec
		item.AssetDescription = spec.Description
		item.AssetModel = spec.Model
		if spec.Manufacturer != nil {
			item.Manufacturer = spec.Manufacturer.Description
		}
	}
	return item
}

func newInvoiceCustomer(customer customerdomain.Customer) InvoiceCustomer {
	return InvoiceCustomer{
		Name:  customer.DisplayName(),
		Email: customer.Email,
		Phone: customer.Phone,
	}
}

// invoiceNumber is {prefix}-{customerID}-{YYYY[-MM]} when a period
// filter is active, otherwise the suffix is a fresh ULID.
func invoiceNumber(prefix, customerID string, month, year int) string {
	if month == 0 && year == 0 {
		return fmt.Sprintf("%s-%s-%s", prefix, customerID, ulid.Make().String())
	}
	suffix := ""
	if year != 0 {
		suffix = fmt.Sprintf("%d", year)
	}
	if month != 0 {
		if suffix != "" {
			suffix += "-"
		}
		suffix += fmt.Sprintf("%02d", month)
	}
	return fmt.Sprintf("%s-%s-%s", prefix, customerID, suffix)
}

func periodLabel(month, year int) string {
	switch {
	case month != 0 && year != 0:
		return fmt.Sprintf("%s %d", time.Month(month).String(), year)
	case year != 0:
		return fmt.Sprintf("%d", year)
	case month != 0:
		return time.Month(month).String()
	default:
		return ""
	}
}
