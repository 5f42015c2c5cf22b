package billing

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	agencydomain "github.com/smallbiznis/rentora/internal/agency/domain"
	customerdomain "github.com/smallbiznis/rentora/internal/customer/domain"
	rentaldomain "github.com/smallbiznis/rentora/internal/rental/domain"
)

func testCustomer() customerdomain.Customer {
	return customerdomain.Customer{
		ID:        1001,
		FirstName: "Jordan",
		LastName:  "Diaz",
		Email:     "jordan@example.com",
	}
}

func testAgency() InvoiceAgency {
	return NewInvoiceAgency(agencydomain.Agency{
		Name:         "Coastal Rentals",
		ContactEmail: "billing@coastal.example",
		AddressLine1: "12 Harbour St",
		City:         "Portsmouth",
		Country:      "GB",
	})
}

func TestAssembleInvoiceTotals(t *testing.T) {
	now := date(2024, 6, 1)
	cfg := InvoiceConfig{TaxRate: 10, Prefix: "INV", CurrencySymbol: "$"}

	// Two rentals at 10/day: May 1-10 (10 days, 100) and May 20-24 (5 days, 50).
	rentals := []rentaldomain.Rental{
		{ID: 1, DailyRate: 10, FromDate: date(2024, 5, 1), ToDate: datePtr(2024, 5, 10)},
		{ID: 2, DailyRate: 10, FromDate: date(2024, 5, 20), ToDate: datePtr(2024, 5, 24)},
	}

	inv := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 5, 2024, now)
	require.Len(t, inv.Items, 2)
	assert.Equal(t, 150.0, inv.Subtotal)
	assert.Equal(t, 15.0, inv.Tax)
	assert.Equal(t, 165.0, inv.Total)
	assert.Equal(t, "INV-1001-2024-05", inv.InvoiceNumber)
	assert.Equal(t, "May 2024", inv.InvoicePeriod)
	assert.Equal(t, "Jordan Diaz", inv.Customer.Name)
	assert.Equal(t, StatusReturned, inv.Items[0].Status)
}

func TestAssembleInvoiceDropsRentalsOutsidePeriod(t *testing.T) {
	now := date(2024, 6, 1)
	cfg := InvoiceConfig{TaxRate: 0, Prefix: "INV"}

	rentals := []rentaldomain.Rental{
		{ID: 1, DailyRate: 10, FromDate: date(2024, 1, 1), ToDate: datePtr(2024, 1, 31)},
		{ID: 2, DailyRate: 10, FromDate: date(2024, 5, 1), ToDate: datePtr(2024, 5, 10)},
	}

	inv := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 5, 2024, now)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, rentals[1].ID, inv.Items[0].RentalID)
}

func TestAssembleInvoiceYearOnlyNumber(t *testing.T) {
	now := date(2024, 6, 1)
	cfg := InvoiceConfig{TaxRate: 0, Prefix: "INV"}

	rentals := []rentaldomain.Rental{
		{ID: 1, DailyRate: 10, FromDate: date(2024, 5, 1), ToDate: datePtr(2024, 5, 10)},
	}

	inv := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 0, 2024, now)
	assert.Equal(t, "INV-1001-2024", inv.InvoiceNumber)
	assert.Equal(t, "2024", inv.InvoicePeriod)
}

func TestAssembleInvoiceMonthOnlyNumber(t *testing.T) {
	now := date(2024, 6, 1)
	cfg := InvoiceConfig{TaxRate: 0, Prefix: "INV"}
	rentals := []rentaldomain.Rental{
		{ID: 1, DailyRate: 10, FromDate: date(2024, 5, 1), ToDate: datePtr(2024, 5, 10)},
	}

	inv := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 5, 0, now)
	assert.Equal(t, "INV-1001-05", inv.InvoiceNumber)
	assert.Equal(t, "May", inv.InvoicePeriod)
}

func TestAssembleInvoiceUnfilteredNumberIsUnique(t *testing.T) {
	now := date(2024, 6, 1)
	cfg := InvoiceConfig{TaxRate: 0, Prefix: "INV"}
	rentals := []rentaldomain.Rental{
		{ID: 1, DailyRate: 10, FromDate: date(2024, 5, 1), ToDate: datePtr(2024, 5, 10)},
	}

	first := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 0, 0, now)
	second := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 0, 0, now)

	assert.True(t, strings.HasPrefix(first.InvoiceNumber, "INV-1001-"))
	assert.Empty(t, first.InvoicePeriod)
	assert.NotEqual(t, first.InvoiceNumber, second.InvoiceNumber)
}

func TestAssembleInvoiceOngoingRentalBilledToNow(t *testing.T) {
	now := date(2024, 5, 15)
	cfg := InvoiceConfig{TaxRate: 0, Prefix: "INV"}

	rentals := []rentaldomain.Rental{
		{ID: 1, DailyRate: 10, FromDate: date(2024, 5, 1)},
	}

	inv := AssembleInvoice(testCustomer(), testAgency(), cfg, rentals, 5, 2024, now)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 15, inv.Items[0].Days)
	assert.Equal(t, StatusActive, inv.Items[0].Status)
}

func TestAssembleRentalInvoice(t *testing.T) {
	now := date(2024, 6, 1)
	cfg := InvoiceConfig{TaxRate: 10, Prefix: "INV", CurrencySymbol: "€"}

	rental := rentaldomain.Rental{
		ID:        42,
		DailyRate: 20,
		FromDate:  date(2024, 5, 1),
		ToDate:    datePtr(2024, 5, 10),
	}

	inv := AssembleRentalInvoice(testCustomer(), testAgency(), cfg, rental, now)
	require.Len(t, inv.Items, 1)
	assert.Equal(t, 10, inv.Items[0].Days)
	assert.Equal(t, 200.0, inv.Subtotal)
	assert.Equal(t, 220.0, inv.Total)
	assert.True(t, strings.HasPrefix(inv.InvoiceNumber, fmt.Sprintf("INV-R%s-", rental.ID.String())))
	assert.Equal(t, "€", inv.CurrencySymbol)
}

func TestSafeSymbolFallbacks(t *testing.T) {
	assert.Equal(t, "Rs ", SafeSymbol("₹"))
	assert.Equal(t, "PHP ", SafeSymbol("₱"))
	assert.Equal(t, "KRW ", SafeSymbol("₩"))
	assert.Equal(t, "Rs ", SafeSymbol("₨"))
	assert.Equal(t, "$", SafeSymbol("$"))
	assert.Equal(t, "$", SafeSymbol(""))
	assert.Equal(t, "kr", SafeSymbol("kr"))
}

func TestNewInvoiceAgencyJoinsAddress(t *testing.T) {
	agency := testAgency()
	assert.Equal(t, "12 Harbour St, Portsmouth, GB", agency.Address)
}
