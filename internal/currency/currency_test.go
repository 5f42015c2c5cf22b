package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForCountryByCode(t *testing.T) {
	info := ForCountry("IN")
	assert.Equal(t, "INR", info.Code)
	assert.Equal(t, "₹", info.Symbol)
	assert.Equal(t, "Indian Rupee", info.Name)
}

func TestForCountryCodeCaseInsensitive(t *testing.T) {
	assert.Equal(t, "GBP", ForCountry("gb").Code)
	assert.Equal(t, "GBP", ForCountry("Gb").Code)
}

func TestForCountryByName(t *testing.T) {
	assert.Equal(t, "USD", ForCountry("United States").Code)
	assert.Equal(t, "EUR", ForCountry("germany").Code)
	assert.Equal(t, "AED", ForCountry("United Arab Emirates").Code)
}

func TestForCountryAlternativeCodes(t *testing.T) {
	// UK is not an ISO code but appears in real data.
	assert.Equal(t, "GBP", ForCountry("UK").Code)
}

func TestForCountryTrimsWhitespace(t *testing.T) {
	assert.Equal(t, "JPY", ForCountry("  JP  ").Code)
}

func TestForCountryUnknownDefaultsToUSD(t *testing.T) {
	for _, input := range []string{"", "   ", "ZZ", "atlantis"} {
		info := ForCountry(input)
		assert.Equal(t, USDefault, info, "input %q", input)
	}
}

func TestCountriesSortedAndComplete(t *testing.T) {
	countries := Countries()
	require.NotEmpty(t, countries)
	assert.Len(t, countries, len(countryCurrencies))

	for i := 1; i < len(countries); i++ {
		assert.LessOrEqual(t, countries[i-1].Name, countries[i].Name)
	}

	byCode := make(map[string]Country, len(countries))
	for _, c := range countries {
		byCode[c.Code] = c
	}
	require.Contains(t, byCode, "US")
	assert.Equal(t, "USD", byCode["US"].Currency.Code)
}

func TestCountriesDisplayNames(t *testing.T) {
	byCode := make(map[string]Country)
	for _, c := range Countries() {
		byCode[c.Code] = c
	}

	assert.Equal(t, "United States of America", byCode["US"].Name)
	assert.Equal(t, "United Arab Emirates", byCode["AE"].Name)
	assert.Equal(t, "Czech Republic", byCode["CZ"].Name)
	assert.Equal(t, "New Zealand", byCode["NZ"].Name)
	assert.Equal(t, "Japan", byCode["JP"].Name)
}
