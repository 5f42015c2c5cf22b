// Package currency maps countries to their currencies with a static
// ISO 3166-1 alpha-2 to ISO 4217 table, so no external API is needed.
package currency

import (
	"sort"
	"strings"
)

// Info describes a currency.
type Info struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Country pairs a country code and display name with its currency.
type Country struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Currency Info   `json:"currency"`
}

// USDefault is the fallback currency when a country cannot be resolved.
var USDefault = Info{Code: "USD", Symbol: "$", Name: "US Dollar"}

var countryCurrencies = map[string]Info{
	// North America
	"US": {Code: "USD", Symbol: "$", Name: "US Dollar"},
	"CA": {Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	"MX": {Code: "MXN", Symbol: "$", Name: "Mexican Peso"},

	// Europe
	"GB": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"UK": {Code: "GBP", Symbol: "£", Name: "British Pound"},
	"DE": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"FR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"IT": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"ES": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"NL": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"BE": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"AT": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"IE": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"PT": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"GR": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"FI": {Code: "EUR", Symbol: "€", Name: "Euro"},
	"CH": {Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	"SE": {Code: "SEK", Symbol: "kr", Name: "Swedish Krona"},
	"NO": {Code: "NOK", Symbol: "kr", Name: "Norwegian Krone"},
	"DK": {Code: "DKK", Symbol: "kr", Name: "Danish Krone"},
	"PL": {Code: "PLN", Symbol: "zł", Name: "Polish Zloty"},
	"CZ": {Code: "CZK", Symbol: "Kč", Name: "Czech Koruna"},
	"HU": {Code: "HUF", Symbol: "Ft", Name: "Hungarian Forint"},
	"RO": {Code: "RON", Symbol: "lei", Name: "Romanian Leu"},
	"RU": {Code: "RUB", Symbol: "₽", Name: "Russian Ruble"},
	"UA": {Code: "UAH", Symbol: "₴", Name: "Ukrainian Hryvnia"},
	"TR": {Code: "TRY", Symbol: "₺", Name: "Turkish Lira"},

	// Asia
	"IN": {Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	"CN": {Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	"JP": {Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	"KR": {Code: "KRW", Symbol: "₩", Name: "South Korean Won"},
	"SG": {Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	"HK": {Code: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar"},
	"TW": {Code: "TWD", Symbol: "NT$", Name: "New Taiwan Dollar"},
	"TH": {Code: "THB", Symbol: "฿", Name: "Thai Baht"},
	"MY": {Code: "MYR", Symbol: "RM", Name: "Malaysian Ringgit"},
	"ID": {Code: "IDR", Symbol: "Rp", Name: "Indonesian Rupiah"},
	"PH": {Code: "PHP", Symbol: "₱", Name: "Philippine Peso"},
	"VN": {Code: "VND", Symbol: "₫", Name: "Vietnamese Dong"},
	"PK": {Code: "PKR", Symbol: "₨", Name: "Pakistani Rupee"},
	"BD": {Code: "BDT", Symbol: "৳", Name: "Bangladeshi Taka"},
	"LK": {Code: "LKR", Symbol: "Rs", Name: "Sri Lankan Rupee"},
	"NP": {Code: "NPR", Symbol: "₨", Name: "Nepalese Rupee"},

	// Middle East
	"AE": {Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	"SA": {Code: "SAR", Symbol: "﷼", Name: "Saudi Riyal"},
	"QA": {Code: "QAR", Symbol: "﷼", Name: "Qatari Riyal"},
	"KW": {Code: "KWD", Symbol: "د.ك", Name: "Kuwaiti Dinar"},
	"BH": {Code: "BHD", Symbol: "BD", Name: "Bahraini Dinar"},
	"OM": {Code: "OMR", Symbol: "﷼", Name: "Omani Rial"},
	"IL": {Code: "ILS", Symbol: "₪", Name: "Israeli Shekel"},
	"JO": {Code: "JOD", Symbol: "JD", Name: "Jordanian Dinar"},
	"EG": {Code: "EGP", Symbol: "£", Name: "Egyptian Pound"},

	// Oceania
	"AU": {Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	"NZ": {Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},

	// South America
	"BR": {Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	"AR": {Code: "ARS", Symbol: "$", Name: "Argentine Peso"},
	"CL": {Code: "CLP", Symbol: "$", Name: "Chilean Peso"},
	"CO": {Code: "COP", Symbol: "$", Name: "Colombian Peso"},
	"PE": {Code: "PEN", Symbol: "S/", Name: "Peruvian Sol"},
	"VE": {Code: "VES", Symbol: "Bs", Name: "Venezuelan Bolivar"},

	// Africa
	"ZA": {Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	"NG": {Code: "NGN", Symbol: "₦", Name: "Nigerian Naira"},
	"KE": {Code: "KES", Symbol: "KSh", Name: "Kenyan Shilling"},
	"GH": {Code: "GHS", Symbol: "₵", Name: "Ghanaian Cedi"},
	"MA": {Code: "MAD", Symbol: "د.م.", Name: "Moroccan Dirham"},
	"TN": {Code: "TND", Symbol: "د.ت", Name: "Tunisian Dinar"},
}

var countryNameToCode = map[string]string{
	"united states":            "US",
	"usa":                      "US",
	"united states of america": "US",
	"canada":                   "CA",
	"mexico":                   "MX",
	"united kingdom":           "GB",
	"uk":                       "GB",
	"england":                  "GB",
	"germany":                  "DE",
	"france":                   "FR",
	"italy":                    "IT",
	"spain":                    "ES",
	"netherlands":              "NL",
	"belgium":                  "BE",
	"austria":                  "AT",
	"ireland":                  "IE",
	"portugal":                 "PT",
	"greece":                   "GR",
	"finland":                  "FI",
	"switzerland":              "CH",
	"sweden":                   "SE",
	"norway":                   "NO",
	"denmark":                  "DK",
	"poland":                   "PL",
	"czech republic":           "CZ",
	"hungary":                  "HU",
	"romania":                  "RO",
	"russia":                   "RU",
	"ukraine":                  "UA",
	"turkey":                   "TR",
	"india":                    "IN",
	"in":                       "IN",
	"china":                    "CN",
	"japan":                    "JP",
	"south korea":              "KR",
	"korea":                    "KR",
	"singapore":                "SG",
	"hong kong":                "HK",
	"taiwan":                   "TW",
	"thailand":                 "TH",
	"malaysia":                 "MY",
	"indonesia":                "ID",
	"philippines":              "PH",
	"vietnam":                  "VN",
	"pakistan":                 "PK",
	"bangladesh":               "BD",
	"sri lanka":                "LK",
	"nepal":                    "NP",
	"uae":                      "AE",
	"united arab emirates":     "AE",
	"saudi arabia":             "SA",
	"qatar":                    "QA",
	"kuwait":                   "KW",
	"bahrain":                  "BH",
	"oman":                     "OM",
	"israel":                   "IL",
	"jordan":                   "JO",
	"egypt":                    "EG",
	"australia":                "AU",
	"new zealand":              "NZ",
	"brazil":                   "BR",
	"argentina":                "AR",
	"chile":                    "CL",
	"colombia":                 "CO",
	"peru":                     "PE",
	"venezuela":                "VE",
	"south africa":             "ZA",
	"nigeria":                  "NG",
	"kenya":                    "KE",
	"ghana":                    "GH",
	"morocco":                  "MA",
	"tunisia":                  "TN",
}

// ForCountry resolves a country code or country name to its currency.
// Unknown or empty input falls back to USD; it never fails.
func ForCountry(country string) Info {
	info, _ := Lookup(country)
	return info
}

// Lookup resolves a country code or country name to its currency. The
// second return reports whether the country was recognized; on a miss the
// USD default is returned.
func Lookup(country string) (Info, bool) {
	trimmed := strings.TrimSpace(country)
	if trimmed == "" {
		return USDefault, false
	}

	if info, ok := countryCurrencies[strings.ToUpper(trimmed)]; ok {
		return info, true
	}

	if code, ok := countryNameToCode[strings.ToLower(trimmed)]; ok {
		if info, ok := countryCurrencies[code]; ok {
			return info, true
		}
	}

	return USDefault, false
}

// Countries returns every supported country with its currency, sorted by
// display name. Display names come from the longest known alias per code.
func Countries() []Country {
	codeToName := make(map[string]string, len(countryCurrencies))
	for name, code := range countryNameToCode {
		if existing, ok := codeToName[code]; !ok || len(name) > len(existing) {
			codeToName[code] = name
		}
	}

	countries := make([]Country, 0, len(countryCurrencies))
	for code, info := range countryCurrencies {
		name := codeToName[code]
		if name == "" {
			name = code
		} else {
			name = displayName(name)
		}
		countries = append(countries, Country{
			Code:     code,
			Name:     name,
			Currency: info,
		})
	}

	sort.Slice(countries, func(i, j int) bool {
		return countries[i].Name < countries[j].Name
	})
	return countries
}

// displayName title-cases a lowercase alias, keeping connective words
// lowercase: "united states of america" -> "United States of America".
func displayName(name string) string {
	words := strings.Fields(name)
	for i, word := range words {
		if i > 0 && (word == "of" || word == "and" || word == "the") {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
