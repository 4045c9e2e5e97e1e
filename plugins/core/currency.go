package core

import (
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// GetCurrencyForCountry returns the currency code for a given country code
// (ISO 3166-1 alpha-2). Defaults to "USD" for unknown or empty input, which
// matches the flight-search provider's default.
func GetCurrencyForCountry(countryCode string) string {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return "USD"
	}

	region, err := language.ParseRegion(code)
	if err != nil {
		return "USD"
	}

	cur, ok := currency.FromRegion(region)
	if !ok {
		return "USD"
	}

	return cur.String()
}
