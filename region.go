package prodex

import "strings"

// Currency is an ISO 4217 currency code used by the marketplace.
type Currency string

// Currencies of the supported marketplace regions.
const (
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyEUR Currency = "EUR"
	CurrencyCAD Currency = "CAD"
)

// Region is a two-letter marketplace region code (e.g. "US", "DE").
type Region string

// Supported marketplace regions.
const (
	RegionUS Region = "US"
	RegionUK Region = "UK"
	RegionDE Region = "DE"
	RegionFR Region = "FR"
	RegionIT Region = "IT"
	RegionES Region = "ES"
	RegionCA Region = "CA"
)

// ParseRegion converts a case-insensitive region code into a Region.
// Returns EINVALID for codes outside the supported set.
func ParseRegion(s string) (Region, error) {
	r := Region(strings.ToUpper(s))
	switch r {
	case RegionUS, RegionUK, RegionDE, RegionFR, RegionIT, RegionES, RegionCA:
		return r, nil
	}
	return "", Errorf(EINVALID, "unsupported region %q", s)
}

// Domain returns the marketplace base URL for the region.
func (r Region) Domain() string {
	tld := "com"
	switch r {
	case RegionUK:
		tld = "co.uk"
	case RegionDE:
		tld = "de"
	case RegionCA:
		tld = "ca"
	case RegionFR:
		tld = "fr"
	case RegionIT:
		tld = "it"
	case RegionES:
		tld = "es"
	}
	return "https://www.amazon." + tld
}

// Currency returns the default currency for the region.
func (r Region) Currency() Currency {
	switch r {
	case RegionUS:
		return CurrencyUSD
	case RegionUK:
		return CurrencyGBP
	case RegionDE, RegionFR, RegionIT, RegionES:
		return CurrencyEUR
	case RegionCA:
		return CurrencyCAD
	default:
		return CurrencyUSD
	}
}

// CountryLabel returns the country name used in locale-specific text
// matching. The US and UK labels keep their query-encoded form because
// that is how the marketplace renders them.
func (r Region) CountryLabel() string {
	switch r {
	case RegionUS:
		return "United+States"
	case RegionUK:
		return "United+Kingdom"
	case RegionES:
		return "Spain"
	case RegionIT:
		return "Italy"
	case RegionFR:
		return "France"
	case RegionDE:
		return "Germany"
	default:
		return ""
	}
}

// ProductURL composes the canonical product page URL for a source
// identifier in this region.
func (r Region) ProductURL(sourceID string) string {
	return r.Domain() + "/gp/product/" + sourceID
}
