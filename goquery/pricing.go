package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/scrapeworks/prodex"
)

// Shipping cost fallback used when the structured pricing source is
// absent: flat 5.99 unless the price qualifies for free shipping.
const (
	flatShippingCost  = 5.99
	freeShippingBelow = 25
)

// pricing holds the price, shipping cost, and currency scraped from
// whichever pricing template the page rendered.
type pricing struct {
	Price    float64
	Shipping float64
	Currency prodex.Currency
}

// scrapePricing tries the structured pricing data attributes first and
// falls back to the template-specific displayed price nodes.
func scrapePricing(doc *goquery.Document, region prodex.Region) pricing {
	sel := doc.Find("#cerberus-data-metrics")
	if raw, ok := sel.Attr("data-asin-price"); ok && raw != "" {
		currency := region.Currency()
		if code, ok := sel.Attr("data-asin-currency-code"); ok && code != "" {
			currency = prodex.Currency(code)
		}
		return pricing{
			Price:    prodex.CoerceFloat(raw),
			Shipping: prodex.CoerceFloat(sel.AttrOr("data-asin-shipping", "")),
			Currency: currency,
		}
	}
	return scrapePricingBolt(doc, region)
}

// scrapePricingBolt reads the displayed price text from the bolt
// template. A range ("X - Y") resolves to the upper bound.
func scrapePricingBolt(doc *goquery.Document, region prodex.Region) pricing {
	sel := doc.Find("#priceblock_ourprice")
	if sel.Length() == 0 {
		sel = doc.Find(".offer-price")
	}
	text := sel.Text()
	if parts := strings.Split(text, " - "); len(parts) > 1 {
		text = parts[1]
	}
	price := parseDisplayedPrice(text)
	shipping := flatShippingCost
	if price < freeShippingBelow {
		shipping = 0
	}
	return pricing{Price: price, Shipping: shipping, Currency: region.Currency()}
}

// parseDisplayedPrice strips currency symbols from displayed price text
// and parses the remaining numeric prefix.
func parseDisplayedPrice(text string) float64 {
	for _, sym := range []string{"$", "£", "EUR"} {
		text = strings.ReplaceAll(text, sym, "")
	}
	return prodex.CoerceFloat(text)
}
