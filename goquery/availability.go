package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// futureDateNeedles mark availability text that promises stock at a
// future date; such items are out of stock regardless of other wording.
var futureDateNeedles = []string{
	" on ",
	"Verfügbar ab",
	"Disponible le",
	"Disponibile dal",
}

// inStockNeedles are the locale-specific "in stock" phrasings.
var inStockNeedles = []string{
	"In Stock",
	"In stock",
	"order soon",
	"En stock",
	"Auf Lager",
	"Disponibilità immediata",
}

// scrapeAvailability reads the availability text node. When the node is
// absent entirely, the presence of an add-to-cart control implies the
// item is purchasable.
func scrapeAvailability(doc *goquery.Document) bool {
	sel := doc.Find("#availability")
	if sel.Length() == 0 {
		return doc.Find("#add-to-cart-button").Length() > 0
	}
	text := strings.TrimSpace(sel.Text())
	for _, needle := range futureDateNeedles {
		if strings.Contains(text, needle) {
			return false
		}
	}
	for _, needle := range inStockNeedles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

// isPrime checks the merchant-info text for the marketplace brand.
// Add-on items are never prime-eligible.
func isPrime(doc *goquery.Document) bool {
	sel := doc.Find("#merchant-info")
	if sel.Length() == 0 {
		return false
	}
	soldBy := strings.TrimSpace(sel.Text())
	return strings.Contains(soldBy, "Amazon") && !isAddon(doc)
}

// isAddon reports whether the listing carries the add-on banner.
func isAddon(doc *goquery.Document) bool {
	return doc.Find("#addon-stripe").Length() > 0
}

// isPreOrder reports whether the add-to-cart control is labeled as a
// pre-order.
func isPreOrder(doc *goquery.Document) bool {
	value := doc.Find("#add-to-cart-button").AttrOr("value", "")
	return strings.Contains(value, "Pre-order")
}
