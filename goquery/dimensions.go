package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/scrapeworks/prodex"
)

// Locale variants of the detail-bullet keys that carry physical
// measurements.
var (
	itemDimensionKeys = []string{
		"Product Dimensions",
		"Größe und/oder Gewicht",
		"Dimensions du produit",
	}
	packageWeightKeys = []string{
		"Shipping Weight",
		"Produktgewicht inkl. Verpackung",
		"Poids de l'article",
	}
)

// scrapeDimensions scans the detail-bullet list for the dimension and
// packaging-weight keys and parses their composite value strings.
func scrapeDimensions(doc *goquery.Document, p *prodex.Product) {
	doc.Find("#detail-bullets_feature_div li").Each(func(_ int, li *goquery.Selection) {
		key, value, found := strings.Cut(strings.TrimSpace(li.Text()), ":")
		if !found {
			return
		}
		key = strings.TrimSpace(key)
		switch {
		case lo.Contains(itemDimensionKeys, key):
			p.SetDimensions(parseDimensionString(value))
		case lo.Contains(packageWeightKeys, key):
			p.SetPackaging(parseWeightString(value))
		}
	})
}

// parseDimensionString parses a composite dimension string of the form
// "14 x 10 x 2 cm; 250 g": an x-separated width/height/length triplet,
// then an optional semicolon-separated weight. Comma decimal separators
// are normalized to periods.
func parseDimensionString(s string) prodex.Dimensions {
	var d prodex.Dimensions
	triplet, weight, _ := strings.Cut(s, ";")
	parts := strings.Split(triplet, "x")
	if len(parts) >= 3 {
		d.Width = localeFloat(parts[0])
		d.Height = localeFloat(parts[1])
		d.Length = localeFloat(firstField(parts[2]))
	}
	if w := firstField(weight); w != "" {
		d.Weight = localeFloat(w)
	}
	return d
}

// parseWeightString parses a "<n> <unit>" weight string into a
// weight-only dimensions value.
func parseWeightString(s string) prodex.Dimensions {
	return prodex.Dimensions{Weight: localeFloat(firstField(s))}
}

// localeFloat normalizes comma decimal separators before parsing.
func localeFloat(s string) float64 {
	return prodex.CoerceFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."))
}

func firstField(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
