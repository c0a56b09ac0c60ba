package prodex

import (
	"fmt"
	"sort"
	"strings"
)

// FormatRecord renders a record as a human-readable summary for CLI
// display. Specifications are listed in sorted key order so the output
// is stable.
func FormatRecord(rec *Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s [%s]\n", rec.Title, rec.SourceID)
	fmt.Fprintf(&b, "%s\n", rec.SourceLink)
	fmt.Fprintf(&b, "price: %.2f %s", rec.Price, rec.Currency)
	if rec.InStock {
		fmt.Fprintf(&b, " (in stock, qty %d)\n", rec.Quantity)
	} else {
		b.WriteString(" (out of stock)\n")
	}
	if rec.Brand != "" {
		fmt.Fprintf(&b, "brand: %s\n", rec.Brand)
	}
	if rec.Categories != "" {
		fmt.Fprintf(&b, "categories: %s\n", rec.Categories)
	}
	fmt.Fprintf(&b, "images: %d, variations: %d\n", len(rec.Images), len(rec.Variations))

	if len(rec.Specifications) > 0 {
		keys := make([]string, 0, len(rec.Specifications))
		for k := range rec.Specifications {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b.WriteString("specifications:\n")
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s: %s\n", k, rec.Specifications[k])
		}
	}

	return b.String()
}
