package goquery

import (
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/scrapeworks/prodex"
	"github.com/scrapeworks/prodex/jsliteral"
)

// videoLibraryMarker identifies video/media listings, which render
// variations as swatch elements instead of the embedded script literal.
const videoLibraryMarker = `<span class="nav-a-content">Your Video Library</span>`

// videoVariationExclude drops the streaming pseudo-variant.
var videoVariationExclude = []string{"Prime Video"}

// Assignment pattern wrapping the embedded variation payload.
const (
	variationAssignment = "var dataToReturn = "
	variationTerminator = ";"
)

// scrapeVariations selects the variation strategy by page type. A
// malformed or absent embedded literal degrades to no variations.
func scrapeVariations(doc *goquery.Document, html string, p *prodex.Product) {
	if strings.Contains(html, videoLibraryMarker) {
		scrapeVideoLibraryVariations(doc, p)
		return
	}

	raw, ok := prodex.Between(html, variationAssignment, variationTerminator)
	if !ok {
		return
	}
	parsed, err := jsliteral.Parse(strings.TrimSpace(raw))
	if err != nil {
		return
	}
	twister, ok := parsed.(map[string]any)
	if !ok {
		return
	}

	labels := stringSlice(twister["dimensionsDisplay"])
	subTypes := stringSlice(twister["dimensionsDisplaySubType"])
	variants, ok := twister["dimensionValuesDisplayData"].(map[string]any)
	if !ok {
		return
	}

	// Identifier order is sorted for deterministic output; the literal
	// decodes into a map and loses the page's insertion order.
	asins := lo.Keys(variants)
	sort.Strings(asins)

	for _, asin := range asins {
		values := stringSlice(variants[asin])
		variant := prodex.Variation{
			ASIN:       asin,
			Attributes: make(map[string]string, len(values)),
		}
		for i, value := range values {
			if i >= len(labels) {
				break
			}
			variant.Attributes[labels[i]] = value
			if i < len(subTypes) && subTypes[i] == "IMAGE" {
				if src, ok := findImageByAlt(doc, value); ok {
					variant.Image = src
				}
			}
		}
		p.AddVariation(variant)
	}
}

// scrapeVideoLibraryVariations iterates the swatch elements of a video
// listing. Each swatch yields a variant keyed by the identifier parsed
// out of its link path.
func scrapeVideoLibraryVariations(doc *goquery.Document, p *prodex.Product) {
	doc.Find("li.swatchElement").Each(func(_ int, li *goquery.Selection) {
		anchor := li.Find("a")
		title := anchor.Find("span").Eq(0).Text()
		if lo.Contains(videoVariationExclude, title) {
			return
		}
		parts := strings.Split(anchor.AttrOr("href", ""), "/")
		if len(parts) < 4 {
			return
		}
		price := strings.ReplaceAll(strings.TrimSpace(anchor.Find("span").Eq(1).Text()), "$", "")
		p.AddVariation(prodex.Variation{
			ASIN:       parts[3],
			Attributes: map[string]string{"type": title},
			Price:      price,
		})
	})
}

// findImageByAlt resolves a swatch image node by its alt text.
func findImageByAlt(doc *goquery.Document, alt string) (string, bool) {
	var src string
	found := false
	doc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if a, ok := img.Attr("alt"); ok && a == alt {
			src, found = img.Attr("src")
			return false
		}
		return true
	})
	return src, found
}

func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
