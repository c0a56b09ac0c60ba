package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// trackingPixelMarker identifies tracking-pixel URLs that must never
// appear in the image list.
const trackingPixelMarker = "pixel"

// scrapeImages scans the thumbnail strip for button-style thumbnails,
// derives full-resolution URLs from them, deduplicates, and drops
// tracking pixels. Play-button overlays (video thumbnails) are skipped.
func scrapeImages(doc *goquery.Document) []string {
	var result []string
	doc.Find("#altImages span").Each(func(_ int, span *goquery.Selection) {
		if !span.HasClass("a-button-text") {
			return
		}
		img := span.Find("img").First()
		src, ok := img.Attr("src")
		if !ok || strings.Contains(src, "play-button") {
			return
		}
		if full, ok := fullResolutionURL(src); ok {
			result = append(result, full)
		}
	})
	return lo.Filter(lo.Uniq(result), func(url string, _ int) bool {
		return !strings.Contains(url, trackingPixelMarker)
	})
}

// fullResolutionURL derives the full-size image URL from a thumbnail
// URL by stripping the size-suffix segment ("._SS40_.jpg") and
// reattaching the original file extension.
func fullResolutionURL(src string) (string, bool) {
	base, suffix, found := strings.Cut(src, "._")
	if !found {
		return "", false
	}
	parts := strings.Split(suffix, ".")
	if len(parts) < 2 {
		return "", false
	}
	return base + "." + parts[1], true
}
