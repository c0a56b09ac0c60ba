package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
	"github.com/scrapeworks/prodex"
)

// excludeSpecKeys are noise entries dropped from every specification
// source (review aggregates, rank, and raw duplicates of fields parsed
// elsewhere).
var excludeSpecKeys = []string{
	"Average Customer Review",
	"Amazon Best Sellers Rank",
	"ASIN",
	"Product Dimensions",
	"Shipping Weight",
}

// modelNumberKeys are the locale variants of "model number"; all
// normalize to the canonical mpn key.
var modelNumberKeys = []string{
	"Model number",
	"Modellnummer",
	"Numéro du modèle de l'article",
	"Item model number",
}

// shippingPolicyNote is boilerplate stripped from specification values.
const shippingPolicyNote = "(View shipping rates and policies)"

// specNoiseNeedles drop merged specification entries that are
// marketplace boilerplate rather than real specs.
var specNoiseNeedles = []string{"Amazon", "Delivery Destinations"}

// scrapeSpecifications prefers the structured technical-specification
// table, falls back to the detail-bullet list, and finally to the
// tabbed-panel table of the bolt template.
func scrapeSpecifications(doc *goquery.Document, p *prodex.Product) {
	tech := doc.Find("#technicalSpecifications_feature_div")
	if tech.Length() == 0 {
		if doc.Find("#detail-bullets_feature_div").Length() > 0 || doc.Find("#detail-bullets").Length() > 0 {
			scrapeBulletSpecifications(doc, p)
			return
		}
		scrapeTabSpecifications(doc, p)
		return
	}
	vals := tech.Find("td")
	tech.Find("th").Each(func(i int, th *goquery.Selection) {
		if i >= vals.Length() {
			return
		}
		addSpecification(p, strings.TrimSpace(th.Text()), strings.TrimSpace(vals.Eq(i).Text()))
	})
}

// scrapeBulletSpecifications parses the detail-bullet list as
// "key: value" pairs.
func scrapeBulletSpecifications(doc *goquery.Document, p *prodex.Product) {
	sel := doc.Find("#detail-bullets_feature_div")
	if sel.Length() == 0 {
		sel = doc.Find("#detail-bullets")
	}
	sel.Find("li").Each(func(_ int, li *goquery.Selection) {
		key, value, found := strings.Cut(li.Text(), ":")
		if !found {
			return
		}
		addSpecification(p, strings.TrimSpace(key), strings.TrimSpace(value))
	})
}

// scrapeTabSpecifications parses the bolt template's tabbed panel,
// where table cells alternate key/value by position.
func scrapeTabSpecifications(doc *goquery.Document, p *prodex.Product) {
	var keys, vals []string
	doc.Find(".pdTab").First().Find("td").Each(func(i int, td *goquery.Selection) {
		text := strings.TrimSpace(td.Text())
		if text == "" {
			return
		}
		if i%2 == 1 {
			vals = append(vals, text)
		} else {
			keys = append(keys, text)
		}
	})
	for i, key := range keys {
		if i >= len(vals) {
			break
		}
		addSpecification(p, key, vals[i])
	}
}

// addSpecification normalizes a raw key/value pair before recording it:
// noise keys are dropped, model-number synonyms collapse to mpn, and
// the shipping-policy disclaimer is stripped from values.
func addSpecification(p *prodex.Product, key, value string) {
	if lo.Contains(excludeSpecKeys, key) {
		return
	}
	if lo.Contains(modelNumberKeys, key) {
		key = "mpn"
	}
	p.AddSpecification(key, strings.TrimSpace(strings.ReplaceAll(value, shippingPolicyNote, "")))
}
