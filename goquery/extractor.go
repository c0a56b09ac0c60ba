// Package goquery implements the product extraction adapter on top of
// parsed HTML document trees. The marketplace renders the same semantic
// data under different DOM templates depending on experiment and
// locale, so most fields carry two or three fallback extraction
// strategies. A missing node never aborts an extraction; each field
// degrades to its default and the pipeline continues.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/scrapeworks/prodex"
)

// defaultQuantity is recorded for in-stock items. The source page never
// exposes real inventory counts.
const defaultQuantity = 500

// Compile-time interface verification.
var _ prodex.Extractor = (*Extractor)(nil)

// Extractor extracts a product record from rendered marketplace page
// markup. It is stateless and safe for concurrent use; every call owns
// its product model exclusively.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the page markup, populates a product model field by
// field in dependency order, and finalizes it into a record. Only an
// unparseable document or a finalize-stage failure returns an error.
func (e *Extractor) Extract(html string, in prodex.ExtractInput) (*prodex.Record, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, prodex.Errorf(prodex.EINVALID, "parse product page: %v", err)
	}

	p := prodex.NewProduct()

	p.SetTitle(scrapeTitle(doc))
	p.SetCategories(scrapeCategories(doc))

	pricing := scrapePricing(doc, in.Region)
	p.SetPrice(pricing.Price)
	p.SetCurrency(pricing.Currency)

	sourceID := scrapeSourceID(doc)
	if sourceID == "" {
		sourceID = in.SourceID
	}
	p.SetSourceID(sourceID)
	p.SetSourceLink(in.Region.ProductURL(sourceID))
	p.AddData("shipping", prodex.ShippingInfo{Price: pricing.Shipping})

	p.SetInStock(scrapeAvailability(doc))
	if p.InStock() {
		p.SetQuantity(defaultQuantity)
	}

	p.SetPrime(isPrime(doc))
	p.SetImages(scrapeImages(doc))
	p.SetDescription(scrapeDescription(doc))

	if brand := scrapeBrand(doc); brand != "" {
		p.SetBrand(brand)
		p.AddSpecification("brand", brand)
	}

	p.AddData("addon", isAddon(doc))
	p.AddData("preOrder", isPreOrder(doc))

	scrapeVariations(doc, html, p)
	scrapeFeatures(doc, p)
	scrapeDimensions(doc, p)
	scrapeSpecifications(doc, p)
	p.PruneSpecifications(specNoiseNeedles...)

	return p.Finalize()
}

func scrapeTitle(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("#productTitle").Text())
}

// scrapeCategories reads the breadcrumb node list, drops separator
// glyphs, and joins the surviving entries.
func scrapeCategories(doc *goquery.Document) string {
	var cats []string
	doc.Find("#wayfinding-breadcrumbs_feature_div li").Each(func(_ int, li *goquery.Selection) {
		cat := strings.TrimSpace(li.Text())
		if cat == "" || cat == "›" {
			return
		}
		cats = append(cats, cat)
	})
	return strings.Join(cats, " > ")
}

func scrapeSourceID(doc *goquery.Document) string {
	return doc.Find("#copy-asin").AttrOr("data-asin", "")
}

// scrapeDescription prefers the rich-content block's inner markup and
// falls back to the plain description block.
func scrapeDescription(doc *goquery.Document) string {
	sel := doc.Find("#aplus_feature_div")
	if sel.Length() == 0 {
		sel = doc.Find("#productDescription")
	}
	html, err := sel.Html()
	if err != nil {
		return ""
	}
	return html
}

// scrapeBrand tries the brand link, the byline-info link, and the
// contributor-name link in order; the first non-empty match wins.
func scrapeBrand(doc *goquery.Document) string {
	for _, selector := range []string{"a#brand", "a#bylineInfo", "a.contributorNameID"} {
		if sel := doc.Find(selector); sel.Length() > 0 {
			return strings.TrimSpace(sel.Text())
		}
	}
	return ""
}

// scrapeFeatures enumerates the bulleted feature list; each item is
// keyed by its 1-based position.
func scrapeFeatures(doc *goquery.Document, p *prodex.Product) {
	doc.Find("#feature-bullets li").Each(func(i int, li *goquery.Selection) {
		p.AddFeature(strconv.Itoa(i+1), strings.TrimSpace(li.Text()))
	})
}
