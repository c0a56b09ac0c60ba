package prodex

import (
	"regexp"
	"strings"
)

// DoesNotApply is the sentinel recorded for commercial identifier
// specifications (mpn, ean, isbn, brand) the page never exposed.
const DoesNotApply = "Does not apply"

// Dimensions holds physical measurements parsed from the listing,
// locale-normalized to period decimal separators.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
	Weight float64 `json:"weight"`
}

// Variation is an alternate purchasable configuration of the same
// listing, identified by its own source identifier.
type Variation struct {
	ASIN       string            `json:"ASIN"`
	Attributes map[string]string `json:"attributes"`
	Image      string            `json:"image,omitempty"`
	Price      string            `json:"price,omitempty"`
}

// Pair is an ordered key/value entry. Features and specifications are
// accumulated as pair lists during extraction and collapsed into maps
// by Finalize, last write winning on duplicate keys.
type Pair struct {
	Key   string
	Value string
}

// ShippingInfo is recorded under the "shipping" auxiliary data key.
type ShippingInfo struct {
	Price float64 `json:"price"`
}

// Record is the finalized, immutable product document produced by
// Product.Finalize and handed to the persistence collaborator.
type Record struct {
	SourceID          string            `json:"sourceId"`
	SourceLink        string            `json:"sourceLink"`
	Title             string            `json:"title"`
	Price             float64           `json:"sourcePrice"`
	Currency          Currency          `json:"currency"`
	InStock           bool              `json:"isItemInStock"`
	Quantity          int               `json:"sourceQuantity"`
	Brand             string            `json:"brand"`
	Description       string            `json:"description"`
	Categories        string            `json:"categories"`
	Images            []string          `json:"images"`
	FreeShipping      bool              `json:"isFreeShipping"`
	Prime             bool              `json:"isPrimeEligible"`
	Packaging         Dimensions        `json:"packageDimensions"`
	ItemDimensions    Dimensions        `json:"itemDimensions"`
	Features          map[string]string `json:"features"`
	Specifications    map[string]string `json:"listingSpecifications"`
	Variations        []Variation       `json:"variations"`
	AdditionalData    map[string]any    `json:"additionalData"`
	ExpirationMinutes int               `json:"outdateMinutes"`
	City              string            `json:"cityByCountry"`
}

// Product is the mutable in-progress model populated by an extraction
// adapter. One extraction owns one Product; there is no sharing across
// concurrent extractions. Setters coerce malformed input to safe
// defaults instead of failing (see the Coerce* functions).
type Product struct {
	title        string
	sourceLink   string
	price        float64
	inStock      bool
	brand        string
	description  string
	images       []string
	freeShipping bool
	sourceID     string
	prime        bool
	currency     Currency
	quantity     int
	packaging    Dimensions
	itemDims     Dimensions
	features     []Pair
	specs        []Pair
	expiration   int
	city         string
	variations   []Variation
	additional   map[string]any
	categories   string
}

// NewProduct returns a fresh product with default values: in stock,
// prime-eligible, priced at 0 in USD.
func NewProduct() *Product {
	return &Product{
		inStock:    true,
		prime:      true,
		currency:   CurrencyUSD,
		images:     []string{},
		additional: map[string]any{},
	}
}

// SetTitle sets the product title.
func (p *Product) SetTitle(title string) { p.title = title }

// Title returns the product title.
func (p *Product) Title() string { return p.title }

// SetSourceLink sets the canonical product page URL.
func (p *Product) SetSourceLink(link string) { p.sourceLink = link }

// SourceLink returns the canonical product page URL.
func (p *Product) SourceLink() string { return p.sourceLink }

// SetPrice sets the price, coercing non-numeric input to 0.
func (p *Product) SetPrice(v any) { p.price = CoerceFloat(v) }

// Price returns the numeric price value.
func (p *Product) Price() float64 { return p.price }

// SetInStock sets the availability flag.
func (p *Product) SetInStock(available bool) { p.inStock = available }

// InStock reports whether the item is available.
func (p *Product) InStock() bool { return p.inStock }

// SetBrand sets the product brand.
func (p *Product) SetBrand(brand string) { p.brand = brand }

// Brand returns the product brand.
func (p *Product) Brand() string { return p.brand }

// SetDescription sets the product description markup.
func (p *Product) SetDescription(text string) { p.description = text }

// Description returns the product description.
func (p *Product) Description() string { return p.description }

// SetImages sets the image URL list. A scalar string is wrapped into a
// single-element list; any other non-list input yields an empty list.
func (p *Product) SetImages(v any) { p.images = CoerceStringSlice(v) }

// Images returns the image URL list.
func (p *Product) Images() []string { return p.images }

// SetFreeShipping sets the free shipping flag; non-boolean input
// resets it to false.
func (p *Product) SetFreeShipping(v any) { p.freeShipping = CoerceBool(v) }

// FreeShipping reports whether the item ships for free.
func (p *Product) FreeShipping() bool { return p.freeShipping }

// SetSourceID sets the marketplace item identifier.
func (p *Product) SetSourceID(id string) { p.sourceID = id }

// SourceID returns the marketplace item identifier.
func (p *Product) SourceID() string { return p.sourceID }

// SetPrime sets the two-day-delivery eligibility flag; non-boolean
// input resets it to false.
func (p *Product) SetPrime(v any) { p.prime = CoerceBool(v) }

// Prime reports whether the item is eligible for two-day delivery.
func (p *Product) Prime() bool { return p.prime }

// SetCurrency sets the price currency.
func (p *Product) SetCurrency(c Currency) { p.currency = c }

// Currency returns the price currency.
func (p *Product) Currency() Currency { return p.currency }

// SetQuantity sets the available quantity, truncating fractional input
// toward the nearest integer.
func (p *Product) SetQuantity(v any) { p.quantity = CoerceInt(v) }

// Quantity returns the available quantity.
func (p *Product) Quantity() int { return p.quantity }

// SetPackaging sets the packaging dimensions.
func (p *Product) SetPackaging(d Dimensions) { p.packaging = d }

// Packaging returns the packaging dimensions.
func (p *Product) Packaging() Dimensions { return p.packaging }

// SetDimensions sets the item dimensions.
func (p *Product) SetDimensions(d Dimensions) { p.itemDims = d }

// Dimensions returns the item dimensions.
func (p *Product) Dimensions() Dimensions { return p.itemDims }

// SetExpiration sets the record expiration in minutes; non-integer
// input resets it to 0.
func (p *Product) SetExpiration(v any) {
	switch t := v.(type) {
	case int:
		p.expiration = t
	case int32:
		p.expiration = int(t)
	case int64:
		p.expiration = int(t)
	case float64:
		if IsInt(t) {
			p.expiration = int(t)
		} else {
			p.expiration = 0
		}
	default:
		p.expiration = 0
	}
}

// Expiration returns the record expiration in minutes.
func (p *Product) Expiration() int { return p.expiration }

// SetCity sets the dispatch city for the region.
func (p *Product) SetCity(city string) { p.city = city }

// City returns the dispatch city.
func (p *Product) City() string { return p.city }

// SetCategories sets the " > "-joined breadcrumb path.
func (p *Product) SetCategories(categories string) { p.categories = categories }

// Categories returns the breadcrumb path.
func (p *Product) Categories() string { return p.categories }

// AddFeature appends a feature entry.
func (p *Product) AddFeature(key, value string) {
	p.features = append(p.features, Pair{Key: key, Value: value})
}

// RemoveFeature removes the first feature entry with the given key.
func (p *Product) RemoveFeature(key string) {
	p.features = removeFirst(p.features, key)
}

// Features returns a copy of the accumulated feature entries.
func (p *Product) Features() []Pair {
	return append([]Pair(nil), p.features...)
}

// AddSpecification appends a specification entry.
func (p *Product) AddSpecification(key, value string) {
	p.specs = append(p.specs, Pair{Key: key, Value: value})
}

// RemoveSpecification removes the first specification entry with the
// given key.
func (p *Product) RemoveSpecification(key string) {
	p.specs = removeFirst(p.specs, key)
}

// Specifications returns a copy of the accumulated specification entries.
func (p *Product) Specifications() []Pair {
	return append([]Pair(nil), p.specs...)
}

// PruneSpecifications drops every specification entry whose key or
// value contains any of the given substrings. Used to sweep marketplace
// boilerplate out of the merged specification sources.
func (p *Product) PruneSpecifications(substrings ...string) {
	kept := p.specs[:0]
	for _, spec := range p.specs {
		if containsAny(spec.Key, substrings) || containsAny(spec.Value, substrings) {
			continue
		}
		kept = append(kept, spec)
	}
	p.specs = kept
}

// AddVariation appends a variant record.
func (p *Product) AddVariation(v Variation) {
	p.variations = append(p.variations, v)
}

// Variations returns a copy of the accumulated variant records.
func (p *Product) Variations() []Variation {
	return append([]Variation(nil), p.variations...)
}

// AddData records an auxiliary value under the given key.
func (p *Product) AddData(key string, value any) {
	p.additional[key] = value
}

// RemoveData removes an auxiliary value.
func (p *Product) RemoveData(key string) {
	delete(p.additional, key)
}

// AdditionalData returns the auxiliary data mapping.
func (p *Product) AdditionalData() map[string]any {
	return p.additional
}

// wsRun matches runs of two or more whitespace characters.
var wsRun = regexp.MustCompile(`\s{2,}`)

// Finalize runs the fixed post-extraction pipeline and produces the
// immutable record: sentinel backfill, the stock/quantity invariant,
// description cleanup, and pair-list collapse. It is invoked exactly
// once per extraction; the first failure propagates and later steps are
// not applied.
func (p *Product) Finalize() (*Record, error) {
	p.ensureSentinels()
	p.validatePrice()
	p.cleanDescription()

	if p.title == "" {
		return nil, Errorf(EINVALID, "product title required")
	}

	rec := &Record{
		SourceID:          p.sourceID,
		SourceLink:        p.sourceLink,
		Title:             p.title,
		Price:             p.price,
		Currency:          p.currency,
		InStock:           p.inStock,
		Quantity:          p.quantity,
		Brand:             p.brand,
		Description:       p.description,
		Categories:        p.categories,
		Images:            append([]string(nil), p.images...),
		FreeShipping:      p.freeShipping,
		Prime:             p.prime,
		Packaging:         p.packaging,
		ItemDimensions:    p.itemDims,
		Features:          collapsePairs(p.features),
		Specifications:    collapsePairs(p.specs),
		Variations:        p.Variations(),
		AdditionalData:    p.additional,
		ExpirationMinutes: p.expiration,
		City:              p.city,
	}
	return rec, nil
}

// ensureSentinels guarantees the commercial identifier specifications
// exist, inserting the DoesNotApply sentinel when absent. The brand
// scalar is backfilled from the sentinel when it was never set.
func (p *Product) ensureSentinels() {
	for _, key := range []string{"mpn", "ean", "isbn"} {
		if !p.hasSpec(key) {
			p.AddSpecification(key, DoesNotApply)
		}
	}
	if !p.hasSpec("brand") && !p.hasSpec("Brand") && p.brand == "" {
		p.brand = DoesNotApply
		p.AddSpecification("brand", DoesNotApply)
	}
}

// validatePrice enforces the stock/quantity invariant: an unpriced item
// is out of stock, and an out-of-stock item has zero quantity.
func (p *Product) validatePrice() {
	if p.price <= 0 {
		p.inStock = false
	}
	if !p.inStock {
		p.quantity = 0
	}
}

// cleanDescription collapses runs of whitespace into single spaces.
func (p *Product) cleanDescription() {
	if p.description != "" {
		p.description = wsRun.ReplaceAllString(p.description, " ")
	}
}

func (p *Product) hasSpec(key string) bool {
	for _, spec := range p.specs {
		if spec.Key == key {
			return true
		}
	}
	return false
}

// collapsePairs folds an ordered pair list into a map, later entries
// overwriting earlier ones for the same key.
func collapsePairs(pairs []Pair) map[string]string {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		out[pair.Key] = pair.Value
	}
	return out
}

func removeFirst(pairs []Pair, key string) []Pair {
	for i, pair := range pairs {
		if pair.Key == key {
			return append(pairs[:i], pairs[i+1:]...)
		}
	}
	return pairs
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if sub != "" && strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
