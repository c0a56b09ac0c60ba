// Package bloom provides source-id deduplication using Bloom filters.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter wraps a Bloom filter for deduplicating product source ids
// across a crawl.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a new Bloom filter sized for n expected items
// with the given false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add adds a source id to the filter.
func (f *Filter) Add(sourceID string) {
	f.f.AddString(sourceID)
}

// Test returns true if the source id might be in the filter.
// False positives are possible; false negatives are not.
func (f *Filter) Test(sourceID string) bool {
	return f.f.TestString(sourceID)
}

// TestAndAdd reports whether the source id was possibly seen before,
// and marks it as seen.
func (f *Filter) TestAndAdd(sourceID string) bool {
	return f.f.TestAndAddString(sourceID)
}

// EstimatedCount returns the approximate number of items in the filter.
func (f *Filter) EstimatedCount() uint {
	return uint(f.f.ApproximatedSize())
}
