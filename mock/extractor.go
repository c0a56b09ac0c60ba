package mock

import "github.com/scrapeworks/prodex"

var _ prodex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of prodex.Extractor.
type Extractor struct {
	ExtractFn func(html string, input prodex.ExtractInput) (*prodex.Record, error)
}

func (e *Extractor) Extract(html string, input prodex.ExtractInput) (*prodex.Record, error) {
	return e.ExtractFn(html, input)
}
