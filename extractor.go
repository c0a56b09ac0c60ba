package prodex

// ExtractInput carries the context known before a product page is
// parsed: the marketplace region and, when available, the identifier
// the page was requested for.
type ExtractInput struct {
	Region Region

	// SourceID is the known marketplace identifier. It is used as a
	// fallback when the page itself does not expose one.
	SourceID string
}

// Extractor populates a product model from rendered page markup and
// finalizes it into a record. Implementations must degrade gracefully:
// a missing node for any non-critical field defaults the field rather
// than aborting the extraction.
type Extractor interface {
	// Extract parses the page markup and returns the finalized record.
	// It fails only on an unrecoverable structural error or a
	// finalize-stage failure.
	Extract(html string, input ExtractInput) (*Record, error)
}
