package prodex

import "context"

// RecordService durably stores finalized product records keyed by their
// source identifier. The core pipeline does not depend on the store's
// internal format.
type RecordService interface {
	// SaveRecord stores a record, replacing any previous record with
	// the same source identifier.
	SaveRecord(ctx context.Context, rec *Record) error

	// FindRecordBySourceID retrieves a stored record.
	// Returns ENOTFOUND if no record exists for the identifier.
	FindRecordBySourceID(ctx context.Context, sourceID string) (*Record, error)
}
