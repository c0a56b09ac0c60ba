package mock

import (
	"context"

	"github.com/scrapeworks/prodex"
)

var _ prodex.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of prodex.RecordService.
type RecordService struct {
	SaveRecordFn           func(ctx context.Context, record *prodex.Record) error
	FindRecordBySourceIDFn func(ctx context.Context, sourceID string) (*prodex.Record, error)
}

func (s *RecordService) SaveRecord(ctx context.Context, record *prodex.Record) error {
	return s.SaveRecordFn(ctx, record)
}

func (s *RecordService) FindRecordBySourceID(ctx context.Context, sourceID string) (*prodex.Record, error) {
	return s.FindRecordBySourceIDFn(ctx, sourceID)
}
