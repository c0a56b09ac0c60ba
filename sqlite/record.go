package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	"github.com/scrapeworks/prodex"
)

// Ensure RecordService implements the interface.
var _ prodex.RecordService = (*RecordService)(nil)

// RecordService stores extracted product records in SQLite.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService backed by db.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

// SaveRecord persists a record, replacing any previous record with the
// same source id.
func (s *RecordService) SaveRecord(ctx context.Context, record *prodex.Record) error {
	if record == nil {
		return prodex.Errorf(prodex.EINVALID, "record is required")
	}
	if record.SourceID == "" {
		return prodex.Errorf(prodex.EINVALID, "record source id is required")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	hash := fmt.Sprintf("%016x", xxhash.Sum64(data))
	now := time.Now().UTC().Format(time.RFC3339)

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO records (id, source_id, source_link, title, data, content_hash, scraped_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(source_id) DO UPDATE SET
			source_link  = excluded.source_link,
			title        = excluded.title,
			data         = excluded.data,
			content_hash = excluded.content_hash,
			scraped_at   = excluded.scraped_at
	`, uuid.New().String(), record.SourceID, record.SourceLink, record.Title, string(data), hash, now)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}

	return nil
}

// FindRecordBySourceID returns the stored record for the given source id.
// Returns ENOTFOUND if no record exists.
func (s *RecordService) FindRecordBySourceID(ctx context.Context, sourceID string) (*prodex.Record, error) {
	if sourceID == "" {
		return nil, prodex.Errorf(prodex.EINVALID, "source id is required")
	}

	var data string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM records WHERE source_id = ?
	`, sourceID).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, prodex.Errorf(prodex.ENOTFOUND, "record %q not found", sourceID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query record: %w", err)
	}

	var record prodex.Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record: %w", err)
	}

	return &record, nil
}
