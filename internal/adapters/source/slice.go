package source

import (
	"context"
	"io"

	"github.com/okian/podium/internal/domain/model"
)

// Slice serves records from memory.
type Slice struct {
	recs []model.RawRecord
	next int
}

// NewSlice returns a source over recs.
func NewSlice(recs ...model.RawRecord) *Slice {
	return &Slice{recs: recs}
}

// Next returns the next record or io.EOF.
func (s *Slice) Next(_ context.Context) (model.RawRecord, error) {
	if s.next >= len(s.recs) {
		return model.RawRecord{}, io.EOF
	}
	rec := s.recs[s.next]
	s.next++
	return rec, nil
}

// Close is a no-op.
func (s *Slice) Close() error { return nil }
