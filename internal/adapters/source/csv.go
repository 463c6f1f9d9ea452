package source

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/okian/podium/internal/domain/model"
)

// CSV streams rows from a comma separated export with a header row.
type CSV struct {
	r      *csv.Reader
	cols   columns
	closer io.Closer
}

// NewCSV reads the header from r and returns a source over the rest.
func NewCSV(r io.Reader) (*CSV, error) {
	return newCSV(r, nil)
}

func newCSV(r io.Reader, closer io.Closer) (*CSV, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", model.ErrMalformedRecord)
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}
	return &CSV{r: cr, cols: cols, closer: closer}, nil
}

// Next returns the next row or io.EOF. The reader enforces that every row
// has as many fields as the header.
func (s *CSV) Next(_ context.Context) (model.RawRecord, error) {
	row, err := s.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.RawRecord{}, io.EOF
		}
		return model.RawRecord{}, wrapCSVError(err)
	}
	return s.cols.record(row), nil
}

// Close releases the underlying file, if any.
func (s *CSV) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

func wrapCSVError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return fmt.Errorf("%w: %w", model.ErrMalformedRecord, err)
	}
	return err
}
