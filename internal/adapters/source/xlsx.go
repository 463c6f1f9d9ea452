package source

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/okian/podium/internal/domain/model"
)

// XLSX streams rows from one worksheet of a workbook.
type XLSX struct {
	f    *excelize.File
	rows *excelize.Rows
	cols columns
}

// NewXLSX opens path and reads the header row of sheet, or of the first
// sheet when sheet is empty.
func NewXLSX(path, sheet string) (*XLSX, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	s, err := newXLSX(f, sheet)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return s, nil
}

func newXLSX(f *excelize.File, sheet string) (*XLSX, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: workbook has no sheets", model.ErrMalformedRecord)
		}
		sheet = sheets[0]
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %q: %w", ErrOpen, sheet, err)
	}
	if !rows.Next() {
		_ = rows.Close()
		if err := rows.Error(); err != nil {
			return nil, fmt.Errorf("%w: %w", model.ErrMalformedRecord, err)
		}
		return nil, fmt.Errorf("%w: missing header row", model.ErrMalformedRecord)
	}
	header, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("%w: %w", model.ErrMalformedRecord, err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		_ = rows.Close()
		return nil, err
	}
	return &XLSX{f: f, rows: rows, cols: cols}, nil
}

// Next returns the next row or io.EOF. Spreadsheets drop trailing empty
// cells, so short rows are padded to the header width; longer rows are
// malformed.
func (s *XLSX) Next(_ context.Context) (model.RawRecord, error) {
	if !s.rows.Next() {
		if err := s.rows.Error(); err != nil {
			return model.RawRecord{}, fmt.Errorf("%w: %w", model.ErrMalformedRecord, err)
		}
		return model.RawRecord{}, io.EOF
	}
	row, err := s.rows.Columns()
	if err != nil {
		return model.RawRecord{}, fmt.Errorf("%w: %w", model.ErrMalformedRecord, err)
	}
	if len(row) > s.cols.width {
		return model.RawRecord{}, fmt.Errorf("%w: row has %d cells, header has %d", model.ErrMalformedRecord, len(row), s.cols.width)
	}
	for len(row) < s.cols.width {
		row = append(row, "")
	}
	return s.cols.record(row), nil
}

// Close releases the row iterator and the workbook.
func (s *XLSX) Close() error {
	rerr := s.rows.Close()
	ferr := s.f.Close()
	if rerr != nil {
		return rerr
	}
	return ferr
}
