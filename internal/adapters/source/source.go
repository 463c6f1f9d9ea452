// Package source reads result rows from CSV or XLSX exports.
//
// Both adapters resolve columns by header name once and then stream rows.
// A missing column or a ragged row is a fatal model.ErrMalformedRecord.
package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/okian/podium/internal/domain/model"
)

// Formats accepted by Open.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// Header names of the required columns.
const (
	colMedal      = "Medal"
	colNOC        = "NOC"
	colGames      = "Games"
	colEvent      = "Event"
	colDiscipline = "Discipline"
)

const bom = "\uFEFF"

// Source yields raw rows until io.EOF.
type Source interface {
	Next(ctx context.Context) (model.RawRecord, error)
	Close() error
}

// Open picks an adapter by format, or by the file extension when format is
// empty. sheet only applies to XLSX; empty means the first sheet.
func Open(path, format, sheet string) (Source, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	switch format {
	case FormatCSV:
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrOpen, err)
		}
		src, err := newCSV(f, f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return src, nil
	case FormatXLSX:
		return NewXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// columns holds the position of each required column in a row.
type columns struct {
	medal, noc, games, event, discipline int
	width                                int
}

func resolveColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, bom)
		h = strings.TrimSpace(h)
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}

	var missing []string
	lookup := func(name string) int {
		i, ok := idx[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return i
	}
	c := columns{
		medal:      lookup(colMedal),
		noc:        lookup(colNOC),
		games:      lookup(colGames),
		event:      lookup(colEvent),
		discipline: lookup(colDiscipline),
		width:      len(header),
	}
	if len(missing) > 0 {
		return columns{}, fmt.Errorf("%w: header lacks column(s) %s", model.ErrMalformedRecord, strings.Join(missing, ", "))
	}
	return c, nil
}

func (c columns) record(row []string) model.RawRecord {
	return model.RawRecord{
		Medal:      clean(row[c.medal]),
		NOC:        clean(row[c.noc]),
		Games:      clean(row[c.games]),
		Event:      clean(row[c.event]),
		Discipline: clean(row[c.discipline]),
	}
}

// clean trims s and normalizes it to NFC so decomposed accents still match
// the static tables.
func clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
