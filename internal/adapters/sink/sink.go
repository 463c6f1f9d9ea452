// Package sink writes the finished summary document.
package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/okian/podium/internal/domain/report"
)

// Stdout is the output path that selects standard output.
const Stdout = "-"

// Sink receives one serialized document per run.
type Sink interface {
	Write(ctx context.Context, doc *report.Document) error
}

// FileSink replaces a file atomically with the encoded document.
type FileSink struct {
	path   string
	perm   os.FileMode
	stdout io.Writer
}

// Option applies a configuration option to the FileSink.
type Option func(*FileSink)

// WithPerm sets the mode of the written file.
func WithPerm(perm os.FileMode) Option {
	return func(s *FileSink) {
		if perm != 0 {
			s.perm = perm
		}
	}
}

// WithStdout sets the writer used when the path is Stdout.
func WithStdout(w io.Writer) Option {
	return func(s *FileSink) {
		if w != nil {
			s.stdout = w
		}
	}
}

// NewFileSink returns a sink writing to path.
func NewFileSink(path string, opts ...Option) *FileSink {
	s := &FileSink{path: path, perm: 0o644, stdout: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the target path.
func (s *FileSink) Path() string {
	return s.path
}

// Write encodes doc into a temp file next to the target and renames it into
// place. On any failure the target is left untouched.
func (s *FileSink) Write(ctx context.Context, doc *report.Document) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.path == Stdout {
		return WriteTo(s.stdout, doc)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err := WriteTo(tmp, doc); err != nil {
		return err
	}
	if err := tmp.Chmod(s.perm); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}

// WriteTo encodes doc to w with two-space indentation and glyphs left
// unescaped.
func WriteTo(w io.Writer, doc *report.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
