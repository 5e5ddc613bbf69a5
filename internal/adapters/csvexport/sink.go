// Package csvexport writes enriched records to a timestamped CSV file.
package csvexport

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/zerr"
)

// Sink implements ports.RecordSink.
type Sink struct {
	now func() time.Time
}

// Option configures a Sink.
type Option func(*Sink)

// WithClock replaces time.Now when naming export files.
func WithClock(now func() time.Time) Option {
	return func(s *Sink) {
		s.now = now
	}
}

// NewSink creates a Sink.
func NewSink(opts ...Option) *Sink {
	s := &Sink{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Write flattens records into <dir>/<timestamp>.csv. Nested mappings become columns joined
// by separator.
func (s *Sink) Write(ctx context.Context, dir, separator string, records []domain.Record) (string, error) {
	if separator == "" {
		separator = domain.DefaultSeparator
	}

	t := newTable(separator)
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		t.add(rec)
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "dir", dir)
	}

	path := filepath.Join(dir, s.now().Format(domain.ExportTimeLayout)+".csv")
	if err := writeTable(path, t); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	return path, nil
}

func writeTable(path string, t *table) (err error) {
	//nolint:gosec // Path is built from the configured export directory
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(t.columns); err != nil {
		return err
	}

	line := make([]string, len(t.columns))
	for _, r := range t.rows {
		for i, column := range t.columns {
			line[i] = r[column]
		}
		if err := w.Write(line); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
