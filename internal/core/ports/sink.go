package ports

import (
	"context"

	"go.trai.ch/wodl/internal/core/domain"
)

// RecordSink receives the enriched records.
//
//go:generate go run go.uber.org/mock/mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks
type RecordSink interface {
	// Write exports the records into dir and returns the path of the written file.
	Write(ctx context.Context, dir, separator string, records []domain.Record) (string, error)
}
