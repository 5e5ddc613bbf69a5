package ports

import (
	"context"

	"go.trai.ch/wodl/internal/core/domain"
)

// Telemetry observes the traced upstream lookups.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Summary aggregates the lookup spans finished so far.
	Summary() domain.LookupSummary

	// Shutdown flushes and detaches the tracer provider.
	Shutdown(ctx context.Context) error
}
