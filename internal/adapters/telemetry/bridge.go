// Package telemetry installs the OpenTelemetry tracer provider and turns finished
// lookup spans into debug log lines and a run summary.
package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wodl/internal/adapters/upkeep"
	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
)

// Bridge implements sdktrace.SpanProcessor for the upstream lookup spans.
type Bridge struct {
	logger ports.Logger

	mu      sync.Mutex
	summary domain.LookupSummary
}

// NewBridge returns a new Bridge.
func NewBridge(logger ports.Logger) *Bridge {
	return &Bridge{logger: logger}
}

// OnStart does nothing.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records a finished lookup span.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if s.Name() != upkeep.SpanFetch {
		return
	}

	elapsed := s.EndTime().Sub(s.StartTime())
	failed := s.Status().Code == codes.Error

	b.mu.Lock()
	b.summary.Lookups++
	b.summary.Total += elapsed
	if failed {
		b.summary.Failed++
	}
	b.mu.Unlock()

	var typ, id string
	for _, kv := range s.Attributes() {
		switch kv.Key {
		case attribute.Key("entity.type"):
			typ = kv.Value.AsString()
		case attribute.Key("entity.id"):
			id = kv.Value.AsString()
		}
	}
	b.logger.Debug(fmt.Sprintf("GET %s/%s took %s", typ, id, elapsed.Round(time.Millisecond)))
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}

// Summary returns the lookups recorded so far.
func (b *Bridge) Summary() domain.LookupSummary {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.summary
}

// Provider owns the global tracer provider.
type Provider struct {
	bridge *Bridge
	tp     *sdktrace.TracerProvider
}

// Setup registers a tracer provider that reports to bridge as the global provider.
func Setup(bridge *Bridge) *Provider {
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(bridge))
	otel.SetTracerProvider(tp)
	return &Provider{bridge: bridge, tp: tp}
}

// Summary implements ports.Telemetry.
func (p *Provider) Summary() domain.LookupSummary {
	return p.bridge.Summary()
}

// Shutdown implements ports.Telemetry.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}
