// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/wodl/internal/core/domain"
)

// EntityFetcher looks up a single related entity on the upstream service.
//
// Callers filter empty identifiers; implementations do not special-case them
// and never touch any cache.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type EntityFetcher interface {
	// Fetch returns the entity, a not-found outcome, or a failure carrying a diagnostic.
	Fetch(ctx context.Context, entityType domain.EntityType, id string) domain.FetchResult
}

// EntityFetcherFunc adapts a function to the EntityFetcher interface.
type EntityFetcherFunc func(ctx context.Context, entityType domain.EntityType, id string) domain.FetchResult

// Fetch calls f.
func (f EntityFetcherFunc) Fetch(ctx context.Context, entityType domain.EntityType, id string) domain.FetchResult {
	return f(ctx, entityType, id)
}

// EntityResolver turns an identifier into its entity through a memoising cache.
type EntityResolver interface {
	// Resolve returns the entity and true, or nil and false when nothing can be resolved.
	Resolve(ctx context.Context, entityType domain.EntityType, id any) (domain.Entity, bool)
}
