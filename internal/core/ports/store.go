package ports

import (
	"context"

	"go.trai.ch/wodl/internal/core/domain"
)

// ReusePolicy decides whether a persisted cache of the observed size and age may be used.
type ReusePolicy interface {
	ConfirmReuse(ctx context.Context, freshness domain.CacheFreshness) (bool, error)
}

// ReusePolicyFunc adapts a function to the ReusePolicy interface.
type ReusePolicyFunc func(ctx context.Context, freshness domain.CacheFreshness) (bool, error)

// ConfirmReuse calls f.
func (f ReusePolicyFunc) ConfirmReuse(ctx context.Context, freshness domain.CacheFreshness) (bool, error) {
	return f(ctx, freshness)
}

// CacheStore persists resolved entities between runs, one file per entity.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Freshness counts the persisted entries of the given types and reports the oldest one.
	Freshness(dir string, types []domain.EntityType) (domain.CacheFreshness, error)

	// Load asks the policy and, on confirmation, reads every persisted entry.
	// The boolean reports whether the snapshot was populated from disk.
	Load(
		ctx context.Context,
		dir string,
		types []domain.EntityType,
		policy ReusePolicy,
	) (domain.CacheSnapshot, bool, error)

	// Save replaces all persisted entries of each snapshot type and returns the number written.
	Save(ctx context.Context, dir string, snapshot domain.CacheSnapshot) (int, error)

	// Clear removes all persisted entries of the given types and returns the number removed.
	Clear(dir string, types []domain.EntityType) (int, error)
}
