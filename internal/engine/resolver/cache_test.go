package resolver_test

import (
	"context"
	"encoding/json"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
	"go.trai.ch/wodl/internal/core/ports/mocks"
	"go.trai.ch/wodl/internal/engine/resolver"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

var allTypes = []domain.EntityType{domain.EntityAssets, domain.EntityLocations, domain.EntityUsers}

func quietLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	lg := mocks.NewMockLogger(ctrl)
	lg.EXPECT().Debug(gomock.Any()).AnyTimes()
	lg.EXPECT().Info(gomock.Any()).AnyTimes()
	lg.EXPECT().Warn(gomock.Any()).AnyTimes()
	return lg
}

func TestCache_ResolveMemoisesSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	asset := domain.Entity{"id": "A1", "category": "HVAC"}

	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityAssets, "A1").
		Return(domain.Found(asset)).Times(1)

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

	for range 3 {
		got, ok := cache.Resolve(context.Background(), domain.EntityAssets, "A1")
		require.True(t, ok)
		assert.Equal(t, asset, got)
	}

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Fetches)
	assert.Equal(t, int64(2), stats.Hits)
}

func TestCache_ResolveSameIDDifferentTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)

	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityAssets, "X").
		Return(domain.Found(domain.Entity{"id": "X", "kind": "asset"}))
	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityLocations, "X").
		Return(domain.Found(domain.Entity{"id": "X", "kind": "location"}))

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

	a, ok := cache.Resolve(context.Background(), domain.EntityAssets, "X")
	require.True(t, ok)
	l, ok := cache.Resolve(context.Background(), domain.EntityLocations, "X")
	require.True(t, ok)
	assert.Equal(t, "asset", a["kind"])
	assert.Equal(t, "location", l["kind"])
}

func TestCache_ResolveSkipsEmptyIdentifiers(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

	for _, id := range []any{nil, "", map[string]any{"id": "A1"}} {
		got, ok := cache.Resolve(context.Background(), domain.EntityAssets, id)
		assert.False(t, ok)
		assert.Nil(t, got)
	}
	assert.Equal(t, int64(0), cache.Stats().Fetches)
}

func TestCache_ResolveNumericIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityUsers, "42").
		Return(domain.Found(domain.Entity{"id": json.Number("42")})).Times(1)

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

	_, ok := cache.Resolve(context.Background(), domain.EntityUsers, json.Number("42"))
	require.True(t, ok)
	_, ok = cache.Resolve(context.Background(), domain.EntityUsers, "42")
	require.True(t, ok)
}

func TestCache_FailuresAreRetried(t *testing.T) {
	tests := []struct {
		name   string
		result domain.FetchResult
	}{
		{name: "not found", result: domain.NotFound(domain.ErrEntityNotFound)},
		{name: "remote failure", result: domain.Failed(zerr.With(domain.ErrEntityFetchFailed, "status_code", 500))},
		{name: "found without payload", result: domain.FetchResult{Status: domain.FetchFound}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockEntityFetcher(ctrl)
			fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityLocations, "L1").
				Return(tt.result).Times(2)

			cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

			for range 2 {
				got, ok := cache.Resolve(context.Background(), domain.EntityLocations, "L1")
				assert.False(t, ok)
				assert.Nil(t, got)
			}
			assert.Equal(t, 0, cache.Len())
		})
	}
}

func TestCache_FailureIsLoggedWithEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	lg := mocks.NewMockLogger(ctrl)

	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityAssets, "A9").
		Return(domain.Failed(domain.ErrEntityFetchFailed))
	lg.EXPECT().Warn(gomock.Any()).Do(func(msg string) {
		assert.Contains(t, msg, "assets/A9")
	})

	cache := resolver.New(fetcher, lg, allTypes)
	_, ok := cache.Resolve(context.Background(), domain.EntityAssets, "A9")
	assert.False(t, ok)
	assert.Equal(t, int64(1), cache.Stats().Failures)
}

func TestCache_NotFoundTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityUsers, "U404").
		Return(domain.NotFound(domain.ErrEntityNotFound)).Times(2)

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes,
		resolver.WithNotFoundTTL(time.Minute),
		resolver.WithClock(func() time.Time { return now }),
	)

	_, ok := cache.Resolve(context.Background(), domain.EntityUsers, "U404")
	assert.False(t, ok)
	_, ok = cache.Resolve(context.Background(), domain.EntityUsers, "U404")
	assert.False(t, ok)

	now = now.Add(2 * time.Minute)
	_, ok = cache.Resolve(context.Background(), domain.EntityUsers, "U404")
	assert.False(t, ok)
	assert.Equal(t, int64(2), cache.Stats().NotFound)
}

func TestCache_NotFoundTTLIgnoresTransientFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityUsers, "U1").
		Return(domain.Failed(domain.ErrAPIRequestFailed)).Times(2)

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes, resolver.WithNotFoundTTL(time.Hour))

	cache.Resolve(context.Background(), domain.EntityUsers, "U1")
	cache.Resolve(context.Background(), domain.EntityUsers, "U1")
}

func TestCache_LookupTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	var sawDeadline atomic.Bool
	fetcher := ports.EntityFetcherFunc(func(ctx context.Context, _ domain.EntityType, id string) domain.FetchResult {
		_, ok := ctx.Deadline()
		sawDeadline.Store(ok)
		return domain.Found(domain.Entity{"id": id})
	})

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes, resolver.WithLookupTimeout(time.Second))
	_, ok := cache.Resolve(context.Background(), domain.EntityAssets, "A1")
	require.True(t, ok)
	assert.True(t, sawDeadline.Load())
}

func TestCache_ConcurrentResolveConverges(t *testing.T) {
	ctrl := gomock.NewController(t)
	var calls atomic.Int64
	release := make(chan struct{})
	fetcher := ports.EntityFetcherFunc(func(_ context.Context, _ domain.EntityType, id string) domain.FetchResult {
		calls.Add(1)
		<-release
		return domain.Found(domain.Entity{"id": id})
	})

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

	const workers = 32
	results := make([]domain.Entity, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = cache.Resolve(context.Background(), domain.EntityAssets, "A1")
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int64(1), calls.Load())
	for _, got := range results {
		assert.Equal(t, domain.Entity{"id": "A1"}, got)
	}
	assert.Equal(t, 1, cache.Len())
}

func TestCache_SeedAndSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)

	seeded := cache.Seed(domain.CacheSnapshot{
		domain.EntityAssets: {
			"A1": {"id": "A1"},
			"":   {"id": ""},
		},
		domain.EntityUsers: {
			"U1": {"id": "U1", "firstName": "Ana"},
		},
	})
	assert.Equal(t, 2, seeded)

	got, ok := cache.Resolve(context.Background(), domain.EntityUsers, "U1")
	require.True(t, ok)
	assert.Equal(t, "Ana", got["firstName"])

	snapshot := cache.Snapshot()
	assert.Len(t, snapshot, 3)
	assert.Empty(t, snapshot[domain.EntityLocations])
	assert.Equal(t, domain.Entity{"id": "A1"}, snapshot[domain.EntityAssets]["A1"])
	assert.Equal(t, 2, snapshot.Len())
}

func TestCache_SeedKeepsExistingEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockEntityFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any(), domain.EntityAssets, "A1").
		Return(domain.Found(domain.Entity{"id": "A1", "v": 1}))

	cache := resolver.New(fetcher, quietLogger(ctrl), allTypes)
	_, _ = cache.Resolve(context.Background(), domain.EntityAssets, "A1")
	cache.Seed(domain.CacheSnapshot{domain.EntityAssets: {"A1": {"id": "A1", "v": 2}}})

	got, _ := cache.Resolve(context.Background(), domain.EntityAssets, "A1")
	assert.Equal(t, 1, got["v"])
}
