// Package app implements the application layer for wodl.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
	"go.trai.ch/wodl/internal/engine/enrich"
	"go.trai.ch/wodl/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// logoutTimeout bounds the sign-out request issued after a cancelled run.
const logoutTimeout = 10 * time.Second

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	upstream     ports.Upstream
	store        ports.CacheStore
	sink         ports.RecordSink
	prompter     ports.Prompter
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	upstream ports.Upstream,
	store ports.CacheStore,
	sink ports.RecordSink,
	prompter ports.Prompter,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		logger:       log,
		upstream:     upstream,
		store:        store,
		sink:         sink,
		prompter:     prompter,
		telemetry:    telemetry,
	}
}

// ExportOptions are the command-line overrides of an export run.
// Zero values keep the configured setting.
type ExportOptions struct {
	ConfigPath  string
	Email       string
	Reuse       domain.ReuseMode
	Concurrency int
	OutDir      string
	CacheDir    string
}

// Export signs in, downloads the work orders, replaces their references with entity data and
// writes the result to a CSV file. Cache problems only produce warnings.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	creds, err := a.prompter.Credentials(ctx, domain.Credentials{Email: opts.Email})
	if err != nil {
		return err
	}

	session, err := a.upstream.Login(ctx, cfg.API.BaseURL, creds)
	if err != nil {
		return err
	}
	a.logger.Info("Auth token successfully generated")
	if !session.ExpiresAt.IsZero() {
		a.logger.Info("Auth token will expire on " + session.ExpiresAt.Local().Format(time.RFC1123))
	}
	defer a.logout(ctx, session)

	a.logger.Info("Fetching all work orders...")
	orders, err := a.upstream.ListWorkOrders(ctx, session, cfg.API.WorkOrderLimit)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Loaded %d work orders", len(orders)))

	types := cfg.EntityTypes()
	fetcher := ports.EntityFetcherFunc(func(ctx context.Context, t domain.EntityType, id string) domain.FetchResult {
		return a.upstream.FetchEntity(ctx, session, t, id)
	})
	cache := resolver.New(fetcher, a.logger, types,
		resolver.WithLookupTimeout(cfg.API.LookupTimeout),
		resolver.WithNotFoundTTL(cfg.Cache.NotFoundTTL),
	)

	snapshot, loaded, err := a.store.Load(ctx, cfg.Cache.Dir, types, a.reusePolicy(cfg.Cache.Reuse))
	if errors.Is(err, domain.ErrPromptAborted) {
		return err
	}
	if err != nil {
		a.logger.Warn(fmt.Sprintf("Cannot use file cache in %s: %v", cfg.Cache.Dir, err))
		loaded = false
	}
	if loaded {
		cache.Seed(snapshot)
	}

	strategies, err := enrich.NewStrategies(cfg.Enrich.Strategies, cache)
	if err != nil {
		return err
	}
	driver := enrich.NewDriver(strategies,
		enrich.WithConcurrency(cfg.Enrich.Concurrency),
		enrich.WithProgress(cfg.Enrich.ProgressEvery, func(done, total int) {
			a.logger.Info(fmt.Sprintf("Progress: %d/%d", done, total))
		}),
	)

	a.logger.Info("Replacing references with entity data...")
	enriched, err := driver.Run(ctx, orders)
	if err != nil {
		return err
	}

	path, err := a.sink.Write(ctx, cfg.Export.Dir, cfg.Export.Separator, enriched)
	if err != nil {
		return err
	}
	a.logger.Info("Exported work orders to " + path)

	if !loaded {
		n, err := a.store.Save(ctx, cfg.Cache.Dir, cache.Snapshot())
		if err != nil {
			a.logger.Warn(fmt.Sprintf("Failed to save file cache in %s: %v", cfg.Cache.Dir, err))
		} else {
			a.logger.Info(fmt.Sprintf("Saved %d entities to %s", n, cfg.Cache.Dir))
		}
	}

	a.logStats(cache.Stats())
	return nil
}

func (a *App) loadConfig(opts ExportOptions) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Reuse != "" {
		cfg.Cache.Reuse = opts.Reuse
	}
	if opts.Concurrency != 0 {
		cfg.Enrich.Concurrency = opts.Concurrency
	}
	if opts.OutDir != "" {
		cfg.Export.Dir = opts.OutDir
	}
	if opts.CacheDir != "" {
		cfg.Cache.Dir = opts.CacheDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reusePolicy maps the configured reuse mode to a decision. Only ask involves the operator.
func (a *App) reusePolicy(mode domain.ReuseMode) ports.ReusePolicy {
	switch mode {
	case domain.ReuseAlways:
		return ports.ReusePolicyFunc(func(context.Context, domain.CacheFreshness) (bool, error) {
			return true, nil
		})
	case domain.ReuseNever:
		return ports.ReusePolicyFunc(func(context.Context, domain.CacheFreshness) (bool, error) {
			return false, nil
		})
	default:
		return a.prompter
	}
}

// logout revokes the session even when ctx has been cancelled.
func (a *App) logout(ctx context.Context, session domain.Session) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
	defer cancel()

	a.logger.Info("Signing out, deleting auth token")
	if err := a.upstream.Logout(ctx, session); err != nil {
		a.logger.Warn(fmt.Sprintf("Sign-out failed: %v", err))
	}
}

func (a *App) logStats(stats resolver.Stats) {
	a.logger.Info(fmt.Sprintf("References resolved from cache: %d, fetched: %d, not found: %d, failed: %d",
		stats.Hits, stats.Fetches-stats.NotFound-stats.Failures, stats.NotFound, stats.Failures))

	if summary := a.telemetry.Summary(); summary.Lookups > 0 {
		a.logger.Debug(fmt.Sprintf("%d API lookups, %d failed, average %s",
			summary.Lookups, summary.Failed, summary.Average().Round(time.Millisecond)))
	}
}

// CacheStatus reports the size and age of the persisted entity cache.
func (a *App) CacheStatus(_ context.Context, configPath string) (domain.CacheFreshness, error) {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return domain.CacheFreshness{}, err
	}

	f, err := a.store.Freshness(cfg.Cache.Dir, cfg.EntityTypes())
	if err != nil {
		return domain.CacheFreshness{}, zerr.With(err, "dir", cfg.Cache.Dir)
	}

	a.logger.Debug(fmt.Sprintf("Inspected file cache in %s", cfg.Cache.Dir))
	return f, nil
}

// CleanCache removes the persisted entity cache.
func (a *App) CleanCache(_ context.Context, configPath string) error {
	cfg, err := a.configLoader.Load(configPath)
	if err != nil {
		return err
	}

	n, err := a.store.Clear(cfg.Cache.Dir, cfg.EntityTypes())
	if err != nil {
		return zerr.With(err, "dir", cfg.Cache.Dir)
	}
	a.logger.Info(fmt.Sprintf("Removed %d cached entities from %s", n, cfg.Cache.Dir))
	return nil
}
