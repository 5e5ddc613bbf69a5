package config

import "go.trai.ch/wodl/internal/core/domain"

// Defaults returns the configuration used when no wodl.yaml exists.
func Defaults() *domain.Config {
	return &domain.Config{
		API: domain.APIConfig{
			BaseURL:        domain.DefaultBaseURL,
			WorkOrderLimit: domain.DefaultWorkOrderLimit,
			LookupTimeout:  domain.DefaultLookupTimeout,
		},
		Cache: domain.CacheConfig{
			Dir:   domain.DefaultCacheDir,
			Reuse: domain.ReuseAsk,
		},
		Export: domain.ExportConfig{
			Dir:       domain.DefaultExportDir,
			Separator: domain.DefaultSeparator,
		},
		Enrich: domain.EnrichConfig{
			Concurrency:   1,
			ProgressEvery: domain.DefaultProgressEvery,
			Strategies:    DefaultStrategies(),
		},
	}
}

// DefaultStrategies expands full entity data for assets and locations and reduces
// user references to their display name.
func DefaultStrategies() []domain.StrategySpec {
	return []domain.StrategySpec{
		{
			Kind: domain.StrategyFull,
			Fields: []domain.FieldRef{
				{Field: "asset", Entity: domain.EntityAssets},
				{Field: "location", Entity: domain.EntityLocations},
				{Field: "objectLocationForWorkOrder", Entity: domain.EntityLocations},
			},
		},
		{
			Kind: domain.StrategyFullName,
			Fields: []domain.FieldRef{
				{Field: "completedByUser", Entity: domain.EntityUsers},
				{Field: "assignedByUser", Entity: domain.EntityUsers},
				{Field: "assignedToUser", Entity: domain.EntityUsers},
				{Field: "updatedBy", Entity: domain.EntityUsers},
			},
		},
	}
}
