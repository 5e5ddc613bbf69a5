package domain

import "time"

// StrategyKind selects a field replacement policy.
type StrategyKind string

const (
	// StrategyFull replaces the reference with the whole entity.
	StrategyFull StrategyKind = "full"
	// StrategySelect replaces the reference with a subset of the entity fields.
	StrategySelect StrategyKind = "select"
	// StrategyFullName replaces a user reference with its id and display name.
	StrategyFullName StrategyKind = "fullName"
)

// ReuseMode decides how an existing persisted cache is treated.
type ReuseMode string

const (
	// ReuseAsk asks the operator.
	ReuseAsk ReuseMode = "ask"
	// ReuseAlways loads the persisted cache without asking.
	ReuseAlways ReuseMode = "always"
	// ReuseNever ignores the persisted cache and refreshes it after the run.
	ReuseNever ReuseMode = "never"
)

// FieldRef binds a record field to the entity type its identifier points at.
type FieldRef struct {
	Field  string
	Entity EntityType
}

// StrategySpec configures one replacement strategy.
type StrategySpec struct {
	Kind   StrategyKind
	Keep   []string
	Fields []FieldRef
}

// APIConfig configures the upstream API.
type APIConfig struct {
	BaseURL        string
	WorkOrderLimit int
	LookupTimeout  time.Duration
}

// CacheConfig configures the persisted entity cache.
type CacheConfig struct {
	Dir         string
	Reuse       ReuseMode
	NotFoundTTL time.Duration
}

// ExportConfig configures the CSV export.
type ExportConfig struct {
	Dir       string
	Separator string
}

// EnrichConfig configures the batch driver.
type EnrichConfig struct {
	Concurrency   int
	ProgressEvery int
	Strategies    []StrategySpec
}

// Config is the complete run configuration.
type Config struct {
	API    APIConfig
	Cache  CacheConfig
	Export ExportConfig
	Enrich EnrichConfig
}

// EntityTypes returns the distinct entity types referenced by the strategies,
// in order of first appearance.
func (c *Config) EntityTypes() []EntityType {
	seen := make(map[EntityType]bool)
	var types []EntityType
	for _, spec := range c.Enrich.Strategies {
		for _, ref := range spec.Fields {
			if seen[ref.Entity] {
				continue
			}
			seen[ref.Entity] = true
			types = append(types, ref.Entity)
		}
	}
	return types
}
