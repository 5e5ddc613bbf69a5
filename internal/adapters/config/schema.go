package config

import "time"

// File is the structure of wodl.yaml.
type File struct {
	API    APIDTO    `yaml:"api"`
	Cache  CacheDTO  `yaml:"cache"`
	Export ExportDTO `yaml:"export"`
	Enrich EnrichDTO `yaml:"enrich"`
}

// APIDTO configures the upstream API.
type APIDTO struct {
	BaseURL        string         `yaml:"baseURL"`
	WorkOrderLimit *int           `yaml:"workOrderLimit"`
	LookupTimeout  *time.Duration `yaml:"lookupTimeout"`
}

// CacheDTO configures the persisted entity cache.
type CacheDTO struct {
	Dir         string         `yaml:"dir"`
	Reuse       string         `yaml:"reuse"`
	NotFoundTTL *time.Duration `yaml:"notFoundTTL"`
}

// ExportDTO configures the CSV export.
type ExportDTO struct {
	Dir       string `yaml:"dir"`
	Separator string `yaml:"separator"`
}

// EnrichDTO configures the batch driver and its strategies.
type EnrichDTO struct {
	Concurrency   *int          `yaml:"concurrency"`
	ProgressEvery *int          `yaml:"progressEvery"`
	Strategies    []StrategyDTO `yaml:"strategies"`
}

// StrategyDTO is one replacement strategy.
type StrategyDTO struct {
	Kind   string        `yaml:"kind"`
	Keep   []string      `yaml:"keep"`
	Fields []FieldRefDTO `yaml:"fields"`
}

// FieldRefDTO binds a record field to an entity type.
type FieldRefDTO struct {
	Field  string `yaml:"field"`
	Entity string `yaml:"entity"`
}
