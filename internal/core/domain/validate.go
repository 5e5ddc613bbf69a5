package domain

import "go.trai.ch/zerr"

// Validate checks the configuration, including values set by command-line flags.
func (c *Config) Validate() error {
	switch {
	case c.API.BaseURL == "":
		return invalid("api.baseURL", "must not be empty")
	case c.API.WorkOrderLimit <= 0:
		return invalid("api.workOrderLimit", "must be positive")
	case c.API.LookupTimeout < 0:
		return invalid("api.lookupTimeout", "must not be negative")
	case c.Cache.Dir == "":
		return invalid("cache.dir", "must not be empty")
	case c.Cache.NotFoundTTL < 0:
		return invalid("cache.notFoundTTL", "must not be negative")
	case c.Export.Dir == "":
		return invalid("export.dir", "must not be empty")
	case c.Enrich.Concurrency <= 0:
		return invalid("enrich.concurrency", "must be positive")
	case c.Enrich.ProgressEvery <= 0:
		return invalid("enrich.progressEvery", "must be positive")
	}

	switch c.Cache.Reuse {
	case ReuseAsk, ReuseAlways, ReuseNever:
	default:
		return zerr.With(ErrInvalidReuseMode, "reuse", string(c.Cache.Reuse))
	}

	for i, spec := range c.Enrich.Strategies {
		if err := validateStrategy(spec); err != nil {
			return zerr.With(err, "strategy", i)
		}
	}
	return nil
}

func validateStrategy(spec StrategySpec) error {
	switch spec.Kind {
	case StrategyFull, StrategyFullName:
	case StrategySelect:
		if len(spec.Keep) == 0 {
			return invalid("keep", "select strategies need at least one field to keep")
		}
	default:
		return zerr.With(ErrUnknownStrategy, "kind", string(spec.Kind))
	}

	if len(spec.Fields) == 0 {
		return invalid("fields", "must not be empty")
	}
	for _, ref := range spec.Fields {
		if ref.Field == "" {
			return invalid("field", "must not be empty")
		}
		if ref.Entity == "" {
			return zerr.With(invalid("entity", "must not be empty"), "field", ref.Field)
		}
	}
	return nil
}

func invalid(key, reason string) error {
	return zerr.With(zerr.With(ErrInvalidConfig, "key", key), "reason", reason)
}
