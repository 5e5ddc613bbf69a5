package domain

import "time"

// LookupSummary aggregates the traced upstream entity lookups of a run.
type LookupSummary struct {
	Lookups int
	Failed  int
	Total   time.Duration
}

// Average returns the mean lookup duration.
func (s LookupSummary) Average() time.Duration {
	if s.Lookups == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Lookups)
}
