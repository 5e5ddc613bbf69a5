package domain

import (
	"fmt"
	"time"
)

// CacheSnapshot holds resolved entities grouped by type and keyed by their own id.
type CacheSnapshot map[EntityType]map[string]Entity

// Len returns the number of entities across all types.
func (s CacheSnapshot) Len() int {
	n := 0
	for _, entities := range s {
		n += len(entities)
	}
	return n
}

// CacheFreshness summarises the persisted cache.
// It is derived from file modification times and only informs the reuse decision.
type CacheFreshness struct {
	Files  int
	Oldest time.Time
	Age    time.Duration
}

// Empty reports whether no persisted entries were found.
func (f CacheFreshness) Empty() bool {
	return f.Files == 0
}

// FormatAge renders the age as hours, minutes and seconds, e.g. "2h5m9s".
func (f CacheFreshness) FormatAge() string {
	age := f.Age
	if age < 0 {
		age = 0
	}
	total := int64(age / time.Second)
	return fmt.Sprintf("%dh%dm%ds", total/3600, (total%3600)/60, total%60)
}
