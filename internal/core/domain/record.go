// Package domain contains the core types of the work-order export.
package domain

import (
	"encoding/json"
	"maps"
	"strconv"
)

// IDField is the key every record and entity carries its identifier under.
const IDField = "id"

// Record is one work order as returned by the upstream API.
// Values are scalars, nested mappings, lists, or bare foreign-key identifiers.
type Record map[string]any

// Clone returns a shallow copy of the record.
// Nested values are shared; enrichment only ever replaces top-level values.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// ID returns the canonical identifier of the record.
func (r Record) ID() (string, bool) {
	return IDString(r[IDField])
}

// Entity is a fetched related object (asset, location or user).
// It is never mutated after it has been fetched.
type Entity map[string]any

// ID returns the canonical identifier of the entity.
func (e Entity) ID() (string, bool) {
	return IDString(e[IDField])
}

// EntityType names a family of related records. It equals the API path segment.
type EntityType string

const (
	// EntityAssets is the asset entity type.
	EntityAssets EntityType = "assets"
	// EntityLocations is the location entity type.
	EntityLocations EntityType = "locations"
	// EntityUsers is the user entity type.
	EntityUsers EntityType = "users"
)

// IDString renders an identifier value in its canonical string form.
// It reports false for nil, empty strings and values that cannot be identifiers.
func IDString(v any) (string, bool) {
	var s string
	switch id := v.(type) {
	case nil:
		return "", false
	case string:
		s = id
	case json.Number:
		s = id.String()
	case float64:
		s = strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		s = strconv.Itoa(id)
	case int64:
		s = strconv.FormatInt(id, 10)
	default:
		return "", false
	}
	return s, s != ""
}
