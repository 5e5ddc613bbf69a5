package csvexport

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"

	"go.trai.ch/wodl/internal/core/domain"
)

// row is one flattened record: column name to cell text.
type row map[string]string

// table collects flattened rows and the union of their columns in order of first appearance.
type table struct {
	separator string
	columns   []string
	seen      map[string]bool
	rows      []row
}

func newTable(separator string) *table {
	return &table{
		separator: separator,
		seen:      make(map[string]bool),
	}
}

// add flattens rec. Keys of one mapping are visited in sorted order, so column order only
// depends on the order of the records.
func (t *table) add(rec domain.Record) {
	r := make(row, len(rec))
	t.flatten(r, "", rec)
	t.rows = append(t.rows, r)
}

func (t *table) flatten(r row, prefix string, m map[string]any) {
	for _, key := range slices.Sorted(maps.Keys(m)) {
		column := key
		if prefix != "" {
			column = prefix + t.separator + key
		}

		if nested, ok := asMapping(m[key]); ok {
			t.flatten(r, column, nested)
			continue
		}

		if !t.seen[column] {
			t.seen[column] = true
			t.columns = append(t.columns, column)
		}
		r[column] = cell(m[key])
	}
}

func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case domain.Entity:
		return m, true
	case domain.Record:
		return m, true
	default:
		return nil, false
	}
}

// cell renders a scalar. Lists are rendered as JSON.
func cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case []any:
		data, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(data)
	default:
		return fmt.Sprint(x)
	}
}
