// Package enrich replaces foreign-key references in work-order records with
// data from the referenced entities.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	firstNameField = "firstName"
	lastNameField  = "lastName"
	fullNameField  = "fullName"
)

// Strategy rewrites the configured reference fields of a record in place.
// A strategy never fails: whatever cannot be resolved is left as a placeholder.
type Strategy interface {
	Apply(ctx context.Context, rec domain.Record)
}

// replacement builds the value spliced into the record from a resolved entity.
type replacement func(e domain.Entity) map[string]any

type fieldStrategy struct {
	resolver ports.EntityResolver
	fields   []domain.FieldRef
	replace  replacement
}

// Apply implements Strategy.
func (s *fieldStrategy) Apply(ctx context.Context, rec domain.Record) {
	for _, ref := range s.fields {
		id, ok := reference(rec, ref.Field)
		if !ok {
			continue
		}

		e, ok := s.resolver.Resolve(ctx, ref.Entity, id)
		if !ok {
			continue
		}

		rec[ref.Field] = s.replace(e)
	}
}

// reference normalises rec[field] into a structured reference and returns its id.
// A bare scalar becomes {"id": scalar}, so that a failed resolution still leaves a
// mapping behind. It reports false when the field is absent or carries no id.
func reference(rec domain.Record, field string) (any, bool) {
	v, ok := rec[field]
	if !ok {
		return nil, false
	}

	var ref map[string]any
	switch m := v.(type) {
	case map[string]any:
		ref = m
	case domain.Entity:
		ref = m
	case domain.Record:
		ref = m
	default:
		ref = map[string]any{domain.IDField: v}
		rec[field] = ref
	}

	id, ok := ref[domain.IDField]
	return id, ok
}

// NewFullData replaces each reference with the whole entity.
func NewFullData(resolver ports.EntityResolver, fields []domain.FieldRef) Strategy {
	return &fieldStrategy{
		resolver: resolver,
		fields:   fields,
		replace: func(e domain.Entity) map[string]any {
			return e
		},
	}
}

// NewSelectFields replaces each reference with the listed entity fields.
// Fields missing on the entity are omitted.
func NewSelectFields(resolver ports.EntityResolver, fields []domain.FieldRef, keep []string) Strategy {
	keep = append([]string(nil), keep...)
	return &fieldStrategy{
		resolver: resolver,
		fields:   fields,
		replace: func(e domain.Entity) map[string]any {
			out := make(map[string]any, len(keep))
			for _, key := range keep {
				if v, ok := e[key]; ok {
					out[key] = v
				}
			}
			return out
		},
	}
}

// NewFullName replaces each user reference with {"id", "fullName"}.
func NewFullName(resolver ports.EntityResolver, fields []domain.FieldRef) Strategy {
	return &fieldStrategy{
		resolver: resolver,
		fields:   fields,
		replace:  fullName,
	}
}

func fullName(e domain.Entity) map[string]any {
	out := make(map[string]any, 2)
	if id, ok := e[domain.IDField]; ok {
		out[domain.IDField] = id
	}

	parts := make([]string, 0, 2)
	for _, key := range []string{firstNameField, lastNameField} {
		if s := nameText(e[key]); s != "" {
			parts = append(parts, s)
		}
	}
	out[fullNameField] = strings.Join(parts, " ")
	return out
}

func nameText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// NewStrategy builds the strategy described by spec.
func NewStrategy(spec domain.StrategySpec, resolver ports.EntityResolver) (Strategy, error) {
	switch spec.Kind {
	case domain.StrategyFull:
		return NewFullData(resolver, spec.Fields), nil
	case domain.StrategySelect:
		return NewSelectFields(resolver, spec.Fields, spec.Keep), nil
	case domain.StrategyFullName:
		return NewFullName(resolver, spec.Fields), nil
	default:
		return nil, zerr.With(domain.ErrUnknownStrategy, "kind", string(spec.Kind))
	}
}

// NewStrategies builds the strategies in configured order.
func NewStrategies(specs []domain.StrategySpec, resolver ports.EntityResolver) ([]Strategy, error) {
	strategies := make([]Strategy, 0, len(specs))
	for _, spec := range specs {
		s, err := NewStrategy(spec, resolver)
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, s)
	}
	return strategies, nil
}
