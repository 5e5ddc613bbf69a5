package enrich_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/wodl/internal/core/ports/mocks"
	"go.trai.ch/wodl/internal/engine/enrich"
	"go.uber.org/mock/gomock"
)

func TestFullData_ReplacesReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mocks.NewMockEntityResolver(ctrl)
	asset := domain.Entity{"id": "A1", "category": "HVAC"}
	res.EXPECT().Resolve(gomock.Any(), domain.EntityAssets, "A1").Return(asset, true)

	rec := domain.Record{"id": "W1", "asset": "A1"}
	enrich.NewFullData(res, []domain.FieldRef{{Field: "asset", Entity: domain.EntityAssets}}).
		Apply(context.Background(), rec)

	assert.Equal(t, map[string]any{"id": "A1", "category": "HVAC"}, rec["asset"])
}

func TestFullData_LeavesPlaceholderOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mocks.NewMockEntityResolver(ctrl)
	res.EXPECT().Resolve(gomock.Any(), domain.EntityLocations, "L1").Return(nil, false)

	rec := domain.Record{"location": "L1"}
	enrich.NewFullData(res, []domain.FieldRef{{Field: "location", Entity: domain.EntityLocations}}).
		Apply(context.Background(), rec)

	assert.Equal(t, map[string]any{"id": "L1"}, rec["location"])
}

func TestStrategies_SkipAbsentFieldsAndReferencesWithoutID(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mocks.NewMockEntityResolver(ctrl)

	noID := map[string]any{"name": "orphan"}
	rec := domain.Record{"asset": noID}
	refs := []domain.FieldRef{
		{Field: "asset", Entity: domain.EntityAssets},
		{Field: "location", Entity: domain.EntityLocations},
	}

	enrich.NewFullData(res, refs).Apply(context.Background(), rec)
	enrich.NewSelectFields(res, refs, []string{"id"}).Apply(context.Background(), rec)
	enrich.NewFullName(res, refs).Apply(context.Background(), rec)

	assert.Equal(t, domain.Record{"asset": noID}, rec)
	assert.NotContains(t, rec, "location")
}

func TestSelectFields_KeepsOnlyPresentFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mocks.NewMockEntityResolver(ctrl)
	res.EXPECT().Resolve(gomock.Any(), domain.EntityLocations, "L1").
		Return(domain.Entity{"id": "L1", "name": "Plant", "address": "1 Main St"}, true)

	rec := domain.Record{"location": map[string]any{"id": "L1"}}
	enrich.NewSelectFields(res,
		[]domain.FieldRef{{Field: "location", Entity: domain.EntityLocations}},
		[]string{"id", "name", "barcode"},
	).Apply(context.Background(), rec)

	assert.Equal(t, map[string]any{"id": "L1", "name": "Plant"}, rec["location"])
}

func TestFullName(t *testing.T) {
	tests := []struct {
		name   string
		entity domain.Entity
		want   map[string]any
	}{
		{
			name:   "first and last",
			entity: domain.Entity{"id": "U1", "firstName": "Ana", "lastName": "Lima"},
			want:   map[string]any{"id": "U1", "fullName": "Ana Lima"},
		},
		{
			name:   "first only",
			entity: domain.Entity{"id": "U9", "firstName": "Ana"},
			want:   map[string]any{"id": "U9", "fullName": "Ana"},
		},
		{
			name:   "last only",
			entity: domain.Entity{"id": "U2", "lastName": "Lima"},
			want:   map[string]any{"id": "U2", "fullName": "Lima"},
		},
		{
			name:   "empty first name",
			entity: domain.Entity{"id": "U3", "firstName": "", "lastName": "Lima"},
			want:   map[string]any{"id": "U3", "fullName": "Lima"},
		},
		{
			name:   "no names",
			entity: domain.Entity{"id": "U4"},
			want:   map[string]any{"id": "U4", "fullName": ""},
		},
		{
			name:   "no id",
			entity: domain.Entity{"firstName": " Ana ", "lastName": nil},
			want:   map[string]any{"fullName": "Ana"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			res := mocks.NewMockEntityResolver(ctrl)
			res.EXPECT().Resolve(gomock.Any(), domain.EntityUsers, "ref").Return(tt.entity, true)

			rec := domain.Record{"assignedToUser": "ref"}
			enrich.NewFullName(res, []domain.FieldRef{{Field: "assignedToUser", Entity: domain.EntityUsers}}).
				Apply(context.Background(), rec)

			assert.Equal(t, tt.want, rec["assignedToUser"])
			name, _ := rec["assignedToUser"].(map[string]any)["fullName"].(string)
			assert.NotContains(t, name, "  ")
			assert.Equal(t, strings.TrimSpace(name), name)
		})
	}
}

func TestNormalisationIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mocks.NewMockEntityResolver(ctrl)
	res.EXPECT().Resolve(gomock.Any(), domain.EntityAssets, "A1").
		Return(domain.Entity{"id": "A1", "name": "Pump"}, true).Times(2)
	res.EXPECT().Resolve(gomock.Any(), domain.EntityAssets, "A2").Return(nil, false).Times(2)

	refs := []domain.FieldRef{{Field: "asset", Entity: domain.EntityAssets}, {Field: "parent", Entity: domain.EntityAssets}}
	bare := domain.Record{"asset": "A1", "parent": "A2"}
	structured := domain.Record{"asset": map[string]any{"id": "A1"}, "parent": map[string]any{"id": "A2"}}

	s := enrich.NewSelectFields(res, refs, []string{"name"})
	s.Apply(context.Background(), bare)
	s.Apply(context.Background(), structured)

	assert.Equal(t, bare, structured)
}

func TestNewStrategy(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mocks.NewMockEntityResolver(ctrl)

	for _, kind := range []domain.StrategyKind{domain.StrategyFull, domain.StrategySelect, domain.StrategyFullName} {
		s, err := enrich.NewStrategy(domain.StrategySpec{Kind: kind}, res)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}

	_, err := enrich.NewStrategies([]domain.StrategySpec{{Kind: "explode"}}, res)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownStrategy.Error())
}
