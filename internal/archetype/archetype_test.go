package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/assessment"
)

func scoreVector(values map[assessment.Dimension]int) []assessment.Score {
	scores := make([]assessment.Score, 0, len(assessment.Dimensions()))
	for _, d := range assessment.Dimensions() {
		scores = append(scores, assessment.Score{
			Dimension: d,
			Label:     d.Label(),
			Value:     values[d],
			FullMark:  25,
		})
	}
	return scores
}

func TestResolveDominantSingleDimension(t *testing.T) {
	cases := []struct {
		name     string
		values   map[assessment.Dimension]int
		wantKey  string
		wantName string
	}{
		{
			name:     "dominant cognitive",
			values:   map[assessment.Dimension]int{assessment.DimensionCognitive: 25},
			wantKey:  "strategist",
			wantName: "The Strategist",
		},
		{
			name:    "dominant strengths",
			values:  map[assessment.Dimension]int{assessment.DimensionStrengths: 18, assessment.DimensionCognitive: 3},
			wantKey: "anchor",
		},
		{
			name: "dominant motivation with influence runner-up forms pair",
			values: map[assessment.Dimension]int{
				assessment.DimensionMotivation: 22,
				assessment.DimensionInfluence:  19,
			},
			wantKey: "ambassador",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Resolve(scoreVector(tc.values))
			assert.Equal(t, tc.wantKey, got.Key)
			if tc.wantName != "" {
				assert.Equal(t, tc.wantName, got.Name)
			}
		})
	}
}

func TestResolvePairBeatsSingle(t *testing.T) {
	// Cognitive dominant with leadership runner-up maps to the composite
	// entry, not the plain cognitive archetype.
	got := Resolve(scoreVector(map[assessment.Dimension]int{
		assessment.DimensionCognitive:  24,
		assessment.DimensionLeadership: 20,
		assessment.DimensionMotivation: 5,
	}))
	assert.Equal(t, "architect", got.Key)
}

func TestResolveAllZeroReturnsDefault(t *testing.T) {
	got := Resolve(scoreVector(nil))
	assert.Equal(t, DefaultKey, got.Key)
	assert.Equal(t, Default(), got)
}

func TestResolveTiesBreakByCatalogOrder(t *testing.T) {
	// Influence and leadership tie at the top; influence comes first in
	// catalog order so it wins, with leadership as runner-up.
	got := Resolve(scoreVector(map[assessment.Dimension]int{
		assessment.DimensionInfluence:  20,
		assessment.DimensionLeadership: 20,
	}))
	assert.Equal(t, "mobilizer", got.Key)
}

func TestResolveIsTotalAndDeterministic(t *testing.T) {
	vectors := []map[assessment.Dimension]int{
		nil,
		{assessment.DimensionCognitive: 25, assessment.DimensionMotivation: 25, assessment.DimensionInfluence: 25,
			assessment.DimensionLeadership: 25, assessment.DimensionStrengths: 25, assessment.DimensionDevelopment: 25},
		{assessment.DimensionDevelopment: 1},
		{assessment.DimensionStrengths: 13, assessment.DimensionDevelopment: 13},
	}

	for _, values := range vectors {
		scores := scoreVector(values)
		first := Resolve(scores)
		second := Resolve(scores)
		require.NotEmpty(t, first.Key)
		require.NotEmpty(t, first.Name)
		assert.Equal(t, first, second)
	}
}

func TestCatalogEntriesAreComplete(t *testing.T) {
	for key, a := range Catalog() {
		assert.Equal(t, key, a.Key)
		assert.NotEmpty(t, a.Name, "archetype %s", key)
		assert.NotEmpty(t, a.Motto, "archetype %s", key)
		assert.NotEmpty(t, a.Description, "archetype %s", key)
		assert.NotEmpty(t, a.Focus, "archetype %s", key)
	}

	_, ok := Lookup(DefaultKey)
	require.True(t, ok)

	for _, key := range singleKeys {
		_, ok := Lookup(key)
		assert.True(t, ok, "single table key %s must exist in catalog", key)
	}
	for _, key := range pairKeys {
		_, ok := Lookup(key)
		assert.True(t, ok, "pair table key %s must exist in catalog", key)
	}
}
