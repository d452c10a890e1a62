package roadmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/archetype"
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

func TestSynthesizeAlwaysFourNonEmptyPhases(t *testing.T) {
	vectors := []map[assessment.Dimension]int{
		nil,
		{assessment.DimensionCognitive: 25},
		{assessment.DimensionCognitive: 25, assessment.DimensionMotivation: 25, assessment.DimensionInfluence: 25,
			assessment.DimensionLeadership: 25, assessment.DimensionStrengths: 25, assessment.DimensionDevelopment: 25},
		{assessment.DimensionLeadership: 12, assessment.DimensionInfluence: 19},
	}

	for _, values := range vectors {
		scores := scoreVector(values)
		for _, arch := range archetype.Catalog() {
			phases := Synthesize(scores, arch)

			require.Len(t, phases, PhaseCount)
			assert.Equal(t, "Foundation", phases[0].Title)
			assert.Equal(t, "Momentum", phases[1].Title)
			assert.Equal(t, "Integration", phases[2].Title)
			assert.Equal(t, "Mastery", phases[3].Title)
			for _, phase := range phases {
				assert.NotEmpty(t, phase.Points, "phase %s for archetype %s", phase.Title, arch.Key)
				assert.GreaterOrEqual(t, len(phase.Points), 2)
				assert.LessOrEqual(t, len(phase.Points), 4)
				for _, point := range phase.Points {
					assert.NotEmpty(t, point)
				}
			}
		}
	}
}

func TestSynthesizeTargetsWeakestDimension(t *testing.T) {
	// Everything solid except leadership, which should anchor the plan.
	scores := scoreVector(map[assessment.Dimension]int{
		assessment.DimensionCognitive:   22,
		assessment.DimensionMotivation:  20,
		assessment.DimensionInfluence:   19,
		assessment.DimensionLeadership:  6,
		assessment.DimensionStrengths:   18,
		assessment.DimensionDevelopment: 17,
	})
	phases := Synthesize(scores, archetype.Default())

	assert.Contains(t, phases[0].Points, foundationPoints[assessment.DimensionLeadership])
	assert.Contains(t, phases[1].Points, practicePoints[assessment.DimensionLeadership])
	assert.Contains(t, phases[2].Points, integrationPoints[assessment.DimensionLeadership])
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	scores := scoreVector(map[assessment.Dimension]int{
		assessment.DimensionMotivation: 14,
		assessment.DimensionStrengths:  21,
	})
	arch, ok := archetype.Lookup("anchor")
	require.True(t, ok)

	first := Synthesize(scores, arch)
	second := Synthesize(scores, arch)
	assert.Equal(t, first, second)
}

func TestWeakestDimensionsOrderAndTies(t *testing.T) {
	scores := scoreVector(map[assessment.Dimension]int{
		assessment.DimensionCognitive:   10,
		assessment.DimensionMotivation:  5,
		assessment.DimensionInfluence:   5,
		assessment.DimensionLeadership:  20,
		assessment.DimensionStrengths:   15,
		assessment.DimensionDevelopment: 25,
	})

	weakest := WeakestDimensions(scores, 3)
	// Motivation and influence tie at 5; motivation precedes in catalog order.
	assert.Equal(t, []assessment.Dimension{
		assessment.DimensionMotivation,
		assessment.DimensionInfluence,
		assessment.DimensionCognitive,
	}, weakest)
}

func TestContentTablesCoverEveryDimension(t *testing.T) {
	for _, d := range assessment.Dimensions() {
		assert.NotEmpty(t, foundationPoints[d], "foundation content for %s", d)
		assert.NotEmpty(t, practicePoints[d], "practice content for %s", d)
		assert.NotEmpty(t, integrationPoints[d], "integration content for %s", d)
	}
}

func TestMasteryContentCoversEveryArchetype(t *testing.T) {
	for key := range archetype.Catalog() {
		points, ok := masteryByArchetype[key]
		assert.True(t, ok, "mastery content for archetype %s", key)
		assert.NotEmpty(t, points)
	}

	// Unknown keys fall back to the default archetype's points.
	unknown := archetype.Archetype{Key: "not-in-catalog"}
	assert.Equal(t, masteryByArchetype[archetype.DefaultKey], masteryPoints(unknown))
}
