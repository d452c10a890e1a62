package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/assessment"
	"mosaic/internal/llm"
	"mosaic/internal/logging"
	"mosaic/internal/narrative"
	"mosaic/internal/pricing"
	"mosaic/internal/roadmap"
)

func newTestGenerator(t *testing.T, enricher narrative.Enricher) *Generator {
	t.Helper()
	bank, err := assessment.LoadBank(logging.Nop())
	require.NoError(t, err)
	table, err := narrative.LoadTable()
	require.NoError(t, err)
	gen, err := NewGenerator(bank, table, enricher, WithLogger(logging.Nop()))
	require.NoError(t, err)
	return gen
}

func TestGenerateEmptyAnswers(t *testing.T) {
	gen := newTestGenerator(t, nil)

	rep, err := gen.Generate(context.Background(), Profile{Name: "Ada", Category: pricing.CategoryStudent}, assessment.AnswerSet{})
	require.NoError(t, err)

	require.Len(t, rep.Scores, 6)
	for i, s := range rep.Scores {
		assert.Equal(t, assessment.Dimension(i), s.Dimension)
		assert.Equal(t, 0, s.Value)
		assert.Equal(t, assessment.BandUnderdeveloped, s.Band)
	}
	assert.Equal(t, "explorer", rep.Archetype.Key)
	require.Len(t, rep.Roadmap, roadmap.PhaseCount)
	require.Len(t, rep.Analyses, 6)
	for _, a := range rep.Analyses {
		assert.NotEmpty(t, a.Narrative)
		assert.NotEmpty(t, a.Implications)
		assert.NotEmpty(t, a.Recommendations)
	}
	require.NotNil(t, rep.Enrichment)
	assert.Equal(t, "canned", rep.Enrichment.Source)
	assert.True(t, rep.Tier.Free)
	assert.Zero(t, rep.Tier.PriceCents)
	assert.NotEmpty(t, rep.ID)
}

func TestGenerateDominantDimension(t *testing.T) {
	gen := newTestGenerator(t, nil)

	answers := assessment.AnswerSet{
		"cog-1": 5, "cog-2": 5, "cog-3": 5, "cog-4": 5, "cog-5": 5,
	}
	rep, err := gen.Generate(context.Background(), Profile{Category: pricing.CategoryProfessional}, answers)
	require.NoError(t, err)

	cognitive := rep.Scores[assessment.DimensionCognitive]
	assert.Equal(t, 25, cognitive.Value)
	assert.Equal(t, 25, cognitive.FullMark)
	assert.Equal(t, assessment.BandStrong, cognitive.Band)
	assert.Equal(t, "strategist", rep.Archetype.Key)
	assert.Equal(t, 4900, rep.Tier.PriceCents)
	assert.False(t, rep.Tier.Free)
}

func TestGenerateServesIdenticalReportsFromCache(t *testing.T) {
	gen := newTestGenerator(t, nil)
	profile := Profile{Name: "Ada", Email: "ada@example.com", Category: pricing.CategoryStudent}
	answers := assessment.AnswerSet{"mot-1": 4, "lea-2": 2}

	first, err := gen.Generate(context.Background(), profile, answers)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), profile, answers)
	require.NoError(t, err)

	assert.Same(t, first, second, "identical input must hit the cache")
}

func TestGenerateCacheKeyIgnoresMapOrderButNotContent(t *testing.T) {
	profile := Profile{Email: "x@example.com"}
	a := assessment.AnswerSet{"cog-1": 5, "mot-1": 3}
	b := assessment.AnswerSet{"mot-1": 3, "cog-1": 5}
	c := assessment.AnswerSet{"cog-1": 5, "mot-1": 4}

	assert.Equal(t, cacheKey(profile, a), cacheKey(profile, b))
	assert.NotEqual(t, cacheKey(profile, a), cacheKey(profile, c))
	assert.NotEqual(t, cacheKey(Profile{Email: "y@example.com"}, a), cacheKey(profile, a))
}

func TestGenerateUsesRemoteEnrichmentWhenAvailable(t *testing.T) {
	bank, err := assessment.LoadBank(logging.Nop())
	require.NoError(t, err)
	table, err := narrative.LoadTable()
	require.NoError(t, err)

	client := &llm.MockClient{Responses: []string{`{
		"executive_summary": "Remote summary.",
		"superpower_analysis": "Remote superpower.",
		"blindspot_warning": "Remote blindspot.",
		"immediate_actions": ["Remote action."]
	}`}}
	enricher := narrative.NewLLMEnricher(client, narrative.NewCannedEnricher(table))
	gen, err := NewGenerator(bank, table, enricher, WithLogger(logging.Nop()))
	require.NoError(t, err)

	rep, err := gen.Generate(context.Background(), Profile{}, assessment.AnswerSet{"cog-1": 5})
	require.NoError(t, err)
	require.NotNil(t, rep.Enrichment)
	assert.Equal(t, "remote", rep.Enrichment.Source)
	assert.Equal(t, "Remote summary.", rep.Enrichment.ExecutiveSummary)
}

func TestNewGeneratorValidatesInputs(t *testing.T) {
	table, err := narrative.LoadTable()
	require.NoError(t, err)

	_, err = NewGenerator(nil, table, nil)
	assert.Error(t, err)

	bank, err := assessment.LoadBank(logging.Nop())
	require.NoError(t, err)
	_, err = NewGenerator(bank, nil, nil)
	assert.Error(t, err)
}
