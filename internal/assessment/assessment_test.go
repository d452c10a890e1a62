package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mosaic/internal/logging"
)

func loadTestBank(t *testing.T) *Bank {
	t.Helper()
	bank, err := LoadBank(logging.Nop())
	require.NoError(t, err)
	return bank
}

func TestLoadBankReferenceCatalog(t *testing.T) {
	bank := loadTestBank(t)

	assert.Len(t, bank.Questions(), 30)
	for _, d := range Dimensions() {
		assert.Len(t, bank.QuestionsFor(d), 5, "dimension %s", d)
		assert.Equal(t, 25, bank.FullMark(d), "dimension %s", d)
	}
}

func TestLoadBankRejectsBadCatalogs(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{name: "empty", raw: "questions: []"},
		{name: "duplicate id", raw: `
questions:
  - {id: q1, text: "a", dimension: cognitive}
  - {id: q1, text: "b", dimension: cognitive}
`},
		{name: "unknown dimension", raw: `
questions:
  - {id: q1, text: "a", dimension: charisma}
`},
		{name: "missing dimension coverage", raw: `
questions:
  - {id: q1, text: "a", dimension: cognitive}
`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loadBank([]byte(tc.raw), logging.Nop())
			assert.Error(t, err)
		})
	}
}

func TestAggregateEmptyAnswers(t *testing.T) {
	bank := loadTestBank(t)

	scores := Aggregate(AnswerSet{}, bank)

	require.Len(t, scores, len(Dimensions()))
	for i, score := range scores {
		assert.Equal(t, Dimension(i), score.Dimension, "scores must follow catalog order")
		assert.Equal(t, 0, score.Value)
		assert.Equal(t, 25, score.FullMark)
		assert.Equal(t, BandUnderdeveloped, score.Band())
	}
}

func TestAggregateSumsPerDimension(t *testing.T) {
	bank := loadTestBank(t)

	answers := AnswerSet{
		"cog-1": 5, "cog-2": 5, "cog-3": 5, "cog-4": 5, "cog-5": 5,
		"mot-1": 3, "mot-2": 2,
	}
	scores := Aggregate(answers, bank)

	assert.Equal(t, 25, scores[DimensionCognitive].Value)
	assert.Equal(t, BandStrong, scores[DimensionCognitive].Band())
	assert.Equal(t, 5, scores[DimensionMotivation].Value)
	for _, d := range []Dimension{DimensionInfluence, DimensionLeadership, DimensionStrengths, DimensionDevelopment} {
		assert.Equal(t, 0, scores[d].Value)
	}
}

func TestAggregateClampsAndIgnoresMalformedInput(t *testing.T) {
	bank := loadTestBank(t)

	answers := AnswerSet{
		"cog-1":     99,  // clamped to 5
		"cog-2":     -3,  // clamped to 1
		"cog-3":     0,   // clamped to 1
		"not-a-qid": 100, // ignored
	}
	scores := Aggregate(answers, bank)

	assert.Equal(t, 7, scores[DimensionCognitive].Value)
	for _, score := range scores {
		assert.GreaterOrEqual(t, score.Value, 0)
		assert.LessOrEqual(t, score.Value, score.FullMark)
	}
}

func TestAggregateIsDeterministic(t *testing.T) {
	bank := loadTestBank(t)
	answers := AnswerSet{"cog-1": 4, "mot-2": 2, "dev-5": 5}

	first := Aggregate(answers, bank)
	second := Aggregate(answers, bank)

	assert.Equal(t, first, second)
}

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		value int
		want  Band
	}{
		{25, BandStrong},
		{21, BandStrong},
		{20, BandSolid},
		{15, BandSolid},
		{14, BandDeveloping},
		{10, BandDeveloping},
		{9, BandUnderdeveloped},
		{0, BandUnderdeveloped},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Classify(tc.value), "value %d", tc.value)
	}
}

func TestNotableAnswersPicksExtremes(t *testing.T) {
	bank := loadTestBank(t)

	answers := AnswerSet{
		"cog-1": 5,
		"cog-2": 3,
		"mot-1": 1,
		"inf-1": 4,
	}
	notable := NotableAnswers(answers, bank)

	require.Len(t, notable, 2)
	assert.Equal(t, "cog-1", notable[0].Question.ID)
	assert.Equal(t, 5, notable[0].Value)
	assert.Equal(t, "mot-1", notable[1].Question.ID)
	assert.Equal(t, 1, notable[1].Value)
}

func TestDimensionRoundTrip(t *testing.T) {
	for _, d := range Dimensions() {
		parsed, err := ParseDimension(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
		assert.NotEmpty(t, d.Label())
		assert.NotEmpty(t, d.Description())
	}

	_, err := ParseDimension("charisma")
	assert.Error(t, err)
}
