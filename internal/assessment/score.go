package assessment

const (
	minAnswerValue = 1
	maxAnswerValue = 5

	// questionsPerDimension is the reference configuration; the aggregator
	// never assumes it, but the band thresholds do (see band.go).
	questionsPerDimension = 5
)

// AnswerSet maps question ids to Likert values in [1,5]. The set may be
// partial: unanswered questions contribute 0 to their dimension's sum.
type AnswerSet map[string]int

// Score is one dimension's aggregated result.
type Score struct {
	Dimension Dimension `json:"dimension"`
	Label     string    `json:"label"`
	Value     int       `json:"value"`
	FullMark  int       `json:"full_mark"`
}

// Band returns the qualitative classification of this score.
func (s Score) Band() Band {
	return Classify(s.Value)
}

// Aggregate reduces raw answers into one Score per dimension, in catalog
// order. Unanswered questions count as 0, out-of-range values are clamped
// into [1,5], and unknown question ids are ignored; scoring always produces
// a result for any partial or malformed answer set.
func Aggregate(answers AnswerSet, bank *Bank) []Score {
	scores := make([]Score, 0, dimensionCount)
	for _, d := range Dimensions() {
		sum := 0
		for _, q := range bank.QuestionsFor(d) {
			value, ok := answers[q.ID]
			if !ok {
				continue
			}
			sum += clampAnswer(value)
		}
		scores = append(scores, Score{
			Dimension: d,
			Label:     d.Label(),
			Value:     sum,
			FullMark:  bank.FullMark(d),
		})
	}
	return scores
}

func clampAnswer(value int) int {
	if value < minAnswerValue {
		return minAnswerValue
	}
	if value > maxAnswerValue {
		return maxAnswerValue
	}
	return value
}

// NotableAnswer is an answer at either extreme of the Likert scale. The
// enrichment prompt surfaces these as concrete signals.
type NotableAnswer struct {
	Question Question `json:"question"`
	Value    int      `json:"value"`
}

// NotableAnswers returns answered questions whose recorded value sits at
// the scale's extremes (1 or 5), in catalog order.
func NotableAnswers(answers AnswerSet, bank *Bank) []NotableAnswer {
	var notable []NotableAnswer
	for _, q := range bank.Questions() {
		value, ok := answers[q.ID]
		if !ok {
			continue
		}
		clamped := clampAnswer(value)
		if clamped == minAnswerValue || clamped == maxAnswerValue {
			notable = append(notable, NotableAnswer{Question: q, Value: clamped})
		}
	}
	return notable
}
