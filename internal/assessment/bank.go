package assessment

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"mosaic/internal/logging"
)

//go:embed data/questions.yaml
var questionsYAML []byte

// Question is one assessment item. Immutable after load; belongs to exactly
// one dimension.
type Question struct {
	ID        string    `yaml:"id" json:"id"`
	Text      string    `yaml:"text" json:"text"`
	Dimension Dimension `yaml:"dimension" json:"dimension"`
}

// Bank is the static question catalog, loaded once at startup.
type Bank struct {
	questions   []Question
	byID        map[string]Question
	byDimension map[Dimension][]Question
}

type bankFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadBank parses and validates the embedded question catalog.
//
// Validation failures here are configuration errors and fatal at startup:
// duplicate ids, empty text, or a dimension with no questions at all.
func LoadBank(logger logging.Logger) (*Bank, error) {
	return loadBank(questionsYAML, logger)
}

func loadBank(raw []byte, logger logging.Logger) (*Bank, error) {
	logger = logging.OrNop(logger)

	var file bankFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse question catalog: %w", err)
	}
	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("question catalog is empty")
	}

	bank := &Bank{
		questions:   file.Questions,
		byID:        make(map[string]Question, len(file.Questions)),
		byDimension: make(map[Dimension][]Question),
	}

	for _, q := range file.Questions {
		if q.ID == "" {
			return nil, fmt.Errorf("question with empty id in catalog")
		}
		if q.Text == "" {
			return nil, fmt.Errorf("question %s has empty text", q.ID)
		}
		if !q.Dimension.Valid() {
			return nil, fmt.Errorf("question %s has invalid dimension", q.ID)
		}
		if _, exists := bank.byID[q.ID]; exists {
			return nil, fmt.Errorf("duplicate question id %s", q.ID)
		}
		bank.byID[q.ID] = q
		bank.byDimension[q.Dimension] = append(bank.byDimension[q.Dimension], q)
	}

	for _, d := range Dimensions() {
		count := len(bank.byDimension[d])
		if count == 0 {
			return nil, fmt.Errorf("dimension %s has no questions", d)
		}
		// Band thresholds assume the canonical 25-point scale. A different
		// question count silently skews classification, so flag it loudly.
		if count != questionsPerDimension {
			logger.Warn("dimension %s has %d questions; band thresholds assume %d (max %d points)",
				d, count, questionsPerDimension, questionsPerDimension*maxAnswerValue)
		}
	}

	return bank, nil
}

// Questions returns all questions in catalog order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// QuestionsFor returns the questions tagged with the given dimension.
func (b *Bank) QuestionsFor(d Dimension) []Question {
	qs := b.byDimension[d]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Lookup returns the question with the given id.
func (b *Bank) Lookup(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// FullMark returns the maximum attainable score for a dimension, derived
// from however many questions are tagged with it.
func (b *Bank) FullMark(d Dimension) int {
	return len(b.byDimension[d]) * maxAnswerValue
}
