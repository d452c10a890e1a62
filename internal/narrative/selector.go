// Package narrative selects the per-dimension analysis text for a report
// and defines the enrichment capability used for the personalized prose.
package narrative

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"mosaic/internal/assessment"
)

//go:embed data/content.yaml
var contentYAML []byte

// Analysis is the canned text for one (dimension, band) combination.
type Analysis struct {
	Narrative       string   `yaml:"narrative" json:"narrative"`
	Implications    []string `yaml:"implications" json:"implications"`
	Recommendations []string `yaml:"recommendations" json:"recommendations"`
}

type contentKey struct {
	Dimension assessment.Dimension
	Band      assessment.Band
}

// Table is the static analysis content, keyed by (dimension, band). The
// full 6×4 cross-product is validated at load: a missing or empty entry is
// a configuration error, never a runtime fallback.
type Table struct {
	entries map[contentKey]Analysis
}

type contentFile struct {
	Analyses []struct {
		Dimension assessment.Dimension `yaml:"dimension"`
		Band      assessment.Band      `yaml:"band"`
		Analysis  `yaml:",inline"`
	} `yaml:"analyses"`
}

// LoadTable parses and validates the embedded content table.
func LoadTable() (*Table, error) {
	return loadTable(contentYAML)
}

func loadTable(raw []byte) (*Table, error) {
	var file contentFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse analysis content: %w", err)
	}

	table := &Table{entries: make(map[contentKey]Analysis, len(file.Analyses))}
	for _, entry := range file.Analyses {
		key := contentKey{Dimension: entry.Dimension, Band: entry.Band}
		if _, exists := table.entries[key]; exists {
			return nil, fmt.Errorf("duplicate analysis entry for (%s, %s)", entry.Dimension, entry.Band)
		}
		if entry.Narrative == "" || len(entry.Implications) == 0 || len(entry.Recommendations) == 0 {
			return nil, fmt.Errorf("incomplete analysis entry for (%s, %s)", entry.Dimension, entry.Band)
		}
		table.entries[key] = entry.Analysis
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate checks the full (dimension, band) cross-product is covered.
func (t *Table) Validate() error {
	var missing []string
	for _, d := range assessment.Dimensions() {
		for _, b := range assessment.Bands() {
			if _, ok := t.entries[contentKey{Dimension: d, Band: b}]; !ok {
				missing = append(missing, fmt.Sprintf("(%s, %s)", d, b))
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("analysis content missing entries: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Select returns the analysis for a dimension at the given raw score. The
// band is computed from the score; the table is total over the closed
// cross-product, so Select never fails for valid dimensions.
func (t *Table) Select(dimension assessment.Dimension, value int) Analysis {
	return t.entries[contentKey{Dimension: dimension, Band: assessment.Classify(value)}]
}
