package narrative

import (
	"context"
	"fmt"

	"mosaic/internal/archetype"
	"mosaic/internal/assessment"
)

// Request is the structured payload handed to an enricher.
type Request struct {
	Name       string                     `json:"name"`
	Occupation string                     `json:"occupation"`
	Purpose    string                     `json:"purpose"`
	Scores     []assessment.Score         `json:"scores"`
	Archetype  archetype.Archetype        `json:"archetype"`
	Notable    []assessment.NotableAnswer `json:"notable_answers"`
}

// Enrichment is the personalized prose block of a report.
type Enrichment struct {
	ExecutiveSummary   string   `json:"executive_summary"`
	SuperpowerAnalysis string   `json:"superpower_analysis"`
	BlindspotWarning   string   `json:"blindspot_warning"`
	ImmediateActions   []string `json:"immediate_actions"`
	// Source records which path produced the prose: "remote" or "canned".
	Source string `json:"source"`
}

// Enricher produces the personalized prose for a report. Implementations
// must be safe to call concurrently.
//
// The canned implementation is total and deterministic; the remote one may
// fail and wraps the canned one so callers never special-case failure.
type Enricher interface {
	Enrich(ctx context.Context, req Request) (*Enrichment, error)
}

// CannedEnricher builds the enrichment deterministically from the static
// content table. It is always available and never errors.
type CannedEnricher struct {
	table *Table
}

// NewCannedEnricher creates the deterministic enricher over a loaded table.
func NewCannedEnricher(table *Table) *CannedEnricher {
	return &CannedEnricher{table: table}
}

// Enrich composes the prose from the archetype and the score extremes.
func (e *CannedEnricher) Enrich(_ context.Context, req Request) (*Enrichment, error) {
	strongest, weakest := scoreExtremes(req.Scores)

	summary := fmt.Sprintf("%s profiles as %s: %s The near-term work is %s.",
		displayName(req.Name), req.Archetype.Name, req.Archetype.Description, req.Archetype.Focus)

	superpower := e.table.Select(strongest.Dimension, strongest.Value).Narrative
	blindspot := e.table.Select(weakest.Dimension, weakest.Value).Narrative

	actions := make([]string, 0, 3)
	weakRecs := e.table.Select(weakest.Dimension, weakest.Value).Recommendations
	actions = append(actions, weakRecs[0])
	if len(weakRecs) > 1 {
		actions = append(actions, weakRecs[1])
	}
	strongRecs := e.table.Select(strongest.Dimension, strongest.Value).Recommendations
	actions = append(actions, strongRecs[0])

	return &Enrichment{
		ExecutiveSummary:   summary,
		SuperpowerAnalysis: superpower,
		BlindspotWarning:   blindspot,
		ImmediateActions:   actions,
		Source:             "canned",
	}, nil
}

func displayName(name string) string {
	if name == "" {
		return "This candidate"
	}
	return name
}

// scoreExtremes returns the highest and lowest scores, ties broken by
// catalog order on an ordered vector.
func scoreExtremes(scores []assessment.Score) (strongest, weakest assessment.Score) {
	if len(scores) == 0 {
		zero := assessment.Score{Dimension: assessment.DimensionCognitive, Label: assessment.DimensionCognitive.Label()}
		return zero, zero
	}
	strongest, weakest = scores[0], scores[0]
	for _, s := range scores[1:] {
		if s.Value > strongest.Value {
			strongest = s
		}
		if s.Value < weakest.Value {
			weakest = s
		}
	}
	return strongest, weakest
}
