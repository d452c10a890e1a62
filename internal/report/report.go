// Package report composes the scoring core into the full assessment
// report handed to rendering and persistence collaborators.
package report

import (
	"time"

	"mosaic/internal/archetype"
	"mosaic/internal/assessment"
	"mosaic/internal/narrative"
	"mosaic/internal/pricing"
	"mosaic/internal/roadmap"
)

// Profile is the onboarding data for one user. Created once, immutable for
// the session; the core treats it as input and never mutates it.
type Profile struct {
	Name         string           `json:"name"`
	Occupation   string           `json:"occupation"`
	Title        string           `json:"title"`
	Organization string           `json:"organization"`
	Email        string           `json:"email"`
	Purpose      string           `json:"purpose"`
	Category     pricing.Category `json:"category"`
}

// ScoredDimension is one dimension's result with its band materialized for
// transport. Order in a report always follows the dimension catalog.
type ScoredDimension struct {
	Dimension assessment.Dimension `json:"dimension"`
	Label     string               `json:"label"`
	Value     int                  `json:"value"`
	FullMark  int                  `json:"full_mark"`
	Band      assessment.Band      `json:"band"`
}

// DimensionAnalysis pairs a dimension with its selected analysis text.
type DimensionAnalysis struct {
	Dimension assessment.Dimension `json:"dimension"`
	Band      assessment.Band      `json:"band"`
	narrative.Analysis
}

// Report is the complete output for one answered assessment.
type Report struct {
	ID         string                `json:"id"`
	CreatedAt  time.Time             `json:"created_at"`
	Profile    Profile               `json:"profile"`
	Scores     []ScoredDimension     `json:"scores"`
	Archetype  archetype.Archetype   `json:"archetype"`
	Roadmap    []roadmap.Phase       `json:"roadmap"`
	Analyses   []DimensionAnalysis   `json:"analyses"`
	Enrichment *narrative.Enrichment `json:"enrichment"`
	Tier       pricing.Tier          `json:"tier"`
}
