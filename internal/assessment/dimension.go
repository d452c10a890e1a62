// Package assessment implements the scoring core: the question bank, the
// per-dimension scoring aggregator, and the qualitative band classifier.
package assessment

import (
	"encoding/json"
	"fmt"
)

// Dimension identifies one of the six fixed psychometric categories an
// assessment question belongs to. The declared order is the catalog order
// and is load-bearing: score output, tie-breaking, and report rendering all
// follow it.
type Dimension int

const (
	DimensionCognitive Dimension = iota
	DimensionMotivation
	DimensionInfluence
	DimensionLeadership
	DimensionStrengths
	DimensionDevelopment

	dimensionCount
)

// Dimensions returns all dimensions in catalog order.
func Dimensions() []Dimension {
	out := make([]Dimension, dimensionCount)
	for i := range out {
		out[i] = Dimension(i)
	}
	return out
}

func (d Dimension) String() string {
	switch d {
	case DimensionCognitive:
		return "cognitive"
	case DimensionMotivation:
		return "motivation"
	case DimensionInfluence:
		return "influence"
	case DimensionLeadership:
		return "leadership"
	case DimensionStrengths:
		return "strengths"
	case DimensionDevelopment:
		return "development"
	default:
		return "unknown"
	}
}

// Label returns the display label used in rendered reports.
func (d Dimension) Label() string {
	switch d {
	case DimensionCognitive:
		return "Cognitive Agility"
	case DimensionMotivation:
		return "Motivational Drive"
	case DimensionInfluence:
		return "Influence & Persuasion"
	case DimensionLeadership:
		return "Leadership Presence"
	case DimensionStrengths:
		return "Strengths Awareness"
	case DimensionDevelopment:
		return "Growth Orientation"
	default:
		return "Unknown"
	}
}

// Description returns the long-form description of the dimension.
func (d Dimension) Description() string {
	switch d {
	case DimensionCognitive:
		return "How quickly you absorb new information, reframe problems, and adapt your thinking under changing conditions."
	case DimensionMotivation:
		return "The internal engine behind your work: what sustains your effort when external rewards are distant."
	case DimensionInfluence:
		return "Your ability to shape opinions, build alignment, and move people toward a shared outcome."
	case DimensionLeadership:
		return "How you carry authority: setting direction, making calls under uncertainty, and being followed willingly."
	case DimensionStrengths:
		return "How accurately you know what you are best at, and how deliberately you deploy it."
	case DimensionDevelopment:
		return "Your appetite and discipline for closing the gap between who you are and who you intend to become."
	default:
		return ""
	}
}

// Valid reports whether d is one of the six catalog dimensions.
func (d Dimension) Valid() bool {
	return d >= 0 && d < dimensionCount
}

// ParseDimension converts a wire-format string into a Dimension.
func ParseDimension(s string) (Dimension, error) {
	for _, d := range Dimensions() {
		if d.String() == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", s)
}

// MarshalJSON encodes the dimension as its wire-format string.
func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes the dimension from its wire-format string.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// UnmarshalYAML decodes the dimension from its wire-format string.
func (d *Dimension) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
