// Package roadmap generates the 4-phase action plan for a resolved
// assessment. Content selection is pure: identical scores and archetype
// always produce identical phases.
package roadmap

import (
	"fmt"

	"mosaic/internal/archetype"
	"mosaic/internal/assessment"
)

// Phase is one sequential stage of the generated plan.
type Phase struct {
	Title  string   `json:"title"`
	Points []string `json:"points"`
}

// PhaseCount is the fixed number of phases in every roadmap.
const PhaseCount = 4

// phaseTitles are configuration, not logic: labels can change without
// touching the synthesizer.
var phaseTitles = [PhaseCount]string{
	"Foundation",
	"Momentum",
	"Integration",
	"Mastery",
}

// Synthesize builds the 4-phase plan from the score vector and the
// resolved archetype. The plan always addresses the weakest dimensions,
// not just the archetype's strength.
func Synthesize(scores []assessment.Score, arch archetype.Archetype) []Phase {
	weakest := WeakestDimensions(scores, 2)
	primary := weakest[0]
	secondary := weakest[len(weakest)-1]

	foundation := Phase{
		Title: phaseTitles[0],
		Points: []string{
			fmt.Sprintf("Name your operating pattern out loud: as %s, your leverage comes from %s.", arch.Name, arch.Focus),
			foundationPoints[primary],
			fmt.Sprintf("Block two hours weekly dedicated solely to %s work, before anything else claims the time.", primary.Label()),
		},
	}

	momentum := Phase{
		Title: phaseTitles[1],
		Points: []string{
			practicePoints[primary],
			practicePoints[secondary],
			"Track one visible signal per week that the practice is landing, and review the trail monthly.",
		},
	}

	integration := Phase{
		Title: phaseTitles[2],
		Points: []string{
			integrationPoints[primary],
			fmt.Sprintf("Pair your developing %s muscle with your established strengths on one real, consequential project.", primary.Label()),
			"Ask two colleagues who see you weekly what has changed; treat their answer as the measurement.",
		},
	}

	mastery := Phase{
		Title:  phaseTitles[3],
		Points: masteryPoints(arch),
	}

	return []Phase{foundation, momentum, integration, mastery}
}

// WeakestDimensions returns the n lowest-scoring dimensions, lowest first,
// ties broken by catalog order.
func WeakestDimensions(scores []assessment.Score, n int) []assessment.Dimension {
	if n <= 0 || len(scores) == 0 {
		return []assessment.Dimension{assessment.DimensionCognitive}
	}

	ordered := make([]assessment.Score, len(scores))
	copy(ordered, scores)
	// Insertion sort keeps the catalog-order tie-break stable.
	for i := 1; i < len(ordered); i++ {
		for j := i; j > 0 && ordered[j].Value < ordered[j-1].Value; j-- {
			ordered[j], ordered[j-1] = ordered[j-1], ordered[j]
		}
	}

	if n > len(ordered) {
		n = len(ordered)
	}
	out := make([]assessment.Dimension, 0, n)
	for _, s := range ordered[:n] {
		out = append(out, s.Dimension)
	}
	return out
}

// masteryPoints selects the long-horizon points for the archetype, falling
// back to the default archetype's entries for any key without its own.
func masteryPoints(arch archetype.Archetype) []string {
	if points, ok := masteryByArchetype[arch.Key]; ok {
		return points
	}
	return masteryByArchetype[archetype.DefaultKey]
}
