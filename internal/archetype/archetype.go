// Package archetype maps a full dimension score vector to one entry in a
// fixed catalog of named profiles.
package archetype

import "mosaic/internal/assessment"

// Archetype is a named composite classification derived from a score
// vector. Entries are catalog data, never mutated.
type Archetype struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Motto       string `json:"motto"`
	Description string `json:"description"`
	// Focus is the thematic emphasis the roadmap synthesizer builds on.
	Focus string `json:"focus"`
}

// DefaultKey identifies the fallback archetype. It is returned whenever no
// lookup entry matches the winning pattern, and for score vectors with no
// signal at all (nothing answered).
const DefaultKey = "explorer"

var catalog = map[string]Archetype{
	"strategist": {
		Key:         "strategist",
		Name:        "The Strategist",
		Motto:       "See the whole board before moving a piece.",
		Description: "You lead with analysis. Complexity energizes rather than overwhelms you, and your instinct is to map a situation completely before acting. Others rely on you to find the angle everyone else missed.",
		Focus:       "turning analytical depth into timely, visible decisions",
	},
	"catalyst": {
		Key:         "catalyst",
		Name:        "The Catalyst",
		Motto:       "Momentum is a choice.",
		Description: "Your defining asset is drive. You start before conditions are perfect and your persistence outlasts most obstacles. Teams move faster simply because you are on them.",
		Focus:       "channeling raw drive into durable, shared momentum",
	},
	"connector": {
		Key:         "connector",
		Name:        "The Connector",
		Motto:       "Nothing important happens alone.",
		Description: "You work through people. You read rooms quickly, build trust across boundaries, and turn loose networks into working coalitions. Your influence often outruns your formal authority.",
		Focus:       "converting relational capital into concrete outcomes",
	},
	"commander": {
		Key:         "commander",
		Name:        "The Commander",
		Motto:       "Someone has to decide. It might as well be done well.",
		Description: "You are at your best with responsibility on your shoulders. You set direction under uncertainty, absorb pressure that would scatter others, and people follow you because you own your calls.",
		Focus:       "scaling personal authority into systems that run without you",
	},
	"anchor": {
		Key:         "anchor",
		Name:        "The Anchor",
		Motto:       "Know your edge, then stand on it.",
		Description: "Your self-knowledge is unusually precise. You know exactly what you do better than your peers and you build your work around it, which makes your contributions consistent and hard to replace.",
		Focus:       "stretching proven strengths into unfamiliar territory",
	},
	"pathfinder": {
		Key:         "pathfinder",
		Name:        "The Pathfinder",
		Motto:       "The person you are becoming matters more than the person you are.",
		Description: "Growth is your operating system. You seek discomfort deliberately, treat feedback as raw material, and compound small improvements into capabilities others find sudden.",
		Focus:       "pairing relentless growth with a stable core identity",
	},
	"architect": {
		Key:         "architect",
		Name:        "The Architect",
		Motto:       "Design the system, then lead it.",
		Description: "You combine analytical range with command presence. You do not just find the right answer; you build the structure and direct the people that make it real. This pairing marks out those who end up designing how organizations work.",
		Focus:       "balancing time in the blueprint with time on the floor",
	},
	"ambassador": {
		Key:         "ambassador",
		Name:        "The Ambassador",
		Motto:       "Carry the fire, and make others want to carry it too.",
		Description: "Drive and influence feed each other in you. Your conviction is contagious, and you recruit belief as naturally as you sustain your own. Movements, not just projects, are your natural scale.",
		Focus:       "protecting substance underneath persuasive momentum",
	},
	"mobilizer": {
		Key:         "mobilizer",
		Name:        "The Mobilizer",
		Motto:       "A direction is only real when people move.",
		Description: "You pair leadership presence with persuasive reach. You do not merely hold authority; you generate followership, aligning people who report to you and people who never will.",
		Focus:       "grounding broad followership in deep individual trust",
	},
	"scholar": {
		Key:         "scholar",
		Name:        "The Scholar",
		Motto:       "Understanding compounds.",
		Description: "Cognitive agility and growth orientation reinforce each other in you. You learn faster than your environment changes, which quietly makes you the person whose judgment improves every quarter.",
		Focus:       "shipping conclusions instead of perpetually refining them",
	},
	DefaultKey: {
		Key:         DefaultKey,
		Name:        "The Explorer",
		Motto:       "The map is not finished.",
		Description: "Your profile does not yet show a single dominant pattern, and that is an asset: you are unconstrained by a fixed identity. The work ahead is discovering which dimension rewards your investment most.",
		Focus:       "running deliberate experiments to surface a dominant strength",
	},
}

// pairKeys maps an ordered (dominant, runner-up) dimension pair to a
// composite archetype. Checked before the single-dimension table.
var pairKeys = map[[2]assessment.Dimension]string{
	{assessment.DimensionCognitive, assessment.DimensionLeadership}:  "architect",
	{assessment.DimensionLeadership, assessment.DimensionCognitive}:  "architect",
	{assessment.DimensionMotivation, assessment.DimensionInfluence}:  "ambassador",
	{assessment.DimensionInfluence, assessment.DimensionMotivation}:  "ambassador",
	{assessment.DimensionLeadership, assessment.DimensionInfluence}:  "mobilizer",
	{assessment.DimensionInfluence, assessment.DimensionLeadership}:  "mobilizer",
	{assessment.DimensionCognitive, assessment.DimensionDevelopment}: "scholar",
	{assessment.DimensionDevelopment, assessment.DimensionCognitive}: "scholar",
}

// singleKeys maps a dominant dimension to its archetype.
var singleKeys = map[assessment.Dimension]string{
	assessment.DimensionCognitive:   "strategist",
	assessment.DimensionMotivation:  "catalyst",
	assessment.DimensionInfluence:   "connector",
	assessment.DimensionLeadership:  "commander",
	assessment.DimensionStrengths:   "anchor",
	assessment.DimensionDevelopment: "pathfinder",
}

// Catalog returns every archetype, keyed by its catalog key.
func Catalog() map[string]Archetype {
	out := make(map[string]Archetype, len(catalog))
	for k, v := range catalog {
		out[k] = v
	}
	return out
}

// Lookup returns the archetype with the given key.
func Lookup(key string) (Archetype, bool) {
	a, ok := catalog[key]
	return a, ok
}

// Default returns the fallback archetype.
func Default() Archetype {
	return catalog[DefaultKey]
}

// Resolve maps an ordered score vector to an archetype.
//
// The rule is deterministic: the highest-scoring dimension wins, ties
// broken by catalog order. The (winner, runner-up) pair table is consulted
// first, then the winner's single-dimension entry, then the default. A
// zero-valued maximum means nothing was answered and resolves straight to
// the default. Resolve is total: every score vector yields an archetype.
func Resolve(scores []assessment.Score) Archetype {
	top, second, topValue := dominantPair(scores)
	if topValue <= 0 {
		return Default()
	}

	if key, ok := pairKeys[[2]assessment.Dimension{top, second}]; ok {
		if a, found := catalog[key]; found {
			return a
		}
	}
	if key, ok := singleKeys[top]; ok {
		if a, found := catalog[key]; found {
			return a
		}
	}
	return Default()
}

// dominantPair returns the highest and second-highest scoring dimensions.
// Ties resolve to the earlier dimension in catalog order, which falls out
// of the strict > comparison over an ordered scan.
func dominantPair(scores []assessment.Score) (top, second assessment.Dimension, topValue int) {
	top = assessment.DimensionCognitive
	second = assessment.DimensionMotivation
	topValue = -1
	secondValue := -1

	for _, s := range scores {
		if s.Value > topValue {
			second, secondValue = top, topValue
			top, topValue = s.Dimension, s.Value
			continue
		}
		if s.Value > secondValue {
			second, secondValue = s.Dimension, s.Value
		}
	}
	return top, second, topValue
}
