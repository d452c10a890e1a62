package roadmap

import "mosaic/internal/assessment"

// Static per-dimension content. Keyed by the closed dimension enumeration,
// so completeness is checked by the package tests against the catalog.

var foundationPoints = map[assessment.Dimension]string{
	assessment.DimensionCognitive:   "Start a decision journal: record the reasoning behind one significant call per week, then review it when the outcome is known.",
	assessment.DimensionMotivation:  "Write down the single outcome this year that would make the work feel worth it, and put it somewhere you see daily.",
	assessment.DimensionInfluence:   "Map the five people whose agreement your next goal actually depends on, and note what each of them currently believes.",
	assessment.DimensionLeadership:  "Take visible ownership of one small decision per week that you would previously have escalated or deferred.",
	assessment.DimensionStrengths:   "Collect three concrete stories of work you did unusually well, and extract what they have in common.",
	assessment.DimensionDevelopment: "Pick one skill gap with real career cost and define what competent would look like in ninety days.",
}

var practicePoints = map[assessment.Dimension]string{
	assessment.DimensionCognitive:   "Before each significant decision, force yourself to write the strongest case for the option you are not taking.",
	assessment.DimensionMotivation:  "Break the current quarter's goal into weekly finish lines small enough that missing one is recoverable in days.",
	assessment.DimensionInfluence:   "Once a week, make someone else's idea succeed in a meeting without taking any credit for it.",
	assessment.DimensionLeadership:  "Run one recurring meeting end to end: set the agenda, make the call, and own the follow-through.",
	assessment.DimensionStrengths:   "Volunteer your strongest skill for a problem outside your usual territory once per month.",
	assessment.DimensionDevelopment: "Schedule a monthly feedback conversation where you ask specifically what you should stop doing.",
}

var integrationPoints = map[assessment.Dimension]string{
	assessment.DimensionCognitive:   "Teach your problem-solving approach to someone junior; the gaps in your explanation are the gaps in your thinking.",
	assessment.DimensionMotivation:  "Tie your personal targets to a commitment someone else is counting on, so drive has external anchors.",
	assessment.DimensionInfluence:   "Negotiate one cross-team agreement where you hold no formal authority and success depends entirely on persuasion.",
	assessment.DimensionLeadership:  "Delegate an outcome you care about, and measure yourself on how little you intervene.",
	assessment.DimensionStrengths:   "Redesign your current role on paper so your top strength covers sixty percent of your time, then pitch the delta.",
	assessment.DimensionDevelopment: "Take on work you estimate a forty percent chance of doing well, with a named person to debrief it with.",
}

// masteryByArchetype holds the long-horizon points for each archetype.
// The default entry doubles as the fallback for unmapped keys.
var masteryByArchetype = map[string][]string{
	"strategist": {
		"Put a deadline on every analysis: a strategy delivered at eighty percent confidence beats one delivered late.",
		"Build a bench of people who execute well, so your thinking stops being the bottleneck.",
		"Publish your frameworks where the organization can use them without you in the room.",
	},
	"catalyst": {
		"Institutionalize your energy: turn the habits that drive you into team rituals that survive your absence.",
		"Choose one long game measured in years and protect it from your appetite for quick wins.",
	},
	"connector": {
		"Convert your network into infrastructure: introduce people who need each other and step out of the loop.",
		"Attach your relational reach to one hard, measurable outcome per year.",
		"Mentor someone whose instincts are analytical rather than social, and learn their language while teaching yours.",
	},
	"commander": {
		"Build succession deliberately: the test of your leadership is what runs well without you.",
		"Recruit a trusted dissenter and reward them visibly for disagreeing with you.",
	},
	"anchor": {
		"Take your proven strength into an arena where you are unknown and your reputation cannot carry you.",
		"Document the craft behind your strength so it can be hired for, trained, and scaled.",
	},
	"pathfinder": {
		"Commit to depth: choose one capability to take from good to rare, resisting the pull of the next new thing.",
		"Turn your growth system into something you teach, so improvement compounds beyond you.",
	},
	"architect": {
		"Alternate deliberately between design seasons and delivery seasons; neither alone is mastery.",
		"Hand a system you designed to someone else to run, and judge the design by how little they need you.",
	},
	"ambassador": {
		"Audit your commitments quarterly: conviction at your scale obligates you to be right more often than most.",
		"Cultivate two critics you trust to tell you when momentum has outrun substance.",
	},
	"mobilizer": {
		"Invest in the few relationships deep enough to survive a hard decision, not just the many that admire one.",
		"Pick one cause worth your full reach and narrow your mobilizing to it for a year.",
	},
	"scholar": {
		"Set shipping deadlines for your learning: every deep dive ends in something others can use.",
		"Apprentice yourself publicly to a field you know nothing about, and model the learning curve for your team.",
	},
	"explorer": {
		"Run one focused experiment per quarter: pick a dimension, overinvest in it, and measure what comes back.",
		"Keep a record of which work leaves you stronger at the end of the day, and follow that signal.",
	},
}
