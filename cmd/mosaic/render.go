package main

import (
	"fmt"
	"io"
	"strings"

	"mosaic/internal/assessment"
	"mosaic/internal/report"
)

// renderReport prints a report for terminal reading.
func renderReport(w io.Writer, rep *report.Report) {
	fmt.Fprintf(w, "\n%s\n", bold("Assessment Report"))
	if rep.Profile.Name != "" {
		fmt.Fprintf(w, "%s", rep.Profile.Name)
		if rep.Profile.Title != "" {
			fmt.Fprintf(w, ", %s", rep.Profile.Title)
		}
		if rep.Profile.Organization != "" {
			fmt.Fprintf(w, " (%s)", rep.Profile.Organization)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%s\n", gray(rep.ID))

	fmt.Fprintf(w, "\n%s %s\n", bold("Archetype:"), cyan(rep.Archetype.Name))
	fmt.Fprintf(w, "%s\n", gray(rep.Archetype.Motto))
	fmt.Fprintf(w, "%s\n", rep.Archetype.Description)

	fmt.Fprintf(w, "\n%s\n", bold("Dimension Scores"))
	for _, score := range rep.Scores {
		fmt.Fprintf(w, "  %-22s %s %2d/%d  %s\n",
			score.Label, scoreBar(score.Value, score.FullMark),
			score.Value, score.FullMark, bandColor(score.Band))
	}

	fmt.Fprintf(w, "\n%s\n", bold("Growth Roadmap"))
	for i, phase := range rep.Roadmap {
		fmt.Fprintf(w, "\n  %s %s\n", cyan(fmt.Sprintf("Phase %d:", i+1)), bold(phase.Title))
		for _, point := range phase.Points {
			fmt.Fprintf(w, "    - %s\n", point)
		}
	}

	fmt.Fprintf(w, "\n%s\n", bold("Dimension Analysis"))
	for _, analysis := range rep.Analyses {
		fmt.Fprintf(w, "\n  %s (%s)\n", bold(analysis.Dimension.Label()), bandColor(analysis.Band))
		fmt.Fprintf(w, "  %s\n", analysis.Narrative)
		for _, rec := range analysis.Recommendations {
			fmt.Fprintf(w, "    - %s\n", rec)
		}
	}

	if rep.Enrichment != nil {
		fmt.Fprintf(w, "\n%s\n", bold("Personalized Insights"))
		fmt.Fprintf(w, "  %s\n", rep.Enrichment.ExecutiveSummary)
		fmt.Fprintf(w, "\n  %s %s\n", green("Superpower:"), rep.Enrichment.SuperpowerAnalysis)
		fmt.Fprintf(w, "  %s %s\n", yellow("Blindspot:"), rep.Enrichment.BlindspotWarning)
		if len(rep.Enrichment.ImmediateActions) > 0 {
			fmt.Fprintf(w, "\n  %s\n", bold("Next steps"))
			for _, action := range rep.Enrichment.ImmediateActions {
				fmt.Fprintf(w, "    - %s\n", action)
			}
		}
	}

	tier := rep.Tier
	fmt.Fprintln(w)
	if tier.Free {
		fmt.Fprintf(w, "%s full report access is sponsored for the %s category\n",
			green("✓"), tier.Category)
	} else {
		fmt.Fprintf(w, "full report access for the %s category: $%d.%02d\n",
			tier.Category, tier.PriceCents/100, tier.PriceCents%100)
	}
}

func scoreBar(value, fullMark int) string {
	const width = 20
	if fullMark <= 0 {
		fullMark = 1
	}
	filled := value * width / fullMark
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return cyan(strings.Repeat("█", filled)) + gray(strings.Repeat("░", width-filled))
}

func bandColor(band assessment.Band) string {
	switch band {
	case assessment.BandStrong:
		return green(band.String())
	case assessment.BandSolid:
		return cyan(band.String())
	case assessment.BandDeveloping:
		return yellow(band.String())
	default:
		return red(band.String())
	}
}
