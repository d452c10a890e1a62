package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"mosaic/internal/assessment"
	"mosaic/internal/logging"
	"mosaic/internal/narrative"
	"mosaic/internal/pricing"
)

var (
	bold   = color.New(color.Bold).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	gray   = color.New(color.FgHiBlack).SprintFunc()
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mosaic",
		Short: "Multi-dimensional professional assessment engine",
		Long: `Mosaic scores Likert-scale self assessments across six professional
dimensions, resolves a leadership archetype, and produces a development
report with a phased growth roadmap.

Examples:
  mosaic questions                      # Print the question catalog
  mosaic assess --answers answers.json  # Score an answer file
  mosaic pricing student                # Show the tier for a category
  mosaic validate                       # Check bundled content tables`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newAssessCmd())
	rootCmd.AddCommand(newQuestionsCmd())
	rootCmd.AddCommand(newPricingCmd())
	rootCmd.AddCommand(newValidateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", red("error:"), err)
		os.Exit(1)
	}
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the question catalog in presentation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := assessment.LoadBank(logging.Nop())
			if err != nil {
				return err
			}
			for _, d := range assessment.Dimensions() {
				fmt.Printf("\n%s\n", bold(d.Label()))
				for _, q := range bank.QuestionsFor(d) {
					fmt.Printf("  %s  %s\n", cyan(q.ID), q.Text)
				}
			}
			fmt.Printf("\n%s\n", gray("Answer each question from 1 (strongly disagree) to 5 (strongly agree)."))
			return nil
		},
	}
}

func newPricingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing [category]",
		Short: "Show the access tier for a user category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := pricing.Categories()
			if len(args) == 1 {
				category, err := pricing.ParseCategory(args[0])
				if err != nil {
					return err
				}
				categories = []pricing.Category{category}
			}
			for _, category := range categories {
				tier := pricing.ResolveTier(category)
				if tier.Free {
					fmt.Printf("%-14s %s\n", category, green("free"))
					continue
				}
				fmt.Printf("%-14s $%d.%02d\n", category, tier.PriceCents/100, tier.PriceCents%100)
			}
			return nil
		},
	}
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the bundled question and content tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := assessment.LoadBank(logging.Nop())
			if err != nil {
				return fmt.Errorf("question bank: %w", err)
			}
			table, err := narrative.LoadTable()
			if err != nil {
				return fmt.Errorf("content table: %w", err)
			}
			if err := table.Validate(); err != nil {
				return fmt.Errorf("content table: %w", err)
			}
			fmt.Printf("%s %d questions, %d analyses\n",
				green("ok:"), len(bank.Questions()),
				len(assessment.Dimensions())*len(assessment.Bands()))
			return nil
		},
	}
}
