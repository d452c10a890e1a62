package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mosaic/internal/assessment"
	"mosaic/internal/config"
	mosaicerrors "mosaic/internal/errors"
	"mosaic/internal/llm"
	"mosaic/internal/logging"
	"mosaic/internal/narrative"
	"mosaic/internal/pricing"
	"mosaic/internal/report"
)

type assessFlags struct {
	answersPath  string
	name         string
	email        string
	occupation   string
	title        string
	organization string
	purpose      string
	category     string
	jsonOutput   bool
}

func newAssessCmd() *cobra.Command {
	flags := assessFlags{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Score an answer file and print the full report",
		Long: `Score a JSON answer file mapping question identifiers to Likert
values (1-5) and print the resulting report. Unanswered questions count
as zero; out-of-range values are clamped.

Set MOSAIC_LLM_API_KEY to enable personalized narrative enrichment;
without it the report uses the bundled content library.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(flags)
		},
	}

	cmd.Flags().StringVarP(&flags.answersPath, "answers", "a", "", "path to JSON answers file (required)")
	cmd.Flags().StringVar(&flags.name, "name", "", "full name (required)")
	cmd.Flags().StringVar(&flags.email, "email", "", "email address")
	cmd.Flags().StringVar(&flags.occupation, "occupation", "", "occupation")
	cmd.Flags().StringVar(&flags.title, "title", "", "job title")
	cmd.Flags().StringVar(&flags.organization, "organization", "", "organization")
	cmd.Flags().StringVar(&flags.purpose, "purpose", "", "what the report will be used for")
	cmd.Flags().StringVar(&flags.category, "category", "professional", "user category (student, educator, nonprofit, professional, executive, enterprise)")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "emit the raw report as JSON")
	_ = cmd.MarkFlagRequired("answers")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runAssess(flags assessFlags) error {
	category, err := pricing.ParseCategory(flags.category)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(flags.answersPath)
	if err != nil {
		return fmt.Errorf("read answers: %w", err)
	}
	var answers assessment.AnswerSet
	if err := json.Unmarshal(raw, &answers); err != nil {
		return fmt.Errorf("parse answers: %w", err)
	}

	bank, err := assessment.LoadBank(logging.Nop())
	if err != nil {
		return err
	}
	table, err := narrative.LoadTable()
	if err != nil {
		return err
	}

	generator, err := report.NewGenerator(bank, table, buildEnricher(table))
	if err != nil {
		return err
	}

	profile := report.Profile{
		Name:         flags.name,
		Occupation:   flags.occupation,
		Title:        flags.title,
		Organization: flags.organization,
		Email:        flags.email,
		Purpose:      flags.purpose,
		Category:     category,
	}

	rep, err := generator.Generate(context.Background(), profile, answers)
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rep)
	}

	renderReport(os.Stdout, rep)
	return nil
}

// buildEnricher uses the remote collaborator when configured and the
// bundled content library otherwise.
func buildEnricher(table *narrative.Table) narrative.Enricher {
	canned := narrative.NewCannedEnricher(table)

	cfg, err := config.Load()
	if err != nil || !cfg.LLM.Enabled() {
		return canned
	}

	client, err := llm.NewOpenAIClient(cfg.LLM.Model, llm.Config{
		APIKey:     cfg.LLM.APIKey,
		BaseURL:    cfg.LLM.BaseURL,
		Timeout:    cfg.LLM.Timeout,
		MaxRetries: cfg.LLM.MaxRetries,
	})
	if err != nil {
		return canned
	}

	retryConfig := mosaicerrors.RetryConfigWithRetries(cfg.LLM.MaxRetries)
	return narrative.NewLLMEnricher(llm.NewRetryClient(client, retryConfig), canned)
}
