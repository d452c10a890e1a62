package report

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/google/uuid"

	"mosaic/internal/archetype"
	"mosaic/internal/assessment"
	"mosaic/internal/logging"
	"mosaic/internal/narrative"
	"mosaic/internal/observability"
	"mosaic/internal/pricing"
	"mosaic/internal/roadmap"
)

const defaultCacheSize = 256

// Generator runs the full report pipeline. The pipeline itself is pure;
// the only effectful stages are the enrichment call (which carries its own
// fallback) and the content-addressed cache in front of everything.
type Generator struct {
	bank     *assessment.Bank
	table    *narrative.Table
	enricher narrative.Enricher
	logger   logging.Logger
	metrics  *observability.MetricsCollector
	cache    *lru.Cache[string, *Report]
	newID    func() string
	now      func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithMetrics wires the metrics collector into the pipeline.
func WithMetrics(metrics *observability.MetricsCollector) Option {
	return func(g *Generator) { g.metrics = metrics }
}

// WithLogger overrides the component logger.
func WithLogger(logger logging.Logger) Option {
	return func(g *Generator) { g.logger = logger }
}

// WithCacheSize overrides the report cache capacity.
func WithCacheSize(size int) Option {
	return func(g *Generator) {
		if size > 0 {
			cache, err := lru.New[string, *Report](size)
			if err == nil {
				g.cache = cache
			}
		}
	}
}

// NewGenerator creates a report generator over a loaded question bank and
// analysis table.
func NewGenerator(bank *assessment.Bank, table *narrative.Table, enricher narrative.Enricher, opts ...Option) (*Generator, error) {
	if bank == nil {
		return nil, fmt.Errorf("question bank is required")
	}
	if table == nil {
		return nil, fmt.Errorf("analysis table is required")
	}
	if enricher == nil {
		enricher = narrative.NewCannedEnricher(table)
	}

	cache, err := lru.New[string, *Report](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}

	g := &Generator{
		bank:     bank,
		table:    table,
		enricher: enricher,
		logger:   logging.NewComponentLogger("report"),
		cache:    cache,
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Generate produces the full report for one profile and answer set.
//
// It is total over its input domain: partial, empty, or malformed answer
// sets all yield a complete report. Identical (profile, answers) pairs are
// served from the cache, so repeated calls return identical content even
// when remote enrichment is in play.
func (g *Generator) Generate(ctx context.Context, profile Profile, answers assessment.AnswerSet) (*Report, error) {
	start := g.now()

	key := cacheKey(profile, answers)
	if cached, ok := g.cache.Get(key); ok {
		if g.metrics != nil {
			g.metrics.RecordReportCacheHit(ctx)
		}
		return cached, nil
	}

	scores := assessment.Aggregate(answers, g.bank)
	arch := archetype.Resolve(scores)
	phases := roadmap.Synthesize(scores, arch)

	scored := make([]ScoredDimension, 0, len(scores))
	analyses := make([]DimensionAnalysis, 0, len(scores))
	for _, s := range scores {
		band := s.Band()
		scored = append(scored, ScoredDimension{
			Dimension: s.Dimension,
			Label:     s.Label,
			Value:     s.Value,
			FullMark:  s.FullMark,
			Band:      band,
		})
		analyses = append(analyses, DimensionAnalysis{
			Dimension: s.Dimension,
			Band:      band,
			Analysis:  g.table.Select(s.Dimension, s.Value),
		})
	}

	enrichment, err := g.enricher.Enrich(ctx, narrative.Request{
		Name:       profile.Name,
		Occupation: profile.Occupation,
		Purpose:    profile.Purpose,
		Scores:     scores,
		Archetype:  arch,
		Notable:    assessment.NotableAnswers(answers, g.bank),
	})
	if err != nil {
		// Enrichers are expected to degrade internally; a hard error here
		// still must not sink the report.
		g.logger.Error("enrichment failed without fallback: %v", err)
		enrichment = nil
	}

	rep := &Report{
		ID:         g.newID(),
		CreatedAt:  g.now().UTC(),
		Profile:    profile,
		Scores:     scored,
		Archetype:  arch,
		Roadmap:    phases,
		Analyses:   analyses,
		Enrichment: enrichment,
		Tier:       pricing.ResolveTier(profile.Category),
	}

	g.cache.Add(key, rep)
	if g.metrics != nil {
		g.metrics.RecordReportGeneration(ctx, arch.Key, time.Since(start))
		if enrichment != nil {
			g.metrics.RecordEnrichment(ctx, enrichment.Source)
		}
	}
	g.logger.Debug("generated report %s archetype=%s", rep.ID, arch.Key)

	return rep, nil
}

// cacheKey canonicalizes the profile identity and answer-set content into
// a stable hash. Map iteration order must not leak into the key.
func cacheKey(profile Profile, answers assessment.AnswerSet) string {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	b.WriteString(profile.Email)
	b.WriteByte('|')
	b.WriteString(profile.Name)
	b.WriteByte('|')
	b.WriteString(profile.Category.String())
	for _, id := range ids {
		fmt.Fprintf(&b, "|%s=%d", id, answers[id])
	}

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}
