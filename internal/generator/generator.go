// Package generator runs one full SAR generation pass: produce the
// narrative, build the sentence-level audit trail, evaluate the compliance
// checklist, and record the run.
package generator

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/sar-cli/internal/audit"
	"github.com/sells-group/sar-cli/internal/compliance"
	"github.com/sells-group/sar-cli/internal/model"
	"github.com/sells-group/sar-cli/internal/narrative"
	"github.com/sells-group/sar-cli/internal/store"
)

// Generator orchestrates a generation pass. Each pass operates on an
// independently-owned case record and produces an independently-owned
// result; the generator itself holds no per-pass state, so concurrent
// passes are safe.
type Generator struct {
	producer narrative.Producer
	fallback narrative.Producer
	store    store.Store
}

// New creates a Generator. fallback may be nil to disable template fallback;
// st may be nil to skip run recording.
func New(producer, fallback narrative.Producer, st store.Store) *Generator {
	return &Generator{producer: producer, fallback: fallback, store: st}
}

// Generate runs one pass for the given case. The producer's section order is
// preserved throughout; confidence_scores carry each section's own confidence
// as produced, not a recomputation from the audit trail.
func (g *Generator) Generate(ctx context.Context, caseID string, rec *model.CaseRecord) (*model.GenerationResult, error) {
	start := time.Now()

	run := g.createRun(ctx, caseID, rec)

	out, origin, err := g.produce(ctx, rec)
	if err != nil {
		g.failRun(ctx, run, err)
		return nil, eris.Wrap(err, "generator: produce narrative")
	}

	trail := audit.BuildTrail(out.Sections, rec)
	checklist := compliance.Evaluate(out.Sections)

	scores := make(map[string]model.Confidence, len(out.Sections))
	for _, s := range out.Sections {
		scores[s.Title] = s.Confidence
	}

	result := &model.GenerationResult{
		Narrative:           out.Narrative,
		Sections:            out.Sections,
		AuditTrail:          trail,
		ConfidenceScores:    scores,
		Reasoning:           out.Reasoning,
		ComplianceChecklist: checklist,
	}

	g.completeRun(ctx, run, &model.RunSummary{
		Origin:          string(origin),
		Sections:        len(out.Sections),
		Sentences:       len(trail),
		ChecklistPassed: checklist.Passed(),
		ChecklistTotal:  len(checklist),
		TokenUsage:      out.Usage,
		DurationMS:      time.Since(start).Milliseconds(),
	})

	zap.L().Info("generator: pass complete",
		zap.String("case_id", caseID),
		zap.String("origin", string(origin)),
		zap.Int("sections", len(out.Sections)),
		zap.Int("sentences", len(trail)),
		zap.String("checklist", checklist.Summary()),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

// produce runs the primary producer and falls back to the secondary on
// failure. The result carries no trace of which origin ran beyond the
// returned origin tag used for run accounting.
func (g *Generator) produce(ctx context.Context, rec *model.CaseRecord) (*model.ProducerOutput, narrative.Origin, error) {
	out, err := g.producer.Produce(ctx, rec)
	if err == nil {
		return out, g.producer.Origin(), nil
	}
	if g.fallback == nil {
		return nil, g.producer.Origin(), err
	}

	zap.L().Warn("generator: primary producer failed, falling back",
		zap.String("origin", string(g.producer.Origin())),
		zap.Error(err),
	)

	out, fbErr := g.fallback.Produce(ctx, rec)
	if fbErr != nil {
		return nil, g.fallback.Origin(), fbErr
	}
	return out, g.fallback.Origin(), nil
}

func (g *Generator) createRun(ctx context.Context, caseID string, rec *model.CaseRecord) *model.Run {
	if g.store == nil {
		return nil
	}
	run, err := g.store.CreateRun(ctx, caseID, rec.AlertDetails.AlertType)
	if err != nil {
		zap.L().Warn("generator: create run failed", zap.Error(err))
		return nil
	}
	return run
}

func (g *Generator) completeRun(ctx context.Context, run *model.Run, summary *model.RunSummary) {
	if run == nil {
		return
	}
	if err := g.store.CompleteRun(ctx, run.ID, summary); err != nil {
		zap.L().Warn("generator: complete run failed",
			zap.String("run_id", run.ID),
			zap.Error(err),
		)
	}
}

func (g *Generator) failRun(ctx context.Context, run *model.Run, cause error) {
	if run == nil {
		return
	}
	if err := g.store.FailRun(ctx, run.ID, cause.Error()); err != nil {
		zap.L().Warn("generator: fail run failed",
			zap.String("run_id", run.ID),
			zap.Error(err),
		)
	}
}
