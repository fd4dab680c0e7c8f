package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/sar-cli/internal/model"
	"github.com/sells-group/sar-cli/internal/narrative"
	"github.com/sells-group/sar-cli/internal/store"
)

// fakeProducer returns a scripted output or error.
type fakeProducer struct {
	origin narrative.Origin
	out    *model.ProducerOutput
	err    error
	calls  int
}

func (f *fakeProducer) Produce(_ context.Context, _ *model.CaseRecord) (*model.ProducerOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.out, nil
}

func (f *fakeProducer) Origin() narrative.Origin { return f.origin }

// fakeStore records store calls in memory.
type fakeStore struct {
	created   []string
	completed map[string]*model.RunSummary
	failed    map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		completed: make(map[string]*model.RunSummary),
		failed:    make(map[string]string),
	}
}

func (s *fakeStore) CreateRun(_ context.Context, caseID, alertType string) (*model.Run, error) {
	id := "run-" + caseID
	s.created = append(s.created, id)
	return &model.Run{ID: id, CaseID: caseID, AlertType: alertType, Status: model.RunStatusRunning}, nil
}

func (s *fakeStore) CompleteRun(_ context.Context, runID string, summary *model.RunSummary) error {
	s.completed[runID] = summary
	return nil
}

func (s *fakeStore) FailRun(_ context.Context, runID string, reason string) error {
	s.failed[runID] = reason
	return nil
}

func (s *fakeStore) GetRun(_ context.Context, _ string) (*model.Run, error) { return nil, nil }
func (s *fakeStore) ListRuns(_ context.Context, _ store.RunFilter) ([]model.Run, error) {
	return nil, nil
}
func (s *fakeStore) Migrate(_ context.Context) error { return nil }
func (s *fakeStore) Close() error                    { return nil }

func sampleOutput() *model.ProducerOutput {
	return &model.ProducerOutput{
		Narrative: "SUBJECT INFORMATION\n\nThe subject is Rajesh Kumar.",
		Sections: []model.NarrativeSection{
			{Title: "SUBJECT INFORMATION", Content: "The subject is Rajesh Kumar.", Confidence: model.ConfidenceHigh},
			{Title: "CONCLUSION AND BASIS FOR SUSPICION", Content: "A filing is warranted.", Confidence: model.ConfidenceMedium},
		},
		Reasoning: []string{"Step 1: gathered KYC data"},
		Usage:     model.TokenUsage{InputTokens: 100, OutputTokens: 200},
	}
}

func sampleRecord() *model.CaseRecord {
	return &model.CaseRecord{
		Customer:     model.Customer{Name: "Rajesh Kumar"},
		AlertDetails: model.AlertDetails{AlertType: "Rapid Movement of Funds"},
	}
}

func TestGenerator_Generate(t *testing.T) {
	st := newFakeStore()
	primary := &fakeProducer{origin: narrative.OriginClaude, out: sampleOutput()}
	gen := New(primary, nil, st)

	result, err := gen.Generate(context.Background(), "case-001", sampleRecord())
	require.NoError(t, err)

	require.Len(t, result.Sections, 2)
	assert.Len(t, result.AuditTrail, 2)
	assert.Equal(t, model.ConfidenceHigh, result.ConfidenceScores["SUBJECT INFORMATION"])
	assert.Equal(t, model.ConfidenceMedium, result.ConfidenceScores["CONCLUSION AND BASIS FOR SUSPICION"])
	assert.Len(t, result.ComplianceChecklist, 8)

	require.Len(t, st.created, 1)
	summary := st.completed["run-case-001"]
	require.NotNil(t, summary)
	assert.Equal(t, "claude", summary.Origin)
	assert.Equal(t, 2, summary.Sections)
	assert.Equal(t, 2, summary.Sentences)
	assert.Equal(t, 8, summary.ChecklistTotal)
	assert.Equal(t, model.TokenUsage{InputTokens: 100, OutputTokens: 200}, summary.TokenUsage)
}

func TestGenerator_FallbackOnPrimaryFailure(t *testing.T) {
	st := newFakeStore()
	primary := &fakeProducer{origin: narrative.OriginClaude, err: assert.AnError}
	fallback := &fakeProducer{origin: narrative.OriginTemplate, out: sampleOutput()}
	gen := New(primary, fallback, st)

	result, err := gen.Generate(context.Background(), "case-002", sampleRecord())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, fallback.calls)
	assert.Equal(t, "template", st.completed["run-case-002"].Origin)
}

func TestGenerator_NoFallbackSurfacesError(t *testing.T) {
	st := newFakeStore()
	primary := &fakeProducer{origin: narrative.OriginClaude, err: assert.AnError}
	gen := New(primary, nil, st)

	_, err := gen.Generate(context.Background(), "case-003", sampleRecord())
	require.Error(t, err)
	assert.Contains(t, st.failed, "run-case-003")
}

func TestGenerator_BothProducersFail(t *testing.T) {
	st := newFakeStore()
	primary := &fakeProducer{origin: narrative.OriginClaude, err: assert.AnError}
	fallback := &fakeProducer{origin: narrative.OriginTemplate, err: assert.AnError}
	gen := New(primary, fallback, st)

	_, err := gen.Generate(context.Background(), "case-004", sampleRecord())
	require.Error(t, err)
	assert.Contains(t, st.failed, "run-case-004")
	assert.Empty(t, st.completed)
}

func TestGenerator_NilStore(t *testing.T) {
	primary := &fakeProducer{origin: narrative.OriginTemplate, out: sampleOutput()}
	gen := New(primary, nil, nil)

	result, err := gen.Generate(context.Background(), "case-005", sampleRecord())
	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestGenerator_EndToEndWithTemplate(t *testing.T) {
	// The real template producer through the full pass: every sentence in the
	// trail must carry citations and the five required sections must pass.
	rec := &model.CaseRecord{
		Customer: model.Customer{
			Name:          "Rajesh Kumar",
			AccountNumber: "5021-8834-9912",
		},
		AlertDetails: model.AlertDetails{AlertType: "Rapid Movement of Funds"},
		SuspiciousActivityPeriod: model.ActivityPeriod{
			StartDate: "2024-01-15", EndDate: "2024-02-29", TotalDays: 45,
		},
		IncomingTransactions: model.IncomingSummary{
			TotalCount: 47, TotalAmount: "₹50,00,000", AverageAmount: "₹1,06,383", UniqueCounterparties: 23,
		},
		TypologyMapping: model.TypologyMapping{PrimaryTypology: "Layering", Description: "funnel account pattern"},
	}

	gen := New(narrative.NewTemplateProducer(), nil, nil)
	result, err := gen.Generate(context.Background(), "case-006", rec)
	require.NoError(t, err)

	assert.Equal(t, 8, result.ComplianceChecklist.Passed())
	assert.NotEmpty(t, result.AuditTrail)
	for _, entry := range result.AuditTrail {
		assert.NotEmpty(t, entry.DataSources, "sentence %q", entry.Sentence)
	}
}
