package study

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #region fakes

// fakeSampler hands out deterministic decisions and records every Tell.
type fakeSampler struct {
	nextID int64
	cats   map[string]string
	ints   map[string]int
	floats map[string]float64

	tells []tellRecord

	bestIDs   []int64
	supported bool
}

type tellRecord struct {
	trialID int64
	state   string
	values  []float64
	reason  string
}

func (f *fakeSampler) StartTrial(_ context.Context) (int64, error) {
	f.nextID++
	return f.nextID, nil
}

func (f *fakeSampler) AskCategorical(_ context.Context, _ int64, name string, choices []string) (string, error) {
	if v, ok := f.cats[name]; ok {
		return v, nil
	}
	return choices[0], nil
}

func (f *fakeSampler) AskInt(_ context.Context, _ int64, name string, low, _ int) (int, error) {
	if v, ok := f.ints[name]; ok {
		return v, nil
	}
	return low, nil
}

func (f *fakeSampler) AskFloat(_ context.Context, _ int64, name string, _, _ float64) (float64, error) {
	if v, ok := f.floats[name]; ok {
		return v, nil
	}
	return 0.5, nil
}

func (f *fakeSampler) Tell(_ context.Context, trialID int64, state string, values []float64, reason string) error {
	f.tells = append(f.tells, tellRecord{trialID, state, values, reason})
	return nil
}

func (f *fakeSampler) BestTrials(_ context.Context) ([]int64, bool, error) {
	return f.bestIDs, f.supported, nil
}

// fakeBuilder fails compilation for flag strings matching failOn.
type fakeBuilder struct {
	failOn string
	err    error
	built  []string
}

func (b *fakeBuilder) Build(_ context.Context, flagString, workDir string) (string, error) {
	if b.err != nil {
		return "", b.err
	}
	b.built = append(b.built, flagString)
	if b.failOn != "" && strings.Contains(flagString, b.failOn) {
		return "", nil
	}
	return workDir + "/a.out", nil
}

type fakeMeasurer struct {
	metrics map[string]float64
	err     error
	calls   int
}

func (m *fakeMeasurer) Measure(_ context.Context, _ string, _ map[string]string) (map[string]float64, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.metrics, nil
}

// #endregion fakes

// #region setup

func newPipeline(t *testing.T, s *fakeSampler, b *fakeBuilder, m *fakeMeasurer) *Pipeline {
	t.Helper()
	return &Pipeline{
		Sampler:    s,
		Build:      b,
		Measure:    m,
		Objectives: []config.Objective{{Metric: "CPI", Goal: "min"}},
		Variants:   []string{"-O2", "-O3"},
		WorkRoot:   t.TempDir(),
	}
}

// #endregion setup

// #region lifecycle-tests

func TestRunTrialComplete(t *testing.T) {
	s := &fakeSampler{}
	b := &fakeBuilder{}
	m := &fakeMeasurer{metrics: map[string]float64{"CPI": 1.25, "cycles": 100}}
	p := newPipeline(t, s, b, m)

	trial, err := p.RunTrial(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trial.State != StateComplete {
		t.Fatalf("expected complete, got %q (reason %q)", trial.State, trial.Reason)
	}
	if len(trial.Values) != 1 || trial.Values[0] != 1.25 {
		t.Errorf("expected objective vector [1.25], got %v", trial.Values)
	}
	if trial.FlagString != "-O2" {
		t.Errorf("expected first-choice variant '-O2', got %q", trial.FlagString)
	}
	if trial.Binary == "" {
		t.Error("expected binary path recorded")
	}
}

func TestRunTrialBuildFailurePrunes(t *testing.T) {
	s := &fakeSampler{cats: map[string]string{"flag_variant": "-O3"}}
	b := &fakeBuilder{failOn: "-O3"}
	m := &fakeMeasurer{metrics: map[string]float64{"CPI": 1}}
	p := newPipeline(t, s, b, m)

	trial, err := p.RunTrial(context.Background(), 0)
	if err != nil {
		t.Fatalf("build failure must not abort the run: %v", err)
	}
	if trial.State != StatePruned {
		t.Fatalf("expected pruned, got %q", trial.State)
	}
	if !strings.Contains(trial.Reason, "build failed") {
		t.Errorf("expected reason to mention build failure, got %q", trial.Reason)
	}
	if m.calls != 0 {
		t.Error("pruned build must not be measured")
	}
	if trial.Values != nil {
		t.Error("pruned trial must carry no objective vector")
	}
}

func TestRunTrialBuildTimeoutPrunes(t *testing.T) {
	s := &fakeSampler{}
	b := &fakeBuilder{err: fmt.Errorf("cmake: %w", context.DeadlineExceeded)}
	p := newPipeline(t, s, b, &fakeMeasurer{})
	p.BuildTimeout = time.Millisecond

	trial, err := p.RunTrial(context.Background(), 0)
	if err != nil {
		t.Fatalf("timeout must prune, not abort: %v", err)
	}
	if trial.State != StatePruned || !strings.Contains(trial.Reason, "timed out") {
		t.Fatalf("expected timeout prune, got %q / %q", trial.State, trial.Reason)
	}
}

func TestRunTrialBuildInfrastructureErrorAborts(t *testing.T) {
	s := &fakeSampler{}
	b := &fakeBuilder{err: errors.New("cmake not installed")}
	p := newPipeline(t, s, b, &fakeMeasurer{})

	if _, err := p.RunTrial(context.Background(), 0); err == nil {
		t.Fatal("infrastructure build error must abort the run")
	}
}

func TestRunTrialMeasurementFailurePrunes(t *testing.T) {
	s := &fakeSampler{}
	m := &fakeMeasurer{err: errors.New("perf parse failure: received no matching events")}
	p := newPipeline(t, s, &fakeBuilder{}, m)

	trial, err := p.RunTrial(context.Background(), 0)
	if err != nil {
		t.Fatalf("measurement failure must prune, not abort: %v", err)
	}
	if trial.State != StatePruned || !strings.Contains(trial.Reason, "measurement failed") {
		t.Fatalf("expected measurement prune, got %q / %q", trial.State, trial.Reason)
	}
}

func TestRunTrialMissingToolAborts(t *testing.T) {
	s := &fakeSampler{}
	m := &fakeMeasurer{err: fmt.Errorf("perf run: %w", exec.ErrNotFound)}
	p := newPipeline(t, s, &fakeBuilder{}, m)

	if _, err := p.RunTrial(context.Background(), 0); err == nil {
		t.Fatal("a missing measurement tool must abort the run")
	}
}

func TestRunTrialMissingMetricPrunes(t *testing.T) {
	s := &fakeSampler{}
	m := &fakeMeasurer{metrics: map[string]float64{"cycles": 100}}
	p := newPipeline(t, s, &fakeBuilder{}, m)

	trial, err := p.RunTrial(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trial.State != StatePruned || !strings.Contains(trial.Reason, "CPI") {
		t.Fatalf("expected prune naming the missing metric, got %q / %q", trial.State, trial.Reason)
	}
}

// #endregion lifecycle-tests

// #region study-tests

func TestStudyRecordTellsSampler(t *testing.T) {
	s := &fakeSampler{}
	st := New([]config.Objective{{Metric: "CPI", Goal: "min"}}, s)

	trials := []Trial{
		{Ordinal: 0, SamplerID: 1, State: StateComplete, Values: []float64{2.0}},
		{Ordinal: 1, SamplerID: 2, State: StatePruned, Reason: "build failed"},
		{Ordinal: 2, SamplerID: 3, State: StateFailed, Reason: "panic"},
	}
	for _, tr := range trials {
		if err := st.Record(context.Background(), tr); err != nil {
			t.Fatalf("record #%d: %v", tr.Ordinal, err)
		}
	}

	if len(s.tells) != 3 {
		t.Fatalf("expected 3 tells, got %d", len(s.tells))
	}
	if s.tells[0].state != "complete" || s.tells[1].state != "pruned" || s.tells[2].state != "failed" {
		t.Errorf("outcome states not propagated: %+v", s.tells)
	}
	if s.tells[1].reason != "build failed" {
		t.Errorf("prune reason not propagated: %q", s.tells[1].reason)
	}

	sum := st.Summarize()
	if sum.Total != 3 || sum.Complete != 1 || sum.Pruned != 1 || sum.Failed != 1 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}

func TestStudyRecordRejectsNonTerminal(t *testing.T) {
	st := New(nil, &fakeSampler{})
	err := st.Record(context.Background(), Trial{Ordinal: 0, State: StateBuilding})
	if err == nil {
		t.Fatal("expected rejection of a non-terminal trial")
	}
}

func TestStudyEndToEndFrontExcludesPruned(t *testing.T) {
	s := &fakeSampler{cats: map[string]string{"flag_variant": "-O2"}}
	b := &fakeBuilder{}
	m := &fakeMeasurer{metrics: map[string]float64{"CPI": 1.5}}
	p := newPipeline(t, s, b, m)
	st := New(p.Objectives, s)

	// Three trials; the middle one fails its build.
	for i := 0; i < 3; i++ {
		if i == 1 {
			b.failOn = "-O2"
		} else {
			b.failOn = ""
		}
		trial, err := p.RunTrial(context.Background(), i)
		if err != nil {
			t.Fatalf("trial #%d: %v", i, err)
		}
		if err := st.Record(context.Background(), trial); err != nil {
			t.Fatalf("record #%d: %v", i, err)
		}
	}

	sum := st.Summarize()
	if sum.Complete != 2 || sum.Pruned != 1 {
		t.Fatalf("expected 2 complete and 1 pruned, got %+v", sum)
	}
	front := st.Front(context.Background())
	for _, tr := range front {
		if tr.State != StateComplete {
			t.Errorf("pruned trial #%d leaked into the front", tr.Ordinal)
		}
	}
	if len(front) == 0 {
		t.Fatal("expected a non-empty front")
	}
}

func TestStudyFrontPrefersSamplerAnswer(t *testing.T) {
	s := &fakeSampler{supported: true, bestIDs: []int64{2}}
	st := New([]config.Objective{{Metric: "CPI", Goal: "min"}}, s)

	st.Record(context.Background(), Trial{Ordinal: 0, SamplerID: 1, State: StateComplete, Values: []float64{1}})
	st.Record(context.Background(), Trial{Ordinal: 1, SamplerID: 2, State: StateComplete, Values: []float64{2}})

	front := st.Front(context.Background())
	if len(front) != 1 || front[0].SamplerID != 2 {
		t.Fatalf("expected the sampler-designated front, got %v", front)
	}
}

// #endregion study-tests
