package study

// #region imports
import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/perfspace/dse-explorer/internal/config"
	"github.com/perfspace/dse-explorer/internal/sampler"
	"github.com/perfspace/dse-explorer/internal/space"
)

// #endregion

// #region collaborators

// Builder produces a binary artifact from a flag string inside workDir.
// An ordinary compile failure returns ("", nil); errors are infrastructure.
type Builder interface {
	Build(ctx context.Context, flagString, workDir string) (string, error)
}

// Measurer runs the artifact under the measurement tool and returns the
// metric table. Parse and tool failures come back as errors.
type Measurer interface {
	Measure(ctx context.Context, binPath string, env map[string]string) (map[string]float64, error)
}

// EventLogger receives per-trial stage transitions for provenance.
type EventLogger interface {
	LogEvent(ordinal int, stage, detail string)
}

// #endregion

// #region pipeline-struct

// Pipeline owns the per-trial lifecycle: sample decisions, build, measure,
// extract the objective vector. Build and measurement failures downgrade to a
// pruned trial; sampler and infrastructure errors abort the run.
type Pipeline struct {
	Sampler sampler.Sampler
	Build   Builder
	Measure Measurer

	Objectives []config.Objective
	Variants   []string
	Params     []config.ParamSpec
	FlagPool   []string
	Policy     config.SelectionPolicy
	EnvSchema  []config.EnvVarSpec

	WorkRoot       string
	BuildTimeout   time.Duration
	MeasureTimeout time.Duration
	KeepArtifacts  bool

	Events EventLogger // optional
}

func (p *Pipeline) logEvent(ordinal int, stage, detail string) {
	if p.Events != nil {
		p.Events.LogEvent(ordinal, stage, detail)
	}
}

// #endregion

// #region run-trial

// RunTrial executes one full trial and returns it finalized. The returned
// error is fatal to the whole run (sampler unreachable, filesystem broken,
// build tool absent); recoverable per-trial failures come back as a pruned
// trial with a nil error.
func (p *Pipeline) RunTrial(ctx context.Context, ordinal int) (Trial, error) {
	t := Trial{Ordinal: ordinal, State: StatePending, CreatedAt: time.Now().UTC()}

	samplerID, err := p.Sampler.StartTrial(ctx)
	if err != nil {
		return t, fmt.Errorf("start trial: %w", err)
	}
	t.SamplerID = samplerID
	asker := sampler.ForTrial(p.Sampler, samplerID)

	// Sampling. Errors here mean the sampler itself failed, which is fatal.
	t.State = StateSampling
	p.logEvent(ordinal, "sampling", "")
	label, flagString, err := space.SuggestCompilerFlags(ctx, asker, p.Variants, p.Params, p.FlagPool, p.Policy)
	if err != nil {
		return t, fmt.Errorf("suggest flags: %w", err)
	}
	env, err := space.SuggestEnv(ctx, asker, p.EnvSchema)
	if err != nil {
		return t, fmt.Errorf("suggest env: %w", err)
	}
	t.Label, t.FlagString, t.Env = label, flagString, env

	// Trial-private working directory, removed on every exit path unless
	// artifacts are kept for later analysis.
	workDir := filepath.Join(p.WorkRoot, fmt.Sprintf("trial_%05d", ordinal))
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return t, fmt.Errorf("create work dir: %w", err)
	}
	defer func() {
		if !p.KeepArtifacts {
			os.RemoveAll(workDir)
		}
	}()

	// Building.
	t.State = StateBuilding
	p.logEvent(ordinal, "building", flagString)
	buildCtx, cancelBuild := p.bounded(ctx, p.BuildTimeout)
	binPath, err := p.Build.Build(buildCtx, flagString, workDir)
	cancelBuild()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return p.prune(t, "build failed: timed out"), nil
		}
		return t, fmt.Errorf("build: %w", err)
	}
	if binPath == "" {
		return p.prune(t, "build failed"), nil
	}
	t.Binary = binPath

	// Measuring.
	t.State = StateMeasuring
	p.logEvent(ordinal, "measuring", binPath)
	measCtx, cancelMeas := p.bounded(ctx, p.MeasureTimeout)
	metricsMap, err := p.Measure.Measure(measCtx, binPath, env)
	cancelMeas()
	if err != nil {
		// A missing measurement tool is independent of the sampled decision
		// and would prune every trial; abort instead.
		if errors.Is(err, exec.ErrNotFound) {
			return t, fmt.Errorf("measure: %w", err)
		}
		return p.prune(t, fmt.Sprintf("measurement failed: %v", err)), nil
	}
	t.Metrics = metricsMap

	// Objective extraction, in declared order.
	values := make([]float64, 0, len(p.Objectives))
	for _, obj := range p.Objectives {
		v, ok := metricsMap[obj.Metric]
		if !ok {
			return p.prune(t, fmt.Sprintf("metric '%s' missing", obj.Metric)), nil
		}
		values = append(values, v)
	}
	t.Values = values
	t.State = StateComplete
	p.logEvent(ordinal, "complete", "")
	return t, nil
}

func (p *Pipeline) prune(t Trial, reason string) Trial {
	t.State = StatePruned
	t.Reason = reason
	t.Values = nil
	p.logEvent(t.Ordinal, "pruned", reason)
	log.Printf("[trial] #%d pruned: %s", t.Ordinal, reason)
	return t
}

func (p *Pipeline) bounded(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// #endregion
