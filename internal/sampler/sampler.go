// Package sampler defines the contract with the external black-box optimizer
// and the gRPC client that speaks to the Python sampler service. The search
// algorithm itself (TPE, NSGA-III) lives entirely on the other side of the
// wire; this side only asks for values and tells outcomes.
package sampler

// #region imports
import (
	"context"

	"github.com/perfspace/dse-explorer/internal/space"
)

// #endregion

// #region interface

// Sampler is the pluggable ask/tell oracle. Its internal model is mutable
// shared state with no concurrent-access contract, so callers serialize
// ask and tell phases themselves.
type Sampler interface {
	// StartTrial registers a new trial and returns its ID.
	StartTrial(ctx context.Context) (int64, error)

	AskCategorical(ctx context.Context, trialID int64, name string, choices []string) (string, error)
	AskInt(ctx context.Context, trialID int64, name string, low, high int) (int, error)
	AskFloat(ctx context.Context, trialID int64, name string, low, high float64) (float64, error)

	// Tell reports a finalized trial. Pruned and failed trials are reported
	// too, as distinct outcomes, so the optimizer does not treat the decision
	// region as untested.
	Tell(ctx context.Context, trialID int64, state string, values []float64, reason string) error

	// BestTrials returns the service's own Pareto front, when it tracks one.
	// supported=false means the caller must recompute locally.
	BestTrials(ctx context.Context) (ids []int64, supported bool, err error)
}

// Trial outcome states on the wire.
const (
	StateComplete = "complete"
	StatePruned   = "pruned"
	StateFailed   = "failed"
)

// #endregion

// #region trial-asker

// trialAsker binds one trial ID so the decision-space code can issue
// requests without carrying trial bookkeeping.
type trialAsker struct {
	s       Sampler
	trialID int64
}

// ForTrial adapts a Sampler into the decision-space ask surface for one trial.
func ForTrial(s Sampler, trialID int64) space.Asker {
	return &trialAsker{s: s, trialID: trialID}
}

func (t *trialAsker) AskCategorical(ctx context.Context, name string, choices []string) (string, error) {
	return t.s.AskCategorical(ctx, t.trialID, name, choices)
}

func (t *trialAsker) AskInt(ctx context.Context, name string, low, high int) (int, error) {
	return t.s.AskInt(ctx, t.trialID, name, low, high)
}

func (t *trialAsker) AskFloat(ctx context.Context, name string, low, high float64) (float64, error) {
	return t.s.AskFloat(ctx, t.trialID, name, low, high)
}

// #endregion
