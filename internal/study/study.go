// Package study owns the optimization run: the ordered objectives, the
// pluggable sampler, the per-trial pipeline, and the accumulated trial
// history with its multi-objective dominance summary.
package study

// #region imports
import (
	"context"
	"fmt"
	"sync"

	"github.com/perfspace/dse-explorer/internal/config"
	"github.com/perfspace/dse-explorer/internal/sampler"
)

// #endregion

// #region study-struct

// Study is the top-level aggregate. Mutated only by recording finalized
// trials; read by the Pareto reporter and the result sinks. Ask and tell
// both go through the sampler, whose model is mutable shared state, so
// Record serializes under a lock even though the baseline scheduler is
// strictly sequential.
type Study struct {
	mu         sync.Mutex
	objectives []config.Objective
	sampler    sampler.Sampler
	trials     []Trial
}

// New creates a Study over the given objectives and sampler.
func New(objectives []config.Objective, s sampler.Sampler) *Study {
	return &Study{objectives: objectives, sampler: s}
}

// Objectives returns the declared objective order.
func (s *Study) Objectives() []config.Objective {
	return s.objectives
}

// #endregion

// #region record

// Record appends a finalized trial and tells the sampler its outcome.
// Pruned and failed trials are reported as distinct outcomes, never dropped.
func (s *Study) Record(ctx context.Context, t Trial) error {
	if !t.State.Terminal() {
		return fmt.Errorf("trial #%d recorded in non-terminal state %q", t.Ordinal, t.State)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trials = append(s.trials, t)

	var state string
	switch t.State {
	case StateComplete:
		state = sampler.StateComplete
	case StatePruned:
		state = sampler.StatePruned
	default:
		state = sampler.StateFailed
	}
	if err := s.sampler.Tell(ctx, t.SamplerID, state, t.Values, t.Reason); err != nil {
		return fmt.Errorf("tell trial #%d: %w", t.Ordinal, err)
	}
	return nil
}

// #endregion

// #region accessors

// Trials returns the finalized trial history in completion order.
func (s *Study) Trials() []Trial {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Trial, len(s.trials))
	copy(out, s.trials)
	return out
}

// Summarize counts trials per terminal state.
func (s *Study) Summarize() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	sum := Summary{Total: len(s.trials)}
	for _, t := range s.trials {
		switch t.State {
		case StateComplete:
			sum.Complete++
		case StatePruned:
			sum.Pruned++
		case StateFailed:
			sum.Failed++
		}
	}
	return sum
}

// #endregion

// #region front

// Front returns the non-dominated subset of complete trials. When the
// sampler service tracks its own best set, that answer wins, so the live run
// and any post-hoc recomputation never diverge; otherwise dominance is
// recomputed locally with identical semantics.
func (s *Study) Front(ctx context.Context) []Trial {
	trials := s.Trials()
	if ids, supported, err := s.sampler.BestTrials(ctx); err == nil && supported {
		byID := make(map[int64]Trial, len(trials))
		for _, t := range trials {
			byID[t.SamplerID] = t
		}
		var front []Trial
		for _, id := range ids {
			if t, ok := byID[id]; ok && t.State == StateComplete {
				front = append(front, t)
			}
		}
		return front
	}
	return ParetoFront(trials, s.objectives)
}

// #endregion
