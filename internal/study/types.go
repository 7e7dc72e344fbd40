package study

// #region imports
import (
	"time"
)

// #endregion

// #region trial-state

// TrialState is the lifecycle state of one trial.
type TrialState string

const (
	StatePending   TrialState = "pending"
	StateSampling  TrialState = "sampling"
	StateBuilding  TrialState = "building"
	StateMeasuring TrialState = "measuring"
	StateComplete  TrialState = "complete"
	StatePruned    TrialState = "pruned"
	StateFailed    TrialState = "failed"
)

// Terminal reports whether the state is a final outcome.
func (s TrialState) Terminal() bool {
	return s == StateComplete || s == StatePruned || s == StateFailed
}

// #endregion

// #region trial

// Trial is one evaluation attempt: a sampled decision assignment plus its
// build/measurement outcome. Owned by the pipeline while running; immutable
// once finalized and appended to the Study's history.
type Trial struct {
	Ordinal   int
	SamplerID int64 // trial ID on the sampler service

	Label      string
	FlagString string
	Env        map[string]string

	State   TrialState
	Values  []float64 // objective vector, declared order; only when complete
	Metrics map[string]float64
	Binary  string
	Reason  string // present when pruned/failed

	CreatedAt time.Time
}

// #endregion

// #region summary

// Summary holds aggregate counts over finalized trials.
type Summary struct {
	Total    int
	Complete int
	Pruned   int
	Failed   int
}

// #endregion
