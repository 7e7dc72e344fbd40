package study

import (
	"testing"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #region helpers

func completeTrial(ordinal int, values ...float64) Trial {
	return Trial{Ordinal: ordinal, State: StateComplete, Values: values}
}

func objectives(goals ...string) []config.Objective {
	out := make([]config.Objective, len(goals))
	for i, g := range goals {
		out[i] = config.Objective{Metric: "m" + string(rune('0'+i)), Goal: g}
	}
	return out
}

func ordinals(trials []Trial) map[int]bool {
	out := map[int]bool{}
	for _, t := range trials {
		out[t.Ordinal] = true
	}
	return out
}

// #endregion helpers

// #region dominance-tests

func TestParetoFrontMixedDirections(t *testing.T) {
	// minimize m0, maximize m1: (1,10) dominates (2,10); (2,12) survives on m1.
	trials := []Trial{
		completeTrial(0, 1, 10),
		completeTrial(1, 2, 10),
		completeTrial(2, 2, 12),
	}
	front := ParetoFront(trials, objectives("min", "max"))
	got := ordinals(front)
	if len(front) != 2 || !got[0] || !got[2] {
		t.Fatalf("expected front {0, 2}, got %v", got)
	}
}

func TestParetoFrontEqualVectorsBothRetained(t *testing.T) {
	trials := []Trial{
		completeTrial(0, 1, 1),
		completeTrial(1, 1, 1),
	}
	front := ParetoFront(trials, objectives("min", "min"))
	if len(front) != 2 {
		t.Fatalf("equal objective vectors must both survive, got %d", len(front))
	}
}

func TestParetoFrontSingleObjective(t *testing.T) {
	trials := []Trial{
		completeTrial(0, 3),
		completeTrial(1, 1),
		completeTrial(2, 2),
	}
	front := ParetoFront(trials, objectives("min"))
	if len(front) != 1 || front[0].Ordinal != 1 {
		t.Fatalf("expected only the minimum to survive, got %v", ordinals(front))
	}
}

func TestParetoFrontExcludesNonComplete(t *testing.T) {
	trials := []Trial{
		completeTrial(0, 5, 5),
		{Ordinal: 1, State: StatePruned},
		{Ordinal: 2, State: StateFailed, Values: []float64{0, 0}},
	}
	front := ParetoFront(trials, objectives("min", "min"))
	got := ordinals(front)
	if len(front) != 1 || !got[0] {
		t.Fatalf("pruned and failed trials must not enter the front, got %v", got)
	}
}

func TestParetoFrontSkipsMalformedVectors(t *testing.T) {
	trials := []Trial{
		completeTrial(0, 1, 1),
		{Ordinal: 1, State: StateComplete, Values: []float64{1}},
	}
	front := ParetoFront(trials, objectives("min", "min"))
	if len(front) != 1 || front[0].Ordinal != 0 {
		t.Fatalf("short objective vector must be skipped, got %v", ordinals(front))
	}
}

func TestParetoFrontEmpty(t *testing.T) {
	if front := ParetoFront(nil, objectives("min")); len(front) != 0 {
		t.Fatalf("expected empty front, got %d trials", len(front))
	}
}

// #endregion dominance-tests
