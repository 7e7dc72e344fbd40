package study

// #region imports
import (
	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region pareto

// ParetoFront computes the non-dominated subset of the complete trials.
// Every objective is normalized to lower-is-better before comparison; trials
// with equal vectors are both retained.
func ParetoFront(trials []Trial, objectives []config.Objective) []Trial {
	signs := make([]float64, len(objectives))
	for i, o := range objectives {
		if o.Goal == "max" {
			signs[i] = -1
		} else {
			signs[i] = 1
		}
	}

	var complete []Trial
	for _, t := range trials {
		if t.State == StateComplete && len(t.Values) == len(objectives) {
			complete = append(complete, t)
		}
	}

	var front []Trial
	for i, cand := range complete {
		dominated := false
		for j, other := range complete {
			if i == j {
				continue
			}
			if dominates(other.Values, cand.Values, signs) {
				dominated = true
				break
			}
		}
		if !dominated {
			front = append(front, cand)
		}
	}
	return front
}

// dominates reports whether a dominates b: component-wise no worse, strictly
// better in at least one objective, after direction normalization.
func dominates(a, b []float64, signs []float64) bool {
	strict := false
	for i := range signs {
		av, bv := a[i]*signs[i], b[i]*signs[i]
		if av > bv {
			return false
		}
		if av < bv {
			strict = true
		}
	}
	return strict
}

// #endregion
