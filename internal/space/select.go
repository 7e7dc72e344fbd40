package space

// #region imports
import (
	"context"
	"sort"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region select

// Select decides which subset of the parametric catalog is active for one
// trial. An empty policy keeps the historical behavior: everything active.
//
// The subset search is soft and score-based: every non-forced key costs one
// continuous sampler request per trial, selected or not, so a Bayesian
// sampler can learn which exclusions correlate with good objectives. The
// request pattern is part of the sampler contract; do not batch or skip it.
func Select(ctx context.Context, a Asker, keys []string, policy config.SelectionPolicy) (map[string]bool, error) {
	active := make(map[string]bool, len(keys))
	if policy.Empty() {
		for _, k := range keys {
			active[k] = true
		}
		return active, nil
	}

	inCatalog := make(map[string]bool, len(keys))
	for _, k := range keys {
		inCatalog[k] = true
	}
	forced := make(map[string]bool, len(policy.Always))
	for _, name := range policy.Always {
		if inCatalog[name] {
			forced[name] = true
		}
	}

	// Target count: fixed, sampled once from [min,max], or the full catalog
	// when the policy only pins forced members.
	count := len(keys)
	switch {
	case policy.Count != nil:
		count = *policy.Count
	case policy.Min != nil:
		n, err := a.AskInt(ctx, "n_active_params", *policy.Min, *policy.Max)
		if err != nil {
			return nil, err
		}
		count = n
	}
	if count > len(keys) {
		count = len(keys)
	}
	if count < len(forced) {
		count = len(forced)
	}

	// One score per non-forced key, every trial.
	type scored struct {
		key   string
		score float64
	}
	var ranked []scored
	for _, k := range keys {
		if forced[k] {
			continue
		}
		s, err := a.AskFloat(ctx, "sel_"+k, 0, 1)
		if err != nil {
			return nil, err
		}
		ranked = append(ranked, scored{key: k, score: s})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	// Forced keys are pinned to top priority; the remaining slots go to the
	// best-scored survivors.
	for k := range forced {
		active[k] = true
	}
	for _, s := range ranked {
		if len(active) >= count {
			break
		}
		active[s.key] = true
	}
	return active, nil
}

// #endregion
