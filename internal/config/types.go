package config

// #region imports
import (
	"encoding/json"
	"fmt"
	"strings"
)

// #endregion

// #region objective

// Objective names one metric to optimize and its direction.
type Objective struct {
	Metric string `json:"metric"`
	Goal   string `json:"goal"` // "min" | "max"
}

// #endregion

// #region metric-spec

// MetricSpec governs reduction of per-thread raw samples into one scalar.
// Accepts a plain string (name only) or an object with agg/var.
type MetricSpec struct {
	Name string
	Agg  string // "avg" | "max" | "min" | "median"
	Var  bool
}

// UnmarshalJSON resolves the string-or-object union once at load time.
func (m *MetricSpec) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*m = MetricSpec{Name: name, Agg: "avg"}
		return nil
	}
	var raw struct {
		Name string `json:"name"`
		Agg  string `json:"agg"`
		Var  bool   `json:"var"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("metric entry must be a string or an object: %w", err)
	}
	if raw.Name == "" {
		return fmt.Errorf("metric object missing 'name'")
	}
	agg := strings.ToLower(raw.Agg)
	if agg == "" {
		agg = "avg"
	}
	switch agg {
	case "avg", "max", "min", "median":
	default:
		return fmt.Errorf("unknown agg mode %q for metric %q", raw.Agg, raw.Name)
	}
	*m = MetricSpec{Name: raw.Name, Agg: agg, Var: raw.Var}
	return nil
}

// #endregion

// #region candidate-value

// Value is one candidate in a categorical domain. Boolean candidates render
// as flag presence rather than a glued value.
type Value struct {
	Text   string
	IsBool bool
	Bool   bool
}

// UnmarshalJSON accepts bools, strings, and numbers, normalizing everything
// else of the JSON surface to a stable text form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = Value{Text: fmt.Sprintf("%v", b), IsBool: true, Bool: b}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{Text: s}
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Value{Text: n.String()}
		return nil
	}
	return fmt.Errorf("domain value must be a bool, string, or number: %s", string(data))
}

// #endregion

// #region param-spec

// ParamSpec is one parametric compiler flag: a name, a categorical domain,
// an optional activation predicate, and exactly one render rule.
type ParamSpec struct {
	Name   string            `json:"name"`
	Values []Value           `json:"values"`
	When   map[string]string `json:"when,omitempty"`
	Sep    *string           `json:"sep,omitempty"`
	Format string            `json:"format,omitempty"` // must contain "{}"
}

// #endregion

// #region env-spec

// EnvVarSpec is one environment variable axis. Predicates reference only
// variables declared earlier in the schema.
type EnvVarSpec struct {
	Name   string            `json:"name"`
	Values []Value           `json:"values"`
	When   map[string]string `json:"when,omitempty"`
}

// #endregion

// #region selection-policy

// SelectionPolicy controls which subset of the parametric catalog is active
// for one trial. Zero value means "all params active".
type SelectionPolicy struct {
	Always []string `json:"always,omitempty"`
	Count  *int     `json:"count,omitempty"`
	Min    *int     `json:"min,omitempty"`
	Max    *int     `json:"max,omitempty"`
}

// Empty reports whether the policy leaves the full catalog active.
func (p SelectionPolicy) Empty() bool {
	return len(p.Always) == 0 && p.Count == nil && p.Min == nil && p.Max == nil
}

// #endregion

// #region build-project

// Project describes a cmake or make build tree.
type Project struct {
	Dir         string            `json:"dir"`
	BuildSystem string            `json:"build_system"` // "cmake" | "make"
	Target      string            `json:"target,omitempty"`
	MakeVars    map[string]string `json:"make_vars,omitempty"`
	CmakeDefs   []string          `json:"cmake_defs,omitempty"`
}

// #endregion

// #region backend-blocks

// PerfConfig configures the perf-stat measurement backend.
type PerfConfig struct {
	Events   []string   `json:"events"`
	CoreList string     `json:"core_list,omitempty"`
	Obj      *Objective `json:"objective,omitempty"` // legacy single-objective form
}

// LikwidConfig configures the likwid-perfctr measurement backend.
type LikwidConfig struct {
	Group    string       `json:"group,omitempty"`
	Events   []string     `json:"events,omitempty"`
	Metrics  []MetricSpec `json:"metrics,omitempty"`
	CoreList string       `json:"core_list,omitempty"`
	Obj      *Objective   `json:"objective,omitempty"` // legacy single-objective form
}

// #endregion

// #region search-spec

// SearchSpec selects the external sampler and its hyperparameters.
type SearchSpec struct {
	Sampler        string `json:"sampler"` // "tpe" | "nsga3"
	NStartupTrials int    `json:"n_startup_trials"`
	PopulationSize int    `json:"population_size"`
	RandomSeed     *int64 `json:"random_seed,omitempty"`
}

// #endregion
