package config

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// #endregion

// #region config-struct

// Config is the full, validated configuration for one exploration run.
// Any shape problem surfaces here as an error, before the first trial.
type Config struct {
	Backend string `json:"backend"` // "perf" | "likwid"

	// Build description: exactly one of the two.
	Source  string   `json:"source,omitempty"`
	Project *Project `json:"project,omitempty"`

	Compiler          string          `json:"compiler"`
	CompilerFlagsBase string          `json:"compiler_flags_base,omitempty"`
	CompilerFlags     []string        `json:"compiler_flags,omitempty"` // variant strings
	CompilerParams    []ParamSpec     `json:"compiler_params,omitempty"`
	CompilerFlagPool  []string        `json:"compiler_flag_pool,omitempty"`
	ParamSelection    SelectionPolicy `json:"param_selection,omitempty"`

	ProgramArgs Args         `json:"program_args,omitempty"`
	Env         []EnvVarSpec `json:"env"`

	Perf   *PerfConfig   `json:"perf,omitempty"`
	Likwid *LikwidConfig `json:"likwid,omitempty"`

	Objectives []Objective `json:"objectives"`
	Search     SearchSpec  `json:"search"`

	Runs              int    `json:"runs"`
	BuildTimeoutSec   int    `json:"build_timeout_sec,omitempty"`
	MeasureTimeoutSec int    `json:"measure_timeout_sec,omitempty"`
	KeepArtifacts     bool   `json:"keep_artifacts,omitempty"`
	CSVLog            string `json:"csv_log,omitempty"`
	SQLiteLog         string `json:"sqlite_log,omitempty"`
	SamplerAddr       string `json:"sampler_addr,omitempty"`
}

// #endregion

// #region args

// Args normalizes program_args: a single shell-style string or a list.
type Args []string

// UnmarshalJSON accepts either form and word-splits strings with quote
// awareness, so `-n "1 2"` stays one argument.
func (a *Args) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = splitWords(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("program_args must be a string or list of strings")
	}
	var merged []string
	for _, elem := range list {
		merged = append(merged, splitWords(elem)...)
	}
	*a = merged
	return nil
}

func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	var quote rune
	inWord := false
	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t' || r == '\n':
			if inWord {
				words = append(words, cur.String())
				cur.Reset()
				inWord = false
			}
		default:
			cur.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		words = append(words, cur.String())
	}
	return words
}

// #endregion

// #region load

// Load reads and validates a JSON config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// #endregion

// #region defaults

func (c *Config) applyDefaults() {
	if c.Compiler == "" {
		c.Compiler = "acpp"
	}
	if c.Runs <= 0 {
		c.Runs = 1
	}
	if c.Search.Sampler == "" {
		c.Search.Sampler = "tpe"
	}
	if c.Search.NStartupTrials <= 0 {
		c.Search.NStartupTrials = 10
	}
	if c.Search.PopulationSize <= 0 {
		c.Search.PopulationSize = 50
	}
	if c.SamplerAddr == "" {
		c.SamplerAddr = "localhost:50051"
	}
	if c.Backend == "perf" && c.Perf != nil && len(c.Perf.Events) == 0 {
		c.Perf.Events = []string{"cycles", "instructions"}
	}
	// Likwid metric list falls back to the event base names, or the group.
	if c.Backend == "likwid" && c.Likwid != nil && len(c.Likwid.Metrics) == 0 {
		if len(c.Likwid.Events) > 0 {
			for _, e := range c.Likwid.Events {
				name, _, _ := strings.Cut(e, ":")
				c.Likwid.Metrics = append(c.Likwid.Metrics, MetricSpec{Name: name, Agg: "avg"})
			}
		} else {
			c.Likwid.Metrics = []MetricSpec{{Name: c.Likwid.Group, Agg: "avg"}}
		}
	}
}

// #endregion

// #region validation

func (c *Config) validate() error {
	c.Backend = strings.ToLower(c.Backend)
	if c.Backend != "perf" && c.Backend != "likwid" {
		return fmt.Errorf("backend must be 'perf' or 'likwid', got %q", c.Backend)
	}
	if (c.Source == "") == (c.Project == nil) {
		return fmt.Errorf("provide exactly one of 'source' or 'project'")
	}
	if c.Project != nil {
		if c.Project.Dir == "" {
			return fmt.Errorf("project.dir is required")
		}
		switch c.Project.BuildSystem {
		case "", "cmake", "make":
		default:
			return fmt.Errorf("unknown build_system %q", c.Project.BuildSystem)
		}
		if c.Project.BuildSystem == "" {
			c.Project.BuildSystem = "cmake"
		}
	}
	if c.Backend == "likwid" {
		if c.Likwid == nil {
			return fmt.Errorf("likwid backend needs a 'likwid' block")
		}
		if c.Likwid.Group == "" && len(c.Likwid.Events) == 0 {
			return fmt.Errorf("need either 'group' or 'events' in likwid block")
		}
	}
	if c.Backend == "perf" && c.Perf == nil {
		c.Perf = &PerfConfig{}
	}
	if len(c.Env) == 0 {
		return fmt.Errorf("config must contain a non-empty 'env' list")
	}

	// Legacy configs carry a single objective inside the backend block.
	if len(c.Objectives) == 0 {
		if c.Backend == "perf" && c.Perf.Obj != nil {
			c.Objectives = []Objective{*c.Perf.Obj}
		} else if c.Backend == "likwid" && c.Likwid.Obj != nil {
			c.Objectives = []Objective{*c.Likwid.Obj}
		}
	}
	if err := validateObjectives(c.Objectives); err != nil {
		return err
	}
	if err := validateParams(c.CompilerParams); err != nil {
		return err
	}
	if err := validateEnv(c.Env); err != nil {
		return err
	}
	if err := validatePolicy(c.ParamSelection, c.CompilerParams); err != nil {
		return err
	}
	switch c.Search.Sampler {
	case "", "tpe", "nsga3":
	default:
		return fmt.Errorf("unknown sampler %q", c.Search.Sampler)
	}
	return nil
}

func validateObjectives(objs []Objective) error {
	if len(objs) == 0 {
		return fmt.Errorf("at least one objective required")
	}
	for i := range objs {
		o := &objs[i]
		if o.Metric == "" {
			return fmt.Errorf("objectives[%d] missing 'metric'", i)
		}
		o.Goal = strings.ToLower(o.Goal)
		switch o.Goal {
		case "min", "max":
		case "":
			return fmt.Errorf("objective %q missing 'goal'", o.Metric)
		default:
			return fmt.Errorf("objective %q: goal must be 'min' or 'max'", o.Metric)
		}
	}
	return nil
}

// validateParams enforces one render rule per param and backward-only
// predicates. The variant axis resolves before any param, so predicates may
// also reference "flag_variant".
func validateParams(params []ParamSpec) error {
	seen := map[string]bool{"flag_variant": true}
	for _, p := range params {
		if p.Name == "" {
			return fmt.Errorf("compiler_params entry missing 'name'")
		}
		if len(p.Values) == 0 {
			return fmt.Errorf("param %q: conditional spec missing 'values'", p.Name)
		}
		if p.Sep != nil && p.Format != "" {
			return fmt.Errorf("param %q: 'sep' and 'format' are mutually exclusive", p.Name)
		}
		if p.Format != "" && !strings.Contains(p.Format, "{}") {
			return fmt.Errorf("param %q: format template missing '{}' placeholder", p.Name)
		}
		for key := range p.When {
			if !seen[key] {
				return fmt.Errorf("param %q: predicate references %q, which is not declared earlier", p.Name, key)
			}
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate param %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func validateEnv(env []EnvVarSpec) error {
	seen := map[string]bool{}
	for _, e := range env {
		if e.Name == "" {
			return fmt.Errorf("env entry missing 'name'")
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("env.%s: spec missing 'values'", e.Name)
		}
		for key := range e.When {
			if !seen[key] {
				return fmt.Errorf("env.%s: predicate references %q, which is not declared earlier", e.Name, key)
			}
		}
		if seen[e.Name] {
			return fmt.Errorf("duplicate env var %q", e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}

func validatePolicy(p SelectionPolicy, params []ParamSpec) error {
	if p.Empty() {
		return nil
	}
	if p.Count != nil && (p.Min != nil || p.Max != nil) {
		return fmt.Errorf("param_selection: 'count' and 'min'/'max' are mutually exclusive")
	}
	if (p.Min == nil) != (p.Max == nil) {
		return fmt.Errorf("param_selection: 'min' and 'max' must be given together")
	}
	if p.Min != nil && *p.Min > *p.Max {
		return fmt.Errorf("param_selection: min %d > max %d", *p.Min, *p.Max)
	}
	known := map[string]bool{}
	for _, spec := range params {
		known[spec.Name] = true
	}
	for _, name := range p.Always {
		if !known[name] {
			return fmt.Errorf("param_selection.always references unknown param %q", name)
		}
	}
	return nil
}

// #endregion
