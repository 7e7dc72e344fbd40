package metrics

// #region imports
import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/perfspace/dse-explorer/internal/build"
	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region parse

var perfLineRe = regexp.MustCompile(`^\s*([0-9][0-9,]*)\s+([^\s#]+)`)

// ParsePerf scans perf-stat counter lines of the form "<count> <event>".
// Thousands separators are stripped from counts; pmu qualifiers are trimmed
// from event names. Lines not matching the pattern are silently skipped.
// A synthesized CPI = cycles / instructions is added when both base events
// are present and instructions is non-zero. Counts for the same event across
// multiple counter groups accumulate.
func ParsePerf(stderr string, events []string) map[string]float64 {
	wanted := make(map[string]bool, len(events))
	for _, e := range events {
		wanted[e] = true
	}

	accum := map[string]float64{}
	for _, line := range strings.Split(stderr, "\n") {
		m := perfLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		count, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			continue
		}
		// "cpu_core/cycles/" -> "cycles"
		parts := strings.Split(strings.Trim(m[2], "/"), "/")
		base := parts[len(parts)-1]
		if !wanted[base] {
			continue
		}
		accum[base] += count
	}

	if cycles, ok := accum["cycles"]; ok {
		if instr, ok := accum["instructions"]; ok && instr != 0 {
			accum["CPI"] = cycles / instr
		}
	}
	return accum
}

// #endregion

// #region measure

// MeasurePerf runs the binary under perf stat the configured number of times
// and returns the per-event arithmetic mean across runs. A run yielding zero
// matching events is a hard measurement error.
func MeasurePerf(ctx context.Context, r build.Runner, cfg *config.PerfConfig, binPath string, args []string, env map[string]string, runs int) (map[string]float64, error) {
	buckets := map[string][]float64{}
	for i := 0; i < runs; i++ {
		argv := []string{"perf", "stat", "-e", strings.Join(cfg.Events, ","), "--", binPath}
		argv = append(argv, args...)
		if cfg.CoreList != "" {
			argv = append([]string{"taskset", "-c", cfg.CoreList}, argv...)
		}
		res, err := r.Run(ctx, argv, "", env)
		if err != nil {
			return nil, fmt.Errorf("perf run: %w", err)
		}
		data := ParsePerf(res.Stderr, cfg.Events)
		if len(data) == 0 {
			return nil, fmt.Errorf("perf parse failure: received no matching events")
		}
		for k, v := range data {
			buckets[k] = append(buckets[k], v)
		}
	}

	out := make(map[string]float64, len(buckets))
	for k, vals := range buckets {
		out[k] = mean(vals)
	}
	return out, nil
}

// #endregion
