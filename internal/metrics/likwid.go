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

// #region numeric-parsing

var (
	likwidRowRe = regexp.MustCompile(`^\|\s*([^|]+?)\s*\|(.+)$`)
	// Thousands separator between a digit and a group of exactly 3 digits:
	// 1.234.567, 1'234'567, or a narrow no-break space.
	groupSepRe = regexp.MustCompile(`([0-9])[.'\x{202F}]([0-9]{3})\b`)
	decCommaRe = regexp.MustCompile(`^([0-9]+),([0-9]+)$`)
)

// parseNum parses a table cell into a float, tolerating locale-dependent
// thousands separators and decimal-comma notation. Returns ok=false for
// unparseable cells, which callers skip.
func parseNum(text string) (float64, bool) {
	t := strings.TrimSpace(text)
	for {
		stripped := groupSepRe.ReplaceAllString(t, "$1$2")
		if stripped == t {
			break
		}
		t = stripped
	}
	if m := decCommaRe.FindStringSubmatch(t); m != nil {
		t = m[1] + "." + m[2]
	}
	v, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// #endregion

// #region parse

const statSuffix = "STAT"

// ParseLikwid scans pipe-delimited likwid-perfctr table rows and reduces them
// per MetricSpec. A "<name> STAT" row carries a pre-aggregated average in its
// 4th cell, preferred over re-averaging the per-thread cells when agg=avg.
// Metrics absent from the report are simply left out of the result.
func ParseLikwid(out string, specs []config.MetricSpec) map[string]float64 {
	wanted := make(map[string]bool, len(specs))
	perThread := make(map[string][]float64, len(specs))
	for _, s := range specs {
		wanted[s.Name] = true
	}
	statAvg := map[string]float64{}

	for _, line := range strings.Split(out, "\n") {
		m := likwidRowRe.FindStringSubmatch(line)
		if m == nil {
			continue // not a table row
		}
		name, cellsRaw := m[1], m[2]

		if strings.HasSuffix(name, statSuffix) {
			base := strings.TrimRight(strings.TrimSuffix(name, statSuffix), " ")
			if wanted[base] {
				cells := splitCells(cellsRaw)
				if len(cells) >= 4 {
					if v, ok := parseNum(cells[3]); ok {
						statAvg[base] = v
					}
				}
			}
			continue
		}

		if wanted[name] {
			for _, cell := range splitCells(cellsRaw) {
				if v, ok := parseNum(cell); ok {
					perThread[name] = append(perThread[name], v)
				}
			}
		}
	}

	result := map[string]float64{}
	for _, spec := range specs {
		values := perThread[spec.Name]
		if avg, ok := statAvg[spec.Name]; ok && spec.Agg == "avg" {
			result[spec.Name] = avg
		} else if len(values) > 0 {
			result[spec.Name] = aggregate(values, spec.Agg)
		} else {
			continue // metric missing from this report
		}
		if spec.Var && len(values) > 1 {
			result[spec.Name+"_var"] = variance(values)
		}
	}
	return result
}

func splitCells(raw string) []string {
	var cells []string
	for _, c := range strings.Split(raw, "|") {
		if t := strings.TrimSpace(c); t != "" {
			cells = append(cells, t)
		}
	}
	return cells
}

// #endregion

// #region measure

// MeasureLikwid runs the binary under likwid-perfctr the configured number of
// times and returns the per-metric arithmetic mean across runs. A run
// yielding zero metrics is a hard measurement error.
func MeasureLikwid(ctx context.Context, r build.Runner, cfg *config.LikwidConfig, binPath string, args []string, env map[string]string, runs int) (map[string]float64, error) {
	buckets := map[string][]float64{}
	for i := 0; i < runs; i++ {
		argv := []string{"likwid-perfctr"}
		if cfg.CoreList != "" {
			argv = append(argv, "-C", cfg.CoreList)
		}
		if cfg.Group != "" {
			argv = append(argv, "-g", cfg.Group)
		} else {
			argv = append(argv, "-g", strings.Join(cfg.Events, ","))
		}
		argv = append(argv, binPath)
		argv = append(argv, args...)

		res, err := r.Run(ctx, argv, "", env)
		if err != nil {
			return nil, fmt.Errorf("likwid run: %w", err)
		}
		data := ParseLikwid(res.Stdout, cfg.Metrics)
		if len(data) == 0 {
			return nil, fmt.Errorf("likwid parse failure: no metrics captured")
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
