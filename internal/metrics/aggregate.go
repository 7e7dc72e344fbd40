// Package metrics turns raw measurement-tool text (perf stat counter logs,
// likwid table reports) into a uniform metric-name → value table, with
// per-metric aggregation across threads and arithmetic-mean smoothing across
// repeated runs.
package metrics

// #region imports
import (
	"sort"
)

// #endregion

// #region reductions

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// variance is the sample variance (n-1 denominator); callers guard len >= 2.
func variance(values []float64) float64 {
	m := mean(values)
	var sum float64
	for _, v := range values {
		d := v - m
		sum += d * d
	}
	return sum / float64(len(values)-1)
}

// aggregate reduces intra-run samples (e.g. per-thread cells) per the
// configured mode. Modes are validated at config load.
func aggregate(values []float64, mode string) float64 {
	switch mode {
	case "max":
		v := values[0]
		for _, x := range values[1:] {
			if x > v {
				v = x
			}
		}
		return v
	case "min":
		v := values[0]
		for _, x := range values[1:] {
			if x < v {
				v = x
			}
		}
		return v
	case "median":
		return median(values)
	default: // "avg"
		return mean(values)
	}
}

// #endregion
