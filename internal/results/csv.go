// Package results persists finalized trials: a flattened CSV table for
// analysis and a SQLite log with per-trial provenance events.
package results

// #region imports
import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/perfspace/dse-explorer/internal/config"
	"github.com/perfspace/dse-explorer/internal/study"
)

// #endregion

// #region csv

// WriteCSV writes one row per complete trial: objective values in declared
// order, decision label, serialized environment, binary path, then the
// sorted union of all extra metric names with blanks where absent.
func WriteCSV(path string, trials []study.Trial, objectives []config.Objective) error {
	fp, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer fp.Close()

	objSet := make(map[string]bool, len(objectives))
	for _, o := range objectives {
		objSet[o.Metric] = true
	}
	extraSet := map[string]bool{}
	for _, t := range trials {
		for name := range t.Metrics {
			if !objSet[name] {
				extraSet[name] = true
			}
		}
	}
	extras := make([]string, 0, len(extraSet))
	for name := range extraSet {
		extras = append(extras, name)
	}
	sort.Strings(extras)

	w := csv.NewWriter(fp)
	header := make([]string, 0, len(objectives)+3+len(extras))
	for _, o := range objectives {
		header = append(header, o.Metric)
	}
	header = append(header, "compiler_flags", "env", "binary")
	header = append(header, extras...)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range trials {
		if t.State != study.StateComplete || t.Values == nil {
			continue
		}
		envJSON, err := json.Marshal(t.Env)
		if err != nil {
			return fmt.Errorf("marshal env: %w", err)
		}
		row := make([]string, 0, len(header))
		for _, v := range t.Values {
			row = append(row, formatNum(v))
		}
		row = append(row, t.Label, string(envJSON), t.Binary)
		for _, name := range extras {
			if v, ok := t.Metrics[name]; ok {
				row = append(row, formatNum(v))
			} else {
				row = append(row, "")
			}
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// #endregion
