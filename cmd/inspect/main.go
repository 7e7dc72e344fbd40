package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/perfspace/dse-explorer/internal/results"
	"github.com/perfspace/dse-explorer/internal/study"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the SQLite trial log")
	last := flag.Int("last", 50, "show up to N trials")
	trial := flag.Int("trial", -1, "show single trial detail with its stage events")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/trials.db [--last N] [--trial ordinal] [--json]")
		os.Exit(2)
	}

	store, err := results.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *trial >= 0 {
		err = runDetailMode(store, *trial, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *results.Store, last int, jsonOut bool) error {
	trials, err := store.ListTrials(last)
	if err != nil {
		return err
	}
	if len(trials) == 0 {
		fmt.Fprintln(os.Stderr, "no trials found")
		return nil
	}

	if jsonOut {
		return printJSON(trials)
	}

	fmt.Printf("%-6s  %-9s  %-40s  %-28s  %s\n", "Trial", "State", "Flags", "Objectives", "Reason")
	fmt.Printf("%-6s  %-9s  %-40s  %-28s  %s\n", "------", "---------",
		"----------------------------------------", "----------------------------", "--------------------")
	for _, t := range trials {
		values := "-"
		if t.Values != nil {
			values = fmt.Sprintf("%v", t.Values)
		}
		fmt.Printf("%-6d  %-9s  %-40s  %-28s  %s\n",
			t.Ordinal, t.State, truncate(t.Label, 40), truncate(values, 28), t.Reason)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	Trial  study.Trial     `json:"trial"`
	Events []results.Event `json:"events"`
}

func runDetailMode(store *results.Store, ordinal int, jsonOut bool) error {
	t, err := store.GetTrial(ordinal)
	if err != nil {
		return err
	}
	events, err := store.ListEvents(ordinal)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(detailOutput{Trial: t, Events: events})
	}

	fmt.Printf("Trial:      #%d\n", t.Ordinal)
	fmt.Printf("State:      %s\n", t.State)
	fmt.Printf("Flags:      %s\n", t.FlagString)
	fmt.Printf("Label:      %s\n", t.Label)
	envJSON, _ := json.Marshal(t.Env)
	fmt.Printf("Env:        %s\n", envJSON)
	if t.Values != nil {
		fmt.Printf("Objectives: %v\n", t.Values)
	}
	if t.Binary != "" {
		fmt.Printf("Binary:     %s\n", t.Binary)
	}
	if t.Reason != "" {
		fmt.Printf("Reason:     %s\n", t.Reason)
	}
	fmt.Printf("Created:    %s\n", t.CreatedAt.Format("2006-01-02T15:04:05Z"))

	if len(t.Metrics) > 0 {
		fmt.Printf("\nMetrics:\n")
		data, _ := json.MarshalIndent(t.Metrics, "  ", "  ")
		fmt.Printf("  %s\n", data)
	}

	if len(events) > 0 {
		fmt.Printf("\nStage events:\n")
		for _, e := range events {
			detail := ""
			if e.Detail != "" {
				detail = "  " + e.Detail
			}
			fmt.Printf("  %-10s %s%s\n", e.Stage, e.CreatedAt.Format("15:04:05.000"), detail)
		}
	}
	return nil
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

// #endregion output
