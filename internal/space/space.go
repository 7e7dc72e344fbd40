// Package space models the conditional, mixed discrete decision space of
// compiler flags and environment variables, and translates it into typed
// requests against the external sampler.
//
// Evaluation contract: variables resolve in declaration order, in a single
// forward pass. A predicate may only reference variables already resolved
// within the same pass; an unsatisfied predicate skips the variable entirely
// (no value, no flag text).
package space

// #region imports
import (
	"context"
	"strings"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region asker

// Asker is the typed request surface of the external sampler. Implementations
// echo back concrete values; this package never inspects sampler state.
type Asker interface {
	AskCategorical(ctx context.Context, name string, choices []string) (string, error)
	AskInt(ctx context.Context, name string, low, high int) (int, error)
	AskFloat(ctx context.Context, name string, low, high float64) (float64, error)
}

// #endregion

// #region predicate

// satisfied reports whether every predicate entry matches the partial
// assignment built so far. Keys missing from the assignment (unresolved or
// skipped variables) never match.
func satisfied(when map[string]string, assignment map[string]string) bool {
	for key, want := range when {
		if got, ok := assignment[key]; !ok || got != want {
			return false
		}
	}
	return true
}

// #endregion

// #region render

// renderToken turns a resolved param value into flag text. Boolean values
// render as flag presence: "true" is the option name itself, "false" nothing.
func renderToken(p config.ParamSpec, v config.Value) (string, bool) {
	if v.IsBool {
		if v.Bool {
			return p.Name, true
		}
		return "", false
	}
	if p.Format != "" {
		return strings.ReplaceAll(p.Format, "{}", v.Text), true
	}
	if p.Sep != nil {
		return p.Name + *p.Sep + v.Text, true
	}
	// Plain list: a name carrying its own glue ("-march=", "-I ") is used
	// as-is, anything else gets "=".
	if strings.HasSuffix(p.Name, "=") || strings.HasSuffix(p.Name, " ") {
		return p.Name + v.Text, true
	}
	return p.Name + "=" + v.Text, true
}

// #endregion

// #region label

// Label joins rendered tokens into the trial's human-readable identifier.
// Stable for identical resolved values; "default" when nothing rendered.
func Label(tokens []string) string {
	if len(tokens) == 0 {
		return "default"
	}
	return strings.Join(tokens, "|")
}

// #endregion

// #region helpers

func choiceTexts(values []config.Value) []string {
	texts := make([]string, len(values))
	for i, v := range values {
		texts[i] = v.Text
	}
	return texts
}

func findValue(values []config.Value, text string) config.Value {
	for _, v := range values {
		if v.Text == text {
			return v
		}
	}
	// Sampler echoed something outside the domain; treat it as plain text.
	return config.Value{Text: text}
}

// #endregion
