package space

// #region imports
import (
	"context"
	"strings"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region suggest-flags

// SuggestCompilerFlags asks the sampler for one full compiler-flag decision:
// variant choice, active parametric flags, then flag-pool inclusions.
// Returns the pretty label and the space-joined flag string.
func SuggestCompilerFlags(
	ctx context.Context,
	a Asker,
	variants []string,
	params []config.ParamSpec,
	pool []string,
	policy config.SelectionPolicy,
) (string, string, error) {
	var chosen []string
	assignment := map[string]string{}

	// 1. Variant strings.
	if len(variants) > 0 {
		variant, err := a.AskCategorical(ctx, "flag_variant", variants)
		if err != nil {
			return "", "", err
		}
		chosen = append(chosen, variant)
		assignment["flag_variant"] = variant
	}

	// 2. Parametric flags, filtered through the selection policy.
	keys := make([]string, len(params))
	for i, p := range params {
		keys[i] = p.Name
	}
	active, err := Select(ctx, a, keys, policy)
	if err != nil {
		return "", "", err
	}
	for _, p := range params {
		if !active[p.Name] {
			continue
		}
		if !satisfied(p.When, assignment) {
			continue // predicate false: no value, no render
		}
		text, err := a.AskCategorical(ctx, p.Name, choiceTexts(p.Values))
		if err != nil {
			return "", "", err
		}
		assignment[p.Name] = text
		if token, ok := renderToken(p, findValue(p.Values, text)); ok {
			chosen = append(chosen, token)
		}
	}

	// 3. Flag pool: independent binary inclusion per flag.
	for _, flag := range pool {
		use, err := a.AskCategorical(ctx, flag, []string{"0", "1"})
		if err != nil {
			return "", "", err
		}
		if use == "1" {
			chosen = append(chosen, flag)
		}
	}

	return Label(chosen), strings.Join(chosen, " "), nil
}

// #endregion

// #region suggest-env

// SuggestEnv resolves the environment schema in one declared-order pass.
// One linear pass is enough because predicates only look backward at
// variables already assigned within the same pass.
func SuggestEnv(ctx context.Context, a Asker, schema []config.EnvVarSpec) (map[string]string, error) {
	env := map[string]string{}
	for _, spec := range schema {
		if !satisfied(spec.When, env) {
			continue
		}
		val, err := a.AskCategorical(ctx, spec.Name, choiceTexts(spec.Values))
		if err != nil {
			return nil, err
		}
		env[spec.Name] = val
	}
	return env, nil
}

// #endregion
