package space

import (
	"context"
	"testing"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #region flags

func TestSuggestFlagsComposition(t *testing.T) {
	// Variant first, then params, then pool, in declaration order.
	schema := params(
		config.ParamSpec{Name: "-march=", Values: strValues("native")},
	)
	asker := &fakeAsker{cats: map[string]string{
		"flag_variant":     "-O3",
		"-funroll-loops":   "1",
		"-fomit-frame-ptr": "0",
	}}

	label, flags, err := SuggestCompilerFlags(context.Background(), asker,
		[]string{"-O2", "-O3"}, schema, []string{"-funroll-loops", "-fomit-frame-ptr"}, config.SelectionPolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "-O3 -march=native -funroll-loops" {
		t.Fatalf("unexpected flag string %q", flags)
	}
	if label != "-O3|-march=native|-funroll-loops" {
		t.Fatalf("unexpected label %q", label)
	}
}

func TestSuggestFlagsVariantPredicate(t *testing.T) {
	// Params may condition on the variant choice.
	schema := params(
		config.ParamSpec{Name: "-ffp-contract", Values: strValues("fast"), When: map[string]string{"flag_variant": "-O3"}},
	)
	asker := &fakeAsker{cats: map[string]string{"flag_variant": "-O2"}}
	_, flags, err := SuggestCompilerFlags(context.Background(), asker, []string{"-O2", "-O3"}, schema, nil, config.SelectionPolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "-O2" {
		t.Fatalf("expected param skipped under -O2, got %q", flags)
	}

	asker = &fakeAsker{cats: map[string]string{"flag_variant": "-O3"}}
	_, flags, err = SuggestCompilerFlags(context.Background(), asker, []string{"-O2", "-O3"}, schema, nil, config.SelectionPolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "-O3 -ffp-contract=fast" {
		t.Fatalf("expected param active under -O3, got %q", flags)
	}
}

func TestSuggestFlagsInactiveParamSkipsRequest(t *testing.T) {
	schema := params(
		config.ParamSpec{Name: "-a", Values: strValues("1")},
		config.ParamSpec{Name: "-b", Values: strValues("2")},
	)
	policy := config.SelectionPolicy{Always: []string{"-a"}, Count: intPtr(1)}
	asker := &fakeAsker{}
	_, flags, err := SuggestCompilerFlags(context.Background(), asker, nil, schema, nil, policy)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "-a=1" {
		t.Fatalf("expected only forced param, got %q", flags)
	}
	for _, n := range asker.names {
		if n == "-b" {
			t.Fatal("inactive param must not receive a categorical request")
		}
	}
}

func TestSuggestFlagsEmptyEverything(t *testing.T) {
	asker := &fakeAsker{}
	label, flags, err := SuggestCompilerFlags(context.Background(), asker, nil, nil, nil, config.SelectionPolicy{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if flags != "" {
		t.Fatalf("expected empty flag string, got %q", flags)
	}
	if label != "default" {
		t.Fatalf("expected label \"default\", got %q", label)
	}
}

// #endregion flags

// #region env

func TestSuggestEnvLinearPass(t *testing.T) {
	schema := []config.EnvVarSpec{
		{Name: "OMP_PLACES", Values: strValues("cores", "sockets")},
		{Name: "OMP_PROC_BIND", Values: strValues("close"), When: map[string]string{"OMP_PLACES": "cores"}},
		{Name: "OMP_SCHEDULE", Values: strValues("static"), When: map[string]string{"OMP_PLACES": "threads"}},
	}
	asker := &fakeAsker{}
	env, err := SuggestEnv(context.Background(), asker, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if env["OMP_PLACES"] != "cores" {
		t.Errorf("expected OMP_PLACES=cores, got %q", env["OMP_PLACES"])
	}
	if env["OMP_PROC_BIND"] != "close" {
		t.Errorf("expected satisfied predicate to assign OMP_PROC_BIND, got %v", env)
	}
	if _, ok := env["OMP_SCHEDULE"]; ok {
		t.Errorf("unsatisfied predicate must skip the variable, got %v", env)
	}
}

// #endregion env
