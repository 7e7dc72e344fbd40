package build

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #region exec-runner-tests

func TestExecRunnerCapturesOutput(t *testing.T) {
	r := ExecRunner{Quiet: true}
	res, err := r.Run(context.Background(), []string{"sh", "-c", "echo out; echo err >&2"}, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "out" {
		t.Errorf("stdout not captured: %q", res.Stdout)
	}
	if strings.TrimSpace(res.Stderr) != "err" {
		t.Errorf("stderr not captured: %q", res.Stderr)
	}
	if res.ExitCode != 0 {
		t.Errorf("expected exit 0, got %d", res.ExitCode)
	}
}

func TestExecRunnerNonZeroExitIsNotAnError(t *testing.T) {
	r := ExecRunner{Quiet: true}
	res, err := r.Run(context.Background(), []string{"sh", "-c", "exit 3"}, "", nil)
	if err != nil {
		t.Fatalf("a non-zero exit must come back in the result, not as an error: %v", err)
	}
	if res.ExitCode != 3 {
		t.Errorf("expected exit 3, got %d", res.ExitCode)
	}
}

func TestExecRunnerMissingBinary(t *testing.T) {
	r := ExecRunner{Quiet: true}
	_, err := r.Run(context.Background(), []string{"definitely-not-a-real-tool-xyz"}, "", nil)
	if err == nil {
		t.Fatal("expected start failure for a missing binary")
	}
}

func TestExecRunnerHonorsTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	r := ExecRunner{Quiet: true}
	_, err := r.Run(ctx, []string{"sleep", "5"}, "", nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected DeadlineExceeded in the chain, got %v", err)
	}
}

func TestExecRunnerExtraEnv(t *testing.T) {
	r := ExecRunner{Quiet: true}
	res, err := r.Run(context.Background(), []string{"sh", "-c", "echo $OMP_NUM_THREADS"}, "", map[string]string{"OMP_NUM_THREADS": "8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(res.Stdout) != "8" {
		t.Errorf("extra env not passed through: %q", res.Stdout)
	}
}

// #endregion exec-runner-tests

// #region compile-tests

// recordRunner captures every argv and replays canned exit codes.
type recordRunner struct {
	argvs [][]string
	dirs  []string
	codes []int
}

func (r *recordRunner) Run(_ context.Context, argv []string, dir string, _ map[string]string) (CmdResult, error) {
	i := len(r.argvs)
	r.argvs = append(r.argvs, argv)
	r.dirs = append(r.dirs, dir)
	code := 0
	if i < len(r.codes) {
		code = r.codes[i]
	}
	return CmdResult{ExitCode: code}, nil
}

func TestCompileSingleSourceArgv(t *testing.T) {
	r := &recordRunner{}
	out, err := CompileSingleSource(context.Background(), r, "acpp", "main.cpp", "-O2 -march=native", "/tmp/a.out")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "/tmp/a.out" {
		t.Errorf("expected artifact path back, got %q", out)
	}
	want := []string{"acpp", "-O2", "-march=native", "main.cpp", "-o", "/tmp/a.out"}
	if len(r.argvs) != 1 || strings.Join(r.argvs[0], " ") != strings.Join(want, " ") {
		t.Errorf("unexpected argv: %v", r.argvs)
	}
}

func TestCompileSingleSourceFailureIsSoft(t *testing.T) {
	r := &recordRunner{codes: []int{1}}
	out, err := CompileSingleSource(context.Background(), r, "acpp", "main.cpp", "", "/tmp/a.out")
	if err != nil {
		t.Fatalf("compile failure must not be an error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty artifact on compile failure, got %q", out)
	}
}

func TestCompileMakeSequence(t *testing.T) {
	r := &recordRunner{}
	proj := &config.Project{
		Dir:         "/src/bench",
		BuildSystem: "make",
		Target:      "bench",
		MakeVars:    map[string]string{"BACKEND": "omp"},
	}
	out, err := CompileProject(context.Background(), r, proj, "acpp", "-O3", t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "/src/bench/bench" {
		t.Errorf("expected target path, got %q", out)
	}
	if len(r.argvs) != 2 {
		t.Fatalf("expected clean + build, got %d commands", len(r.argvs))
	}
	if strings.Join(r.argvs[0], " ") != "make clean" || r.dirs[0] != "/src/bench" {
		t.Errorf("expected 'make clean' in project dir first, got %v in %q", r.argvs[0], r.dirs[0])
	}
	build := strings.Join(r.argvs[1], " ")
	for _, want := range []string{"CXX=acpp", "CXXFLAGS+=-O3", "BACKEND=omp", "bench"} {
		if !strings.Contains(build, want) {
			t.Errorf("build command missing %q: %q", want, build)
		}
	}
}

func TestCompileCMakeConfigureFailureIsSoft(t *testing.T) {
	r := &recordRunner{codes: []int{1}}
	proj := &config.Project{Dir: "/src/bench", BuildSystem: "cmake"}
	out, err := CompileProject(context.Background(), r, proj, "acpp", "-O2", t.TempDir())
	if err != nil {
		t.Fatalf("configure failure must not be an error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty artifact, got %q", out)
	}
	if len(r.argvs) != 1 {
		t.Errorf("build must not run after a failed configure, got %d commands", len(r.argvs))
	}
}

func TestCompileCMakeInjectsFlags(t *testing.T) {
	r := &recordRunner{}
	proj := &config.Project{Dir: "/src/bench", BuildSystem: "cmake", Target: "bench", CmakeDefs: []string{"USE_OMP=ON"}}
	out, err := CompileProject(context.Background(), r, proj, "acpp", "-O3 -ffast-math", t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Base(out) != "bench" {
		t.Errorf("expected target binary, got %q", out)
	}
	configure := strings.Join(r.argvs[0], " ")
	for _, want := range []string{"-DCMAKE_CXX_COMPILER=acpp", "-DCMAKE_CXX_FLAGS=-O3 -ffast-math", "-DUSE_OMP=ON"} {
		if !strings.Contains(configure, want) {
			t.Errorf("configure missing %q: %q", want, configure)
		}
	}
}

// #endregion compile-tests

// #region last-executable-tests

func TestLastExecutablePicksNewest(t *testing.T) {
	dir := t.TempDir()
	old := filepath.Join(dir, "old_bin")
	newer := filepath.Join(dir, "sub", "new_bin")
	plain := filepath.Join(dir, "notes.txt")

	if err := os.MkdirAll(filepath.Dir(newer), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, p := range []string{old, newer} {
		if err := os.WriteFile(p, []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(plain, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	past := time.Now().Add(-time.Hour)
	if err := os.Chtimes(old, past, past); err != nil {
		t.Fatal(err)
	}

	if got := lastExecutable(dir); got != newer {
		t.Errorf("expected %q, got %q", newer, got)
	}
}

func TestLastExecutableEmpty(t *testing.T) {
	if got := lastExecutable(t.TempDir()); got != "" {
		t.Errorf("expected empty result, got %q", got)
	}
}

// #endregion last-executable-tests
