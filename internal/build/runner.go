// Package build shells out to compilers and build systems, producing a
// binary artifact per trial. An ordinary compile failure is a per-trial
// outcome, not an error; only infrastructure problems (missing tool,
// unkillable process) surface as errors.
package build

// #region imports
import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"
)

// #endregion

// #region runner

// CmdResult captures one finished subprocess.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes a command with extra environment entries. Implementations
// must terminate the process when ctx expires, not merely abandon it.
type Runner interface {
	Run(ctx context.Context, argv []string, dir string, extraEnv map[string]string) (CmdResult, error)
}

// #endregion

// #region exec-runner

// ExecRunner runs commands via os/exec, echoing each invocation.
type ExecRunner struct {
	Quiet bool
}

// Run executes argv, merging extraEnv over the inherited environment. A
// non-zero exit comes back in CmdResult with a nil error; a context expiry or
// an unstartable command is an error.
func (e ExecRunner) Run(ctx context.Context, argv []string, dir string, extraEnv map[string]string) (CmdResult, error) {
	if !e.Quiet {
		suffix := ""
		if dir != "" {
			suffix = fmt.Sprintf("  (cwd=%s)", dir)
		}
		log.Printf("[exec] %s%s", strings.Join(argv, " "), suffix)
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()
	for k, v := range extraEnv {
		cmd.Env = append(cmd.Env, k+"="+v)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if ctx.Err() != nil {
		return res, fmt.Errorf("command %s: %w", argv[0], ctx.Err())
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	if err != nil {
		return res, fmt.Errorf("run %s: %w", argv[0], err)
	}
	return res, nil
}

// #endregion
