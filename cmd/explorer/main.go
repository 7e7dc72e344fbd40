package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/perfspace/dse-explorer/internal/build"
	"github.com/perfspace/dse-explorer/internal/config"
	"github.com/perfspace/dse-explorer/internal/metrics"
	"github.com/perfspace/dse-explorer/internal/results"
	"github.com/perfspace/dse-explorer/internal/sampler"
	"github.com/perfspace/dse-explorer/internal/study"
)

// #region main
func main() {
	trials := flag.Int("trials", 50, "number of trials to run")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: explorer [-trials N] config.json")
		os.Exit(2)
	}

	cfg, err := config.Load(flag.Arg(0))
	if err != nil {
		log.Fatalf("fatal: %v", err)
	}

	workRoot, err := os.MkdirTemp("", "dse_")
	if err != nil {
		log.Fatalf("fatal: create work root: %v", err)
	}
	if !cfg.KeepArtifacts {
		defer os.RemoveAll(workRoot)
	}
	log.Printf("[info] working directory root: %s", workRoot)

	ctx := context.Background()

	client, err := sampler.NewClient(cfg.SamplerAddr)
	if err != nil {
		log.Fatalf("fatal: connect sampler at %s: %v", cfg.SamplerAddr, err)
	}
	defer client.Close()
	if err := client.CreateStudy(ctx, cfg.Objectives, cfg.Search); err != nil {
		log.Fatalf("fatal: %v", err)
	}

	var store *results.Store
	if cfg.SQLiteLog != "" {
		store, err = results.NewStore(cfg.SQLiteLog)
		if err != nil {
			log.Fatalf("fatal: open sqlite log: %v", err)
		}
		defer store.Close()
	}

	st := study.New(cfg.Objectives, client)
	pipe := &study.Pipeline{
		Sampler:        client,
		Build:          &builder{runner: build.ExecRunner{}, cfg: cfg},
		Measure:        &measurer{runner: build.ExecRunner{}, cfg: cfg},
		Objectives:     cfg.Objectives,
		Variants:       cfg.CompilerFlags,
		Params:         cfg.CompilerParams,
		FlagPool:       cfg.CompilerFlagPool,
		Policy:         cfg.ParamSelection,
		EnvSchema:      cfg.Env,
		WorkRoot:       workRoot,
		BuildTimeout:   time.Duration(cfg.BuildTimeoutSec) * time.Second,
		MeasureTimeout: time.Duration(cfg.MeasureTimeoutSec) * time.Second,
		KeepArtifacts:  cfg.KeepArtifacts,
	}
	if store != nil {
		pipe.Events = store
	}

	for i := 0; i < *trials; i++ {
		t, err := pipe.RunTrial(ctx, i)
		if err != nil {
			log.Fatalf("fatal: trial #%d: %v", i, err)
		}
		if err := st.Record(ctx, t); err != nil {
			log.Fatalf("fatal: %v", err)
		}
		if store != nil {
			if err := store.SaveTrial(t); err != nil {
				log.Printf("[results] save trial #%d: %v", i, err)
			}
		}
		log.Printf("[trial] #%d state=%s flags='%s' values=%v", t.Ordinal, t.State, t.Label, t.Values)
	}

	printFront(st.Front(ctx))

	sum := st.Summarize()
	fmt.Printf("trials: %d complete, %d pruned, %d failed (of %d)\n",
		sum.Complete, sum.Pruned, sum.Failed, sum.Total)

	if cfg.CSVLog != "" {
		log.Printf("[info] writing CSV log -> %s", cfg.CSVLog)
		if err := results.WriteCSV(cfg.CSVLog, st.Trials(), cfg.Objectives); err != nil {
			log.Fatalf("fatal: %v", err)
		}
	}
}

// #endregion main

// #region report

func printFront(front []study.Trial) {
	fmt.Println("\n================ Pareto-optimal configurations ================")
	for _, t := range front {
		fmt.Printf("Trial#%d: objectives=%v flags='%s' env=%v\n", t.Ordinal, t.Values, t.Label, t.Env)
	}
	fmt.Println("==============================================================")
}

// #endregion report

// #region collaborators

// builder adapts the build package to the pipeline's Builder contract,
// prepending the constant base flags to every sampled flag string.
type builder struct {
	runner build.Runner
	cfg    *config.Config
}

func (b *builder) Build(ctx context.Context, flagString, workDir string) (string, error) {
	flags := strings.TrimSpace(b.cfg.CompilerFlagsBase + " " + flagString)
	if b.cfg.Source != "" {
		out := filepath.Join(workDir, "a.out")
		return build.CompileSingleSource(ctx, b.runner, b.cfg.Compiler, b.cfg.Source, flags, out)
	}
	return build.CompileProject(ctx, b.runner, b.cfg.Project, b.cfg.Compiler, flags, workDir)
}

// measurer adapts the metrics package to the pipeline's Measurer contract,
// dispatching on the configured backend.
type measurer struct {
	runner build.Runner
	cfg    *config.Config
}

func (m *measurer) Measure(ctx context.Context, binPath string, env map[string]string) (map[string]float64, error) {
	if m.cfg.Backend == "perf" {
		return metrics.MeasurePerf(ctx, m.runner, m.cfg.Perf, binPath, m.cfg.ProgramArgs, env, m.cfg.Runs)
	}
	return metrics.MeasureLikwid(ctx, m.runner, m.cfg.Likwid, binPath, m.cfg.ProgramArgs, env, m.cfg.Runs)
}

// #endregion collaborators
