package build

// #region imports
import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/perfspace/dse-explorer/internal/config"
)

// #endregion

// #region single-source

// CompileSingleSource compiles one translation unit to outPath. Returns ""
// with a nil error on an ordinary compile failure.
func CompileSingleSource(ctx context.Context, r Runner, compiler, src, flags, outPath string) (string, error) {
	argv := []string{compiler}
	argv = append(argv, strings.Fields(flags)...)
	argv = append(argv, src, "-o", outPath)

	res, err := r.Run(ctx, argv, "", nil)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", nil
	}
	return outPath, nil
}

// #endregion

// #region project

// CompileProject builds a cmake or make tree with the sampled flags injected
// and returns the produced binary path, or "" on an ordinary build failure.
func CompileProject(ctx context.Context, r Runner, proj *config.Project, compiler, flags, workDir string) (string, error) {
	if proj.BuildSystem == "make" {
		return compileMake(ctx, r, proj, compiler, flags)
	}
	return compileCMake(ctx, r, proj, compiler, flags, workDir)
}

func compileCMake(ctx context.Context, r Runner, proj *config.Project, compiler, flags, workDir string) (string, error) {
	buildDir := filepath.Join(workDir, "cmake_"+uuid.New().String()[:8])
	if err := os.Mkdir(buildDir, 0o755); err != nil {
		return "", err
	}

	configure := []string{
		"cmake", "-S", proj.Dir, "-B", buildDir,
		"-DCMAKE_CXX_COMPILER=" + compiler,
		"-DCMAKE_CXX_FLAGS=" + flags,
		"-DCMAKE_BUILD_TYPE=Release",
	}
	for _, d := range proj.CmakeDefs {
		configure = append(configure, "-D"+d)
	}
	res, err := r.Run(ctx, configure, "", nil)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", nil
	}

	buildCmd := []string{"cmake", "--build", buildDir, "--parallel"}
	if proj.Target != "" {
		buildCmd = append(buildCmd, "--target", proj.Target)
	}
	res, err = r.Run(ctx, buildCmd, "", nil)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", nil
	}

	if proj.Target != "" {
		return filepath.Join(buildDir, proj.Target), nil
	}
	return lastExecutable(buildDir), nil
}

func compileMake(ctx context.Context, r Runner, proj *config.Project, compiler, flags string) (string, error) {
	// Stale objects would poison flag comparisons.
	if _, err := r.Run(ctx, []string{"make", "clean"}, proj.Dir, nil); err != nil {
		return "", err
	}

	buildCmd := []string{"make", "CXX=" + compiler, "CXXFLAGS+=" + flags, "-j"}
	for k, v := range proj.MakeVars {
		buildCmd = append(buildCmd, k+"="+v)
	}
	if proj.Target != "" {
		buildCmd = append(buildCmd, proj.Target)
	}
	res, err := r.Run(ctx, buildCmd, proj.Dir, nil)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", nil
	}

	if proj.Target != "" {
		return filepath.Join(proj.Dir, proj.Target), nil
	}
	return lastExecutable(proj.Dir), nil
}

// #endregion

// #region last-executable

// lastExecutable returns the most recently modified executable regular file
// under root, or "" when none exists. Used when the build tree does not name
// a target.
func lastExecutable(root string) string {
	var latest string
	var latestMod time.Time
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Mode().IsRegular() && info.Mode().Perm()&0o111 != 0 && info.ModTime().After(latestMod) {
			latestMod = info.ModTime()
			latest = path
		}
		return nil
	})
	return latest
}

// #endregion
