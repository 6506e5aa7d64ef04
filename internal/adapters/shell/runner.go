// Package shell runs the external build tool in a pseudo-terminal.
package shell

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"github.com/creack/pty"
	"go.trai.ch/sourcerer/internal/core/domain"
	"go.trai.ch/sourcerer/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildRunner = (*Runner)(nil)

// Runner implements ports.BuildRunner by invoking `<tool> -f <workspace>/build.xml <target>`.
type Runner struct {
	settings domain.BuildSettings
	logger   ports.Logger
}

// NewRunner creates a runner for the given build settings.
func NewRunner(settings domain.BuildSettings, logger ports.Logger) *Runner {
	if settings.Tool == "" {
		settings.Tool = domain.DefaultBuildTool
	}
	if settings.Target == "" {
		settings.Target = domain.DefaultBuildTarget
	}
	return &Runner{settings: settings, logger: logger}
}

// Compile runs the compile target in workspace. The tool's stdout and stderr
// share one pseudo-terminal, so the output keeps the order the tool wrote it in.
func (r *Runner) Compile(ctx context.Context, workspace string) domain.BuildResult {
	// The tool runs inside the workspace, so relative paths would resolve twice.
	if abs, err := filepath.Abs(workspace); err == nil {
		workspace = abs
	}
	descriptor := filepath.Join(workspace, domain.DescriptorFileName)
	if _, err := os.Stat(descriptor); err != nil {
		return domain.BuildResult{Output: domain.DiagnosticNoBuildFile, ExitCode: -1}
	}

	runCtx := ctx
	if r.settings.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.settings.Timeout)
		defer cancel()
	}

	var out bytes.Buffer
	err := r.run(runCtx, workspace, descriptor, &out)
	output := strings.ReplaceAll(out.String(), "\r", "")

	if err == nil {
		return domain.BuildResult{Success: true, ExitCode: 0}
	}

	if ctx.Err() == nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		r.logger.Warn(fmt.Sprintf("build in %s timed out after %s", workspace, r.settings.Timeout))
		return domain.BuildResult{
			Output:   appendLine(output, fmt.Sprintf("build timed out after %s", r.settings.Timeout)),
			ExitCode: -1,
		}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() >= 0 {
		return domain.BuildResult{Output: output, ExitCode: exitErr.ExitCode()}
	}
	return domain.BuildResult{Output: appendLine(output, err.Error()), ExitCode: -1}
}

func (r *Runner) run(ctx context.Context, workspace, descriptor string, out io.Writer) error {
	env := resolveEnvironment(os.Environ(), r.settings.Env)

	executable := r.settings.Tool
	if !filepath.IsAbs(executable) {
		lp, err := lookPath(executable, env)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "build tool not found"), "tool", r.settings.Tool)
		}
		if executable, err = filepath.Abs(lp); err != nil {
			return zerr.With(zerr.Wrap(err, "build tool not found"), "tool", r.settings.Tool)
		}
	}

	//nolint:gosec // the build tool is configured by the operator
	cmd := exec.CommandContext(ctx, executable, "-f", descriptor, r.settings.Target)
	cmd.Args[0] = r.settings.Tool
	cmd.Dir = workspace
	cmd.Env = env
	cmd.Cancel = func() error { return killGroup(cmd) }

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// The read ends with EIO once the tool and its children exit.
		_, _ = io.Copy(out, ptmx)
	}()

	err = cmd.Wait()
	if ctx.Err() != nil {
		_ = ptmx.Close()
	}
	<-ioDone
	_ = ptmx.Close()

	return err
}

func appendLine(output, line string) string {
	if output == "" || strings.HasSuffix(output, "\n") {
		return output + line
	}
	return output + "\n" + line
}

// allowListedEnvVars are the host variables the build tool inherits.
var allowListedEnvVars = map[string]struct{}{
	"HOME":      {},
	"TERM":      {},
	"USER":      {},
	"PATH":      {},
	"LANG":      {},
	"JAVA_HOME": {},
	"ANT_HOME":  {},
	"ANT_OPTS":  {},
	"IVY_HOME":  {},
}

// resolveEnvironment keeps the allow-listed host variables and applies the
// configured overrides. The result is sorted.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := filterSystemEnv(sysEnv)
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	slices.Sort(result)
	return result
}

func filterSystemEnv(sysEnv []string) map[string]string {
	envMap := make(map[string]string)
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}
	return envMap
}

// lookPath searches for an executable in the PATH of env.
func lookPath(file string, env []string) (string, error) {
	if strings.Contains(file, string(filepath.Separator)) {
		if err := findExecutable(file); err != nil {
			return "", err
		}
		return file, nil
	}

	var path string
	for _, e := range env {
		if after, ok := strings.CutPrefix(e, "PATH="); ok {
			path = after
			break
		}
	}
	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
