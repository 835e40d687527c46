// Package shell provides a process runner for the external tools lockcheck drives.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/lockcheck/internal/core/domain"
	"go.trai.ch/lockcheck/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CommandRunner = (*Runner)(nil)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner logging the stderr of every command.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd, returning its stdout. Stderr is logged line by line.
// When ctx carries a telemetry vertex, both streams are copied to it.
func (r *Runner) Run(ctx context.Context, cmd domain.Command) ([]byte, error) {
	var stdout bytes.Buffer
	stderrLog := &logWriter{logger: r.logger}
	tail := &tailWriter{}

	var outW io.Writer = &stdout
	var errW io.Writer = io.MultiWriter(stderrLog, tail)
	if v, ok := ports.VertexFromContext(ctx); ok {
		outW = io.MultiWriter(outW, v.Stdout())
		errW = io.MultiWriter(errW, v.Stderr())
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands are built by adapters
	c.Dir = cmd.Dir
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)
	c.Stdout = outW
	c.Stderr = errW

	err := c.Run()
	_ = stderrLog.Close()
	if err == nil {
		return stdout.Bytes(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", cmd.String())
	}

	exitCode := -1
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	}

	failed := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "command", cmd.String())
	failed = zerr.With(failed, "exit_code", exitCode)
	if last := tail.last(); last != "" {
		failed = zerr.With(failed, "stderr", last)
	}
	return stdout.Bytes(), failed
}

type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	if strings.TrimSpace(msg) == "" {
		return
	}
	w.logger.Info(msg)
}

// tailWriter remembers the last non-empty line written to it.
type tailWriter struct {
	line    []byte
	pending []byte
}

func (w *tailWriter) Write(p []byte) (int, error) {
	w.pending = append(w.pending, p...)
	for {
		i := bytes.IndexByte(w.pending, '\n')
		if i < 0 {
			break
		}
		if l := bytes.TrimSpace(w.pending[:i]); len(l) > 0 {
			w.line = append(w.line[:0], l...)
		}
		w.pending = w.pending[i+1:]
	}
	return len(p), nil
}

func (w *tailWriter) last() string {
	if l := bytes.TrimSpace(w.pending); len(l) > 0 {
		return string(l)
	}
	return string(w.line)
}

// allowListedEnvVars are the system environment variables inherited by commands.
// Conan and git need their home, credentials agent and temp directory; everything
// else is dropped so a run does not depend on the caller's shell.
var allowListedEnvVars = map[string]struct{}{
	"HOME":          {},
	"TERM":          {},
	"USER":          {},
	"PATH":          {},
	"TMPDIR":        {},
	"CONAN_HOME":    {},
	"SSH_AUTH_SOCK": {},
}

// resolveEnvironment filters the system environment and applies the command's overrides.
func resolveEnvironment(sysEnv []string, cmdEnv map[string]string) []string {
	envMap := make(map[string]string, len(allowListedEnvVars)+len(cmdEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, allowed := allowListedEnvVars[k]; allowed {
			envMap[k] = v
		}
	}

	for k, v := range cmdEnv {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}
