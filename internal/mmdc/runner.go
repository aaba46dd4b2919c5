package mmdc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/mermaid-mcp/pkg/diagram"
)

// Outcome describes a finished render. It is consumed once by the caller and
// not retained.
type Outcome struct {
	OutputPath string
	Stdout     string
	Stderr     string
	ExitCode   int
	Duration   time.Duration
}

// Runner invokes mmdc with per-call temp files and a hard timeout. It holds
// no mutable state between calls; concurrent renders are independent.
type Runner struct {
	binary    string
	timeout   time.Duration
	tempDir   string
	outputDir string
	logger    *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithBinary overrides the renderer binary (default "mmdc" from PATH).
func WithBinary(path string) RunnerOption {
	return func(r *Runner) {
		if path != "" {
			r.binary = path
		}
	}
}

// WithTimeout sets the wall-clock budget per render.
func WithTimeout(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithTempDir sets the parent directory for per-call scratch space
// (default: the system temp area).
func WithTempDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.tempDir = dir
	}
}

// WithOutputDir sets where relative output file names land
// (default: the working directory).
func WithOutputDir(dir string) RunnerOption {
	return func(r *Runner) {
		r.outputDir = dir
	}
}

// WithLogger sets a structured logger for render diagnostics.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a renderer runner from a config plus options.
func NewRunner(cfg Config, opts ...RunnerOption) *Runner {
	r := &Runner{
		binary:    cfg.Binary,
		timeout:   cfg.Timeout(),
		tempDir:   cfg.TempDir,
		outputDir: cfg.OutputDir,
		logger:    slog.Default(),
	}
	if r.binary == "" {
		r.binary = "mmdc"
	}
	if r.timeout <= 0 {
		r.timeout = 30 * time.Second
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes source to a private temp file, invokes mmdc, and moves the
// produced file to the request's output name. The temp directory is removed
// on every exit path. Errors wrap one of the package sentinels.
func (r *Runner) Render(ctx context.Context, source string, req diagram.Request) (Outcome, error) {
	if err := req.Validate(); err != nil {
		return Outcome{}, err
	}

	workDir, err := os.MkdirTemp(r.tempDir, "mermaid-mcp-*")
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: create temp dir: %v", ErrFilesystem, err)
	}
	defer os.RemoveAll(workDir)

	inputPath := filepath.Join(workDir, "input.mmd")
	if err := os.WriteFile(inputPath, []byte(source), 0o600); err != nil {
		return Outcome{}, fmt.Errorf("%w: write source: %v", ErrFilesystem, err)
	}
	outputPath := filepath.Join(workDir, "output."+string(req.Format))

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, r.binary, buildArgs(req, inputPath, outputPath)...)
	// Own process group: a timeout kill must also reach the headless browser
	// mmdc spawns, or it lingers as an orphan.
	setProcAttrs(cmd)
	cmd.Cancel = func() error { return terminate(cmd) }

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	runErr := cmd.Run()
	outcome := Outcome{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if runErr != nil {
		return outcome, r.classify(ctx, runErr, &outcome)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		return outcome, fmt.Errorf("%w: renderer exited 0 but produced no output file: %v", ErrRendererFailure, err)
	}

	if req.Format == diagram.FormatSVG && req.BackgroundColor == "transparent" {
		data = patchSVGBackground(data)
	}

	finalPath := r.destinationPath(req)
	if err := os.WriteFile(finalPath, data, 0o644); err != nil {
		return outcome, fmt.Errorf("%w: save output to %s: %v", ErrFilesystem, finalPath, err)
	}

	outcome.OutputPath = finalPath
	r.logger.Debug("render finished", "output", finalPath, "format", req.Format, "duration", outcome.Duration)
	return outcome, nil
}

// classify maps a subprocess error onto the package sentinels.
func (r *Runner) classify(ctx context.Context, runErr error, outcome *Outcome) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		r.logger.Warn("render timed out", "timeout", r.timeout)
		return fmt.Errorf("%w after %s; the diagram may be too complex", ErrTimeout, r.timeout)
	}
	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q is not installed or not on PATH (install with: npm install -g @mermaid-js/mermaid-cli)",
			ErrRendererNotFound, r.binary)
	}
	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		outcome.ExitCode = exitErr.ExitCode()
		return fmt.Errorf("%w (exit %d): %s", ErrRendererFailure, outcome.ExitCode, strings.TrimSpace(outcome.Stderr))
	}
	return fmt.Errorf("%w: %v", ErrRendererFailure, runErr)
}

// destinationPath resolves the caller-facing output path. The format
// extension is always appended; relative names land in the output directory
// (working directory by default), absolute names are honored as given.
func (r *Runner) destinationPath(req diagram.Request) string {
	name := req.FileName + "." + string(req.Format)
	if filepath.IsAbs(req.FileName) {
		return name
	}
	return filepath.Join(r.outputDir, name)
}
