package mermaidmcp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	mcpadapter "github.com/aretw0/mermaid-mcp/internal/adapters/mcp"
	"github.com/aretw0/mermaid-mcp/internal/mmdc"
)

// Version is the module version. Overridable at build time via ldflags.
var Version = "0.1.0"

// Server is the high-level entry point: a configured MCP server wrapping the
// renderer pipeline.
type Server struct {
	adapter *mcpadapter.Server
}

type settings struct {
	configPath string
	binary     string
	timeout    time.Duration
	tempDir    string
	outputDir  string
	logger     *slog.Logger
}

// Option defines a functional option for configuring the server.
type Option func(*settings)

// WithConfigFile loads renderer settings from a YAML file. A missing file
// is not an error; explicit options below still win over file values.
func WithConfigFile(path string) Option {
	return func(s *settings) {
		s.configPath = path
	}
}

// WithRendererBinary overrides the mmdc binary path (default: "mmdc" from PATH).
func WithRendererBinary(path string) Option {
	return func(s *settings) {
		s.binary = path
	}
}

// WithTimeout sets the wall-clock budget per render (default 30s).
func WithTimeout(d time.Duration) Option {
	return func(s *settings) {
		s.timeout = d
	}
}

// WithTempDir sets the parent directory for per-render scratch space.
func WithTempDir(dir string) Option {
	return func(s *settings) {
		s.tempDir = dir
	}
}

// WithOutputDir sets where relative output file names land.
func WithOutputDir(dir string) Option {
	return func(s *settings) {
		s.outputDir = dir
	}
}

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// New assembles the renderer runner and the MCP adapter. There is no global
// state: every configured value lives in the returned server.
func New(opts ...Option) (*Server, error) {
	var st settings
	for _, opt := range opts {
		opt(&st)
	}

	cfg := mmdc.DefaultConfig()
	if st.configPath != "" {
		loaded, err := mmdc.LoadConfig(st.configPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if st.binary != "" {
		cfg.Binary = st.binary
	}
	if st.tempDir != "" {
		cfg.TempDir = st.tempDir
	}
	if st.outputDir != "" {
		cfg.OutputDir = st.outputDir
	}

	if st.logger == nil {
		st.logger = slog.Default()
	}

	runnerOpts := []mmdc.RunnerOption{mmdc.WithLogger(st.logger)}
	if st.timeout > 0 {
		runnerOpts = append(runnerOpts, mmdc.WithTimeout(st.timeout))
	}
	runner := mmdc.NewRunner(cfg, runnerOpts...)
	adapter := mcpadapter.NewServer(runner,
		mcpadapter.WithLogger(st.logger),
		mcpadapter.WithVersion(Version),
	)

	return &Server{adapter: adapter}, nil
}

// ServeStdio serves MCP over Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return s.adapter.ServeStdio()
}

// ServeSSE serves MCP over Server-Sent Events on the given port, with
// Prometheus metrics and a health check on the same listener.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	return s.adapter.ServeSSE(ctx, port)
}
