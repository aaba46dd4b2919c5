package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/mermaid-mcp/internal/mmdc"
	"github.com/aretw0/mermaid-mcp/pkg/diagram"
	"github.com/aretw0/mermaid-mcp/pkg/observability"
)

// Server exposes the diagram pipeline as an MCP server: two tools
// (generate_diagram, validate_mermaid) and one static resource
// (mermaid://syntax-guide). Every call is stateless and independent.
type Server struct {
	runner    *mmdc.Runner
	logger    *slog.Logger
	metrics   *observability.Metrics
	gatherer  prometheus.Gatherer
	version   string
	mcpServer *server.MCPServer
}

// ServerOption configures the server.
type ServerOption func(*Server)

// WithLogger sets a structured logger (default slog.Default).
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithVersion sets the advertised server version.
func WithVersion(v string) ServerOption {
	return func(s *Server) {
		if v != "" {
			s.version = v
		}
	}
}

// WithMetricsRegistry uses a private Prometheus registry instead of the
// global default. Tests rely on this to avoid duplicate registration.
func WithMetricsRegistry(reg *prometheus.Registry) ServerOption {
	return func(s *Server) {
		s.metrics = observability.NewMetrics(reg)
		s.gatherer = reg
	}
}

// NewServer creates an MCP server around the given renderer runner.
func NewServer(runner *mmdc.Runner, opts ...ServerOption) *Server {
	s := &Server{
		runner:   runner,
		logger:   slog.Default(),
		gatherer: prometheus.DefaultGatherer,
		version:  "dev",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.metrics == nil {
		s.metrics = observability.NewMetrics(prometheus.DefaultRegisterer)
	}

	s.mcpServer = server.NewMCPServer(
		"mermaid-mcp",
		s.version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE, with /metrics and
// /healthz on the same mux. Blocks until the context is canceled or the
// listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/message", sseServer.MessageHandler())
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	httpServer := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	generateTool := mcp.NewTool("generate_diagram",
		mcp.WithDescription("Generate a Mermaid diagram from code and save it as SVG, PNG, or PDF."),
		mcp.WithString("mermaid_code", mcp.Required(),
			mcp.Description("Mermaid diagram code to render (a surrounding fenced code block is unwrapped)")),
		mcp.WithString("file_name", mcp.Required(),
			mcp.Description("Output file name without extension; the format extension is appended")),
		mcp.WithString("format",
			mcp.Description("Output format: svg, png, or pdf (default svg)")),
		mcp.WithString("theme",
			mcp.Description("Theme: default, dark, forest, neutral, or base (default: default)")),
		mcp.WithNumber("width",
			mcp.Description("Width of the output image in pixels, 800-4000 (default 1920)")),
		mcp.WithNumber("height",
			mcp.Description("Height of the output image in pixels, 600-4000 (default 1080)")),
		mcp.WithNumber("scale",
			mcp.Description("Scale factor for higher resolution, 1-4 (default 2)")),
		mcp.WithString("backgroundColor",
			mcp.Description("Background color: hex, named color, or 'transparent' (default transparent)")),
	)
	s.mcpServer.AddTool(generateTool, s.handleGenerate)

	validateTool := mcp.NewTool("validate_mermaid",
		mcp.WithDescription("Check whether text looks like Mermaid diagram source and report the matched diagram kind."),
		mcp.WithString("mermaid_code", mcp.Required(),
			mcp.Description("Mermaid diagram code to validate")),
	)
	s.mcpServer.AddTool(validateTool, s.handleValidate)
}

func (s *Server) handleGenerate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := mcp.ParseString(req, "mermaid_code", "")
	if code == "" {
		return mcp.NewToolResultError("mermaid_code is required"), nil
	}
	fileName := mcp.ParseString(req, "file_name", "")
	if fileName == "" {
		return mcp.NewToolResultError("file_name is required"), nil
	}

	source := diagram.Extract(code)
	inspection := diagram.Inspect(source)
	s.metrics.ObserveValidation(inspection.Kind)
	if !inspection.Valid {
		// Renderer is never invoked for implausible input; failures here are
		// almost always the caller pasting prose or the wrong snippet.
		return mcp.NewToolResultErrorf("%v: %s", diagram.ErrInvalidInput, inspection.Reason), nil
	}

	source = diagram.SanitizeLabels(source)

	request := diagram.Request{
		Format:          diagram.Format(mcp.ParseString(req, "format", string(diagram.FormatSVG))),
		Theme:           diagram.Theme(mcp.ParseString(req, "theme", string(diagram.ThemeDefault))),
		Width:           mcp.ParseInt(req, "width", 1920),
		Height:          mcp.ParseInt(req, "height", 1080),
		Scale:           mcp.ParseFloat64(req, "scale", 2),
		BackgroundColor: mcp.ParseString(req, "backgroundColor", "transparent"),
		FileName:        fileName,
	}
	if err := request.Validate(); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	outcome, err := s.runner.Render(ctx, source, request)
	s.metrics.ObserveRender(string(request.Format), renderStatus(err), outcome.Duration)
	if err != nil {
		s.logger.Error("render failed", "error", err, "kind", inspection.Kind)
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.successResult(request, outcome)
}

// successResult builds the tool payload: the saved path plus, for SVG, the
// markup inline so the caller can embed it without another round-trip.
func (s *Server) successResult(request diagram.Request, outcome mmdc.Outcome) (*mcp.CallToolResult, error) {
	absPath, err := filepath.Abs(outcome.OutputPath)
	if err != nil {
		absPath = outcome.OutputPath
	}

	data, err := os.ReadFile(outcome.OutputPath)
	if err != nil {
		return mcp.NewToolResultErrorf("%v: read produced file: %v", mmdc.ErrFilesystem, err), nil
	}

	if request.Format == diagram.FormatSVG {
		return mcp.NewToolResultText(fmt.Sprintf(
			"Generated SVG diagram and saved to: %s\nFile size: %d bytes\n\nSVG content:\n\n%s",
			absPath, len(data), data)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Generated %s diagram.\nFile saved to: %s\nFile size: %d bytes\n\nOpen the file in an image viewer or browser to see it.",
		strings.ToUpper(string(request.Format)), absPath, len(data))), nil
}

func (s *Server) handleValidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := mcp.ParseString(req, "mermaid_code", "")
	if code == "" {
		return mcp.NewToolResultError("mermaid_code is required"), nil
	}

	source := diagram.Extract(code)
	if source == "" {
		return mcp.NewToolResultError("validation failed: empty code block"), nil
	}

	inspection := diagram.Inspect(source)
	s.metrics.ObserveValidation(inspection.Kind)

	payload, _ := json.MarshalIndent(inspection, "", "  ")
	return mcp.NewToolResultText(string(payload)), nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("mermaid://syntax-guide", "Mermaid Syntax Guide",
		mcp.WithMIMEType("text/markdown"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "mermaid://syntax-guide",
				MIMEType: "text/markdown",
				Text:     SyntaxGuide,
			},
		}, nil
	})
}

// renderStatus maps a render error onto a metric label.
func renderStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, mmdc.ErrTimeout):
		return "timeout"
	case errors.Is(err, mmdc.ErrRendererNotFound):
		return "renderer_missing"
	case errors.Is(err, mmdc.ErrRendererFailure):
		return "renderer_failure"
	case errors.Is(err, mmdc.ErrFilesystem):
		return "filesystem_error"
	case errors.Is(err, diagram.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "error"
	}
}
