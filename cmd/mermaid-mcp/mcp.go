package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	mermaidmcp "github.com/aretw0/mermaid-mcp"
	"github.com/aretw0/mermaid-mcp/internal/logging"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the diagram renderer as an MCP Server.
This allows AI agents (like Claude Desktop) to render and validate Mermaid diagrams as tools.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	Run: func(cmd *cobra.Command, args []string) {
		transport, _ := cmd.Flags().GetString("transport")
		port, _ := cmd.Flags().GetInt("port")

		// Logs must go to Stderr regardless of transport: stdio reserves
		// Stdout for JSON-RPC frames.
		logger := logging.New(slog.LevelDebug)
		slog.SetDefault(logger)

		srv, err := mermaidmcp.New(serverOpts(readServerOptions(cmd), logger)...)
		if err != nil {
			log.Fatalf("Error initializing renderer: %v", err)
		}

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			slog.Info("Starting Mermaid MCP Server (Stdio)...")
			if err := srv.ServeStdio(); err != nil {
				slog.Error("MCP Server execution failed", "err", err)
				os.Exit(1)
			}
		case "sse":
			slog.Info("Starting Mermaid MCP Server (SSE)", "port", port)

			// Create a context that cancels on interrupt signal
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.ServeSSE(ctx, port); err != nil {
				// Ignore server closed error if it was caused by context cancellation
				if err != http.ErrServerClosed {
					slog.Error("MCP Server execution failed", "err", err)
					os.Exit(1)
				}
			}
			slog.Info("MCP Server stopped gracefully")
		default:
			log.Fatalf("Unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

// serverOpts translates flag overrides into server options.
func serverOpts(opts serverOptions, logger *slog.Logger) []mermaidmcp.Option {
	out := []mermaidmcp.Option{
		mermaidmcp.WithConfigFile(opts.configFile),
		mermaidmcp.WithLogger(logger),
	}
	if opts.renderer != "" {
		out = append(out, mermaidmcp.WithRendererBinary(opts.renderer))
	}
	if opts.timeout > 0 {
		out = append(out, mermaidmcp.WithTimeout(opts.timeout))
	}
	if opts.outputDir != "" {
		out = append(out, mermaidmcp.WithOutputDir(opts.outputDir))
	}
	return out
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().Int("port", 8080, "Port to listen on (only for SSE)")
}
