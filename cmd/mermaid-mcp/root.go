package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mermaid-mcp",
	Short: "Mermaid diagram renderer with an MCP interface",
	Long: `mermaid-mcp renders Mermaid diagrams to SVG, PNG or PDF through the
mermaid-cli (mmdc) and exposes the same capability to AI agents as a
Model Context Protocol server.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "mermaid-mcp.yaml", "Path to the renderer configuration file")
	rootCmd.PersistentFlags().String("renderer", "", "Path to the mmdc binary (overrides config)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Renderer timeout (overrides config, e.g. 45s)")
	rootCmd.PersistentFlags().String("output-dir", "", "Directory for rendered diagrams (overrides config)")
}

// serverOptions collects the persistent flag overrides shared by every command
// that constructs a renderer.
type serverOptions struct {
	configFile string
	renderer   string
	timeout    time.Duration
	outputDir  string
}

func readServerOptions(cmd *cobra.Command) serverOptions {
	configFile, _ := cmd.Flags().GetString("config")
	renderer, _ := cmd.Flags().GetString("renderer")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	return serverOptions{
		configFile: configFile,
		renderer:   renderer,
		timeout:    timeout,
		outputDir:  outputDir,
	}
}
