package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/mermaid-mcp/internal/logging"
	"github.com/aretw0/mermaid-mcp/internal/mmdc"
	"github.com/aretw0/mermaid-mcp/pkg/diagram"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a Mermaid diagram to SVG, PNG or PDF",
	Long: `Renders the given Mermaid source file through mmdc.
Reads from stdin when no file is given or when the file is '-'.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readSource(args)
		if err != nil {
			return err
		}

		source = diagram.Extract(source)
		if result := diagram.Inspect(source); !result.Valid {
			return fmt.Errorf("not a mermaid diagram: %s", result.Reason)
		}
		source = diagram.SanitizeLabels(source)

		req, err := requestFromFlags(cmd, args)
		if err != nil {
			return err
		}

		runner := newRunner(cmd)
		outcome, err := runner.Render(cmd.Context(), source, req)
		if err != nil {
			return err
		}

		fmt.Printf("Rendered %s (%s, %dms) ✅\n", outcome.OutputPath, req.Format, outcome.Duration.Milliseconds())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("out", "o", "", "Output file name (extension is derived from --format)")
	renderCmd.Flags().String("format", "svg", "Output format: svg, png or pdf")
	renderCmd.Flags().String("theme", "default", "Mermaid theme: default, dark, forest, neutral or base")
	renderCmd.Flags().Int("width", 1920, "Viewport width in pixels")
	renderCmd.Flags().Int("height", 1080, "Viewport height in pixels")
	renderCmd.Flags().Float64("scale", 2, "Device scale factor")
	renderCmd.Flags().String("background", "transparent", "Background color (CSS color or 'transparent')")
}

// readSource loads the diagram text from the argument file or stdin.
func readSource(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func requestFromFlags(cmd *cobra.Command, args []string) (diagram.Request, error) {
	req := diagram.DefaultRequest()

	format, _ := cmd.Flags().GetString("format")
	theme, _ := cmd.Flags().GetString("theme")
	req.Format = diagram.Format(format)
	req.Theme = diagram.Theme(theme)
	req.Width, _ = cmd.Flags().GetInt("width")
	req.Height, _ = cmd.Flags().GetInt("height")
	req.Scale, _ = cmd.Flags().GetFloat64("scale")
	req.BackgroundColor, _ = cmd.Flags().GetString("background")

	out, _ := cmd.Flags().GetString("out")
	switch {
	case out != "":
		req.FileName = strings.TrimSuffix(out, filepath.Ext(out))
	case len(args) > 0 && args[0] != "-":
		base := filepath.Base(args[0])
		req.FileName = strings.TrimSuffix(base, filepath.Ext(base))
	default:
		req.FileName = "diagram"
	}

	if err := req.Validate(); err != nil {
		return diagram.Request{}, err
	}
	return req, nil
}

// newRunner builds a renderer from the config file plus persistent overrides.
func newRunner(cmd *cobra.Command) *mmdc.Runner {
	opts := readServerOptions(cmd)

	cfg, err := mmdc.LoadConfig(opts.configFile)
	if err != nil {
		// A broken config file should not block a one-shot render.
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		cfg = mmdc.DefaultConfig()
	}

	runnerOpts := []mmdc.RunnerOption{mmdc.WithLogger(logging.New(slog.LevelWarn))}
	if opts.renderer != "" {
		runnerOpts = append(runnerOpts, mmdc.WithBinary(opts.renderer))
	}
	if opts.timeout > 0 {
		runnerOpts = append(runnerOpts, mmdc.WithTimeout(opts.timeout))
	}
	if opts.outputDir != "" {
		runnerOpts = append(runnerOpts, mmdc.WithOutputDir(opts.outputDir))
	}

	return mmdc.NewRunner(cfg, runnerOpts...)
}
