package mmdc

import (
	"strconv"

	"github.com/aretw0/mermaid-mcp/pkg/diagram"
)

// ResolveTheme maps the adapter's theme vocabulary onto mmdc's. The adapter's
// "default" is redirected to mmdc's "dark": mmdc's literal default theme
// renders dark-on-transparent poorly against dark viewing surfaces. The
// remaining themes pass through. Total over the request enum; values outside
// it never reach this function (rejected by Request.Validate).
func ResolveTheme(t diagram.Theme) string {
	switch t {
	case diagram.ThemeDefault, diagram.ThemeDark:
		return "dark"
	case diagram.ThemeForest:
		return "forest"
	case diagram.ThemeNeutral:
		return "neutral"
	case diagram.ThemeBase:
		return "base"
	default:
		return "dark"
	}
}

// buildArgs maps a validated request onto mmdc's flag grammar.
func buildArgs(req diagram.Request, inputPath, outputPath string) []string {
	return []string{
		"-q",
		"-i", inputPath,
		"-o", outputPath,
		"-w", strconv.Itoa(req.Width),
		"-H", strconv.Itoa(req.Height),
		"-s", strconv.FormatFloat(req.Scale, 'f', -1, 64),
		"--backgroundColor", req.BackgroundColor,
		"-t", ResolveTheme(req.Theme),
	}
}
