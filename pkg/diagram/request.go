package diagram

import "fmt"

// Format is the output file format produced by the renderer.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Theme is the adapter-facing theme name. It is remapped to the renderer's
// own theme vocabulary by the invoking adapter.
type Theme string

const (
	ThemeDefault Theme = "default"
	ThemeDark    Theme = "dark"
	ThemeForest  Theme = "forest"
	ThemeNeutral Theme = "neutral"
	ThemeBase    Theme = "base"
)

// Dimension and scale bounds (inclusive).
const (
	MinWidth  = 800
	MaxWidth  = 4000
	MinHeight = 600
	MaxHeight = 4000
	MinScale  = 1.0
	MaxScale  = 4.0
)

// Request captures the render parameters for a single diagram.
// It is request-scoped and never persisted.
type Request struct {
	Format          Format
	Theme           Theme
	Width           int
	Height          int
	Scale           float64
	BackgroundColor string
	FileName        string
}

// DefaultRequest returns a Request with the documented tool defaults.
func DefaultRequest() Request {
	return Request{
		Format:          FormatSVG,
		Theme:           ThemeDefault,
		Width:           1920,
		Height:          1080,
		Scale:           2,
		BackgroundColor: "transparent",
	}
}

// Validate checks ranges and enums. All violations wrap ErrInvalidArgument
// so callers can classify without string matching.
func (r Request) Validate() error {
	switch r.Format {
	case FormatSVG, FormatPNG, FormatPDF:
	default:
		return fmt.Errorf("%w: format must be one of svg, png, pdf (got %q)", ErrInvalidArgument, r.Format)
	}

	switch r.Theme {
	case ThemeDefault, ThemeDark, ThemeForest, ThemeNeutral, ThemeBase:
	default:
		return fmt.Errorf("%w: theme must be one of default, dark, forest, neutral, base (got %q)", ErrInvalidArgument, r.Theme)
	}

	if r.Width < MinWidth || r.Width > MaxWidth {
		return fmt.Errorf("%w: width must be between %d and %d (got %d)", ErrInvalidArgument, MinWidth, MaxWidth, r.Width)
	}
	if r.Height < MinHeight || r.Height > MaxHeight {
		return fmt.Errorf("%w: height must be between %d and %d (got %d)", ErrInvalidArgument, MinHeight, MaxHeight, r.Height)
	}
	if r.Scale < MinScale || r.Scale > MaxScale {
		return fmt.Errorf("%w: scale must be between %g and %g (got %g)", ErrInvalidArgument, MinScale, MaxScale, r.Scale)
	}
	if r.FileName == "" {
		return fmt.Errorf("%w: file name is required", ErrInvalidArgument)
	}
	return nil
}
