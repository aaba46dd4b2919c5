package mcp

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/mermaid-mcp/internal/logging"
	"github.com/aretw0/mermaid-mcp/internal/mmdc"
)

// stubRenderer creates a shell script standing in for mmdc. It records its
// arguments to argsPath and writes a fake SVG to the -o target.
func stubRenderer(t *testing.T, argsPath string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub renderer scripts require sh")
	}
	script := `echo "$@" > ` + argsPath + `
out=""
prev=""
for arg in "$@"; do
  if [ "$prev" = "-o" ]; then out="$arg"; fi
  prev="$arg"
done
printf '<svg style="background-color: white;"><g/></svg>' > "$out"
`
	path := filepath.Join(t.TempDir(), "mmdc-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func newTestServer(t *testing.T, binary string) *Server {
	t.Helper()
	runner := mmdc.NewRunner(mmdc.DefaultConfig(), mmdc.WithBinary(binary))
	return NewServer(runner,
		WithLogger(logging.NewNop()),
		WithMetricsRegistry(prometheus.NewRegistry()),
	)
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return tc.Text
}

func TestGenerateDiagram_EndToEnd(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args")
	srv := newTestServer(t, stubRenderer(t, argsPath))

	outName := filepath.Join(t.TempDir(), "diagram")
	res, err := srv.handleGenerate(context.Background(), callRequest(map[string]any{
		"mermaid_code": "flowchart TD\n A-->B",
		"file_name":    outName,
		"format":       "svg",
		"theme":        "default",
	}))
	require.NoError(t, err)
	require.False(t, res.IsError, "tool error: %s", resultText(t, res))

	text := resultText(t, res)
	assert.Contains(t, text, outName+".svg")
	assert.Contains(t, text, "SVG content")
	// Transparent was requested (default) and the stub bakes in white, so
	// the inlined markup must carry the patched declaration.
	assert.Contains(t, text, "background-color: transparent")

	// The "default" theme reaches the renderer remapped to dark.
	recorded, readErr := os.ReadFile(argsPath)
	require.NoError(t, readErr)
	assert.Contains(t, string(recorded), "-t dark")
	assert.Contains(t, string(recorded), "--backgroundColor transparent")
	assert.Contains(t, string(recorded), "-w 1920")
	assert.Contains(t, string(recorded), "-H 1080")

	// Output file landed where the tool said it did.
	_, statErr := os.Stat(outName + ".svg")
	assert.NoError(t, statErr)
}

func TestGenerateDiagram_UnwrapsFencedBlock(t *testing.T) {
	argsPath := filepath.Join(t.TempDir(), "args")
	srv := newTestServer(t, stubRenderer(t, argsPath))

	res, err := srv.handleGenerate(context.Background(), callRequest(map[string]any{
		"mermaid_code": "Here you go:\n```mermaid\nsequenceDiagram\n A->>B: hi\n```",
		"file_name":    filepath.Join(t.TempDir(), "seq"),
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError, "tool error: %s", resultText(t, res))
}

func TestGenerateDiagram_InvalidInputShortCircuits(t *testing.T) {
	// Binary does not exist: reaching the renderer would be a hard failure,
	// so its absence proves the short-circuit.
	srv := newTestServer(t, "mmdc-definitely-not-installed")

	res, err := srv.handleGenerate(context.Background(), callRequest(map[string]any{
		"mermaid_code": "not a diagram",
		"file_name":    "out",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)

	text := resultText(t, res)
	assert.Contains(t, text, "does not appear to be mermaid source")
	assert.NotContains(t, text, "not installed")
}

func TestGenerateDiagram_RangeViolations(t *testing.T) {
	srv := newTestServer(t, "mmdc-definitely-not-installed")

	tests := []struct {
		name string
		args map[string]any
		want string
	}{
		{"width below range", map[string]any{"width": 799}, "width"},
		{"width above range", map[string]any{"width": 4001}, "width"},
		{"height below range", map[string]any{"height": 599}, "height"},
		{"scale above range", map[string]any{"scale": 4.5}, "scale"},
		{"bad format", map[string]any{"format": "gif"}, "format"},
		{"bad theme", map[string]any{"theme": "solarized"}, "theme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{
				"mermaid_code": "flowchart TD\n A-->B",
				"file_name":    "out",
			}
			for k, v := range tt.args {
				args[k] = v
			}

			res, err := srv.handleGenerate(context.Background(), callRequest(args))
			require.NoError(t, err)
			assert.True(t, res.IsError)
			assert.Contains(t, resultText(t, res), tt.want)
		})
	}
}

func TestGenerateDiagram_RendererMissing(t *testing.T) {
	srv := newTestServer(t, "mmdc-definitely-not-installed")

	res, err := srv.handleGenerate(context.Background(), callRequest(map[string]any{
		"mermaid_code": "flowchart TD\n A-->B",
		"file_name":    filepath.Join(t.TempDir(), "d"),
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "not installed or not on PATH")
}

func TestGenerateDiagram_MissingArguments(t *testing.T) {
	srv := newTestServer(t, "mmdc-definitely-not-installed")

	res, err := srv.handleGenerate(context.Background(), callRequest(map[string]any{
		"file_name": "out",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "mermaid_code is required")

	res, err = srv.handleGenerate(context.Background(), callRequest(map[string]any{
		"mermaid_code": "flowchart TD\n A-->B",
	}))
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Contains(t, resultText(t, res), "file_name is required")
}

func TestValidateMermaid(t *testing.T) {
	srv := newTestServer(t, "mmdc-definitely-not-installed")

	t.Run("valid source reports kind", func(t *testing.T) {
		res, err := srv.handleValidate(context.Background(), callRequest(map[string]any{
			"mermaid_code": "erDiagram\n CUSTOMER ||--o{ ORDER : places",
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		text := resultText(t, res)
		assert.Contains(t, text, `"valid": true`)
		assert.Contains(t, text, `"kind": "er"`)
	})

	t.Run("prose reports reason", func(t *testing.T) {
		res, err := srv.handleValidate(context.Background(), callRequest(map[string]any{
			"mermaid_code": "Hello world",
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)

		text := resultText(t, res)
		assert.Contains(t, text, `"valid": false`)
		assert.Contains(t, text, "no supported diagram header")
	})

	t.Run("idempotent", func(t *testing.T) {
		req := callRequest(map[string]any{"mermaid_code": "gantt\n title X"})

		first, err := srv.handleValidate(context.Background(), req)
		require.NoError(t, err)
		second, err := srv.handleValidate(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, resultText(t, first), resultText(t, second))
	})

	t.Run("missing argument", func(t *testing.T) {
		res, err := srv.handleValidate(context.Background(), callRequest(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}

func TestSyntaxGuide_CoversAdvertisedFamilies(t *testing.T) {
	for _, header := range []string{
		"flowchart TD", "sequenceDiagram", "classDiagram", "stateDiagram-v2",
		"erDiagram", "journey", "gantt", "pie title", "gitGraph", "mindmap",
		"timeline", "quadrantChart",
	} {
		assert.Contains(t, SyntaxGuide, header)
	}
}
