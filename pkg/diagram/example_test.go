package diagram_test

import (
	"fmt"

	"github.com/aretw0/mermaid-mcp/pkg/diagram"
)

// ExampleInspect shows the detection of the diagram family from raw source.
func ExampleInspect() {
	result := diagram.Inspect("sequenceDiagram\n  Alice->>Bob: Hello")
	fmt.Println(result.Valid, result.Kind)
	// Output: true sequence
}

// ExampleExtract shows how fenced agent output is unwrapped before rendering.
func ExampleExtract() {
	raw := "Here is the diagram:\n```mermaid\nflowchart LR\n  A --> B\n```\n"
	fmt.Println(diagram.Extract(raw))
	// Output:
	// flowchart LR
	//   A --> B
}
