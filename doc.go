/*
Package mermaidmcp exposes Mermaid diagram generation and syntax validation
to AI assistants over the Model Context Protocol (MCP), backed by the
Mermaid CLI (mmdc).

The server registers two tools and one resource:

  - generate_diagram: extract source from (possibly fenced) input, check it
    heuristically, and render it to SVG, PNG, or PDF via mmdc.
  - validate_mermaid: the heuristic check alone, reporting the matched
    diagram family or a rejection reason. Never touches the renderer.
  - mermaid://syntax-guide: a static guide with a snippet per family.

Every call is stateless: each render gets its own temp files, and nothing
survives the invocation except the output file the caller asked for.

# Usage

	srv, err := mermaidmcp.New(
		mermaidmcp.WithRendererBinary("mmdc"),
		mermaidmcp.WithTimeout(30*time.Second),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := srv.ServeStdio(); err != nil {
		log.Fatal(err)
	}

The heavy lifting belongs to mmdc; this module is deliberately a thin
adapter. The syntax check is a bounded heuristic over diagram headers, not a
grammar (see pkg/diagram).
*/
package mermaidmcp
