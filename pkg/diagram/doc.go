/*
Package diagram contains the core domain model for the Mermaid adapter.

It defines the request/result entities and the pure text operations applied
to incoming diagram source: code-fence extraction, heuristic syntax
inspection, and label sanitization. This package is kept free of I/O and
external dependencies, following Hexagonal Architecture principles.

# Key Entities

  - Request: Render parameters (format, theme, dimensions, scale, background).
  - Result: Outcome of the heuristic inspection (validity + matched family).

The inspection is deliberately a bounded heuristic, not a grammar. It accepts
every well-formed opening of a supported diagram family and rejects text that
is clearly not diagram source (prose, JSON, program code). Grammar-level
correctness is left to the renderer.
*/
package diagram
