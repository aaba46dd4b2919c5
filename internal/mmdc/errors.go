package mmdc

import "errors"

// ErrRendererNotFound is returned when the mmdc binary cannot be located.
var ErrRendererNotFound = errors.New("mermaid renderer not found")

// ErrRendererFailure is returned when mmdc exits non-zero. The captured
// stderr is attached; these are almost always syntax errors in the source,
// so the runner never retries.
var ErrRendererFailure = errors.New("mermaid renderer failed")

// ErrTimeout is returned when the renderer exceeds the wall-clock budget and
// is killed. Distinct from ErrRendererFailure so callers can tell "took too
// long" from "syntax error".
var ErrTimeout = errors.New("mermaid renderer timed out")

// ErrFilesystem is returned when a temp or output file cannot be written.
var ErrFilesystem = errors.New("filesystem error")
