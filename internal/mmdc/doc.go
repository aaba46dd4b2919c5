// Package mmdc invokes the Mermaid CLI (mmdc) as a child process. It owns
// the option mapping onto mmdc's flag grammar, the per-call temp files, the
// wall-clock timeout, and the post-processing of produced output files.
package mmdc
