package diagram

import (
	"fmt"
	"regexp"
	"strings"
)

// Result is the outcome of a heuristic inspection. It is computed fresh per
// call and never persisted.
type Result struct {
	Valid  bool   `json:"valid"`
	Kind   string `json:"kind,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// rule pairs a diagram family with the pattern its header must match.
// Patterns are applied to the first meaningful line of the trimmed source.
type rule struct {
	kind    string
	pattern *regexp.Regexp
}

// rules is evaluated in order; the first match wins. More specific headers
// come before the generic flowchart/graph rule.
var rules = []rule{
	{"sequence", regexp.MustCompile(`(?i)^sequenceDiagram\b`)},
	{"class", regexp.MustCompile(`(?i)^classDiagram(-v2)?\b`)},
	{"state", regexp.MustCompile(`(?i)^stateDiagram(-v2)?\b`)},
	{"er", regexp.MustCompile(`(?i)^erDiagram\b`)},
	{"journey", regexp.MustCompile(`(?i)^journey\b`)},
	{"gantt", regexp.MustCompile(`(?i)^gantt\b`)},
	{"gitgraph", regexp.MustCompile(`(?i)^gitGraph\b`)},
	{"mindmap", regexp.MustCompile(`(?i)^mindmap\b`)},
	{"timeline", regexp.MustCompile(`(?i)^timeline\b`)},
	{"quadrant", regexp.MustCompile(`(?i)^quadrantChart\b`)},
	{"pie", regexp.MustCompile(`(?i)^pie\b`)},
	{"flowchart", regexp.MustCompile(`(?i)^(flowchart|graph)\b(\s+(TB|TD|BT|RL|LR)\b)?`)},
}

// exampleOpenings feeds the rejection reason so callers see what a valid
// header looks like.
var exampleOpenings = []string{
	"flowchart TD", "graph LR", "sequenceDiagram", "classDiagram",
	"stateDiagram-v2", "erDiagram", "journey", "gantt", "pie title X",
	"gitGraph", "mindmap", "timeline", "quadrantChart",
}

// Inspect decides whether text plausibly is Mermaid source and, if so, which
// diagram family it belongs to. It is a heuristic gate, not a parser: it may
// accept malformed source of a supported family, but rejects text whose
// header matches no family at all. Pure and total.
func Inspect(text string) Result {
	header := headerLine(text)
	if header == "" {
		return Result{Valid: false, Reason: "empty input"}
	}

	for _, r := range rules {
		if r.pattern.MatchString(header) {
			return Result{Valid: true, Kind: r.kind}
		}
	}

	return Result{
		Valid: false,
		Reason: fmt.Sprintf("no supported diagram header found; expected an opening like %s",
			strings.Join(exampleOpenings, ", ")),
	}
}

// headerLine returns the first line of the trimmed text that is neither blank
// nor a %% comment/init directive, so inspection tolerates a leading
// %%{init: ...}%% block or comments before the real header.
func headerLine(text string) string {
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}
		return line
	}
	return ""
}
