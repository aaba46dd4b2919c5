package diagram

import (
	"regexp"
	"strings"
)

// fencePattern captures the body of a markdown fenced block, skipping an
// optional language tag on the opening fence.
var fencePattern = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \t]*\n?(.*?)```")

// Extract pulls diagram source out of text that may wrap it in one or more
// fenced code blocks. The first block whose content passes Inspect wins; if
// none qualifies the first block is used anyway, and text without any fence
// is returned as-is. The result is always trimmed. Pure, never fails.
func Extract(raw string) string {
	matches := fencePattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		return strings.TrimSpace(raw)
	}

	for _, m := range matches {
		body := strings.TrimSpace(m[1])
		if Inspect(body).Valid {
			return body
		}
	}

	return strings.TrimSpace(matches[0][1])
}
