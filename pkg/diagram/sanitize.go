package diagram

import (
	"regexp"
	"strings"
)

// Quoted node labels, e.g. A["1. Fetch data<br/>2. Render"].
var quotedLabel = regexp.MustCompile(`\["([^"]+)"\]`)

var (
	numberedItem = regexp.MustCompile(`(\d+)\. `)
	leadingDash  = regexp.MustCompile(`^- `)
	newlineDash  = regexp.MustCompile(`\n- `)
)

// SanitizeLabels rewrites text inside quoted node labels so the renderer does
// not interpret it as markdown lists: "1. x" becomes "1: x", a leading "- "
// becomes an en-dash, and <br/> tags become mermaid line breaks. Text outside
// labels is untouched.
func SanitizeLabels(source string) string {
	return quotedLabel.ReplaceAllStringFunc(source, func(match string) string {
		label := quotedLabel.FindStringSubmatch(match)[1]
		label = numberedItem.ReplaceAllString(label, "$1: ")
		label = leadingDash.ReplaceAllString(label, "– ")
		label = newlineDash.ReplaceAllString(label, "\n– ")
		label = strings.ReplaceAll(label, "<br/>", `\n`)
		label = strings.ReplaceAll(label, "<br>", `\n`)
		return `["` + label + `"]`
	})
}
