package mmdc

import (
	"regexp"
	"strings"
)

// backgroundDecl matches a CSS background declaration inside a style
// attribute, e.g. "background-color: white;" or "background:#fff".
var backgroundDecl = regexp.MustCompile(`background(-color)?\s*:\s*[^;"']+`)

// patchSVGBackground rewrites the background declaration on the SVG root
// element to transparent. mmdc bakes "background-color: white;" into the
// root style even when a transparent background was requested. This is a
// targeted textual patch of the opening <svg> tag only, not an SVG
// transform; nested elements keep their styling.
func patchSVGBackground(data []byte) []byte {
	s := string(data)

	open := strings.Index(s, "<svg")
	if open < 0 {
		return data
	}
	end := strings.Index(s[open:], ">")
	if end < 0 {
		return data
	}

	tag := s[open : open+end+1]
	patched := backgroundDecl.ReplaceAllString(tag, "background${1}: transparent")
	if patched == tag {
		return data
	}
	return []byte(s[:open] + patched + s[open+end+1:])
}
