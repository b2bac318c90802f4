package extract

import (
	"regexp"
	"strings"
)

// sectionRe matches the section markers the generator is asked to emit:
//
//	=== index.html ===
//	=== images/logo.svg ===
var sectionRe = regexp.MustCompile(`===\s*([^\s=][^=\n]*?)\s*===`)

var (
	fenceOpenRe  = regexp.MustCompile("^```[a-zA-Z]*\n?")
	fenceCloseRe = regexp.MustCompile("\n?```\\s*$")
)

// headingRe matches a markdown heading (or bare fence opener) naming a
// file, followed by a fenced code block:
//
//	### index.html
//	```html
//	...
//	```
var headingRe = regexp.MustCompile("(?s)(?:#{1,4}\\s*|```[a-z]*\n)([a-zA-Z0-9_.\\-/]+\\.[a-zA-Z]+)\n```[a-zA-Z]*\n(.*?)```")

// labelRe matches a bold-labelled filename followed by a fenced code
// block: **index.html** then ```...```.
var labelRe = regexp.MustCompile("(?s)\\*\\*([a-zA-Z0-9_.\\-/]+\\.[a-zA-Z]+)\\*\\*\\s*\n```[a-zA-Z]*\n(.*?)```")

// parseSections splits the text on === name === markers. Each section
// body runs from its marker to the next marker or end of text. Text
// before the first marker is preamble and is dropped.
func parseSections(text string) *Result {
	res := newResult()
	matches := sectionRe.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		name := strings.TrimSpace(text[m[2]:m[3]])
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := stripFences(strings.TrimSpace(text[m[1]:end]))
		if name == "" || body == "" {
			continue
		}
		res.Set(name, body)
	}
	return res
}

func parseHeadings(text string) *Result {
	res := newResult()
	for _, m := range headingRe.FindAllStringSubmatch(text, -1) {
		res.Set(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}
	return res
}

func parseLabels(text string) *Result {
	res := newResult()
	for _, m := range labelRe.FindAllStringSubmatch(text, -1) {
		res.Set(strings.TrimSpace(m[1]), strings.TrimSpace(m[2]))
	}
	return res
}

// stripFences removes at most one leading fence opener (with optional
// language tag) and at most one trailing fence closer, then trims.
func stripFences(s string) string {
	s = fenceOpenRe.ReplaceAllString(s, "")
	s = fenceCloseRe.ReplaceAllString(strings.TrimRight(s, " \t\r\n"), "")
	return strings.TrimSpace(s)
}
