// Package normalize cleans raw per-column text extracted from a cropped
// page region, removing layout artifacts left behind by the PDF renderer.
package normalize

import (
	"regexp"
	"strings"
)

var (
	// two or more consecutive blank lines (the separating lines may carry
	// stray spaces or tabs)
	blankRunRe = regexp.MustCompile(`\n[ \t]*\n([ \t]*\n)+`)
	// a line whose entire trimmed content is purely numeric; these are
	// page-number artifacts from the footer band. Heuristic: a legitimate
	// one-line numeric clause in running text would be stripped too.
	numericLineRe = regexp.MustCompile(`(?m)^[ \t]*[0-9]+[ \t]*(\n|$)`)
	// runs of 3+ spaces; collapsed to 2 so intentional tabular spacing
	// survives while column-bleed padding does not
	spaceRunRe = regexp.MustCompile(` {3,}`)
)

// Normalize applies the cleanup pipeline to raw extracted text:
//
//   - convert form-feed characters to newlines
//   - collapse runs of blank lines down to a single blank line
//   - delete page-number-only lines
//   - collapse runs of 3+ spaces to exactly 2
//   - trim leading and trailing whitespace
//
// Form feeds are converted up front so the line-based steps see the real
// line structure, and deleting a numeric line can butt two blank lines
// together, so the blank-line collapse runs once more before trimming.
// Both orderings are required for Normalize(Normalize(s)) == Normalize(s)
// to hold for arbitrary input. Normalize is total: empty input yields
// empty output and no input can make it fail.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := strings.ReplaceAll(raw, "\f", "\n")
	text = blankRunRe.ReplaceAllString(text, "\n\n")
	text = numericLineRe.ReplaceAllString(text, "")
	text = spaceRunRe.ReplaceAllString(text, "  ")
	text = blankRunRe.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}
