// Package subtitles holds pure text transforms over SRT subtitle content.
//
// The raw SRT (with its timing lines) is what flows into description
// generation; ToPlainText exists for callers that only want flat prose.
package subtitles

import (
	"regexp"
	"strings"
)

var (
	markupRe     = regexp.MustCompile(`<[^>]+>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// ToPlainText strips SRT structure from subtitle text: cue indices,
// timestamp lines and markup tags are dropped, the remaining text is joined
// with single spaces. Unrecognized lines pass through unchanged, so
// malformed input degrades to itself rather than an error.
func ToPlainText(srt string) string {
	var parts []string

	for _, line := range strings.Split(srt, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if isCueIndex(line) {
			continue
		}
		if strings.Contains(line, "-->") {
			continue
		}

		clean := markupRe.ReplaceAllString(line, "")
		clean = strings.TrimSpace(whitespaceRe.ReplaceAllString(clean, " "))
		if clean != "" {
			parts = append(parts, clean)
		}
	}

	return strings.TrimSpace(whitespaceRe.ReplaceAllString(strings.Join(parts, " "), " "))
}

func isCueIndex(line string) bool {
	if line == "" {
		return false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
