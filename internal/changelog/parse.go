package changelog

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	lineBreakPattern = regexp.MustCompile(`\r?\n`)
	// categoryPattern matches a level-2 heading. Exactly two hash marks:
	// "### ..." never matches because '#' is not whitespace.
	categoryPattern = regexp.MustCompile(`^##\s+(.+)$`)
	// prHeadingPattern matches "### <title> - #<number>". The title capture is
	// non-greedy and the number is anchored to the end of the line, so a title
	// that itself contains " - #<digits>" anchors on the last occurrence.
	prHeadingPattern = regexp.MustCompile(`^###\s+(.+?)\s+-\s+#(\d+)\s*$`)
	headingPattern   = regexp.MustCompile(`^#{1,3}\s`)
	// annotationPattern matches a line whose whole text is an inline label
	// annotation, e.g. "<!-- labels: App:Auth,issue-5 -->".
	annotationPattern = regexp.MustCompile(`^<!--\s*labels:\s*(.*?)\s*-->$`)
)

// Parse tokenizes a flat changelog document into pull request records in
// input order. Lines before the first PR heading are discarded, as is any
// content following a heading that does not start a new record.
func Parse(document string) []PullRequest {
	var (
		out      []PullRequest
		category string
		current  *PullRequest
	)

	finalize := func() {
		if current != nil {
			out = append(out, *current)
			current = nil
		}
	}

	for _, line := range lineBreakPattern.Split(document, -1) {
		// Level-2 headings are tested before PR headings so a category line
		// can never be mistaken for PR content.
		if m := categoryPattern.FindStringSubmatch(line); m != nil {
			finalize()
			category = strings.TrimSpace(m[1])
			continue
		}
		if m := prHeadingPattern.FindStringSubmatch(line); m != nil {
			finalize()
			number, _ := strconv.Atoi(m[2])
			current = &PullRequest{
				Category:   category,
				Number:     number,
				IssueTitle: strings.TrimSpace(m[1]),
			}
			continue
		}
		// Any other level 1-3 heading closes the record in progress.
		if headingPattern.MatchString(line) {
			finalize()
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" || current == nil {
			continue
		}
		if m := annotationPattern.FindStringSubmatch(trimmed); m != nil {
			current.InlineLabels = append(current.InlineLabels, splitLabelList(m[1])...)
			continue
		}
		current.Content = append(current.Content, line)
	}
	finalize()

	return out
}

// splitLabelList splits a comma-separated label list, trimming each entry and
// dropping empty ones.
func splitLabelList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
