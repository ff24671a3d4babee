// Package changelog implements the pipeline that rewrites a flat,
// linearly generated changelog into a Category -> Application -> Issue
// hierarchy.
package changelog

import "strings"

// PullRequest is one entry parsed from a "### <title> - #<number>" heading
// in the flat changelog.
type PullRequest struct {
	// Category is the nearest preceding "##" heading, empty until one is seen.
	Category string
	// Number is the pull request number from the heading suffix.
	Number int
	// IssueTitle is the heading text before the " - #<number>" suffix.
	IssueTitle string
	// IssueNumber is resolved from labels; 0 means no linked issue.
	IssueNumber int
	// Content holds the raw body lines in input order, blank lines and
	// label annotation lines excluded.
	Content []string
	// Apps lists the applications this PR touches, in label order, deduplicated.
	Apps []string
	// InlineLabels holds labels captured from a "<!-- labels: ... -->"
	// annotation inside the PR body, if any.
	InlineLabels []string
}

// AddApp appends an application name unless it is already present.
// Comparison is case-sensitive.
func (p *PullRequest) AddApp(name string) {
	for _, app := range p.Apps {
		if app == name {
			return
		}
	}
	p.Apps = append(p.Apps, name)
}

// Body returns the PR content as a single trimmed string.
func (p *PullRequest) Body() string {
	return strings.TrimSpace(strings.Join(p.Content, "\n"))
}
