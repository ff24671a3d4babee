package changelog

import (
	"context"
	"regexp"
	"strconv"
	"strings"
)

// Resolver returns the classification labels for a pull request. A failed
// lookup is reported through the error; the pipeline treats it as zero labels
// and never aborts the run.
type Resolver interface {
	Labels(ctx context.Context, pr PullRequest) ([]string, error)
}

// EmbeddedResolver reads labels from the annotation comment the parser
// extracted from the PR body. No network access is involved.
type EmbeddedResolver struct{}

// Labels returns the PR's inline labels, which may be empty.
func (EmbeddedResolver) Labels(_ context.Context, pr PullRequest) ([]string, error) {
	return pr.InlineLabels, nil
}

var (
	appLabelPattern   = regexp.MustCompile(`^App:(.+)$`)
	issueLabelPattern = regexp.MustCompile(`^issue-(\d+)$`)
)

// ApplyLabels interprets resolved labels on a record. "App:<name>" adds an
// application, "issue-<digits>" sets the linked issue number with the last
// matching label winning. Other labels are ignored.
func ApplyLabels(pr *PullRequest, labels []string) {
	for _, label := range labels {
		if m := appLabelPattern.FindStringSubmatch(label); m != nil {
			pr.AddApp(strings.TrimSpace(m[1]))
			continue
		}
		if m := issueLabelPattern.FindStringSubmatch(label); m != nil {
			if number, err := strconv.Atoi(m[1]); err == nil {
				pr.IssueNumber = number
			}
		}
	}
}
