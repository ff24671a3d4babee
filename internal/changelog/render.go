package changelog

import (
	"fmt"
	"sort"
	"strings"
)

// provenanceComment is the fixed first line of every reorganized changelog.
const provenanceComment = "<!-- This changelog was reorganized automatically: entries are grouped by category, application, and issue. -->"

// Render serializes the grouped structure back to markdown. Categories keep
// their insertion order, applications are sorted case-sensitively, issues
// ascend numerically with the no-issue sentinel last. PR blocks within one
// issue bucket are separated by "---" lines, never after the last block.
func Render(g *Grouped) string {
	lines := []string{provenanceComment, ""}

	for _, cat := range g.Categories {
		lines = append(lines, "## "+cat.Name, "")

		for _, app := range sortedApps(cat.Apps) {
			lines = append(lines, "### "+app.Name, "")

			for _, bucket := range sortedIssues(app.Issues) {
				if bucket.Number == noIssueNumber {
					lines = append(lines, "#### "+bucket.Title, "")
				} else {
					lines = append(lines, fmt.Sprintf("#### Issue #%d - %s", bucket.Number, bucket.Title), "")
				}
				// Separators go between emitted blocks only, so an empty PR
				// body can never leave a dangling "---".
				emitted := false
				for _, entry := range bucket.Entries {
					if entry.Content == "" {
						continue
					}
					if emitted {
						lines = append(lines, "---", "")
					}
					lines = append(lines, entry.Content, "")
					emitted = true
				}
			}
		}
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// sortedApps returns a sorted view; the stored insertion order is untouched.
func sortedApps(apps []*AppGroup) []*AppGroup {
	out := make([]*AppGroup, len(apps))
	copy(out, apps)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func sortedIssues(issues []*IssueBucket) []*IssueBucket {
	out := make([]*IssueBucket, len(issues))
	copy(out, issues)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
