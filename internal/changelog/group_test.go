package changelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupDefaults(t *testing.T) {
	records := []PullRequest{
		{Number: 7, IssueTitle: "Orphan", Content: []string{"body"}},
	}

	g := Group(records)
	require.Len(t, g.Categories, 1)
	assert.Equal(t, "Other", g.Categories[0].Name)

	require.Len(t, g.Categories[0].Apps, 1)
	assert.Equal(t, "Other", g.Categories[0].Apps[0].Name)

	issues := g.Categories[0].Apps[0].Issues
	require.Len(t, issues, 1)
	assert.Equal(t, noIssueNumber, issues[0].Number)
	assert.Equal(t, "PRs without linked issue", issues[0].Title)
	require.Len(t, issues[0].Entries, 1)
	assert.Equal(t, Entry{Number: 7, Content: "body"}, issues[0].Entries[0])
}

func TestGroupMultiAppDuplication(t *testing.T) {
	records := []PullRequest{
		{
			Category:    "Features",
			Number:      3,
			IssueTitle:  "Shared work",
			IssueNumber: 8,
			Content:     []string{"same content"},
			Apps:        []string{"Billing", "Reports"},
		},
	}

	g := Group(records)
	require.Len(t, g.Categories, 1)
	apps := g.Categories[0].Apps
	require.Len(t, apps, 2)

	for _, app := range apps {
		require.Len(t, app.Issues, 1)
		require.Len(t, app.Issues[0].Entries, 1)
		assert.Equal(t, Entry{Number: 3, Content: "same content"}, app.Issues[0].Entries[0])
	}
}

func TestGroupKeepsInsertionOrder(t *testing.T) {
	records := []PullRequest{
		{Category: "Zulu", Number: 1, IssueNumber: 2, IssueTitle: "b", Apps: []string{"Z"}},
		{Category: "Alpha", Number: 2, IssueNumber: 1, IssueTitle: "a", Apps: []string{"A"}},
		{Category: "Zulu", Number: 3, IssueNumber: 1, IssueTitle: "a", Apps: []string{"A"}},
	}

	g := Group(records)
	require.Len(t, g.Categories, 2)
	// Categories stay in first-seen order, never sorted.
	assert.Equal(t, "Zulu", g.Categories[0].Name)
	assert.Equal(t, "Alpha", g.Categories[1].Name)

	// Storage order for issues is first-touch as well; sorting is Render's job.
	zulu := g.Categories[0]
	require.Len(t, zulu.Apps, 2)
	assert.Equal(t, "Z", zulu.Apps[0].Name)
	assert.Equal(t, "A", zulu.Apps[1].Name)
}

func TestGroupBucketTitleFirstWriteWins(t *testing.T) {
	records := []PullRequest{
		{Number: 1, IssueNumber: 5, IssueTitle: "First title", Apps: []string{"Auth"}},
		{Number: 2, IssueNumber: 5, IssueTitle: "Second title", Apps: []string{"Auth"}},
	}

	g := Group(records)
	bucket := g.Categories[0].Apps[0].Issues[0]
	assert.Equal(t, "First title", bucket.Title)
	require.Len(t, bucket.Entries, 2)
	assert.Equal(t, 1, bucket.Entries[0].Number)
	assert.Equal(t, 2, bucket.Entries[1].Number)
}

func TestGroupEmptyInput(t *testing.T) {
	g := Group(nil)
	assert.Empty(t, g.Categories)
}
