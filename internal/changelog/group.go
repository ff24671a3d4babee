package changelog

const (
	// noIssueNumber is the sentinel issue key for PRs without a linked issue.
	// It sorts after every real issue number at render time.
	noIssueNumber = 999999
	noIssueTitle  = "PRs without linked issue"
	// fallbackGroup names the bucket for records without a category or
	// without any application label.
	fallbackGroup = "Other"
)

// Entry is one pull request filed under an issue bucket.
type Entry struct {
	Number  int
	Content string
}

// IssueBucket collects the PR entries that close one issue.
type IssueBucket struct {
	Number  int
	Title   string
	Entries []Entry
}

// AppGroup collects the issue buckets for one application.
type AppGroup struct {
	Name   string
	Issues []*IssueBucket
}

// CategoryGroup collects the application groups for one changelog category.
type CategoryGroup struct {
	Name string
	Apps []*AppGroup
}

// Grouped is the nested Category -> App -> Issue structure. All three levels
// keep first-touch insertion order; sorted views are computed by Render.
type Grouped struct {
	Categories []*CategoryGroup
}

// Group files each record under its category, applications, and issue, in
// input order. A record with N applications produces N independent entries
// sharing the same content by value. Records without apps go under "Other",
// records without an issue under the sentinel bucket.
func Group(records []PullRequest) *Grouped {
	g := &Grouped{}
	for _, rec := range records {
		category := rec.Category
		if category == "" {
			category = fallbackGroup
		}
		issue, title := rec.IssueNumber, rec.IssueTitle
		if issue == 0 {
			issue, title = noIssueNumber, noIssueTitle
		}
		apps := rec.Apps
		if len(apps) == 0 {
			apps = []string{fallbackGroup}
		}

		content := rec.Body()
		for _, app := range apps {
			bucket := g.category(category).app(app).issue(issue, title)
			bucket.Entries = append(bucket.Entries, Entry{Number: rec.Number, Content: content})
		}
	}
	return g
}

func (g *Grouped) category(name string) *CategoryGroup {
	for _, cat := range g.Categories {
		if cat.Name == name {
			return cat
		}
	}
	cat := &CategoryGroup{Name: name}
	g.Categories = append(g.Categories, cat)
	return cat
}

func (c *CategoryGroup) app(name string) *AppGroup {
	for _, app := range c.Apps {
		if app.Name == name {
			return app
		}
	}
	app := &AppGroup{Name: name}
	c.Apps = append(c.Apps, app)
	return app
}

// issue returns the bucket for number, creating it with the given title on
// first touch. The creating record fixes the displayed title; later records
// reusing the bucket do not overwrite it.
func (a *AppGroup) issue(number int, title string) *IssueBucket {
	for _, bucket := range a.Issues {
		if bucket.Number == number {
			return bucket
		}
	}
	bucket := &IssueBucket{Number: number, Title: title}
	a.Issues = append(a.Issues, bucket)
	return bucket
}
