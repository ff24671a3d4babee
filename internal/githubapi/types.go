package githubapi

// labelsResponse mirrors the GraphQL payload for a pull request's labels.
type labelsResponse struct {
	Data struct {
		Repository struct {
			PullRequest struct {
				Labels struct {
					Nodes []struct {
						Name string `json:"name"`
					} `json:"nodes"`
					PageInfo struct {
						HasNextPage bool   `json:"hasNextPage"`
						EndCursor   string `json:"endCursor"`
					} `json:"pageInfo"`
				} `json:"labels"`
			} `json:"pullRequest"`
		} `json:"repository"`
	} `json:"data"`
}
