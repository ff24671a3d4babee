// Package githubapi provides a small GitHub API client using the GitHub CLI.
package githubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

type Client struct {
	logger *slog.Logger
	stderr io.Writer
	token  string
	repo   string
	owner  string
	name   string
}

// NewClient validates the owner/repo slug and returns a client that shells
// out to `gh` authenticated with the given token. stderr receives gh
// diagnostics; nil falls back to os.Stderr.
func NewClient(logger *slog.Logger, stderr io.Writer, token, repo string) (*Client, error) {
	repo = strings.TrimSpace(repo)
	if repo == "" {
		return nil, fmt.Errorf("repository is empty")
	}
	parts := strings.Split(repo, "/")
	if len(parts) != 2 || strings.TrimSpace(parts[0]) == "" || strings.TrimSpace(parts[1]) == "" {
		return nil, fmt.Errorf("invalid repository slug %q, expected owner/repo", repo)
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return &Client{
		logger: logger,
		stderr: stderr,
		token:  token,
		repo:   repo,
		owner:  parts[0],
		name:   parts[1],
	}, nil
}

// FetchPullRequestLabels returns the names of all labels attached to the
// given pull request, following pagination.
func (c *Client) FetchPullRequestLabels(ctx context.Context, number int) ([]string, error) {
	if number <= 0 {
		return nil, fmt.Errorf("pr number must be positive")
	}
	query := `query($owner: String!, $name: String!, $number: Int!, $after: String) {
  repository(owner: $owner, name: $name) {
    pullRequest(number: $number) {
      labels(first: 100, after: $after) {
        nodes { name }
        pageInfo { hasNextPage endCursor }
      }
    }
  }
}`

	var out []string
	var after string
	for {
		resp := labelsResponse{}
		vars := map[string]any{
			"owner":  c.owner,
			"name":   c.name,
			"number": number,
		}
		if after != "" {
			vars["after"] = after
		}
		if err := c.runGraphQL(ctx, query, vars, &resp); err != nil {
			return nil, err
		}
		for _, node := range resp.Data.Repository.PullRequest.Labels.Nodes {
			if name := strings.TrimSpace(node.Name); name != "" {
				out = append(out, name)
			}
		}
		if !resp.Data.Repository.PullRequest.Labels.PageInfo.HasNextPage {
			break
		}
		after = resp.Data.Repository.PullRequest.Labels.PageInfo.EndCursor
		if after == "" {
			break
		}
	}
	return out, nil
}

func (c *Client) runGraphQL(ctx context.Context, query string, vars map[string]any, out any) error {
	args := []string{"api", "graphql", "-f", "query=" + query}
	for key, val := range vars {
		if val == nil {
			continue
		}
		switch v := val.(type) {
		case int, int32, int64, uint, uint32, uint64, float32, float64, bool:
			args = append(args, "-F", fmt.Sprintf("%s=%v", key, v))
			continue
		}
		str := fmt.Sprintf("%v", val)
		if str == "" {
			continue
		}
		args = append(args, "-f", fmt.Sprintf("%s=%s", key, str))
	}
	if c.logger != nil {
		c.logger.Debug("github graphql query", "repo", c.repo, "args", args)
	}

	cmd := exec.CommandContext(ctx, "gh", args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = c.stderr

	env := os.Environ()
	env = append(env, "GITHUB_TOKEN="+c.token, "GH_TOKEN="+c.token)
	cmd.Env = env

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("gh api graphql failed: %w", err)
	}

	if err := json.Unmarshal(stdout.Bytes(), out); err != nil {
		return fmt.Errorf("decode github graphql response: %w", err)
	}
	return nil
}
