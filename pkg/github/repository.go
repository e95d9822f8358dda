package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"emperror.dev/errors"
)

// Repository is the subset of the GitHub repository resource
// the gateway exposes.
type Repository struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Owner    struct {
		Login string `json:"login"`
	} `json:"owner"`
	Description     string    `json:"description"`
	HTMLURL         string    `json:"html_url"`
	DefaultBranch   string    `json:"default_branch"`
	Language        string    `json:"language"`
	Private         bool      `json:"private"`
	Archived        bool      `json:"archived"`
	Fork            bool      `json:"fork"`
	StargazersCount int       `json:"stargazers_count"`
	ForksCount      int       `json:"forks_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	WatchersCount   int       `json:"watchers_count"`
	Topics          []string  `json:"topics"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

// GetRepository fetches repository metadata with a single API call.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*Repository, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))

	var repo Repository
	if err := c.get(ctx, "get_repository", endpoint, nil, &repo); err != nil {
		return nil, errors.WithMessagef(err, "unable to fetch repository %s/%s from GitHub", owner, name)
	}

	return &repo, nil
}
