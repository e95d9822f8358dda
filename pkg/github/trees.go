package github

import (
	"context"
	"fmt"
	"net/url"

	"emperror.dev/errors"
)

// DefaultTreeish resolves to the tip of the default branch.
const DefaultTreeish = "HEAD"

// TreeEntry is one entry of a git tree.
type TreeEntry struct {
	Path string `json:"path"`
	Mode string `json:"mode"`
	Type string `json:"type"`
	Size int64  `json:"size,omitempty"`
	SHA  string `json:"sha"`
}

// Tree is a git tree as returned by the git database API.
type Tree struct {
	SHA       string      `json:"sha"`
	Entries   []TreeEntry `json:"tree"`
	Truncated bool        `json:"truncated"`
}

// GetTree fetches the git tree for treeish (DefaultTreeish when empty)
// with one API call. When recursive is set the whole repository is
// returned as a flat list, possibly truncated by GitHub.
func (c *Client) GetTree(ctx context.Context, owner, name, treeish string, recursive bool) (*Tree, error) {
	if treeish == "" {
		treeish = DefaultTreeish
	}
	endpoint := fmt.Sprintf("/repos/%s/%s/git/trees/%s",
		url.PathEscape(owner), url.PathEscape(name), url.PathEscape(treeish))

	var query url.Values
	if recursive {
		query = url.Values{"recursive": []string{"1"}}
	}

	var tree Tree
	if err := c.get(ctx, "get_tree", endpoint, query, &tree); err != nil {
		return nil, errors.WithMessagef(err, "unable to fetch tree %s of %s/%s", treeish, owner, name)
	}

	return &tree, nil
}
