package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"emperror.dev/errors"
)

// Content entry types reported by the contents API.
const (
	ContentTypeFile      = "file"
	ContentTypeDir       = "dir"
	ContentTypeSymlink   = "symlink"
	ContentTypeSubmodule = "submodule"
)

// ContentEntry is one entry of a directory listing.
type ContentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
	Size int64  `json:"size"`
	SHA  string `json:"sha"`
}

// IsDir reports whether the entry is a directory that can be listed.
func (e ContentEntry) IsDir() bool {
	return e.Type == ContentTypeDir
}

// ListContents lists one level of the repository at path (the root
// when empty), in upstream order. When path points at a single file
// the listing contains only that file. An empty ref selects the
// default branch.
func (c *Client) ListContents(ctx context.Context, owner, name, path, ref string) ([]ContentEntry, error) {
	endpoint := fmt.Sprintf("/repos/%s/%s/contents", url.PathEscape(owner), url.PathEscape(name))
	if p := escapePath(path); p != "" {
		endpoint += "/" + p
	}

	var query url.Values
	if ref != "" {
		query = url.Values{"ref": []string{ref}}
	}

	var raw json.RawMessage
	if err := c.get(ctx, "list_contents", endpoint, query, &raw); err != nil {
		return nil, errors.WithMessagef(err, "unable to list %s/%s:%s", owner, name, path)
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '{' {
		var entry ContentEntry
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal content entry")
		}
		return []ContentEntry{entry}, nil
	}

	var entries []ContentEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal directory listing")
	}
	return entries, nil
}
