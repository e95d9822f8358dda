package service

import (
	"context"
	"errors"
	"fmt"
	"path"

	"loro-backend/internal/models"
)

var (
	// ErrTreeTooDeep is returned when directories are nested deeper
	// than the configured limit.
	ErrTreeTooDeep = errors.New("repository tree exceeds maximum depth")
	// ErrTreeTooLarge is returned when the listing has more entries
	// than the configured limit.
	ErrTreeTooLarge = errors.New("repository tree exceeds maximum size")
)

// treeBuilder assembles one nested listing. It lives for a
// single request and is never shared.
type treeBuilder struct {
	upstream Upstream
	ref      models.RepositoryRef
	gitRef   string
	maxDepth int
	maxNodes int
	nodes    int
}

func (b *treeBuilder) list(ctx context.Context, dir string, depth int) ([]*models.TreeNode, error) {
	if depth >= b.maxDepth {
		return nil, fmt.Errorf("%w: %q", ErrTreeTooDeep, dir)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := b.upstream.ListContents(ctx, b.ref.Owner, b.ref.Name, dir, b.gitRef)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", dir, err)
	}

	nodes := make([]*models.TreeNode, 0, len(entries))
	for _, e := range entries {
		b.nodes++
		if b.nodes > b.maxNodes {
			return nil, fmt.Errorf("%w: more than %d entries", ErrTreeTooLarge, b.maxNodes)
		}

		if !e.IsDir() {
			nodes = append(nodes, models.NewFile(e.Name))
			continue
		}

		child := e.Path
		if child == "" {
			child = path.Join(dir, e.Name)
		}
		children, err := b.list(ctx, child, depth+1)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, models.NewDirectory(e.Name, children))
	}

	return nodes, nil
}
