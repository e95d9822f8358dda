package service

import (
	"context"
	"fmt"

	"loro-backend/config"
	"loro-backend/internal/models"
	"loro-backend/pkg/github"
)

// Upstream is the part of the GitHub API the service relies on.
// *github.Client implements it.
type Upstream interface {
	GetRepository(ctx context.Context, owner, name string) (*github.Repository, error)
	ListContents(ctx context.Context, owner, name, path, ref string) ([]github.ContentEntry, error)
	GetTree(ctx context.Context, owner, name, treeish string, recursive bool) (*github.Tree, error)
}

// IRepoService defines the interface for Repository Service
// that allows to read remote repositories
type IRepoService interface {
	// GetRepository returns repository metadata
	GetRepository(ctx context.Context, ref models.RepositoryRef) (*models.RepositoryMetadata, error)

	// GetNestedTree lists the repository below path directory by
	// directory and returns it as a nested tree
	GetNestedTree(ctx context.Context, ref models.RepositoryRef, path, gitRef string) ([]*models.TreeNode, error)

	// GetFlatTree returns the whole repository listing
	// fetched with a single recursive call
	GetFlatTree(ctx context.Context, ref models.RepositoryRef, gitRef string) (*models.FlatTree, error)
}

// RepoService is a Repository service implementation
type RepoService struct {
	upstream Upstream
	// maxDepth bounds the number of nested directory levels listed
	maxDepth int
	// maxNodes bounds the number of entries in a nested tree
	maxNodes int
}

// NewRepoService creates a new RepoService instance with
// the given upstream and configuration.
func NewRepoService(upstream Upstream, cfg *config.Tree) *RepoService {
	s := &RepoService{
		upstream: upstream,
		maxDepth: 32,
		maxNodes: 10000,
	}
	if cfg != nil {
		if cfg.MaxDepth > 0 {
			s.maxDepth = cfg.MaxDepth
		}
		if cfg.MaxNodes > 0 {
			s.maxNodes = cfg.MaxNodes
		}
	}
	return s
}

// GetRepository returns repository metadata
func (s *RepoService) GetRepository(ctx context.Context, ref models.RepositoryRef) (*models.RepositoryMetadata, error) {
	repo, err := s.upstream.GetRepository(ctx, ref.Owner, ref.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to get repository %s: %w", ref, err)
	}

	return &models.RepositoryMetadata{
		Owner:           repo.Owner.Login,
		Name:            repo.Name,
		FullName:        repo.FullName,
		Description:     repo.Description,
		HTMLURL:         repo.HTMLURL,
		DefaultBranch:   repo.DefaultBranch,
		Language:        repo.Language,
		Private:         repo.Private,
		Archived:        repo.Archived,
		Fork:            repo.Fork,
		StargazersCount: repo.StargazersCount,
		ForksCount:      repo.ForksCount,
		OpenIssuesCount: repo.OpenIssuesCount,
		WatchersCount:   repo.WatchersCount,
		Topics:          repo.Topics,
		CreatedAt:       repo.CreatedAt,
		UpdatedAt:       repo.UpdatedAt,
		PushedAt:        repo.PushedAt,
	}, nil
}

// GetNestedTree lists the repository below path directory by
// directory. The first failing upstream call aborts the whole
// listing, partial trees are never returned.
func (s *RepoService) GetNestedTree(ctx context.Context, ref models.RepositoryRef, path, gitRef string) ([]*models.TreeNode, error) {
	b := &treeBuilder{
		upstream: s.upstream,
		ref:      ref,
		gitRef:   gitRef,
		maxDepth: s.maxDepth,
		maxNodes: s.maxNodes,
	}

	nodes, err := b.list(ctx, path, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree of %s: %w", ref, err)
	}

	return nodes, nil
}

// GetFlatTree returns the whole repository listing
// fetched with a single recursive call
func (s *RepoService) GetFlatTree(ctx context.Context, ref models.RepositoryRef, gitRef string) (*models.FlatTree, error) {
	tree, err := s.upstream.GetTree(ctx, ref.Owner, ref.Name, gitRef, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get tree of %s: %w", ref, err)
	}

	flat := &models.FlatTree{
		Tree:      make([]models.TreeEntry, 0, len(tree.Entries)),
		Truncated: tree.Truncated,
	}
	for _, e := range tree.Entries {
		flat.Tree = append(flat.Tree, models.TreeEntry{
			Path: e.Path,
			Mode: e.Mode,
			Type: e.Type,
			Kind: models.KindFromMode(e.Mode),
			Size: e.Size,
			SHA:  e.SHA,
		})
	}

	return flat, nil
}
