package models

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidRepositoryRef is returned for owner or repository names
// GitHub would never accept.
var ErrInvalidRepositoryRef = errors.New("invalid repository reference")

var repoNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,100}$`)

// RepositoryRef identifies a remote repository.
type RepositoryRef struct {
	Owner string
	Name  string
}

// NewRepositoryRef validates owner and name and returns the
// RepositoryRef they form.
func NewRepositoryRef(owner, name string) (RepositoryRef, error) {
	ref := RepositoryRef{Owner: owner, Name: name}
	if err := ref.Validate(); err != nil {
		return RepositoryRef{}, err
	}
	return ref, nil
}

// Validate checks both parts are non-empty and can be used as a
// single URL path segment.
func (r RepositoryRef) Validate() error {
	for _, part := range []string{r.Owner, r.Name} {
		if part == "." || part == ".." || !repoNamePattern.MatchString(part) {
			return fmt.Errorf("%w: %q", ErrInvalidRepositoryRef, r.String())
		}
	}
	return nil
}

func (r RepositoryRef) String() string {
	return r.Owner + "/" + r.Name
}

// RepositoryMetadata is the gateway representation of a repository.
type RepositoryMetadata struct {
	Owner           string    `json:"owner"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
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

// ErrorEnvelope is the body of every failed response.
type ErrorEnvelope struct {
	Error string `json:"error"`
}
