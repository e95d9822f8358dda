package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"
)

var (
	// ErrMissingToken is returned when no upstream credential is configured.
	ErrMissingToken = errors.New("GITHUB_TOKEN is not set")
	// ErrMalformedToken is returned when the upstream credential can not be
	// sent as a bearer token.
	ErrMalformedToken = errors.New("GITHUB_TOKEN is malformed")
)

// Scheme is application config Scheme
type Scheme struct {
	// Application environment
	Env string

	// Application HTTP server
	HTTP *HTTP `mapstructure:"http"`

	// Upstream GitHub API
	GitHub *GitHub `mapstructure:"github"`

	// Repository structure listing
	Tree *Tree `mapstructure:"tree"`

	Metrics *Metrics `mapstructure:"metrics"`
}

// HTTP is HTTP server config scheme
type HTTP struct {
	Host string
	Port int
}

// GitHub is upstream API config scheme
type GitHub struct {
	Token       string
	APIURL      string        `mapstructure:"api_url"`
	GraphQLURL  string        `mapstructure:"graphql_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
	VerifyToken bool          `mapstructure:"verify_token"`
}

// Tree is repository structure listing config scheme
type Tree struct {
	Strategy string
	MaxDepth int `mapstructure:"max_depth"`
	MaxNodes int `mapstructure:"max_nodes"`
}

type Metrics struct {
	Enabled bool
	Path    string
}

// Validate checks the parts of the configuration the
// application can not start without.
func (s *Scheme) Validate() error {
	if s.GitHub == nil {
		return ErrMissingToken
	}

	token := strings.TrimSpace(s.GitHub.Token)
	if token == "" {
		return ErrMissingToken
	}

	if strings.IndexFunc(s.GitHub.Token, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return ErrMalformedToken
	}

	if s.HTTP == nil || s.HTTP.Port < 0 || s.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http port")
	}

	if s.Tree != nil && (s.Tree.MaxDepth <= 0 || s.Tree.MaxNodes <= 0) {
		return fmt.Errorf("tree limits must be positive")
	}

	return nil
}

// Addr returns the address the HTTP server listens on.
// An empty host binds all network interfaces.
func (h *HTTP) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
