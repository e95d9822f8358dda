package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"emperror.dev/errors"
	"github.com/shurcooL/githubv4"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	// DefaultAPIURL is the public GitHub REST API endpoint.
	DefaultAPIURL = "https://api.github.com"

	apiVersion = "2022-11-28"
	userAgent  = "loro-backend"
)

// Observer receives one notification per upstream call. Status is
// the upstream HTTP status code, or zero when no response was received.
type Observer interface {
	ObserveUpstreamCall(operation string, status int, elapsed time.Duration)
}

// Options configures a Client.
type Options struct {
	// APIURL is the REST API base URL, DefaultAPIURL when empty.
	APIURL string
	// GraphQLURL is the GraphQL endpoint, APIURL + "/graphql" when empty.
	GraphQLURL string
	// Timeout bounds every single upstream call. Zero means no limit
	// beyond the caller's context.
	Timeout time.Duration
	// Observer is notified about every REST call, may be nil.
	Observer Observer
	// Transport is the underlying round tripper, http.DefaultTransport
	// when nil.
	Transport http.RoundTripper
}

// Client is a read-only GitHub API client authenticated with a static
// token. It holds no mutable state after construction and is safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	gh         *githubv4.Client
	apiURL     string
	timeout    time.Duration
	observer   Observer
}

// NewClient creates a new Client sending token as bearer credential.
func NewClient(token string, opts Options) (*Client, error) {
	if token == "" {
		return nil, errors.Errorf("no GitHub token provided")
	}

	apiURL := strings.TrimSuffix(opts.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if _, err := url.Parse(apiURL); err != nil {
		return nil, errors.Wrap(err, "failed to parse GitHub API URL")
	}

	graphqlURL := opts.GraphQLURL
	if graphqlURL == "" {
		graphqlURL = apiURL + "/graphql"
	}

	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	src := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := &http.Client{
		Transport: &oauth2.Transport{Source: src, Base: transport},
	}

	return &Client{
		httpClient: httpClient,
		gh:         githubv4.NewEnterpriseClient(graphqlURL, httpClient),
		apiURL:     apiURL,
		timeout:    opts.Timeout,
		observer:   opts.Observer,
	}, nil
}

// get executes a GET request to the endpoint (e.g., /repos/:owner/:repo)
// and unmarshal the response into result.
func (c *Client) get(ctx context.Context, operation, endpoint string, query url.Values, result any) (reterr error) {
	if endpoint == "" || endpoint[0] != '/' {
		return errors.Errorf("malformed REST endpoint %q", endpoint)
	}

	u := c.apiURL + endpoint
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	log := logrus.WithFields(logrus.Fields{
		"operation": operation,
		"url":       u,
	})
	log.Debug("executing GitHub API request...")

	status := 0
	startTime := time.Now()
	defer func() {
		elapsed := time.Since(startTime)
		if c.observer != nil {
			c.observer.ObserveUpstreamCall(operation, status, elapsed)
		}
		log := log.WithFields(logrus.Fields{
			"elapsed": elapsed,
			"status":  status,
		})
		if reterr != nil {
			log.WithError(reterr).Debug("GitHub API request failed")
		} else {
			log.Debug("GitHub API request succeeded")
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to make API request")
	}
	defer res.Body.Close()
	status = res.StatusCode

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if res.StatusCode >= http.StatusBadRequest {
		return newAPIError(res.StatusCode, body)
	}

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(body, result); err != nil {
		return errors.Wrap(err, "failed to unmarshal response body")
	}
	return nil
}

// escapePath escapes every segment of a slash separated repository path.
func escapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
