package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octogate/pkg/domain/interfaces"
	"github.com/m-mizutani/octogate/pkg/domain/types"
	"github.com/m-mizutani/octogate/pkg/utils/logging"
)

const (
	// DefaultTimeout bounds every GitHub API call.
	DefaultTimeout = 10 * time.Second

	listRepositoriesPerPage = 100
	mediaTypeV3             = "application/vnd.github.v3+json"
)

// Client calls the GitHub REST API with a user's stored OAuth token.
type Client struct {
	baseURL   *url.URL
	transport http.RoundTripper
	timeout   time.Duration
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL points the client at a GitHub Enterprise or test server.
func WithBaseURL(u *url.URL) Option {
	return func(x *Client) {
		x.baseURL = u
	}
}

func WithTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.timeout = d
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		transport: http.DefaultTransport,
		timeout:   DefaultTimeout,
	}
	for _, opt := range options {
		opt(client)
	}

	if client.timeout <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "timeout must be positive", goerr.V("timeout", client.timeout))
	}
	if client.baseURL != nil && !strings.HasSuffix(client.baseURL.Path, "/") {
		u := *client.baseURL
		u.Path += "/"
		client.baseURL = &u
	}

	return client, nil
}

// ParseBaseURL parses the API base URL given on the command line.
func ParseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub base URL", goerr.V("url", raw), goerr.V("error", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub base URL must be http or https", goerr.V("url", raw))
	}
	return u, nil
}

func (x *Client) buildGithubClient(token types.GitHubAccessToken) *github.Client {
	httpClient := &http.Client{
		Transport: &tokenTransport{token: token, base: x.transport},
		Timeout:   x.timeout,
	}

	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func (x *Client) ListRepositories(ctx context.Context, token types.GitHubAccessToken) ([]*github.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	client := x.buildGithubClient(token)

	// https://docs.github.com/en/rest/repos/repos#list-repositories-for-the-authenticated-user
	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: listRepositoriesPerPage},
	}
	repos, resp, err := client.Repositories.List(ctx, "", opt)
	if err != nil {
		return nil, toUpstreamError(resp, err, "failed to list repositories")
	}

	logging.From(ctx).Debug("Listed repositories", slog.Int("count", len(repos)))

	return repos, nil
}

func (x *Client) ListBranches(ctx context.Context, token types.GitHubAccessToken, owner, repo string) ([]json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	client := x.buildGithubClient(token)

	// Branches are passed through untouched, so decode into raw messages
	// instead of github.Branch.
	// https://docs.github.com/en/rest/branches/branches#list-branches
	u := fmt.Sprintf("repos/%s/%s/branches", url.PathEscape(owner), url.PathEscape(repo))
	req, err := client.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build branch list request", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	var branches []json.RawMessage
	resp, err := client.Do(ctx, req, &branches)
	if err != nil {
		return nil, toUpstreamError(resp, err, "failed to list branches", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	if branches == nil {
		branches = []json.RawMessage{}
	}

	logging.From(ctx).Debug("Listed branches",
		slog.String("owner", owner),
		slog.String("repo", repo),
		slog.Int("count", len(branches)),
	)

	return branches, nil
}

func (x *Client) GetRepository(ctx context.Context, token types.GitHubAccessToken, owner, repo string) (*github.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	client := x.buildGithubClient(token)

	// https://docs.github.com/en/rest/repos/repos#get-a-repository
	repository, resp, err := client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, toUpstreamError(resp, err, "failed to get repository", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	return repository, nil
}

// toUpstreamError converts a go-github failure into *types.UpstreamError,
// keeping the HTTP status when a response was received.
func toUpstreamError(resp *github.Response, err error, msg string, options ...goerr.Option) error {
	upErr := &types.UpstreamError{Message: err.Error()}

	if resp != nil && resp.Response != nil {
		upErr.StatusCode = resp.StatusCode
	}

	var ghErr *github.ErrorResponse
	var rateErr *github.RateLimitError
	switch {
	case errors.As(err, &ghErr):
		upErr.Message = ghErr.Message
		if ghErr.Response != nil {
			upErr.StatusCode = ghErr.Response.StatusCode
		}
	case errors.As(err, &rateErr):
		upErr.Message = rateErr.Message
		if rateErr.Response != nil {
			upErr.StatusCode = rateErr.Response.StatusCode
		}
	}

	options = append(options, goerr.V("status", upErr.StatusCode))
	return goerr.Wrap(upErr, msg, options...)
}

// tokenTransport sets the headers GitHub expects for OAuth user tokens.
type tokenTransport struct {
	token types.GitHubAccessToken
	base  http.RoundTripper
}

func (x *tokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Authorization", "token "+string(x.token))
	r.Header.Set("Accept", mediaTypeV3)
	return x.base.RoundTrip(r)
}
