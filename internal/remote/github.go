// Package remote talks to the GitHub REST API: credential verification,
// repository creation and repository/branch listings. Everything publish
// needs before it lets git touch the network.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v75/github"
	"golang.org/x/oauth2"
)

// listPageSize is the page size for repository and branch listings.
const listPageSize = 100

// Sentinel errors for credential failures. Both fail closed: no remote
// mutation happens after either.
var (
	// ErrAuth indicates the token was rejected (expired, revoked, 401/403).
	ErrAuth = errors.New("github credential rejected")
	// ErrScope indicates the token lacks the repo scope needed to push.
	ErrScope = errors.New("github token lacks 'repo' scope")
)

// An Identity is the authenticated user as GitHub reports it.
type Identity struct {
	Login  string
	Scopes string
}

// A Repo is the subset of repository metadata publish needs.
type Repo struct {
	Name          string
	FullName      string
	Private       bool
	HTMLURL       string
	DefaultBranch string
}

// A Client wraps the GitHub API client with token auth.
type Client struct {
	gh *github.Client
}

// NewClient returns a Client authenticated with the given token.
func NewClient(ctx context.Context, token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := oauth2.NewClient(ctx, src)

	return &Client{gh: github.NewClient(httpClient)}
}

// SetBaseURL redirects API calls, primarily for tests against a local
// httptest server. The URL must end with a slash for go-github's resolver.
func (c *Client) SetBaseURL(raw string) error {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}

	c.gh.BaseURL = parsed

	return nil
}

// Verify checks the credential against the identity endpoint and confirms
// the token carries a scope that can push. It must pass before any remote
// mutation is attempted.
func (c *Client) Verify(ctx context.Context) (Identity, error) {
	user, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
			return Identity{}, fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
		}

		return Identity{}, fmt.Errorf("verify credential: %w", err)
	}

	scopes := resp.Header.Get("X-OAuth-Scopes")
	if !strings.Contains(scopes, "repo") && !strings.Contains(scopes, "public_repo") {
		return Identity{}, fmt.Errorf("%w (scopes: %q)", ErrScope, scopes)
	}

	return Identity{Login: user.GetLogin(), Scopes: scopes}, nil
}

// CreateRepo creates a repository under the authenticated user.
func (c *Client) CreateRepo(ctx context.Context, name string, private bool) (Repo, error) {
	spec := &github.Repository{
		Name:     github.Ptr(name),
		Private:  github.Ptr(private),
		AutoInit: github.Ptr(false),
	}

	created, _, err := c.gh.Repositories.Create(ctx, "", spec)
	if err != nil {
		return Repo{}, fmt.Errorf("create repository %s: %w", name, err)
	}

	return repoFrom(created), nil
}

// ListRepos lists the authenticated user's repositories.
func (c *Client) ListRepos(ctx context.Context) ([]Repo, error) {
	opts := &github.RepositoryListByAuthenticatedUserOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	repos, _, err := c.gh.Repositories.ListByAuthenticatedUser(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}

	out := make([]Repo, 0, len(repos))
	for _, repo := range repos {
		out = append(out, repoFrom(repo))
	}

	return out, nil
}

// ListBranches lists the branch names of owner/repo.
func (c *Client) ListBranches(ctx context.Context, owner, repo string) ([]string, error) {
	opts := &github.BranchListOptions{
		ListOptions: github.ListOptions{PerPage: listPageSize},
	}

	branches, _, err := c.gh.Repositories.ListBranches(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("list branches of %s/%s: %w", owner, repo, err)
	}

	names := make([]string, 0, len(branches))
	for _, branch := range branches {
		names = append(names, branch.GetName())
	}

	return names, nil
}

func repoFrom(repo *github.Repository) Repo {
	return Repo{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Private:       repo.GetPrivate(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
	}
}
