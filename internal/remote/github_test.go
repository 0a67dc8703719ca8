package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gardener/internal/remote"
)

// newClient points a Client at a stub API server.
func newClient(t *testing.T, handler http.Handler) *remote.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := remote.NewClient(context.Background(), "test-token")
	require.NoError(t, client.SetBaseURL(server.URL))

	return client
}

func TestVerify_AcceptsRepoScope(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user", r.URL.Path)

		w.Header().Set("X-OAuth-Scopes", "repo, read:org")
		_ = json.NewEncoder(w).Encode(map[string]any{"login": "octocat"})
	}))

	identity, err := client.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "octocat", identity.Login)
	assert.Contains(t, identity.Scopes, "repo")
}

func TestVerify_RejectsBadCredential(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{"message": "Bad credentials"})
	}))

	_, err := client.Verify(context.Background())
	assert.ErrorIs(t, err, remote.ErrAuth)
}

func TestVerify_RejectsMissingScope(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-OAuth-Scopes", "gist, read:user")
		_ = json.NewEncoder(w).Encode(map[string]any{"login": "octocat"})
	}))

	_, err := client.Verify(context.Background())
	assert.ErrorIs(t, err, remote.ErrScope)
}

func TestCreateRepo(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/user/repos", r.URL.Path)

		var body map[string]any

		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "garden", body["name"])
		assert.Equal(t, true, body["private"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"name":           "garden",
			"full_name":      "octocat/garden",
			"private":        true,
			"html_url":       "https://github.com/octocat/garden",
			"default_branch": "main",
		})
	}))

	repo, err := client.CreateRepo(context.Background(), "garden", true)
	require.NoError(t, err)
	assert.Equal(t, "octocat/garden", repo.FullName)
	assert.True(t, repo.Private)
	assert.Equal(t, "main", repo.DefaultBranch)
}

func TestListRepos(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/user/repos", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": "alpha", "full_name": "octocat/alpha", "private": false},
			{"name": "beta", "full_name": "octocat/beta", "private": true},
		})
	}))

	repos, err := client.ListRepos(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "alpha", repos[0].Name)
	assert.True(t, repos[1].Private)
}

func TestListBranches(t *testing.T) {
	t.Parallel()

	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/garden/branches", r.URL.Path)

		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"name": "main"},
			{"name": "activity"},
		})
	}))

	branches, err := client.ListBranches(context.Background(), "octocat", "garden")
	require.NoError(t, err)
	assert.Equal(t, []string{"main", "activity"}, branches)
}
