package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gardener/internal/engine"
	"github.com/Sumatoshi-tech/gardener/internal/publish"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
)

// writeTestConfig writes a minimal config file and returns its path.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gardener.yaml")
	content := `committer:
  name: Octo Cat
  email: octo@example.com
token: test-token
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// writeTestCalendar writes a two-day calendar and returns its path.
func writeTestCalendar(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "contributions.json")
	days := []schedule.ContributionDay{
		{Date: "2024-05-01", Count: 2},
		{Date: "2024-05-02", Count: 1},
	}
	require.NoError(t, schedule.SaveCalendar(path, days))

	return path
}

func TestGenerateCommand_WiresRequestFromFlags(t *testing.T) {
	t.Parallel()

	var captured engine.GenerateRequest

	exec := func(req engine.GenerateRequest) (*engine.GenerateResult, error) {
		captured = req

		return &engine.GenerateResult{Dir: "/tmp/work", RepoName: req.RepoName, Commits: 3}, nil
	}

	cmd := newGenerateCommandWithDeps(&Options{ConfigPath: writeTestConfig(t), Quiet: true}, exec)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--calendar", writeTestCalendar(t),
		"--repo", "garden",
		"--branch", "activity",
		"--languages", "go:60,python:40",
	})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "garden", captured.RepoName)
	assert.Equal(t, "activity", captured.Branch)
	assert.Equal(t, "Octo Cat", captured.Committer.Name)
	assert.Equal(t, "octo@example.com", captured.Committer.Email)
	assert.Len(t, captured.Days, 2)
	assert.Equal(t, []schedule.LanguageWeight{
		{Language: "go", Ratio: 60},
		{Language: "python", Ratio: 40},
	}, captured.Weights)

	assert.Contains(t, out.String(), "3 commits")
	assert.Contains(t, out.String(), "/tmp/work")
}

func TestGenerateCommand_DefaultsFromConfig(t *testing.T) {
	t.Parallel()

	var captured engine.GenerateRequest

	exec := func(req engine.GenerateRequest) (*engine.GenerateResult, error) {
		captured = req

		return &engine.GenerateResult{Dir: "/tmp/work", RepoName: req.RepoName, Commits: 3}, nil
	}

	cmd := newGenerateCommandWithDeps(&Options{ConfigPath: writeTestConfig(t), Quiet: true}, exec)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--calendar", writeTestCalendar(t)})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "main", captured.Branch)
	assert.Equal(t, "markdown", captured.DefaultLanguage)
	assert.Nil(t, captured.Weights)

	// Repo name falls back to the committer name.
	assert.Equal(t, "Octo Cat", captured.RepoName)
}

func TestGenerateCommand_MissingCommitterRejected(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gardener.yaml")
	require.NoError(t, os.WriteFile(path, []byte("branch: main\n"), 0o644))

	called := false
	exec := func(engine.GenerateRequest) (*engine.GenerateResult, error) {
		called = true

		return nil, nil
	}

	cmd := newGenerateCommandWithDeps(&Options{ConfigPath: path, Quiet: true}, exec)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--calendar", writeTestCalendar(t)})

	require.Error(t, cmd.Execute())
	assert.False(t, called)
}

func TestGenerateCommand_CalendarFlagRequired(t *testing.T) {
	t.Parallel()

	cmd := newGenerateCommandWithDeps(&Options{Quiet: true}, nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

func TestPushCommand_GeneratesThenPublishes(t *testing.T) {
	t.Parallel()

	gen := func(req engine.GenerateRequest) (*engine.GenerateResult, error) {
		return &engine.GenerateResult{Dir: "/tmp/work", RepoName: req.RepoName, Commits: 3}, nil
	}

	var captured publish.Request

	pub := func(_ context.Context, token string, req publish.Request) (publish.Result, error) {
		captured = req

		assert.Equal(t, "test-token", token)

		return publish.Result{Success: true, Message: "ok", RepoURL: "https://github.com/octocat/garden"}, nil
	}

	cmd := newPushCommandWithDeps(&Options{ConfigPath: writeTestConfig(t), Quiet: true}, gen, pub)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--calendar", writeTestCalendar(t),
		"--repo", "garden",
		"--new", "--private", "--force",
	})

	require.NoError(t, cmd.Execute())

	assert.Equal(t, "/tmp/work", captured.Dir)
	assert.Equal(t, "garden", captured.RepoName)
	assert.Equal(t, "main", captured.LocalBranch)
	assert.Equal(t, "test-token", captured.Token)
	assert.True(t, captured.NewRepo)
	assert.True(t, captured.Private)
	assert.True(t, captured.Force)

	assert.Contains(t, out.String(), "https://github.com/octocat/garden")
}

func TestPushCommand_PublishFailureSurfacesMessage(t *testing.T) {
	t.Parallel()

	gen := func(req engine.GenerateRequest) (*engine.GenerateResult, error) {
		return &engine.GenerateResult{Dir: "/tmp/work", RepoName: req.RepoName, Commits: 3}, nil
	}

	pub := func(context.Context, string, publish.Request) (publish.Result, error) {
		return publish.Result{Message: "push rejected: re-run with force"}, publish.ErrPushRejected
	}

	cmd := newPushCommandWithDeps(&Options{ConfigPath: writeTestConfig(t), Quiet: true}, gen, pub)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--calendar", writeTestCalendar(t), "--repo", "garden"})

	err := cmd.Execute()
	require.ErrorIs(t, err, publish.ErrPushRejected)
	assert.Contains(t, out.String(), "re-run with force")
}

func TestPushCommand_NoTokenFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gardener.yaml")
	content := `committer:
  name: Octo Cat
  email: octo@example.com
token_env: GARDENER_UNSET_TOKEN_VAR
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	called := false
	gen := func(engine.GenerateRequest) (*engine.GenerateResult, error) {
		called = true

		return nil, nil
	}

	cmd := newPushCommandWithDeps(&Options{ConfigPath: path, Quiet: true}, gen, nil)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--calendar", writeTestCalendar(t), "--repo", "garden"})

	require.Error(t, cmd.Execute())
	assert.False(t, called)
}
