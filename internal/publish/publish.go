// Package publish drives the remote side of a run: credential check, repo
// resolution or creation, remote configuration, push and the bounded
// force-recovery sequence. The local generated directory is removed on
// every exit path.
package publish

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Sumatoshi-tech/gardener/internal/remote"
)

// remoteName is the git remote all pushes go through.
const remoteName = "origin"

// remoteHost is the hosting endpoint pushes target.
const remoteHost = "github.com"

// Terminal push failures. Both leave the structured result's message as the
// user-facing explanation; the sentinel is for programmatic checks.
var (
	// ErrPushRejected indicates a non-force push was refused by the remote.
	ErrPushRejected = errors.New("push rejected by remote")
	// ErrRecoveryFailed indicates the force path's second push was also
	// refused after the remote branch was deleted.
	ErrRecoveryFailed = errors.New("force recovery failed")
)

// A GitService runs the local git operations publish needs.
type GitService interface {
	SetRemote(dir, remote, url string) error
	Push(dir, remote, localBranch, targetBranch string, force bool) error
	DeleteRemoteBranch(dir, remote, branch string) error
	RemoveRemote(dir, remote string) error
}

// A RemoteService covers the hosting API calls publish needs.
type RemoteService interface {
	Verify(ctx context.Context) (remote.Identity, error)
	CreateRepo(ctx context.Context, name string, private bool) (remote.Repo, error)
}

// A Sink receives human-readable progress strings. Fire and forget: the
// machine never waits on or branches on delivery.
type Sink func(msg string)

// A Request describes one publish invocation.
type Request struct {
	// Dir is the local generated repository. Publish owns it and deletes
	// it before returning, success or failure.
	Dir string
	// RepoName is either a bare name under the authenticated user or a
	// fully qualified owner/name.
	RepoName string
	// LocalBranch is the branch in Dir holding the generated history.
	LocalBranch string
	// TargetBranch is the remote branch to publish to. Empty means the
	// repository default (or "main" for a new repository).
	TargetBranch string
	// Token authenticates both the API calls and the push URL. It must
	// never appear in logs, messages or results.
	Token string
	// NewRepo requests creation of the remote repository first.
	NewRepo bool
	// Private applies to a newly created repository.
	Private bool
	// Force replaces diverged remote history, with one bounded recovery
	// attempt on rejection.
	Force bool
}

// A Result is the structured outcome handed back to the caller.
type Result struct {
	Success bool
	Message string
	RepoURL string
}

// A Machine executes the publish sequence over injected git and remote
// services.
type Machine struct {
	git  GitService
	api  RemoteService
	sink Sink
}

// NewMachine returns a Machine. sink may be nil.
func NewMachine(git GitService, api RemoteService, sink Sink) *Machine {
	return &Machine{git: git, api: api, sink: sink}
}

func (m *Machine) emit(format string, args ...any) {
	if m.sink != nil {
		m.sink(fmt.Sprintf(format, args...))
	}
}

// Publish runs the full sequence for req. At most two pushes and one remote
// branch deletion happen per call. The error, when non-nil, is also
// reflected in the returned Result's message.
func (m *Machine) Publish(ctx context.Context, req Request) (Result, error) {
	defer m.cleanup(req.Dir)

	m.emit("verifying credentials")

	identity, err := m.api.Verify(ctx)
	if err != nil {
		return Result{Message: "credential verification failed"}, fmt.Errorf("verify credentials: %w", err)
	}

	owner, name, branch, resolveErr := m.resolveRepo(ctx, identity.Login, req)
	if resolveErr != nil {
		return Result{Message: "resolving remote repository failed"}, resolveErr
	}

	repoURL := fmt.Sprintf("https://%s/%s/%s", remoteHost, owner, name)
	pushURL := fmt.Sprintf("https://%s@%s/%s/%s.git", req.Token, remoteHost, owner, name)

	if remoteErr := m.git.SetRemote(req.Dir, remoteName, pushURL); remoteErr != nil {
		return Result{Message: "configuring remote failed", RepoURL: repoURL},
			fmt.Errorf("configure remote: %w", remoteErr)
	}

	m.emit("pushing %s to %s/%s (%s)", req.LocalBranch, owner, name, branch)

	pushErr := m.git.Push(req.Dir, remoteName, req.LocalBranch, branch, req.Force)
	if pushErr == nil {
		m.emit("push complete")

		return Result{Success: true, Message: "published to " + repoURL, RepoURL: repoURL}, nil
	}

	if !req.Force {
		msg := fmt.Sprintf("push to %s rejected: the remote branch likely already has content; re-run with force to replace it", branch)

		return Result{Message: msg, RepoURL: repoURL}, fmt.Errorf("%w: %w", ErrPushRejected, pushErr)
	}

	return m.recover(req, owner, name, branch, repoURL)
}

// recover runs the bounded destructive path: delete the remote branch, then
// exactly one more force push.
func (m *Machine) recover(req Request, owner, name, branch, repoURL string) (Result, error) {
	m.emit("force push rejected, deleting remote branch %s", branch)

	if delErr := m.git.DeleteRemoteBranch(req.Dir, remoteName, branch); delErr != nil {
		msg := fmt.Sprintf("force recovery failed: could not delete remote branch %s", branch)

		return Result{Message: msg, RepoURL: repoURL}, fmt.Errorf("%w: %w", ErrRecoveryFailed, delErr)
	}

	m.emit("re-pushing %s", branch)

	if retryErr := m.git.Push(req.Dir, remoteName, req.LocalBranch, branch, true); retryErr != nil {
		msg := fmt.Sprintf("force recovery failed: the second push to %s was also rejected; check branch protection rules on %s/%s", branch, owner, name)

		return Result{Message: msg, RepoURL: repoURL}, fmt.Errorf("%w: %w", ErrRecoveryFailed, retryErr)
	}

	m.emit("push complete after recovery")

	return Result{Success: true, Message: "published to " + repoURL + " after force recovery", RepoURL: repoURL}, nil
}

// resolveRepo turns the request into owner, repository name and target
// branch, creating the repository when requested.
func (m *Machine) resolveRepo(ctx context.Context, login string, req Request) (owner, name, branch string, err error) {
	owner = login
	name = req.RepoName

	if before, after, found := strings.Cut(req.RepoName, "/"); found {
		owner = before
		name = after
	}

	branch = req.TargetBranch

	if req.NewRepo {
		m.emit("creating repository %s", name)

		created, createErr := m.api.CreateRepo(ctx, name, req.Private)
		if createErr != nil {
			return "", "", "", fmt.Errorf("create repository %s: %w", name, createErr)
		}

		if branch == "" {
			branch = created.DefaultBranch
		}
	}

	if branch == "" {
		branch = "main"
	}

	return owner, name, branch, nil
}

// cleanup scrubs the credential-bearing remote and deletes the generated
// directory. Runs exactly once per Publish, on every exit path.
func (m *Machine) cleanup(dir string) {
	if dir == "" {
		return
	}

	m.emit("cleaning up %s", dir)

	_ = m.git.RemoveRemote(dir, remoteName)
	_ = os.RemoveAll(dir)
}
