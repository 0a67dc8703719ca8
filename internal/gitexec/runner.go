// Package gitexec drives the external git executable: repository setup, the
// bulk fast-import invocation, checkout, remote configuration and pushes.
// The executable path is injected so callers stay testable without process
// globals.
package gitexec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os/exec"
	"regexp"
	"strings"
)

// defaultGit is the executable resolved from PATH when no override is set.
const defaultGit = "git"

// ErrGitUnavailable indicates the configured git executable cannot be run.
var ErrGitUnavailable = errors.New("git executable not found or not runnable")

// credentialPattern matches userinfo embedded in an https URL, as produced
// for non-interactive pushes. Stderr passes through it before ending up in
// an error so tokens never surface verbatim.
var credentialPattern = regexp.MustCompile(`https://[^/@\s]+@`)

// A Runner executes git commands with a fixed executable path.
type Runner struct {
	gitPath string
}

// NewRunner returns a Runner using gitPath, or "git" from PATH when empty.
func NewRunner(gitPath string) *Runner {
	if gitPath == "" {
		gitPath = defaultGit
	}

	return &Runner{gitPath: gitPath}
}

// Git returns the executable the Runner invokes.
func (r *Runner) Git() string {
	return r.gitPath
}

// Run executes one git command in dir and returns its stdout. Stderr is
// captured, credential-redacted and folded into the returned error.
func (r *Runner) Run(dir string, args ...string) (string, error) {
	return r.run(dir, nil, args...)
}

// RunInput is Run with the given reader wired to the command's stdin.
func (r *Runner) RunInput(dir string, input io.Reader, args ...string) (string, error) {
	return r.run(dir, input, args...)
}

func (r *Runner) run(dir string, input io.Reader, args ...string) (string, error) {
	cmd := exec.Command(r.gitPath, args...)
	cmd.Dir = dir
	cmd.Stdin = input

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if runErr != nil {
		if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrGitUnavailable, r.gitPath)
		}

		// Args may carry a credential-bearing URL (remote add), so they
		// get the same redaction as stderr.
		shown := Redact(strings.Join(args, " "))

		detail := Redact(strings.TrimSpace(stderr.String()))
		if detail != "" {
			return "", fmt.Errorf("git %s: %w (%s)", shown, runErr, detail)
		}

		return "", fmt.Errorf("git %s: %w", shown, runErr)
	}

	return stdout.String(), nil
}

// Version probes the executable with `git --version`. An error here means
// the tool is misconfigured and no repository work should be attempted.
func (r *Runner) Version() (string, error) {
	out, err := r.Run("", "--version")
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(out), nil
}

// Redact strips embedded credentials from https URLs in s.
func Redact(s string) string {
	return credentialPattern.ReplaceAllString(s, "https://***@")
}
