package gitexec

import (
	"bytes"
	"fmt"
)

// InitRepo initializes a repository in dir and configures the committer
// identity plus the speed knobs a throwaway bulk-import repository wants:
// no GPG signing, no auto-gc, no CRLF translation, no fsync.
func (r *Runner) InitRepo(dir, name, email string) error {
	if _, err := r.Run(dir, "init"); err != nil {
		return fmt.Errorf("init repository: %w", err)
	}

	if _, err := r.Run(dir, "config", "user.name", name); err != nil {
		return fmt.Errorf("configure user.name: %w", err)
	}

	if _, err := r.Run(dir, "config", "user.email", email); err != nil {
		return fmt.Errorf("configure user.email: %w", err)
	}

	// Best effort: older git versions may not know every knob.
	_, _ = r.Run(dir, "config", "commit.gpgsign", "false")
	_, _ = r.Run(dir, "config", "gc.auto", "0")
	_, _ = r.Run(dir, "config", "core.autocrlf", "false")
	_, _ = r.Run(dir, "config", "core.fsync", "none")

	return nil
}

// Import feeds the whole stream to one `git fast-import` invocation and
// checks out the resulting branch head. One process for the entire history
// is the point: per-commit invocations do not scale to dense calendars.
func (r *Runner) Import(dir string, streamData []byte, branch string) error {
	_, importErr := r.RunInput(dir, bytes.NewReader(streamData), "fast-import", "--quiet")
	if importErr != nil {
		return fmt.Errorf("fast-import: %w", importErr)
	}

	_, checkoutErr := r.Run(dir, "checkout", "-f", branch)
	if checkoutErr != nil {
		return fmt.Errorf("checkout %s: %w", branch, checkoutErr)
	}

	return nil
}

// SetRemote points the named remote at url, adding it or rewriting an
// existing one.
func (r *Runner) SetRemote(dir, remote, url string) error {
	_, addErr := r.Run(dir, "remote", "add", remote, url)
	if addErr == nil {
		return nil
	}

	_, setErr := r.Run(dir, "remote", "set-url", remote, url)
	if setErr != nil {
		return fmt.Errorf("configure remote %s: %w", remote, setErr)
	}

	return nil
}

// RemoveRemote drops the named remote. Callers use it to scrub a
// credential-bearing URL out of the repository config after a push.
func (r *Runner) RemoveRemote(dir, remote string) error {
	_, err := r.Run(dir, "remote", "remove", remote)
	if err != nil {
		return fmt.Errorf("remove remote %s: %w", remote, err)
	}

	return nil
}

// Push pushes the explicit refspec localBranch:targetBranch to the remote,
// forced when requested.
func (r *Runner) Push(dir, remote, localBranch, targetBranch string, force bool) error {
	refspec := fmt.Sprintf("%s:%s", localBranch, targetBranch)

	args := []string{"push", "-u", remote, refspec}
	if force {
		args = []string{"push", "-f", remote, refspec}
	}

	_, err := r.Run(dir, args...)
	if err != nil {
		return fmt.Errorf("push %s: %w", refspec, err)
	}

	return nil
}

// DeleteRemoteBranch removes the target branch on the remote. This is the
// destructive half of the force-recovery sequence.
func (r *Runner) DeleteRemoteBranch(dir, remote, branch string) error {
	_, err := r.Run(dir, "push", remote, "--delete", branch)
	if err != nil {
		return fmt.Errorf("delete remote branch %s: %w", branch, err)
	}

	return nil
}
