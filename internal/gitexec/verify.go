package gitexec

import (
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CountCommits opens the repository natively and counts the commits
// reachable from the branch head. Used as a post-import cross-check that
// fast-import materialized the expected history.
func CountCommits(dir, branch string) (int, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return 0, fmt.Errorf("open repository %s: %w", dir, err)
	}

	ref, refErr := repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if refErr != nil {
		return 0, fmt.Errorf("resolve branch %s: %w", branch, refErr)
	}

	iter, logErr := repo.Log(&git.LogOptions{From: ref.Hash()})
	if logErr != nil {
		return 0, fmt.Errorf("walk history: %w", logErr)
	}
	defer iter.Close()

	count := 0

	for {
		_, nextErr := iter.Next()
		if nextErr != nil {
			break
		}

		count++
	}

	return count, nil
}
