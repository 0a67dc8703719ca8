package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gardener/internal/remote"
)

type branchLister func(ctx context.Context, token, repoName string) ([]string, error)

// BranchesCommand lists the branches of a repository.
type BranchesCommand struct {
	opts *Options
	list branchLister
}

// NewBranchesCommand creates the branches command.
func NewBranchesCommand(opts *Options) *cobra.Command {
	return newBranchesCommandWithDeps(opts, listBranches)
}

func newBranchesCommandWithDeps(opts *Options, list branchLister) *cobra.Command {
	bc := &BranchesCommand{opts: opts, list: list}

	return &cobra.Command{
		Use:   "branches <repo>",
		Short: "List branches of a repository (bare name or owner/name)",
		Args:  cobra.ExactArgs(1),
		RunE:  bc.run,
	}
}

func (bc *BranchesCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := bc.opts.Load()
	if err != nil {
		return err
	}

	token, tokenErr := cfg.ResolveToken()
	if tokenErr != nil {
		return tokenErr
	}

	branches, listErr := bc.list(cmd.Context(), token, args[0])
	if listErr != nil {
		return listErr
	}

	for _, branch := range branches {
		fmt.Fprintln(cmd.OutOrStdout(), branch)
	}

	return nil
}

// listBranches resolves a bare repository name under the authenticated user
// before listing.
func listBranches(ctx context.Context, token, repoName string) ([]string, error) {
	client := remote.NewClient(ctx, token)

	owner, name, found := strings.Cut(repoName, "/")
	if !found {
		identity, err := client.Verify(ctx)
		if err != nil {
			return nil, err
		}

		owner = identity.Login
		name = repoName
	}

	return client.ListBranches(ctx, owner, name)
}
