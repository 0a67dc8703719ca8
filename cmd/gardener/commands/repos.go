package commands

import (
	"context"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gardener/internal/remote"
)

type repoLister func(ctx context.Context, token string) ([]remote.Repo, error)

// ReposCommand lists the authenticated user's repositories.
type ReposCommand struct {
	opts *Options
	list repoLister
}

// NewReposCommand creates the repos command.
func NewReposCommand(opts *Options) *cobra.Command {
	return newReposCommandWithDeps(opts, listRepos)
}

func newReposCommandWithDeps(opts *Options, list repoLister) *cobra.Command {
	rc := &ReposCommand{opts: opts, list: list}

	return &cobra.Command{
		Use:   "repos",
		Short: "List repositories of the authenticated user",
		Args:  cobra.NoArgs,
		RunE:  rc.run,
	}
}

func (rc *ReposCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := rc.opts.Load()
	if err != nil {
		return err
	}

	token, tokenErr := cfg.ResolveToken()
	if tokenErr != nil {
		return tokenErr
	}

	repos, listErr := rc.list(cmd.Context(), token)
	if listErr != nil {
		return listErr
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Repository", "Visibility", "Default Branch", "URL"})

	for _, repo := range repos {
		visibility := "public"
		if repo.Private {
			visibility = "private"
		}

		tbl.AppendRow(table.Row{repo.FullName, visibility, repo.DefaultBranch, repo.HTMLURL})
	}

	fmt.Fprintln(cmd.OutOrStdout(), tbl.Render())

	return nil
}

func listRepos(ctx context.Context, token string) ([]remote.Repo, error) {
	client := remote.NewClient(ctx, token)

	if _, err := client.Verify(ctx); err != nil {
		return nil, err
	}

	return client.ListRepos(ctx)
}
