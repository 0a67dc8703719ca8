package commands

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gardener/internal/config"
	"github.com/Sumatoshi-tech/gardener/internal/gitexec"
	"github.com/Sumatoshi-tech/gardener/internal/publish"
	"github.com/Sumatoshi-tech/gardener/internal/remote"
)

type publishExecutor func(ctx context.Context, token string, req publish.Request) (publish.Result, error)

// PushCommand generates a repository and publishes it to GitHub in one run.
type PushCommand struct {
	opts *Options

	calendarPath   string
	repoName       string
	branch         string
	targetBranch   string
	baseDir        string
	languages      []string
	committerName  string
	committerEmail string
	newRepo        bool
	private        bool
	force          bool

	gen generateExecutor
	pub publishExecutor
}

// NewPushCommand creates the push command.
func NewPushCommand(opts *Options) *cobra.Command {
	return newPushCommandWithDeps(opts, nil, nil)
}

func newPushCommandWithDeps(opts *Options, gen generateExecutor, pub publishExecutor) *cobra.Command {
	pc := &PushCommand{opts: opts, gen: gen, pub: pub}

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Generate a repository and publish it to GitHub",
		Long: "Push runs the full pipeline: generate the local history from the\n" +
			"calendar, then publish it to the named GitHub repository. The local\n" +
			"work directory is removed when publishing finishes, success or not.",
		Args: cobra.NoArgs,
		RunE: pc.run,
	}

	cmd.Flags().StringVarP(&pc.calendarPath, "calendar", "c", "", "Calendar JSON file of {date, count} entries (required)")
	cmd.Flags().StringVarP(&pc.repoName, "repo", "r", "", "Target repository, bare name or owner/name (required)")
	cmd.Flags().StringVarP(&pc.branch, "branch", "b", "", "Local branch to build on (default: from config)")
	cmd.Flags().StringVar(&pc.targetBranch, "target-branch", "", "Remote branch to publish to (default: repository default)")
	cmd.Flags().StringSliceVarP(&pc.languages, "languages", "l", nil, "Language weights as language:ratio (example: go:50,python:50)")
	cmd.Flags().StringVar(&pc.baseDir, "base-dir", "", "Directory to create the repository under (default: from config)")
	cmd.Flags().StringVar(&pc.committerName, "name", "", "Committer name (default: from config)")
	cmd.Flags().StringVar(&pc.committerEmail, "email", "", "Committer email (default: from config)")
	cmd.Flags().BoolVar(&pc.newRepo, "new", false, "Create the repository on GitHub first")
	cmd.Flags().BoolVar(&pc.private, "private", false, "Make a newly created repository private")
	cmd.Flags().BoolVarP(&pc.force, "force", "f", false, "Replace diverged remote history (destructive, one bounded recovery attempt)")

	_ = cmd.MarkFlagRequired("calendar")
	_ = cmd.MarkFlagRequired("repo")

	return cmd
}

func (pc *PushCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := pc.opts.Load()
	if err != nil {
		return err
	}

	token, tokenErr := cfg.ResolveToken()
	if tokenErr != nil {
		return tokenErr
	}

	logger, logErr := pc.opts.Logger()
	if logErr != nil {
		return logErr
	}
	defer func() { _ = logger.Sync() }()

	req, reqErr := buildGenerateRequest(cfg, generateInputs{
		calendarPath:   pc.calendarPath,
		repoName:       pc.repoName,
		branch:         pc.branch,
		baseDir:        pc.baseDir,
		languages:      pc.languages,
		committerName:  pc.committerName,
		committerEmail: pc.committerEmail,
	})
	if reqErr != nil {
		return reqErr
	}

	sink := progressSink(logger)

	gen := pc.gen
	if gen == nil {
		gen = newEngineExecutor(cfg, sink)
	}

	generated, genErr := gen(req)
	if genErr != nil {
		return genErr
	}

	pub := pc.pub
	if pub == nil {
		pub = newPublishExecutor(cfg, sink)
	}

	result, pubErr := pub(cmd.Context(), token, publish.Request{
		Dir:          generated.Dir,
		RepoName:     pc.repoName,
		LocalBranch:  req.Branch,
		TargetBranch: pc.targetBranch,
		Token:        token,
		NewRepo:      pc.newRepo,
		Private:      pc.private,
		Force:        pc.force,
	})
	if pubErr != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.RedString("Failed:"), result.Message)

		return pubErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s commits to %s\n",
		color.GreenString("Published"),
		humanize.Comma(int64(generated.Commits)),
		result.RepoURL)

	return nil
}

// newPublishExecutor wires the real state machine over the git executable
// and the GitHub API.
func newPublishExecutor(cfg *config.Config, sink publish.Sink) publishExecutor {
	return func(ctx context.Context, token string, req publish.Request) (publish.Result, error) {
		runner := gitexec.NewRunner(cfg.GitPath)
		client := remote.NewClient(ctx, token)
		machine := publish.NewMachine(runner, client, sink)

		return machine.Publish(ctx, req)
	}
}
