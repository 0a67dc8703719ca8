package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gardener/internal/config"
	"github.com/Sumatoshi-tech/gardener/internal/engine"
	"github.com/Sumatoshi-tech/gardener/internal/gitexec"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
	"github.com/Sumatoshi-tech/gardener/internal/stream"
)

type generateExecutor func(req engine.GenerateRequest) (*engine.GenerateResult, error)

// GenerateCommand holds configuration and dependencies for the generate
// command.
type GenerateCommand struct {
	opts *Options

	calendarPath   string
	repoName       string
	branch         string
	baseDir        string
	languages      []string
	committerName  string
	committerEmail string

	exec generateExecutor
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(opts *Options) *cobra.Command {
	return newGenerateCommandWithDeps(opts, nil)
}

func newGenerateCommandWithDeps(opts *Options, exec generateExecutor) *cobra.Command {
	gc := &GenerateCommand{opts: opts, exec: exec}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a local repository matching a contribution calendar",
		Long: "Generate builds a local git repository whose per-day commit density\n" +
			"matches the calendar file, spreading commits across the requested\n" +
			"languages.",
		Args: cobra.NoArgs,
		RunE: gc.run,
	}

	cmd.Flags().StringVarP(&gc.calendarPath, "calendar", "c", "", "Calendar JSON file of {date, count} entries (required)")
	cmd.Flags().StringVarP(&gc.repoName, "repo", "r", "", "Repository name (default: derived from calendar file)")
	cmd.Flags().StringVarP(&gc.branch, "branch", "b", "", "Local branch to build on (default: from config)")
	cmd.Flags().StringSliceVarP(&gc.languages, "languages", "l", nil, "Language weights as language:ratio (example: go:50,python:50)")
	cmd.Flags().StringVar(&gc.baseDir, "base-dir", "", "Directory to create the repository under (default: from config)")
	cmd.Flags().StringVar(&gc.committerName, "name", "", "Committer name (default: from config)")
	cmd.Flags().StringVar(&gc.committerEmail, "email", "", "Committer email (default: from config)")

	_ = cmd.MarkFlagRequired("calendar")

	return cmd
}

func (gc *GenerateCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := gc.opts.Load()
	if err != nil {
		return err
	}

	logger, logErr := gc.opts.Logger()
	if logErr != nil {
		return logErr
	}
	defer func() { _ = logger.Sync() }()

	req, reqErr := buildGenerateRequest(cfg, generateInputs{
		calendarPath:   gc.calendarPath,
		repoName:       gc.repoName,
		branch:         gc.branch,
		baseDir:        gc.baseDir,
		languages:      gc.languages,
		committerName:  gc.committerName,
		committerEmail: gc.committerEmail,
	})
	if reqErr != nil {
		return reqErr
	}

	exec := gc.exec
	if exec == nil {
		exec = newEngineExecutor(cfg, progressSink(logger))
	}

	result, genErr := exec(req)
	if genErr != nil {
		return genErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s commits in %s\n",
		color.GreenString("Generated"),
		humanize.Comma(int64(result.Commits)),
		result.Dir)

	return nil
}

// generateInputs are the per-invocation values shared by generate and push.
type generateInputs struct {
	calendarPath   string
	repoName       string
	branch         string
	baseDir        string
	languages      []string
	committerName  string
	committerEmail string
}

// buildGenerateRequest merges flags over config into an engine request.
// Flags win; missing committer identity is rejected here, before any side
// effect.
func buildGenerateRequest(cfg *config.Config, in generateInputs) (engine.GenerateRequest, error) {
	days, err := schedule.LoadCalendar(in.calendarPath)
	if err != nil {
		return engine.GenerateRequest{}, err
	}

	weights, weightsErr := parseWeights(in.languages)
	if weightsErr != nil {
		return engine.GenerateRequest{}, weightsErr
	}

	name := in.committerName
	if name == "" {
		name = cfg.Committer.Name
	}

	email := in.committerEmail
	if email == "" {
		email = cfg.Committer.Email
	}

	if name == "" || email == "" {
		return engine.GenerateRequest{}, config.ErrNoCommitter
	}

	branch := in.branch
	if branch == "" {
		branch = cfg.Branch
	}

	baseDir := in.baseDir
	if baseDir == "" {
		baseDir = cfg.BaseDir
	}

	repoName := in.repoName
	if repoName == "" {
		repoName = name
	}

	return engine.GenerateRequest{
		RepoName:        repoName,
		Branch:          branch,
		BaseDir:         baseDir,
		Committer:       stream.Identity{Name: name, Email: email},
		Days:            days,
		Weights:         weights,
		DefaultLanguage: cfg.DefaultLanguage,
	}, nil
}

// newEngineExecutor wires the real git-backed engine. The git executable is
// probed first so a misconfigured tool fails before anything is created.
func newEngineExecutor(cfg *config.Config, sink engine.Sink) generateExecutor {
	return func(req engine.GenerateRequest) (*engine.GenerateResult, error) {
		runner := gitexec.NewRunner(cfg.GitPath)

		if _, err := runner.Version(); err != nil {
			return nil, err
		}

		eng := engine.New(runner, gitexec.CountCommits, sink)

		return eng.Generate(req)
	}
}
