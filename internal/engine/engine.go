// Package engine orchestrates one generation run: normalize the inputs,
// synthesize repository content, build the fast-import stream, materialize
// it in a fresh work directory and cross-check the imported history.
package engine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Sumatoshi-tech/gardener/internal/langstats"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
	"github.com/Sumatoshi-tech/gardener/internal/stream"
	"github.com/Sumatoshi-tech/gardener/internal/synth"
)

// repoNameMaxLen bounds sanitized repository names.
const repoNameMaxLen = 64

// fallbackRepoName is used when sanitization leaves nothing usable.
const fallbackRepoName = "contributions"

// Directory and file modes for the generated work tree.
const (
	dirMode  = 0o755
	fileMode = 0o644
)

// repoNameSanitizer collapses every run of characters outside the safe
// repository-name alphabet.
var repoNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// ErrCommitCountMismatch indicates the imported history does not hold the
// number of commits the stream builder emitted.
var ErrCommitCountMismatch = errors.New("imported commit count does not match generated stream")

// A GitService covers the local git operations generation needs.
type GitService interface {
	InitRepo(dir, name, email string) error
	Import(dir string, streamData []byte, branch string) error
}

// A Verifier counts the commits reachable from branch in dir, independently
// of the import path.
type Verifier func(dir, branch string) (int, error)

// A Sink receives human-readable progress strings, fire and forget.
type Sink func(msg string)

// A GenerateRequest describes one generation run.
type GenerateRequest struct {
	// RepoName names the repository; it is sanitized before use.
	RepoName string
	// Branch is the local branch the history is built on.
	Branch string
	// BaseDir is the root under which the unique work directory is created.
	BaseDir string
	// Committer is stamped as author and committer on every commit.
	Committer stream.Identity
	// Days is the contribution calendar. Zero-count days are dropped.
	Days []schedule.ContributionDay
	// Weights distributes commits across languages. Empty means 100%
	// DefaultLanguage.
	Weights []schedule.LanguageWeight
	// DefaultLanguage backs an empty Weights list.
	DefaultLanguage string
}

// A GenerateResult reports where the history was materialized.
type GenerateResult struct {
	Dir      string
	RepoName string
	Commits  int
}

// An Engine generates local histories over an injected git service.
type Engine struct {
	git    GitService
	verify Verifier
	sink   Sink
}

// New returns an Engine. verify and sink may be nil; a nil verify skips the
// post-import cross-check.
func New(git GitService, verify Verifier, sink Sink) *Engine {
	return &Engine{git: git, verify: verify, sink: sink}
}

func (e *Engine) emit(format string, args ...any) {
	if e.sink != nil {
		e.sink(fmt.Sprintf(format, args...))
	}
}

// Generate runs the full local pipeline. On any failure after the work
// directory is created, the directory is removed before returning, so a
// failed run leaves nothing behind.
func (e *Engine) Generate(req GenerateRequest) (*GenerateResult, error) {
	weights := req.Weights
	if len(weights) == 0 {
		language := req.DefaultLanguage
		if language == "" {
			language = synth.DefaultLanguage
		}

		weights = []schedule.LanguageWeight{{Language: language, Ratio: 100}}
	}

	normWeights, err := schedule.NormalizeWeights(weights)
	if err != nil {
		return nil, fmt.Errorf("normalize language weights: %w", err)
	}

	days, daysErr := schedule.NormalizeDays(req.Days)
	if daysErr != nil {
		return nil, fmt.Errorf("normalize contributions: %w", daysErr)
	}

	name := SanitizeRepoName(req.RepoName)
	readme := synth.Readme(name, normWeights)

	e.emit("building history stream for %d days", len(days))

	built, buildErr := stream.Build(stream.Plan{
		Branch:    req.Branch,
		Committer: req.Committer,
		Readme:    readme,
		Days:      days,
		Weights:   langstats.BuildWeights(normWeights),
	})
	if buildErr != nil {
		return nil, fmt.Errorf("build stream: %w", buildErr)
	}

	dir, dirErr := e.workDir(req.BaseDir, name)
	if dirErr != nil {
		return nil, dirErr
	}

	if materializeErr := e.materialize(dir, name, readme, normWeights, built, req); materializeErr != nil {
		_ = os.RemoveAll(dir)

		return nil, materializeErr
	}

	e.emit("generated %d commits in %s", built.Commits, dir)

	return &GenerateResult{Dir: dir, RepoName: name, Commits: built.Commits}, nil
}

func (e *Engine) workDir(baseDir, name string) (string, error) {
	if err := os.MkdirAll(baseDir, dirMode); err != nil {
		return "", fmt.Errorf("create base directory: %w", err)
	}

	dir, err := os.MkdirTemp(baseDir, name+"-")
	if err != nil {
		return "", fmt.Errorf("create work directory: %w", err)
	}

	return dir, nil
}

// materialize writes the support files, imports the stream and cross-checks
// the resulting history.
func (e *Engine) materialize(dir, name, readme string, weights []schedule.LanguageWeight, built *stream.Result, req GenerateRequest) error {
	if err := writeSupportFiles(dir, readme, name, weights); err != nil {
		return err
	}

	if err := e.git.InitRepo(dir, req.Committer.Name, req.Committer.Email); err != nil {
		return fmt.Errorf("initialize repository: %w", err)
	}

	e.emit("importing history")

	if err := e.git.Import(dir, built.Stream, req.Branch); err != nil {
		return fmt.Errorf("import history: %w", err)
	}

	if e.verify == nil {
		return nil
	}

	count, verifyErr := e.verify(dir, req.Branch)
	if verifyErr != nil {
		return fmt.Errorf("verify history: %w", verifyErr)
	}

	if count != built.Commits {
		return fmt.Errorf("%w: have %d, want %d", ErrCommitCountMismatch, count, built.Commits)
	}

	return nil
}

// SanitizeRepoName reduces input to the safe repository-name alphabet,
// falling back to a generic name when nothing survives.
func SanitizeRepoName(input string) string {
	input = strings.TrimSpace(input)
	input = repoNameSanitizer.ReplaceAllString(input, "-")
	input = strings.Trim(input, "-")

	if input == "" {
		return fallbackRepoName
	}

	if len(input) > repoNameMaxLen {
		input = input[:repoNameMaxLen]
	}

	return input
}

func writeSupportFiles(dir, readme, name string, weights []schedule.LanguageWeight) error {
	readmePath := filepath.Join(dir, stream.ReadmePath)
	if err := os.WriteFile(readmePath, []byte(readme), fileMode); err != nil {
		return fmt.Errorf("write README: %w", err)
	}

	for path, content := range synth.MergedAdditionalFiles(name, weights) {
		full := filepath.Join(dir, path)

		if err := os.MkdirAll(filepath.Dir(full), dirMode); err != nil {
			return fmt.Errorf("create directory for %s: %w", path, err)
		}

		if err := os.WriteFile(full, []byte(content), fileMode); err != nil {
			return fmt.Errorf("write support file %s: %w", path, err)
		}
	}

	return nil
}
