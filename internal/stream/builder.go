package stream

import (
	"bytes"
	"fmt"
	"time"

	"github.com/Sumatoshi-tech/gardener/internal/langstats"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
	"github.com/Sumatoshi-tech/gardener/internal/synth"
)

// ReadmePath is the constant tree path of the README bound into every commit.
const ReadmePath = "README.md"

// A Plan is everything the builder needs to emit one linear history.
type Plan struct {
	Branch    string
	Committer Identity
	Readme    string
	Days      []schedule.ContributionDay
	Weights   []langstats.SelectionWeight
}

// A Result carries the built stream and its aggregates.
type Result struct {
	Stream       []byte
	Commits      int
	PayloadBytes int
}

// Build produces the whole fast-import stream in one pass: the README blob
// takes mark 1, then each contribution gets a payload blob and a commit
// binding both into the tree. Commit i of a day is stamped i-1 seconds after
// the day's UTC midnight, which keeps timestamps strictly increasing within
// a day and non-decreasing across the stream while preserving the date.
func Build(plan Plan) (*Result, error) {
	var buf bytes.Buffer

	sw := NewWriter(&buf)
	readmeMark := sw.Blob(plan.Readme)

	commitIndex := 0
	payloadBytes := 0

	for _, day := range plan.Days {
		base, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", day.Date, err)
		}

		for i := 1; i <= day.Count; i++ {
			language := langstats.Select(plan.Weights, commitIndex)
			tpl := synth.Lookup(language)
			content := tpl.GenerateCode(day.Date, i, day.Count)

			mark := sw.Blob(content)
			when := base.Add(time.Duration(i-1) * time.Second)
			message := fmt.Sprintf("Contribution on %s (%d/%d)", day.Date, i, day.Count)

			commitErr := sw.Commit(plan.Branch, plan.Committer, when, message, []FileBinding{
				{Mark: readmeMark, Path: ReadmePath},
				{Mark: mark, Path: tpl.ActivityFile()},
			})
			if commitErr != nil {
				return nil, fmt.Errorf("emit commit %d: %w", commitIndex+1, commitErr)
			}

			payloadBytes += len(content)
			commitIndex++
		}
	}

	doneErr := sw.Done()
	if doneErr != nil {
		return nil, fmt.Errorf("terminate stream: %w", doneErr)
	}

	return &Result{
		Stream:       buf.Bytes(),
		Commits:      commitIndex,
		PayloadBytes: payloadBytes,
	}, nil
}
