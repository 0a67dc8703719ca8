package stream_test

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gardener/internal/langstats"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
	"github.com/Sumatoshi-tech/gardener/internal/stream"
)

// parsedCommit is one commit record scanned back out of the emitted grammar.
type parsedCommit struct {
	branch    string
	committer string
	epoch     int64
	message   string
	marks     []int
	paths     []string
}

// parseStream scans the fast-import text into blob marks and commits.
func parseStream(t *testing.T, data []byte) (blobMarks []int, commits []parsedCommit) {
	t.Helper()

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var current *parsedCommit

	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.HasPrefix(line, "mark :"):
			mark, err := strconv.Atoi(strings.TrimPrefix(line, "mark :"))
			require.NoError(t, err)

			blobMarks = append(blobMarks, mark)
		case strings.HasPrefix(line, "commit refs/heads/"):
			if current != nil {
				commits = append(commits, *current)
			}

			current = &parsedCommit{branch: strings.TrimPrefix(line, "commit refs/heads/")}
		case strings.HasPrefix(line, "committer ") && current != nil:
			fields := strings.Fields(line)
			require.GreaterOrEqual(t, len(fields), 4)

			epoch, err := strconv.ParseInt(fields[len(fields)-2], 10, 64)
			require.NoError(t, err)

			current.epoch = epoch
			current.committer = strings.Join(fields[1:len(fields)-2], " ")
		case strings.HasPrefix(line, "data ") && current != nil && current.message == "":
			length, err := strconv.Atoi(strings.TrimPrefix(line, "data "))
			require.NoError(t, err)

			require.True(t, scanner.Scan())
			current.message = scanner.Text()
			require.Len(t, current.message, length)
		case strings.HasPrefix(line, "M 100644 :") && current != nil:
			fields := strings.Fields(line)
			require.Len(t, fields, 4)

			mark, err := strconv.Atoi(strings.TrimPrefix(fields[2], ":"))
			require.NoError(t, err)

			current.marks = append(current.marks, mark)
			current.paths = append(current.paths, fields[3])
		}
	}

	if current != nil {
		commits = append(commits, *current)
	}

	return blobMarks, commits
}

func singleLanguagePlan(days []schedule.ContributionDay, language string) stream.Plan {
	return stream.Plan{
		Branch:    "main",
		Committer: stream.Identity{Name: "Octo Cat", Email: "octo@example.com"},
		Readme:    "# demo\n",
		Days:      days,
		Weights:   langstats.BuildWeights([]schedule.LanguageWeight{{Language: language, Ratio: 100}}),
	}
}

func TestBuild_ScenarioSingleDayMarkdown(t *testing.T) {
	t.Parallel()

	result, err := stream.Build(singleLanguagePlan(
		[]schedule.ContributionDay{{Date: "2024-01-01", Count: 3}}, "markdown"))
	require.NoError(t, err)
	assert.Equal(t, 3, result.Commits)

	blobMarks, commits := parseStream(t, result.Stream)
	require.Len(t, commits, 3)

	for i, c := range commits {
		assert.Equal(t, "main", c.branch)
		assert.Equal(t, fmt.Sprintf("Contribution on 2024-01-01 (%d/3)", i+1), c.message)
		assert.Equal(t, []string{"README.md", "activity.md"}, c.paths)
	}

	// README blob is mark 1.
	require.NotEmpty(t, blobMarks)
	assert.Equal(t, 1, blobMarks[0])
	assert.True(t, bytes.HasSuffix(result.Stream, []byte("done\n")))
}

func TestBuild_MarkMonotonicityAndDefinition(t *testing.T) {
	t.Parallel()

	result, err := stream.Build(singleLanguagePlan([]schedule.ContributionDay{
		{Date: "2024-01-01", Count: 2},
		{Date: "2024-02-10", Count: 4},
	}, "go"))
	require.NoError(t, err)

	blobMarks, commits := parseStream(t, result.Stream)

	defined := map[int]bool{}
	for i, mark := range blobMarks {
		assert.Equal(t, i+1, mark, "marks must increase strictly from 1")

		defined[mark] = true
	}

	for _, c := range commits {
		for _, mark := range c.marks {
			assert.True(t, defined[mark], "commit references undefined mark :%d", mark)
		}
	}
}

func TestBuild_TimestampOrdering(t *testing.T) {
	t.Parallel()

	days := []schedule.ContributionDay{
		{Date: "2024-01-01", Count: 3},
		{Date: "2024-01-05", Count: 2},
	}

	result, err := stream.Build(singleLanguagePlan(days, "python"))
	require.NoError(t, err)

	_, commits := parseStream(t, result.Stream)
	require.Len(t, commits, 5)

	base, err := time.Parse(time.DateOnly, "2024-01-01")
	require.NoError(t, err)

	// Within a day, commit i is exactly i-1 seconds past midnight.
	for i := range 3 {
		assert.Equal(t, base.Unix()+int64(i), commits[i].epoch)
	}

	for i := 1; i < len(commits); i++ {
		assert.GreaterOrEqual(t, commits[i].epoch, commits[i-1].epoch)
	}
}

func TestBuild_TotalCommitsEqualsSumOfCounts(t *testing.T) {
	t.Parallel()

	days := []schedule.ContributionDay{
		{Date: "2024-03-01", Count: 7},
		{Date: "2024-03-02", Count: 1},
		{Date: "2024-03-03", Count: 12},
	}

	weights := langstats.BuildWeights([]schedule.LanguageWeight{
		{Language: "go", Ratio: 50},
		{Language: "python", Ratio: 50},
	})

	result, err := stream.Build(stream.Plan{
		Branch:    "main",
		Committer: stream.Identity{Name: "Octo Cat", Email: "octo@example.com"},
		Readme:    "# demo\n",
		Days:      days,
		Weights:   weights,
	})
	require.NoError(t, err)
	assert.Equal(t, 20, result.Commits)

	_, commits := parseStream(t, result.Stream)
	assert.Len(t, commits, 20)
}

func TestBuild_MultiLanguagePathsCoexist(t *testing.T) {
	t.Parallel()

	weights := langstats.BuildWeights([]schedule.LanguageWeight{
		{Language: "go", Ratio: 50},
		{Language: "python", Ratio: 50},
	})

	result, err := stream.Build(stream.Plan{
		Branch:    "main",
		Committer: stream.Identity{Name: "Octo Cat", Email: "octo@example.com"},
		Readme:    "# demo\n",
		Days:      []schedule.ContributionDay{{Date: "2024-06-01", Count: 600}},
		Weights:   weights,
	})
	require.NoError(t, err)

	_, commits := parseStream(t, result.Stream)

	paths := map[string]bool{}
	for _, c := range commits {
		require.Len(t, c.paths, 2)
		assert.Equal(t, "README.md", c.paths[0])

		paths[c.paths[1]] = true
	}

	assert.True(t, paths["activity.go"])
	assert.True(t, paths["activity.py"])
}

func TestBuild_InvalidDateRejected(t *testing.T) {
	t.Parallel()

	_, err := stream.Build(singleLanguagePlan(
		[]schedule.ContributionDay{{Date: "junk", Count: 1}}, "markdown"))
	assert.Error(t, err)
}

func TestWriter_UndefinedMarkRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	sw := stream.NewWriter(&buf)
	mark := sw.Blob("content")
	require.Equal(t, 1, mark)

	err := sw.Commit("main", stream.Identity{Name: "a", Email: "b"}, time.Now(),
		"msg", []stream.FileBinding{{Mark: 99, Path: "f"}})
	assert.ErrorIs(t, err, stream.ErrUndefinedMark)
}

func TestWriter_TimestampRegressionRejected(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	sw := stream.NewWriter(&buf)
	mark := sw.Blob("content")
	now := time.Now()

	require.NoError(t, sw.Commit("main", stream.Identity{Name: "a", Email: "b"}, now,
		"msg", []stream.FileBinding{{Mark: mark, Path: "f"}}))

	err := sw.Commit("main", stream.Identity{Name: "a", Email: "b"}, now.Add(-time.Hour),
		"msg", []stream.FileBinding{{Mark: mark, Path: "f"}})
	assert.ErrorIs(t, err, stream.ErrTimestampRegression)
}
