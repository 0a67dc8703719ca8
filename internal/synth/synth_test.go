package synth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gardener/internal/schedule"
	"github.com/Sumatoshi-tech/gardener/internal/synth"
)

func TestLookup_CoversAllLanguages(t *testing.T) {
	t.Parallel()

	for _, language := range synth.All() {
		tpl := synth.Lookup(language)
		require.NotNil(t, tpl, language)

		assert.NotEmpty(t, tpl.DisplayName(), language)
		assert.True(t, strings.HasPrefix(tpl.Extension(), "."), language)
		assert.True(t, strings.HasSuffix(tpl.ActivityFile(), tpl.Extension()), language)

		code := tpl.GenerateCode("2024-01-01", 1, 3)
		assert.NotEmpty(t, code, language)
		assert.NotEmpty(t, tpl.Readme("demo"), language)
	}
}

func TestLookup_CaseInsensitiveAndFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Go", synth.Lookup("GO").DisplayName())
	assert.Equal(t, "Markdown", synth.Lookup("").DisplayName())
	assert.Equal(t, "Markdown", synth.Lookup("brainfuck").DisplayName())
}

func TestGenerateCode_DistinctPerCommit(t *testing.T) {
	t.Parallel()

	tpl := synth.Lookup("go")

	first := tpl.GenerateCode("2024-01-01", 1, 2)
	second := tpl.GenerateCode("2024-01-01", 2, 2)
	otherDay := tpl.GenerateCode("2024-01-02", 1, 2)

	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first, otherDay)
}

func TestReadme_SingleAndMulti(t *testing.T) {
	t.Parallel()

	single := synth.Readme("demo", []schedule.LanguageWeight{{Language: "go", Ratio: 100}})
	assert.Contains(t, single, "# demo")
	assert.Contains(t, single, "Go")

	multi := synth.Readme("demo", []schedule.LanguageWeight{
		{Language: "go", Ratio: 60},
		{Language: "python", Ratio: 40},
	})
	assert.Contains(t, multi, "## Languages")
	assert.Contains(t, multi, "**Go** (60%)")
	assert.Contains(t, multi, "**Python** (40%)")
}

func TestMergedAdditionalFiles_ConflictGetsLanguageSuffix(t *testing.T) {
	t.Parallel()

	weights := []schedule.LanguageWeight{
		{Language: "go", Ratio: 50},
		{Language: "python", Ratio: 50},
	}

	files := synth.MergedAdditionalFiles("demo", weights)

	// Both languages ship a .gitignore with different bodies; the first owner
	// keeps the plain path and the later language gets a suffixed copy.
	require.Contains(t, files, ".gitignore")
	assert.Contains(t, files, ".gitignore.python")
	assert.Contains(t, files, "go.mod")
	assert.Contains(t, files, "requirements.txt")
}

func TestMergedAdditionalFiles_IdenticalContentKeptOnce(t *testing.T) {
	t.Parallel()

	weights := []schedule.LanguageWeight{
		{Language: "javascript", Ratio: 50},
		{Language: "vue", Ratio: 50},
	}

	files := synth.MergedAdditionalFiles("demo", weights)

	// Identical .gitignore bodies collapse into a single entry.
	assert.Contains(t, files, ".gitignore")
	assert.NotContains(t, files, ".gitignore.vue")
}
