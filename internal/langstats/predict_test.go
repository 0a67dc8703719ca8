package langstats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/gardener/internal/langstats"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
)

func extResolver(language string) string {
	switch language {
	case "go":
		return ".go"
	case "python":
		return ".py"
	case "markdown":
		return ".md"
	default:
		return ""
	}
}

func TestPredictShares_CompensatedSplit(t *testing.T) {
	t.Parallel()

	weights := langstats.BuildWeights([]schedule.LanguageWeight{
		{Language: "go", Ratio: 50},
		{Language: "python", Ratio: 50},
	})

	shares := langstats.PredictShares(weights, extResolver)
	require.Len(t, shares, 2)

	// Byte compensation should land both languages near their 50% target.
	assert.InDelta(t, 50.0, shares[0].Percent, 1.0)
	assert.InDelta(t, 50.0, shares[1].Percent, 1.0)

	assert.Equal(t, "Go", shares[0].Linguist)
	assert.Equal(t, "Python", shares[1].Linguist)
	assert.Equal(t, shares[0].Commits*langstats.ByteCost("go"), shares[0].Bytes)
}

func TestPredictShares_UnknownKeepsIdentifier(t *testing.T) {
	t.Parallel()

	weights := []langstats.SelectionWeight{{Language: "cobol", Weight: 10}}

	shares := langstats.PredictShares(weights, extResolver)
	require.Len(t, shares, 1)
	assert.Equal(t, "cobol", shares[0].Linguist)
	assert.InDelta(t, 100.0, shares[0].Percent, 0.001)
}

func TestPredictShares_NilResolver(t *testing.T) {
	t.Parallel()

	weights := []langstats.SelectionWeight{{Language: "go", Weight: 5}}

	shares := langstats.PredictShares(weights, nil)
	require.Len(t, shares, 1)
	assert.Equal(t, "go", shares[0].Linguist)
}
