package langstats

import (
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
)

// weightScale is the fixed scale constant K in weight = ratio*K/avgBytes.
// It keeps integer weights precise enough that truncation noise stays well
// under one percent of the target ratios.
const weightScale = 10000

// A SelectionWeight is a language with its byte-compensated selection weight.
// Weight is inversely proportional to per-commit payload size and directly
// proportional to the target ratio.
type SelectionWeight struct {
	Language string
	Weight   int
}

// BuildWeights derives selection weights from normalized language weights.
// Entries with a non-positive ratio are skipped; every kept entry gets a
// weight of at least 1 so no configured language starves entirely.
func BuildWeights(weights []schedule.LanguageWeight) []SelectionWeight {
	selection := make([]SelectionWeight, 0, len(weights))

	for _, w := range weights {
		if w.Ratio <= 0 {
			continue
		}

		weight := w.Ratio * weightScale / ByteCost(w.Language)
		if weight < 1 {
			weight = 1
		}

		selection = append(selection, SelectionWeight{Language: w.Language, Weight: weight})
	}

	return selection
}

// TotalWeight sums the weights of a selection set; one full round-robin
// cycle has exactly this many commits.
func TotalWeight(weights []SelectionWeight) int {
	total := 0
	for _, w := range weights {
		total += w.Weight
	}

	return total
}

// Select maps a global commit index to a language with a deterministic
// weighted round-robin: identical inputs always yield the identical language,
// and over one full cycle each language appears exactly Weight times.
func Select(weights []SelectionWeight, index int) string {
	if len(weights) == 0 {
		return ""
	}

	if len(weights) == 1 {
		return weights[0].Language
	}

	total := TotalWeight(weights)
	if total == 0 {
		// Unreachable after BuildWeights, which floors every weight at 1.
		return weights[0].Language
	}

	position := index % total
	cumulative := 0

	for _, w := range weights {
		cumulative += w.Weight
		if position < cumulative {
			return w.Language
		}
	}

	return weights[0].Language
}
