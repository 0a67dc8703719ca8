package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Sumatoshi-tech/gardener/internal/schedule"
)

// weightSeparator splits a language from its ratio in a --languages item.
const weightSeparator = ":"

// ErrBadWeight indicates a --languages item is not in language:ratio form.
var ErrBadWeight = errors.New("language weight must be in language:ratio form, e.g. go:50")

// parseWeights turns --languages items like "go:50" into language weights.
// An empty list yields nil, letting the engine fall back to the configured
// default language.
func parseWeights(items []string) ([]schedule.LanguageWeight, error) {
	if len(items) == 0 {
		return nil, nil
	}

	weights := make([]schedule.LanguageWeight, 0, len(items))

	for _, item := range items {
		language, ratioText, found := strings.Cut(strings.TrimSpace(item), weightSeparator)
		if !found || language == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadWeight, item)
		}

		ratio, err := strconv.Atoi(ratioText)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadWeight, item)
		}

		weights = append(weights, schedule.LanguageWeight{Language: language, Ratio: ratio})
	}

	return weights, nil
}
