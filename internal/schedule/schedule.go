// Package schedule validates and normalizes the caller-supplied generation
// schedule: per-language ratio weights and per-day contribution counts.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// A LanguageWeight pairs a language identifier with its requested share of
// the repository's final byte statistics, in percent.
type LanguageWeight struct {
	Language string `json:"language"`
	Ratio    int    `json:"ratio"`
}

// A ContributionDay is one cell of the contribution calendar.
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

const (
	// Ratio sums inside [ratioSumLow, ratioSumHigh] are accepted without
	// rescaling; the selection weights absorb the residual drift.
	ratioSumLow  = 95
	ratioSumHigh = 105

	percentTotal = 100
	ratioMax     = 100
)

// Sentinel errors for schedule validation.
var (
	// ErrNoLanguages indicates an empty language weight list.
	ErrNoLanguages = errors.New("at least one language weight is required")
	// ErrEmptyLanguage indicates a weight with an empty language identifier.
	ErrEmptyLanguage = errors.New("language identifier must not be empty")
	// ErrRatioOutOfRange indicates a ratio below 0 or above 100.
	ErrRatioOutOfRange = errors.New("language ratio must be between 0 and 100")
	// ErrZeroRatioSum indicates the ratios sum to zero.
	ErrZeroRatioSum = errors.New("language ratios must not sum to zero")
	// ErrNegativeCount indicates a contribution day with a negative count.
	ErrNegativeCount = errors.New("contribution count must be non-negative")
	// ErrNoContributions indicates no day survived the positive-count filter.
	ErrNoContributions = errors.New("no contribution days with a positive count")
	// ErrInvalidDate indicates a date that is not in YYYY-MM-DD form.
	ErrInvalidDate = errors.New("contribution date must be YYYY-MM-DD")
)

// NormalizeWeights validates the weight list and rescales it toward a 100%
// total. Sums already inside the tolerance band are returned as-is; anything
// else is rescaled by ratio*100/sum with integer truncation, so the
// normalized sum may drift a few points from 100. That drift is accepted
// rather than redistributed.
func NormalizeWeights(weights []LanguageWeight) ([]LanguageWeight, error) {
	if len(weights) == 0 {
		return nil, ErrNoLanguages
	}

	sum := 0

	for i, w := range weights {
		if w.Language == "" {
			return nil, fmt.Errorf("weight %d: %w", i, ErrEmptyLanguage)
		}

		if w.Ratio < 0 || w.Ratio > ratioMax {
			return nil, fmt.Errorf("weight %d (%s): %w: %d", i, w.Language, ErrRatioOutOfRange, w.Ratio)
		}

		sum += w.Ratio
	}

	if sum == 0 {
		return nil, ErrZeroRatioSum
	}

	if sum >= ratioSumLow && sum <= ratioSumHigh {
		return append([]LanguageWeight(nil), weights...), nil
	}

	normalized := make([]LanguageWeight, len(weights))
	for i, w := range weights {
		normalized[i] = LanguageWeight{
			Language: w.Language,
			Ratio:    w.Ratio * percentTotal / sum,
		}
	}

	return normalized, nil
}

// NormalizeDays validates the calendar, drops zero-count days and returns the
// remainder sorted ascending by date. Counts below zero and dates that do not
// parse are rejected outright.
func NormalizeDays(days []ContributionDay) ([]ContributionDay, error) {
	filtered := make([]ContributionDay, 0, len(days))

	for _, day := range days {
		if day.Count < 0 {
			return nil, fmt.Errorf("%s: %w: %d", day.Date, ErrNegativeCount, day.Count)
		}

		if _, err := time.Parse(time.DateOnly, day.Date); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, day.Date)
		}

		if day.Count > 0 {
			filtered = append(filtered, day)
		}
	}

	if len(filtered) == 0 {
		return nil, ErrNoContributions
	}

	sort.Slice(filtered, func(i, j int) bool { return filtered[i].Date < filtered[j].Date })

	return filtered, nil
}

// TotalCommits sums the day counts of a normalized calendar.
func TotalCommits(days []ContributionDay) int {
	total := 0
	for _, day := range days {
		total += day.Count
	}

	return total
}
