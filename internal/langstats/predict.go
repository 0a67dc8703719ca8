package langstats

import (
	"github.com/src-d/enry/v2"
)

// A Share is the predicted slice of the remote host's language bar for one
// configured language, computed over a full selection cycle.
type Share struct {
	Language string
	Linguist string
	Bytes    int
	Percent  float64
	Commits  int
}

const percentTotal = 100

// PredictShares estimates the byte percentages Linguist will report for a
// selection set. extOf resolves a language identifier to its source file
// extension so the canonical Linguist name can be looked up through enry;
// identifiers enry cannot place keep their own name.
func PredictShares(weights []SelectionWeight, extOf func(language string) string) []Share {
	totalBytes := 0
	shares := make([]Share, 0, len(weights))

	for _, w := range weights {
		payload := w.Weight * ByteCost(w.Language)
		totalBytes += payload
		shares = append(shares, Share{
			Language: w.Language,
			Linguist: linguistName(w.Language, extOf),
			Bytes:    payload,
			Commits:  w.Weight,
		})
	}

	if totalBytes == 0 {
		return shares
	}

	for i := range shares {
		shares[i].Percent = float64(shares[i].Bytes) / float64(totalBytes) * percentTotal
	}

	return shares
}

// linguistName maps a language identifier to the name Linguist reports.
func linguistName(language string, extOf func(string) string) string {
	if extOf == nil {
		return language
	}

	ext := extOf(language)
	if ext == "" {
		return language
	}

	if name, ok := enry.GetLanguageByExtension("activity" + ext); ok {
		return name
	}

	return language
}
