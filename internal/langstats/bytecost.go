// Package langstats holds the byte-cost calibration table and the
// byte-compensated weighted language selection that shapes the remote host's
// per-language statistics. GitHub computes its language bar from total bytes,
// not commit counts, so a language with larger synthesized payloads must
// receive proportionally fewer commits to land on the same byte percentage.
package langstats

// defaultByteCost is used for languages missing from the calibration table.
const defaultByteCost = 500

// byteCost is empirical calibration data: the measured average payload size,
// in bytes, of one synthesized commit per language. Kept as a plain lookup
// table so it can be recalibrated without touching the selection algorithm.
var byteCost = map[string]int{
	"java":       650,
	"python":     650,
	"javascript": 550,
	"typescript": 950,
	"go":         850,
	"rust":       800,
	"cpp":        750,
	"c":          550,
	"csharp":     720,
	"php":        620,
	"ruby":       600,
	"swift":      650,
	"kotlin":     720,
	"shell":      450,
	"vue":        1300,
	"html":       900,
	"css":        700,
	"scss":       750,
	"sql":        500,
	"markdown":   30,
}

// ByteCost returns the calibrated average payload size for a language, or
// the default when the language is not in the table.
func ByteCost(language string) int {
	if cost, ok := byteCost[language]; ok {
		return cost
	}

	return defaultByteCost
}
