// Package synth generates the per-language commit payloads, README and
// supporting files bound into the synthetic history. Each supported language
// has one Template implementation, resolved through a closed dispatch table
// keyed by language identifier.
package synth

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/gardener/internal/schedule"
)

// Template is the capability set the stream builder consumes for one
// language: commit payload generation plus the static repository files the
// language expects around it.
type Template interface {
	// DisplayName returns the human-facing language name.
	DisplayName() string
	// Extension returns the source file extension, dot included.
	Extension() string
	// ActivityFile returns the repository-relative path of the file that
	// accumulates this language's commits.
	ActivityFile() string
	// GenerateCode synthesizes the payload for one commit.
	GenerateCode(date string, commitNum, totalForDay int) string
	// Readme returns a single-language README body.
	Readme(repoName string) string
	// AdditionalFiles returns supporting files (manifests, ignores) keyed by
	// repository-relative path.
	AdditionalFiles(repoName string) map[string]string
}

// DefaultLanguage is the fallback for unknown or empty identifiers.
const DefaultLanguage = "markdown"

// Lookup resolves a language identifier to its template. Matching is
// case-insensitive; unknown identifiers fall back to markdown so the stream
// builder can always resolve whatever the selector returns.
func Lookup(language string) Template {
	switch strings.ToLower(language) {
	case "markdown":
		return markdownTemplate{}
	case "go":
		return goTemplate{}
	case "rust":
		return rustTemplate{}
	case "c":
		return cTemplate{}
	case "cpp":
		return cppTemplate{}
	case "csharp":
		return csharpTemplate{}
	case "java":
		return javaTemplate{}
	case "kotlin":
		return kotlinTemplate{}
	case "swift":
		return swiftTemplate{}
	case "python":
		return pythonTemplate{}
	case "ruby":
		return rubyTemplate{}
	case "php":
		return phpTemplate{}
	case "shell":
		return shellTemplate{}
	case "sql":
		return sqlTemplate{}
	case "javascript":
		return javascriptTemplate{}
	case "typescript":
		return typescriptTemplate{}
	case "vue":
		return vueTemplate{}
	case "html":
		return htmlTemplate{}
	case "css":
		return cssTemplate{}
	case "scss":
		return scssTemplate{}
	default:
		return markdownTemplate{}
	}
}

// All lists the supported language identifiers in display order.
func All() []string {
	return []string{
		"markdown", "go", "rust", "c", "cpp", "csharp", "java", "kotlin",
		"swift", "python", "ruby", "php", "shell", "sql", "javascript",
		"typescript", "vue", "html", "css", "scss",
	}
}

// Readme returns the repository README: the single language's own README
// when only one language is configured, otherwise a combined body listing
// every language with its ratio.
func Readme(repoName string, weights []schedule.LanguageWeight) string {
	if len(weights) == 1 {
		return Lookup(weights[0].Language).Readme(repoName)
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", repoName)
	sb.WriteString("## Languages\n\n")
	sb.WriteString("This repository contains contributions in multiple programming languages:\n\n")

	for _, w := range weights {
		fmt.Fprintf(&sb, "- **%s** (%d%%)\n", Lookup(w.Language).DisplayName(), w.Ratio)
	}

	sb.WriteString("\n## About\n\n")
	sb.WriteString("Each commit uses a language chosen from the configured ratios,\n")
	sb.WriteString("so the activity graph spreads across several languages.\n")

	return sb.String()
}

// MergedAdditionalFiles unions the supporting files of every configured
// language. Identical duplicate paths are kept once; a conflicting path is
// written under "<path>.<language>" so both variants survive.
func MergedAdditionalFiles(repoName string, weights []schedule.LanguageWeight) map[string]string {
	merged := make(map[string]string)

	for _, w := range weights {
		for path, content := range Lookup(w.Language).AdditionalFiles(repoName) {
			existing, exists := merged[path]
			if !exists {
				merged[path] = content

				continue
			}

			if existing == content {
				continue
			}

			merged[fmt.Sprintf("%s.%s", path, strings.ToLower(w.Language))] = content
		}
	}

	return merged
}
