package synth

import (
	"fmt"
	"strings"
)

type javascriptTemplate struct{}

func (javascriptTemplate) DisplayName() string  { return "JavaScript" }
func (javascriptTemplate) Extension() string    { return ".js" }
func (javascriptTemplate) ActivityFile() string { return "activity.js" }

func (javascriptTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
class Contribution%s_%d {
  constructor() {
    this.date = %q;
    this.commitNumber = %d;
    this.totalCommits = %d;
  }

  describe() {
    return `+"`"+`Contribution on ${this.date} (${this.commitNumber}/${this.totalCommits})`+"`"+`;
  }
}

module.exports = Contribution%s_%d;
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay,
		ident(date), commitNum)
}

func (javascriptTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA JavaScript activity log maintained by gardener.\n", repoName)
}

func (javascriptTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"package.json": fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"1.0.0\",\n  \"private\": true\n}\n", strings.ToLower(repoName)),
		".gitignore":   "node_modules/\ndist/\n",
	}
}

type typescriptTemplate struct{}

func (typescriptTemplate) DisplayName() string  { return "TypeScript" }
func (typescriptTemplate) Extension() string    { return ".ts" }
func (typescriptTemplate) ActivityFile() string { return "activity.ts" }

func (typescriptTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
export interface ContributionRecord {
  date: string;
  commitNumber: number;
  totalCommits: number;
}

export class Contribution%s_%d implements ContributionRecord {
  readonly date = %q;
  readonly commitNumber = %d;
  readonly totalCommits = %d;

  describe(): string {
    return `+"`"+`Contribution on ${this.date} (${this.commitNumber}/${this.totalCommits})`+"`"+`;
  }
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (typescriptTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA TypeScript activity log maintained by gardener.\n", repoName)
}

func (typescriptTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"package.json":  fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"1.0.0\",\n  \"private\": true\n}\n", strings.ToLower(repoName)),
		"tsconfig.json": "{\n  \"compilerOptions\": {\n    \"target\": \"es2020\",\n    \"strict\": true\n  }\n}\n",
		".gitignore":    "node_modules/\ndist/\n",
	}
}

type vueTemplate struct{}

func (vueTemplate) DisplayName() string  { return "Vue" }
func (vueTemplate) Extension() string    { return ".vue" }
func (vueTemplate) ActivityFile() string { return "Activity.vue" }

func (vueTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`<template>
  <div class="contribution">
    <h3>Contribution Record</h3>
    <p>Date: {{ date }}</p>
    <p>Commit: {{ commitNumber }} / {{ totalCommits }}</p>
  </div>
</template>

<script>
export default {
  name: 'ContributionRecord',
  data() {
    return {
      date: '%s',
      commitNumber: %d,
      totalCommits: %d
    }
  }
}
</script>

<style scoped>
.contribution {
  border: 1px solid #ddd;
  padding: 1rem;
  border-radius: 4px;
}
</style>
`, date, commitNum, totalForDay)
}

func (vueTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Vue activity log maintained by gardener.\n", repoName)
}

func (vueTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"package.json": fmt.Sprintf("{\n  \"name\": %q,\n  \"version\": \"1.0.0\",\n  \"private\": true,\n  \"dependencies\": {\n    \"vue\": \"^3.0.0\"\n  }\n}\n", strings.ToLower(repoName)),
		".gitignore":   "node_modules/\ndist/\n",
	}
}

type htmlTemplate struct{}

func (htmlTemplate) DisplayName() string  { return "HTML" }
func (htmlTemplate) Extension() string    { return ".html" }
func (htmlTemplate) ActivityFile() string { return "activity.html" }

func (htmlTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Contribution on %s</title>
</head>
<body>
  <section class="contribution">
    <h1>Contribution Record</h1>
    <p>Date: %s</p>
    <p>Commit: %d / %d</p>
  </section>
</body>
</html>
`, date, date, commitNum, totalForDay)
}

func (htmlTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nAn HTML activity log maintained by gardener.\n", repoName)
}

func (htmlTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{}
}

type cssTemplate struct{}

func (cssTemplate) DisplayName() string  { return "CSS" }
func (cssTemplate) Extension() string    { return ".css" }
func (cssTemplate) ActivityFile() string { return "activity.css" }

func (cssTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`/* Contribution on %s (%d/%d). */
.contribution-%s-%d {
  border: 1px solid #d0d7de;
  border-radius: 6px;
  padding: 16px;
  margin: 8px 0;
}

.contribution-%s-%d::after {
  content: "Contribution on %s (%d/%d)";
  color: #57606a;
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (cssTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA CSS activity log maintained by gardener.\n", repoName)
}

func (cssTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{}
}

type scssTemplate struct{}

func (scssTemplate) DisplayName() string  { return "SCSS" }
func (scssTemplate) Extension() string    { return ".scss" }
func (scssTemplate) ActivityFile() string { return "activity.scss" }

func (scssTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
$border-color: #d0d7de;
$text-color: #57606a;

.contribution-%s-%d {
  border: 1px solid $border-color;
  border-radius: 6px;
  padding: 16px;

  &::after {
    content: "Contribution on %s (%d/%d)";
    color: $text-color;
  }
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (scssTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nAn SCSS activity log maintained by gardener.\n", repoName)
}

func (scssTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{}
}
