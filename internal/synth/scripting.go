package synth

import (
	"fmt"
	"strings"
)

type pythonTemplate struct{}

func (pythonTemplate) DisplayName() string  { return "Python" }
func (pythonTemplate) Extension() string    { return ".py" }
func (pythonTemplate) ActivityFile() string { return "activity.py" }

func (pythonTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`"""Contribution on %s (%d/%d)."""


class Contribution%s_%d:
    """A single generated contribution record."""

    def __init__(self):
        self.date = %q
        self.commit_number = %d
        self.total_commits = %d

    def describe(self):
        return f"Contribution on {self.date} ({self.commit_number}/{self.total_commits})"
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (pythonTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Python activity log maintained by gardener.\n\n## Structure\n\n- `activity.py` - generated contribution records\n- `requirements.txt` - dependencies\n", repoName)
}

func (pythonTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{
		"requirements.txt": "# No runtime dependencies.\n",
		".gitignore":       "__pycache__/\n*.pyc\n.venv/\n",
	}
}

type rubyTemplate struct{}

func (rubyTemplate) DisplayName() string  { return "Ruby" }
func (rubyTemplate) Extension() string    { return ".rb" }
func (rubyTemplate) ActivityFile() string { return "activity.rb" }

func (rubyTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`# Contribution on %s (%d/%d).
class Contribution%s_%d
  attr_reader :date, :commit_number, :total_commits

  def initialize
    @date = %q
    @commit_number = %d
    @total_commits = %d
  end

  def describe
    "Contribution on #{@date} (#{@commit_number}/#{@total_commits})"
  end
end
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (rubyTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Ruby activity log maintained by gardener.\n", repoName)
}

func (rubyTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{
		"Gemfile":    "source \"https://rubygems.org\"\n",
		".gitignore": "*.gem\n.bundle/\n",
	}
}

type phpTemplate struct{}

func (phpTemplate) DisplayName() string  { return "PHP" }
func (phpTemplate) Extension() string    { return ".php" }
func (phpTemplate) ActivityFile() string { return "activity.php" }

func (phpTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`<?php
// Contribution on %s (%d/%d).

class Contribution%s_%d
{
    public string $date = %q;
    public int $commitNumber = %d;
    public int $totalCommits = %d;

    public function describe(): string
    {
        return "Contribution on {$this->date} ({$this->commitNumber}/{$this->totalCommits})";
    }
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (phpTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA PHP activity log maintained by gardener.\n", repoName)
}

func (phpTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"composer.json": fmt.Sprintf("{\n  \"name\": \"gardener/%s\",\n  \"require\": {}\n}\n", strings.ToLower(repoName)),
		".gitignore":    "vendor/\ncomposer.lock\n",
	}
}

type shellTemplate struct{}

func (shellTemplate) DisplayName() string  { return "Shell" }
func (shellTemplate) Extension() string    { return ".sh" }
func (shellTemplate) ActivityFile() string { return "activity.sh" }

func (shellTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`#!/usr/bin/env bash
# Contribution on %s (%d/%d).

contribution_date=%q
commit_number=%d
total_commits=%d

describe() {
  echo "Contribution on ${contribution_date} (${commit_number}/${total_commits})"
}
`, date, commitNum, totalForDay,
		date, commitNum, totalForDay)
}

func (shellTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA shell activity log maintained by gardener.\n", repoName)
}

func (shellTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{}
}

type sqlTemplate struct{}

func (sqlTemplate) DisplayName() string  { return "SQL" }
func (sqlTemplate) Extension() string    { return ".sql" }
func (sqlTemplate) ActivityFile() string { return "activity.sql" }

func (sqlTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`-- Contribution on %s (%d/%d).
CREATE TABLE IF NOT EXISTS contributions (
    contribution_date DATE NOT NULL,
    commit_number INTEGER NOT NULL,
    total_commits INTEGER NOT NULL
);

INSERT INTO contributions (contribution_date, commit_number, total_commits)
VALUES ('%s', %d, %d);
`, date, commitNum, totalForDay,
		date, commitNum, totalForDay)
}

func (sqlTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA SQL activity log maintained by gardener.\n", repoName)
}

func (sqlTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{}
}
