package synth

import (
	"fmt"
	"strings"
)

// ident turns a date into a token usable inside identifiers.
func ident(date string) string {
	return strings.ReplaceAll(date, "-", "_")
}

type goTemplate struct{}

func (goTemplate) DisplayName() string  { return "Go" }
func (goTemplate) Extension() string    { return ".go" }
func (goTemplate) ActivityFile() string { return "activity.go" }

func (goTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Code generated for contribution on %s (%d/%d).
package activity

import "fmt"

// Contribution%s_%d records a single contribution.
type Contribution%s_%d struct {
	Date         string
	CommitNumber int
	TotalCommits int
}

// Describe returns a human-readable summary of the contribution.
func (c Contribution%s_%d) Describe() string {
	return fmt.Sprintf("Contribution on %%s (%%d/%%d)", c.Date, c.CommitNumber, c.TotalCommits)
}

func newContribution%s_%d() Contribution%s_%d {
	return Contribution%s_%d{Date: %q, CommitNumber: %d, TotalCommits: %d}
}
`, date, commitNum, totalForDay,
		ident(date), commitNum, ident(date), commitNum,
		ident(date), commitNum,
		ident(date), commitNum, ident(date), commitNum, ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (goTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Go activity log maintained by gardener.\n\n## Structure\n\n- `activity.go` - generated contribution records\n- `go.mod` - module definition\n", repoName)
}

func (goTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"go.mod":     fmt.Sprintf("module %s\n\ngo 1.22\n", strings.ToLower(repoName)),
		".gitignore": "bin/\n*.test\n*.out\n",
	}
}

type rustTemplate struct{}

func (rustTemplate) DisplayName() string  { return "Rust" }
func (rustTemplate) Extension() string    { return ".rs" }
func (rustTemplate) ActivityFile() string { return "src/activity.rs" }

func (rustTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`//! Contribution on %s (%d/%d).

#[derive(Debug, Clone)]
pub struct Contribution%s_%d {
    pub date: &'static str,
    pub commit_number: u32,
    pub total_commits: u32,
}

impl Contribution%s_%d {
    pub fn new() -> Self {
        Self {
            date: %q,
            commit_number: %d,
            total_commits: %d,
        }
    }

    pub fn describe(&self) -> String {
        format!("Contribution on {} ({}/{})", self.date, self.commit_number, self.total_commits)
    }
}
`, date, commitNum, totalForDay,
		ident(date), commitNum, ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (rustTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Rust activity log maintained by gardener.\n\n## Structure\n\n- `src/activity.rs` - generated contribution records\n- `Cargo.toml` - crate manifest\n", repoName)
}

func (rustTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"Cargo.toml": fmt.Sprintf("[package]\nname = %q\nversion = \"0.1.0\"\nedition = \"2021\"\n", strings.ToLower(repoName)),
		".gitignore": "target/\nCargo.lock\n",
	}
}

type cTemplate struct{}

func (cTemplate) DisplayName() string  { return "C" }
func (cTemplate) Extension() string    { return ".c" }
func (cTemplate) ActivityFile() string { return "activity.c" }

func (cTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`/* Contribution on %s (%d/%d). */
#include <stdio.h>

struct contribution_%s_%d {
    const char *date;
    int commit_number;
    int total_commits;
};

static void describe_%s_%d(void) {
    struct contribution_%s_%d c = {%q, %d, %d};
    printf("Contribution on %%s (%%d/%%d)\n", c.date, c.commit_number, c.total_commits);
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		ident(date), commitNum, ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (cTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA C activity log maintained by gardener.\n", repoName)
}

func (cTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{
		".gitignore": "*.o\n*.out\n*.exe\n",
	}
}

type cppTemplate struct{}

func (cppTemplate) DisplayName() string  { return "C++" }
func (cppTemplate) Extension() string    { return ".cpp" }
func (cppTemplate) ActivityFile() string { return "activity.cpp" }

func (cppTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
#include <iostream>
#include <string>

class Contribution%s_%d {
public:
    Contribution%s_%d() : date_(%q), commit_number_(%d), total_commits_(%d) {}

    std::string describe() const {
        return "Contribution on " + date_ + " (" + std::to_string(commit_number_) +
               "/" + std::to_string(total_commits_) + ")";
    }

private:
    std::string date_;
    int commit_number_;
    int total_commits_;
};
`, date, commitNum, totalForDay,
		ident(date), commitNum, ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (cppTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA C++ activity log maintained by gardener.\n", repoName)
}

func (cppTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{
		".gitignore": "build/\n*.o\n*.obj\n",
	}
}

type csharpTemplate struct{}

func (csharpTemplate) DisplayName() string  { return "C#" }
func (csharpTemplate) Extension() string    { return ".cs" }
func (csharpTemplate) ActivityFile() string { return "Activity.cs" }

func (csharpTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
namespace Activity
{
    public class Contribution%s_%d
    {
        public string Date { get; } = %q;
        public int CommitNumber { get; } = %d;
        public int TotalCommits { get; } = %d;

        public string Describe() =>
            $"Contribution on {Date} ({CommitNumber}/{TotalCommits})";
    }
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (csharpTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA C# activity log maintained by gardener.\n", repoName)
}

func (csharpTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		fmt.Sprintf("%s.csproj", repoName): "<Project Sdk=\"Microsoft.NET.Sdk\">\n  <PropertyGroup>\n    <TargetFramework>net8.0</TargetFramework>\n  </PropertyGroup>\n</Project>\n",
		".gitignore":                       "bin/\nobj/\n",
	}
}

type javaTemplate struct{}

func (javaTemplate) DisplayName() string  { return "Java" }
func (javaTemplate) Extension() string    { return ".java" }
func (javaTemplate) ActivityFile() string { return "Activity.java" }

func (javaTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
public class Contribution%s_%d {
    private final String date = %q;
    private final int commitNumber = %d;
    private final int totalCommits = %d;

    public String describe() {
        return String.format("Contribution on %%s (%%d/%%d)", date, commitNumber, totalCommits);
    }
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (javaTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Java activity log maintained by gardener.\n", repoName)
}

func (javaTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{
		".gitignore": "*.class\ntarget/\n",
	}
}

type kotlinTemplate struct{}

func (kotlinTemplate) DisplayName() string  { return "Kotlin" }
func (kotlinTemplate) Extension() string    { return ".kt" }
func (kotlinTemplate) ActivityFile() string { return "Activity.kt" }

func (kotlinTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	return fmt.Sprintf(`// Contribution on %s (%d/%d).
data class Contribution%s_%d(
    val date: String = %q,
    val commitNumber: Int = %d,
    val totalCommits: Int = %d,
) {
    fun describe(): String = "Contribution on $date ($commitNumber/$totalCommits)"
}
`, date, commitNum, totalForDay,
		ident(date), commitNum,
		date, commitNum, totalForDay)
}

func (kotlinTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Kotlin activity log maintained by gardener.\n", repoName)
}

func (kotlinTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{
		".gitignore": "build/\n*.jar\n",
	}
}

type swiftTemplate struct{}

func (swiftTemplate) DisplayName() string  { return "Swift" }
func (swiftTemplate) Extension() string    { return ".swift" }
func (swiftTemplate) ActivityFile() string { return "Activity.swift" }

func (swiftTemplate) GenerateCode(date string, commitNum, totalForDay int) string {
	name := fmt.Sprintf("Contribution_%s_%d", ident(date), commitNum)

	return fmt.Sprintf(`//
//  %s.swift
//
//  Created for contribution on %s (%d/%d).
//

import Foundation

struct %s {
    let date = %q
    let commitNumber = %d
    let totalCommits = %d

    var info: String {
        return "Contribution on \(date) (\(commitNumber)/\(totalCommits))"
    }
}
`, name, date, commitNum, totalForDay,
		name, date, commitNum, totalForDay)
}

func (swiftTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nA Swift activity log maintained by gardener.\n\n## Structure\n\n- `Activity.swift` - generated contribution records\n- `Package.swift` - package manifest\n", repoName)
}

func (swiftTemplate) AdditionalFiles(repoName string) map[string]string {
	return map[string]string{
		"Package.swift": fmt.Sprintf(`// swift-tools-version:5.5
import PackageDescription

let package = Package(
    name: %q,
    targets: [
        .target(name: %q),
    ]
)
`, repoName, repoName),
		".gitignore": ".DS_Store\n/.build\n/Packages\n",
	}
}
