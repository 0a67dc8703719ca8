package synth

import "fmt"

type markdownTemplate struct{}

func (markdownTemplate) DisplayName() string  { return "Markdown" }
func (markdownTemplate) Extension() string    { return ".md" }
func (markdownTemplate) ActivityFile() string { return "activity.md" }

func (markdownTemplate) GenerateCode(date string, commitNum, _ int) string {
	return fmt.Sprintf("%s commit %d\n", date, commitNum)
}

func (markdownTemplate) Readme(repoName string) string {
	return fmt.Sprintf("# %s\n\nAn activity log maintained by gardener.\n", repoName)
}

func (markdownTemplate) AdditionalFiles(string) map[string]string {
	return map[string]string{}
}
