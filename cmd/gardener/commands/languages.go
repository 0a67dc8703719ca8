package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/gardener/internal/langstats"
	"github.com/Sumatoshi-tech/gardener/internal/schedule"
	"github.com/Sumatoshi-tech/gardener/internal/synth"
)

// LanguagesCommand lists supported languages and predicts language shares
// for a weight set.
type LanguagesCommand struct {
	languages []string
}

// NewLanguagesCommand creates the languages command.
func NewLanguagesCommand() *cobra.Command {
	lc := &LanguagesCommand{}

	cmd := &cobra.Command{
		Use:   "languages",
		Short: "List supported languages and predict statistics for a weight set",
		Args:  cobra.NoArgs,
		RunE:  lc.run,
	}

	cmd.Flags().StringSliceVarP(&lc.languages, "languages", "l", nil, "Predict shares for weights like go:50,python:50")

	return cmd
}

func (lc *LanguagesCommand) run(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Identifier", "Language", "Extension", "Activity File", "Bytes/Commit"})

	for _, id := range synth.All() {
		tpl := synth.Lookup(id)
		tbl.AppendRow(table.Row{
			id,
			tpl.DisplayName(),
			tpl.Extension(),
			tpl.ActivityFile(),
			humanize.Bytes(uint64(langstats.ByteCost(id))),
		})
	}

	fmt.Fprintln(out, tbl.Render())

	if len(lc.languages) == 0 {
		return nil
	}

	return lc.renderPrediction(cmd)
}

// renderPrediction shows how byte-compensated selection would split commits
// and bytes for the given weights over one full selection cycle.
func (lc *LanguagesCommand) renderPrediction(cmd *cobra.Command) error {
	weights, err := parseWeights(lc.languages)
	if err != nil {
		return err
	}

	normalized, normErr := schedule.NormalizeWeights(weights)
	if normErr != nil {
		return normErr
	}

	selection := langstats.BuildWeights(normalized)
	shares := langstats.PredictShares(selection, func(language string) string {
		return synth.Lookup(language).Extension()
	})

	tbl := newTable()
	tbl.AppendHeader(table.Row{"Language", "Detected As", "Commits/Cycle", "Bytes Share"})

	for _, share := range shares {
		tbl.AppendRow(table.Row{
			share.Language,
			share.Linguist,
			share.Commits,
			fmt.Sprintf("%.1f%%", share.Percent),
		})
	}

	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Predicted distribution:")
	fmt.Fprintln(out, tbl.Render())

	return nil
}

// newTable returns a writer in the house table style.
func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}
