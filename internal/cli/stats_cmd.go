package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-category totals for recent sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := app.Sessions.Stats(cmd.Context(), days)
			if err != nil {
				return fmt.Errorf("loading stats: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderStats(summaries, days))
			return nil
		},
	}

	addWindowFlag(cmd.Flags(), &days)
	return cmd
}

func renderStats(summaries []repository.CategorySummary, days int) string {
	if len(summaries) == 0 {
		return StyleDim.Render(fmt.Sprintf("No sessions completed in the last %d days.", days)) + "\n"
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(fmt.Sprintf("Last %d days", days)) + "\n")

	total := 0
	for _, s := range summaries {
		total += s.TotalMinutes
		b.WriteString(fmt.Sprintf("%s  %s %s\n",
			CategoryLabel(s.Category),
			StyleFg.Render(fmt.Sprintf("%3d min", s.TotalMinutes)),
			StyleDim.Render(fmt.Sprintf("(%d sessions)", s.Sessions)),
		))
	}
	b.WriteString(StyleDim.Render(fmt.Sprintf("total %d min", total)) + "\n")
	return b.String()
}
