package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tempo/internal/domain"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently completed sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Sessions.History(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderHistory(sessions))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of sessions to show")
	return cmd
}

func renderHistory(sessions []*domain.FocusSession) string {
	if len(sessions) == 0 {
		return StyleDim.Render("No completed sessions yet.") + "\n"
	}

	var b strings.Builder
	for _, s := range sessions {
		when := ""
		if s.CompletedAt != nil {
			when = s.CompletedAt.Local().Format("Mon Jan 2 15:04")
		}
		b.WriteString(fmt.Sprintf("%s  %s  %s",
			StyleDim.Render(when),
			CategoryLabel(s.Category),
			StyleFg.Render(fmt.Sprintf("%d min", s.DurationMinutes)),
		))
		if s.Intention != "" {
			b.WriteString(StyleDim.Render("  · ") + s.Intention)
		}
		b.WriteString("\n")
	}
	return b.String()
}
