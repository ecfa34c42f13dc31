package cli

import (
	"errors"

	"github.com/alexanderramin/tempo/internal/intelligence"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions   service.SessionService
	Prefs      service.PrefsService
	Motivation intelligence.MotivationService

	// IsInteractive reports whether stdin is attached to a terminal.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "tempo" command. Running it without a
// subcommand launches the interactive timer.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tempo",
		Short:         "Focus timer with session history and AI coaching",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errors.New("tempo needs an interactive terminal; try 'tempo history' or 'tempo stats'")
			}
			return runTimer(app)
		},
	}

	root.AddCommand(
		newHistoryCmd(app),
		newStatsCmd(app),
	)

	return root
}

// addWindowFlag registers the shared --days window flag used by the
// read-only reporting commands.
func addWindowFlag(fs *pflag.FlagSet, days *int) {
	fs.IntVarP(days, "days", "d", 7, "look-back window in days")
}
