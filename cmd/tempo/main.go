package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/tempo/internal/cli"
	"github.com/alexanderramin/tempo/internal/db"
	"github.com/alexanderramin/tempo/internal/intelligence"
	"github.com/alexanderramin/tempo/internal/llm"
	"github.com/alexanderramin/tempo/internal/repository"
	"github.com/alexanderramin/tempo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.tempo/tempo.db
	dbPath := os.Getenv("TEMPO_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".tempo", "tempo.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Sessions: service.NewSessionService(repository.NewSQLiteSessionRepo(database)),
		Prefs:    service.NewPrefsService(repository.NewSQLitePrefsRepo(database)),
	}

	// Detect interactive terminal for the timer entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Motivation falls back to the static catalog unless the LLM is enabled.
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Motivation = intelligence.NewMotivationService(llm.NewOllamaClient(llmCfg, observer))
	} else {
		app.Motivation = intelligence.NewStaticMotivationService()
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
