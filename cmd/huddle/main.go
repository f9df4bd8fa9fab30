package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/huddle/internal/cli"
	"github.com/alexanderramin/huddle/internal/config"
	"github.com/alexanderramin/huddle/internal/db"
	"github.com/alexanderramin/huddle/internal/repository"
	"github.com/alexanderramin/huddle/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the shell default and import confirmation.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Bootstrap = func(flags *pflag.FlagSet) error {
		cfg, err := config.Load(flags)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		logger, logCloser, err := config.NewLogger(cfg, os.Stderr)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}
		closers = append(closers, logCloser)

		database, err := db.OpenDB(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		closers = append(closers, database)
		logger.Debug("store opened", "db", cfg.DBPath, "config", cfg.ConfigFile)

		// Wire repositories
		gameRepo := repository.NewSQLiteGameRepo(database)
		playRepo := repository.NewSQLitePlayRepo(database)

		// Wire unit of work for the import transaction
		uow := db.NewSQLiteUnitOfWork(database)

		// The league baseline is computed once per process.
		baseline := service.NewBaselineCache(playRepo)
		observer := service.NewLogUseCaseObserver(logger)

		app.Ask = service.NewAskService(gameRepo, playRepo, baseline, observer)
		app.Stats = service.NewStatsService(gameRepo, playRepo, baseline)
		app.Import = service.NewImportService(gameRepo, uow, observer)
		return nil
	}

	return cli.NewRootCmd(app).Execute()
}
