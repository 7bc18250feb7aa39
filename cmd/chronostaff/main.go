package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/danielgrube/chronostaff/internal/cli"
	"github.com/danielgrube/chronostaff/internal/db"
	"github.com/danielgrube/chronostaff/internal/repository"
	"github.com/danielgrube/chronostaff/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.chronostaff/chronostaff.db
	dbPath := os.Getenv("CHRONOSTAFF_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".chronostaff", "chronostaff.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	employeeRepo := repository.NewSQLiteEmployeeRepo(database)
	recordRepo := repository.NewSQLiteTimeRecordRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Employees: service.NewEmployeeService(employeeRepo),
		Records:   service.NewRecordService(recordRepo, employeeRepo, uow),
		Reports:   service.NewReportService(employeeRepo, recordRepo, settingsRepo),
		Exports:   service.NewExportService(employeeRepo, recordRepo),
		Imports:   service.NewImportService(uow),
		Settings:  service.NewSettingsService(settingsRepo),
	}

	// Detect interactive terminal for the entry forms.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
