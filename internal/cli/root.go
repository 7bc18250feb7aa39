package cli

import (
	"github.com/danielgrube/chronostaff/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Employees service.EmployeeService
	Records   service.RecordService
	Reports   service.ReportService
	Exports   service.ExportService
	Imports   service.ImportService
	Settings  service.SettingsService

	// IsInteractive reports whether stdin is a terminal; interactive forms
	// are only offered when it returns true.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "chronostaff" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "chronostaff",
		Short: "Employee time tracking and reporting",
	}

	root.AddCommand(
		newEmployeeCmd(app),
		newRecordCmd(app),
		newReportCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSettingsCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
