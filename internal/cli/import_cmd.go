package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import an exported JSON archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Imports.ImportArchive(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d employees and %d time records\n",
				result.EmployeeCount, result.RecordCount)
			return nil
		},
	}
}
