package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/danielgrube/chronostaff/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	var format, out string
	var includeRecords bool

	cmd := &cobra.Command{
		Use:   "export [STAFF-NUMBER...]",
		Short: "Export employees and records as JSON or CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := app.Exports.Export(context.Background(), args, includeRecords)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			switch format {
			case "json":
				err = export.WriteJSON(w, archive)
			case "csv":
				err = export.WriteCSV(w, archive)
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
			if err != nil {
				return err
			}

			if out != "" {
				fmt.Printf("Exported %d employees to %s\n", len(archive.Employees), out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "Output format (json|csv)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&includeRecords, "records", true, "Include time records")

	return cmd
}
