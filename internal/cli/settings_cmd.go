package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/danielgrube/chronostaff/internal/cli/formatter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change application settings",
	}

	cmd.AddCommand(
		newSettingsListCmd(app),
		newSettingsGetCmd(app),
		newSettingsSetCmd(app),
	)

	return cmd
}

func newSettingsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, err := app.Settings.All(context.Background())
			if err != nil {
				return err
			}

			keys := make([]string, 0, len(all))
			for k := range all {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			t := table.NewWriter()
			t.AppendHeader(table.Row{"Key", "Value"})
			for _, k := range keys {
				t.AppendRow(table.Row{k, all[k]})
			}
			t.SetStyle(table.StyleRounded)
			fmt.Println(t.Render())
			return nil
		},
	}
}

func newSettingsGetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Show one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := app.Settings.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(value)
			return nil
		},
	}
}

func newSettingsSetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Settings.Set(context.Background(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("%s %s = %s\n", formatter.Dim("set"), args[0], args[1])
			return nil
		},
	}
}
