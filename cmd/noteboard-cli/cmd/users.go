package cmd

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(usersCmd)
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Lists the distinct users appearing on the board.",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, _ := client.AcquireAll(cmd.Context())
		users := client.UniqueUsers(notes)

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Key", "Firstname", "Lastname"})
		for _, u := range users {
			t.AppendRow(table.Row{u.Key, u.Firstname, u.Lastname})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
		return nil
	},
}
