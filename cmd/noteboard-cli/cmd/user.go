package cmd

import (
	"fmt"

	"noteboard-backend/lib/render"

	"github.com/spf13/cobra"
)

var flagUserFormat string

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.Flags().StringVar(&flagUserFormat, "format", "pretty", "output format: pretty, html, cards, raw")
}

var userCmd = &cobra.Command{
	Use:   "user <key>",
	Short: "Fetches the notes of a single user by their identity key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		records := client.ResolveUserNotes(cmd.Context(), args[0])

		switch flagUserFormat {
		case "pretty":
			printRecordTable(records)
		case "html":
			fmt.Println(render.Records(records, render.ModeTable, "User Notes"))
		case "cards":
			fmt.Println(render.Records(records, render.ModeCards, "User Notes"))
		case "raw":
			fmt.Println(render.Records(records, render.ModeRaw, "User Notes"))
		default:
			return fmt.Errorf("unknown format: %s", flagUserFormat)
		}
		return nil
	},
}
