package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"noteboard-backend/lib/render"
	"noteboard-backend/lib/scrapers/noteboard"
	"noteboard-backend/lib/textutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var flagFormat string

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.Flags().StringVar(&flagFormat, "format", "pretty", "output format: pretty, html, cards, raw")
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetches all notes posted on the board and renders them.",
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, provenance := client.AcquireAll(cmd.Context())
		if provenance.Live() {
			slog.Info("fetched live data", "strategy", provenance.Strategy)
		} else {
			slog.Warn("board unreachable, showing the built-in sample dataset")
		}

		records := noteboard.Records(notes)
		switch flagFormat {
		case "pretty":
			printRecordTable(records)
		case "html":
			fmt.Println(render.Records(records, render.ModeTable, "All Notes"))
		case "cards":
			fmt.Println(render.Records(records, render.ModeCards, "All Notes"))
		case "raw":
			fmt.Println(render.Records(records, render.ModeRaw, "All Notes"))
		default:
			return fmt.Errorf("unknown format: %s", flagFormat)
		}
		return nil
	},
}

// printRecordTable renders records to the terminal under the union of
// all keys, the console analogue of the html table mode.
func printRecordTable(records []render.Record) {
	if len(records) == 0 {
		fmt.Println("no records")
		return
	}

	seen := map[string]bool{}
	var keys []string
	for _, r := range records {
		for _, f := range r {
			if !seen[f.Key] {
				seen[f.Key] = true
				keys = append(keys, f.Key)
			}
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	header := table.Row{}
	for _, key := range keys {
		header = append(header, textutil.FormatKey(key))
	}
	t.AppendHeader(header)

	for _, r := range records {
		row := table.Row{}
		for _, key := range keys {
			value, _ := r.Get(key)
			row = append(row, render.Classify(value).Display)
		}
		t.AppendRow(row)
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
