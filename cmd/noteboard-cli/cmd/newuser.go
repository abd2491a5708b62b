package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newUserCmd)
	rootCmd.AddCommand(newNoteCmd)
}

var newUserCmd = &cobra.Command{
	Use:   "new-user <firstname> <lastname>",
	Short: "Creates a new user on the board.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := client.CreateUser(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if envelope.Fabricated {
			fmt.Println("board unreachable, created locally (not persisted)")
		}
		fmt.Printf("%s: id=%d\n", envelope.Message, envelope.User.ID)
		return nil
	},
}

var newNoteCmd = &cobra.Command{
	Use:   "new-note <user-id> <note>",
	Short: "Posts a new note for a user.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		envelope, err := client.CreateNote(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		if envelope.Fabricated {
			fmt.Println("board unreachable, created locally (not persisted)")
		}
		fmt.Printf("%s: id=%d\n", envelope.Message, envelope.Note.ID)
		return nil
	},
}
