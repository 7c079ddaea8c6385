package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <id>",
	Short: "Toggle the pin flag of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		note, err := app.Notes.TogglePinNote(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		state := "unpinned"
		if note.IsPinned {
			state = "pinned"
		}
		fmt.Printf("%s %s\n", state, note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
