package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		note, err := app.Notes.GetNoteByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		if showJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(note)
		}

		fmt.Printf("# %s\n", note.Title)
		fmt.Printf("id: %s  created: %s  pinned: %t\n",
			note.ID, note.CreatedAt.Format("2006-01-02 15:04"), note.IsPinned)
		if len(note.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(note.Tags, ", "))
		}
		fmt.Println()
		fmt.Println(note.Content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
