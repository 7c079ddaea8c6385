package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quill-notes/quill/pkg/core"
)

var (
	listJSON bool
	listTag  string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, pinned first, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		notes, err := app.Notes.GetNotes(cmd.Context())
		if err != nil {
			return err
		}

		if listTag != "" {
			filtered := make([]core.Note, 0, len(notes))
			for _, n := range notes {
				for _, id := range n.Tags {
					if id == listTag {
						filtered = append(filtered, n)
						break
					}
				}
			}
			notes = filtered
		}

		if listJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(notes)
		}

		for _, n := range notes {
			pin := " "
			if n.IsPinned {
				pin = "*"
			}
			fmt.Printf("%s %s  %s  %s\n", pin, n.ID, n.CreatedAt.Format("2006-01-02"), n.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter notes by tag ID")
}
