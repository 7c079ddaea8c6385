package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-notes/quill/pkg/core"
)

var (
	createTitle   string
	createContent string
	createPinned  bool
	createTags    []string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		note, err := app.Notes.CreateNote(cmd.Context(), core.NoteInput{
			Title:    createTitle,
			Content:  createContent,
			IsPinned: createPinned,
			Tags:     createTags,
		})
		if err != nil {
			return err
		}

		fmt.Println(note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringVarP(&createTitle, "title", "t", "", "Note title (required)")
	createCmd.Flags().StringVarP(&createContent, "content", "c", "", "Note content (required)")
	createCmd.Flags().BoolVar(&createPinned, "pin", false, "Pin the note")
	createCmd.Flags().StringSliceVar(&createTags, "tag", nil, "Tag IDs to attach (repeatable)")
}
