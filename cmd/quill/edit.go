package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-notes/quill/pkg/core"
)

var (
	editTitle   string
	editContent string
	editPin     bool
	editTags    []string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of a note",
	Long: `Update a note. Only flags you pass are changed; everything else
keeps its stored value. Passing --tag with an empty value clears the
tag list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		var patch core.NotePatch
		if cmd.Flags().Changed("title") {
			patch.Title = &editTitle
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &editContent
		}
		if cmd.Flags().Changed("pin") {
			patch.IsPinned = &editPin
		}
		if cmd.Flags().Changed("tag") {
			tags := make([]string, 0, len(editTags))
			for _, t := range editTags {
				if t != "" {
					tags = append(tags, t)
				}
			}
			patch.Tags = tags
		}

		note, err := app.Notes.UpdateNote(cmd.Context(), args[0], patch)
		if err != nil {
			return err
		}

		fmt.Printf("updated %s\n", note.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editContent, "content", "c", "", "New content")
	editCmd.Flags().BoolVar(&editPin, "pin", false, "Set the pin flag")
	editCmd.Flags().StringSliceVar(&editTags, "tag", nil, "Replace the tag list (repeatable)")
}
