package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-notes/quill/pkg/core"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags",
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		tags, err := app.Tags.GetTags(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range tags {
			fmt.Printf("%s  %s\n", t.ID, t.Name)
		}
		return nil
	},
}

var tagCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		tag, err := app.Tags.CreateTag(cmd.Context(), core.TagInput{Name: args[0]})
		if err != nil {
			return err
		}
		fmt.Println(tag.ID)
		return nil
	},
}

var tagRenameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a tag",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		tag, err := app.Tags.RenameTag(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("renamed %s to %s\n", tag.ID, tag.Name)
		return nil
	},
}

var tagDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a tag and detach it from every note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		if err := app.Tags.DeleteTag(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tagCmd)
	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagCreateCmd)
	tagCmd.AddCommand(tagRenameCmd)
	tagCmd.AddCommand(tagDeleteCmd)
}
