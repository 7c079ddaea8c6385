package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quill-notes/quill/pkg/export"
)

var (
	exportDir   string
	exportMatch string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export notes as Markdown files with YAML frontmatter",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		exporter := export.NewExporter(app.Notes, app.Tags)
		written, err := exporter.Export(cmd.Context(), exportDir, exportMatch)
		if err != nil {
			return err
		}

		for _, name := range written {
			fmt.Println(name)
		}
		fmt.Printf("exported %d notes to %s\n", len(written), exportDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "export", "Target directory")
	exportCmd.Flags().StringVarP(&exportMatch, "match", "m", "", "Glob filtering exported file names (doublestar syntax)")
}
