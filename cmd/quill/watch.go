package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the store files for external changes",
	Long: `Watch blocks and prints a line whenever another program rewrites
the notes or tags file. Stop with Ctrl-C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		watcher, err := app.Watcher()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		events, err := watcher.Watch(ctx)
		if err != nil {
			return err
		}

		for ev := range events {
			fmt.Printf("%s  %s changed\n", ev.At.Format("15:04:05"), ev.File)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
