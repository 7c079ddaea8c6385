package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/quill-notes/quill/pkg/bridge"
)

var rpcCmd = &cobra.Command{
	Use:   "rpc <operation>",
	Short: "Invoke a service operation with a JSON payload from stdin",
	Long: `rpc is the boundary a UI shell talks to: it reads a JSON payload
from stdin, runs the named operation and writes a success/error
envelope to stdout. Run without arguments to list operations.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, _, err := openApp(cmd)
		if err != nil {
			return err
		}

		dispatcher := bridge.NewDispatcher(app.Notes, app.Tags, logger)

		if len(args) == 0 {
			ops := dispatcher.Operations()
			sort.Strings(ops)
			for _, op := range ops {
				fmt.Println(op)
			}
			return nil
		}

		payload, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}

		resp := dispatcher.Invoke(cmd.Context(), args[0], payload)
		data, err := resp.Encode()
		if err != nil {
			return err
		}
		fmt.Println(string(data))

		if !resp.Success {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rpcCmd)
}
