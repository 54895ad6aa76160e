package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dbcli/internal/dberr"
	"dbcli/internal/logger"
)

var (
	batchFile   string
	batchParams string
)

var batchCmd = &cobra.Command{
	Use:   "batch [script]",
	Short: "Execute a GO-separated script batch by batch",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script := ""
		switch {
		case batchFile != "":
			data, err := os.ReadFile(batchFile)
			if err != nil {
				return err
			}
			script = string(data)
		case len(args) == 1:
			script = args[0]
		default:
			return cmd.Usage()
		}

		// Per-batch parameter rebinding is undefined, so the flag is
		// accepted only to produce the canonical error.
		if batchParams != "" {
			return dberr.ErrBatchWithParameters
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		n, err := sess.ExecuteBatched(script)
		if err != nil {
			return err
		}
		logger.Success("%d row(s) affected across all batches", n)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchFile, "file", "", "read the script from a file")
	batchCmd.Flags().StringVar(&batchParams, "params", "", "not supported for batch scripts")
	RootCmd.AddCommand(batchCmd)
}
