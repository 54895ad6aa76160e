package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dbcli/internal/export"
	"dbcli/internal/logger"
)

var (
	exportKind   string
	exportFilter string
	exportOutDir string
)

var exportCmd = &cobra.Command{
	Use:   "export-schema",
	Short: "Export procedure, function, trigger, view and index DDL",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		res, err := export.ExportObjects(sess, export.Request{
			Kind:       exportKind,
			NameFilter: exportFilter,
			OutDir:     exportOutDir,
		})
		if err != nil {
			return err
		}
		if exportOutDir != "" {
			logger.Success("wrote %d file(s) to %s", res.FilesWritten, res.Dir)
			return nil
		}
		fmt.Print(res.Script)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportKind, "type", "all", "object kind: procedure, function, trigger, view, index or all")
	exportCmd.Flags().StringVar(&exportFilter, "filter", "", "substring filter on object names")
	exportCmd.Flags().StringVar(&exportOutDir, "out-dir", "", "write one file per object into this directory instead of stdout")
	RootCmd.AddCommand(exportCmd)
}
