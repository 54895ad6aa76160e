package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dbcli/internal/backup"
	"dbcli/internal/logger"
)

var backupName string

var backupCmd = &cobra.Command{
	Use:   "backup <table>",
	Short: "Copy a table into a backup table, falling back through copy strategies",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		target := backupName
		if target == "" {
			target = fmt.Sprintf("%s_copy_%s", source, time.Now().Format("20060102150405"))
		}

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		rec, err := backup.Backup(sess, source, target)
		if err != nil {
			return err
		}
		reportRecord(rec, fmt.Sprintf("backed up %s to %s", source, target))
		return nil
	},
}

var restoreKeepRows bool

var restoreCmd = &cobra.Command{
	Use:   "restore <table> <backup>",
	Short: "Copy a backup table's rows back into the original table",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		rec, err := backup.Restore(sess, args[0], args[1], !restoreKeepRows)
		if err != nil {
			return err
		}
		reportRecord(rec, fmt.Sprintf("restored %s from %s", args[0], args[1]))
		return nil
	},
}

func reportRecord(rec *backup.Record, action string) {
	if rec.Success {
		logger.Success("%s: %d row(s) via %s", action, rec.RowCount, rec.Method)
		if rec.Message != "" {
			logger.Dim("%s", rec.Message)
		}
		return
	}
	logger.Error("%s failed (%s): %s", action, rec.Method, rec.Message)
}

func init() {
	backupCmd.Flags().StringVar(&backupName, "name", "", "backup table name (default <table>_copy_<timestamp>)")
	restoreCmd.Flags().BoolVar(&restoreKeepRows, "keep-rows", false, "do not delete existing rows before restoring")
	RootCmd.AddCommand(backupCmd, restoreCmd)
}
