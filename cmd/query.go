package cmd

import (
	"github.com/spf13/cobra"

	"dbcli/internal/logger"
)

var queryParams string

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a read statement and print the result set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(queryParams)
		if err != nil {
			return err
		}
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		rs, err := sess.Query(args[0], params)
		if err != nil {
			return err
		}
		return renderRowSet(rs, formatFlag)
	},
}

var execParams string

var execCmd = &cobra.Command{
	Use:   "exec <sql>",
	Short: "Run a write or DDL statement and print the affected row count",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(execParams)
		if err != nil {
			return err
		}
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		n, err := sess.Execute(args[0], params)
		if err != nil {
			return err
		}
		logger.Success("%d row(s) affected", n)
		return nil
	},
}

func init() {
	queryCmd.Flags().StringVar(&queryParams, "params", "", `parameters as JSON, e.g. '{"Id": 3, "Ids": [1,2,3]}'`)
	execCmd.Flags().StringVar(&execParams, "params", "", `parameters as JSON, e.g. '{"Name": "x"}'`)
	RootCmd.AddCommand(queryCmd, execCmd)
}
