package cmd

import (
	"github.com/spf13/cobra"

	"dbcli/internal/logger"
)

var callParams string

// Stored-routine invocation takes input parameters only; output
// parameters and multiple result sets are a documented limitation.
var callCmd = &cobra.Command{
	Use:   "call <procedure>",
	Short: "Invoke a stored procedure (no result set)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(callParams)
		if err != nil {
			return err
		}
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		n, err := sess.CallProcedure(args[0], params)
		if err != nil {
			return err
		}
		logger.Success("%d row(s) affected", n)
		return nil
	},
}

var callqCmd = &cobra.Command{
	Use:   "callq <procedure>",
	Short: "Invoke a stored procedure and print its result set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		params, err := parseParams(callParams)
		if err != nil {
			return err
		}
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		rs, err := sess.QueryProcedure(args[0], params)
		if err != nil {
			return err
		}
		return renderRowSet(rs, formatFlag)
	},
}

func init() {
	callCmd.Flags().StringVar(&callParams, "params", "", "input parameters as JSON")
	callqCmd.Flags().StringVar(&callParams, "params", "", "input parameters as JSON")
	RootCmd.AddCommand(callCmd, callqCmd)
}
