package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dbcli/internal/dialect"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List supported database kinds and their capabilities",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-15s %-10s %-8s %-8s %s\n", "NAME", "DRIVER", "PARAMS", "BATCHES", "ALIASES")
		for _, name := range dialect.Names() {
			p := dialect.Lookup(name)
			driver := p.Driver
			if driver == "" {
				driver = "-"
			}
			fmt.Printf("%-15s %-10s %-8s %-8s %s\n",
				p.Name, driver, yn(p.SupportsParameters), yn(p.SupportsBatchSeparator),
				strings.Join(p.Aliases, ", "))
		}
	},
}

func yn(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	RootCmd.AddCommand(dialectsCmd)
}
