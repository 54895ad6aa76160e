package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"dbcli/internal/engine"
	"dbcli/internal/logger"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive shell on one pinned connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		logger.Info("connected to %s; end statements with GO or ;, :quit to leave", sess.Dialect().Name)

		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		var buf strings.Builder

		fmt.Print("dbcli> ")
		for scanner.Scan() {
			line := scanner.Text()
			trimmed := strings.TrimSpace(line)

			switch strings.ToLower(trimmed) {
			case ":quit", ":q", "exit", "quit":
				return nil
			case "":
				fmt.Print("dbcli> ")
				continue
			}

			done := false
			switch {
			case isTerminator(trimmed):
				done = true
			case strings.HasSuffix(trimmed, ";"):
				buf.WriteString(strings.TrimSuffix(trimmed, ";"))
				buf.WriteByte('\n')
				done = true
			default:
				buf.WriteString(line)
				buf.WriteByte('\n')
			}

			if done {
				stmt := strings.TrimSpace(buf.String())
				buf.Reset()
				if stmt != "" {
					runReplStatement(sess, stmt)
				}
				fmt.Print("dbcli> ")
				continue
			}
			fmt.Print("   ..> ")
		}
		return scanner.Err()
	},
}

// isTerminator reports whether a line is a standalone batch terminator.
func isTerminator(line string) bool {
	rest := strings.TrimSpace(line)
	if len(rest) < 2 || !strings.EqualFold(rest[:2], "GO") {
		return false
	}
	rest = strings.TrimSpace(rest[2:])
	return rest == "" || rest == ";"
}

func runReplStatement(sess *engine.Session, stmt string) {
	upper := strings.ToUpper(strings.TrimSpace(stmt))
	if strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "SHOW") ||
		strings.HasPrefix(upper, "WITH") || strings.HasPrefix(upper, "PRAGMA") {
		rs, err := sess.Query(stmt, nil)
		if err != nil {
			logger.Error("%v", err)
			return
		}
		if err := renderRowSet(rs, formatFlag); err != nil {
			logger.Error("%v", err)
		}
		return
	}
	n, err := sess.Execute(stmt, nil)
	if err != nil {
		logger.Error("%v", err)
		return
	}
	logger.Success("%d row(s) affected", n)
}

func init() {
	RootCmd.AddCommand(replCmd)
}
