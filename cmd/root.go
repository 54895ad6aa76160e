package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"dbcli/internal/config"
	"dbcli/internal/engine"
	"dbcli/internal/logger"
)

var (
	cfgFile    string
	dsnFlag    string
	dbTypeFlag string
	formatFlag string
	logLevel   string
	noColor    bool
)

var RootCmd = &cobra.Command{
	Use:   "dbcli",
	Short: "A uniform SQL client, backup and schema-export tool for 30+ databases",
	Long: `
      _ _          _ _
   __| | |__   ___| (_)
  / _' | '_ \ / __| | |
 | (_| | |_) | (__| | |
  \__,_|_.__/ \___|_|_|

dbcli - one command surface for ad-hoc SQL, table backups and
schema exports across relational, analytical and distributed databases.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
		if noColor {
			logger.DisableColors()
		}
	},
}

// Execute runs the root command; errors are printed redacted and set a
// non-zero exit status.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { config.Init(cfgFile) })

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./appsettings.json)")
	RootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "connection string")
	RootCmd.PersistentFlags().StringVar(&dbTypeFlag, "db", "", "database kind (see 'dbcli dialects')")
	RootCmd.PersistentFlags().StringVar(&formatFlag, "format", "table", "output format: table, json or csv")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// Flag > env > config file > default.
	_ = viper.BindPFlag("ConnectionString", RootCmd.PersistentFlags().Lookup("dsn"))
	_ = viper.BindPFlag("DbType", RootCmd.PersistentFlags().Lookup("db"))
}

// openSession loads the effective configuration and opens the one
// session a command runs on. The caller must defer Close.
func openSession() (*engine.Session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Debugf("connecting to %s", cfg.Dialect.Name)
	return engine.Open(cfg)
}
