// Package config builds the ConnectionConfig a session runs with.
// Precedence follows viper: flag > DBCLI_* environment > config file
// (--config path or appsettings.json in the working directory) >
// hardcoded sqlite default.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"dbcli/internal/dialect"
)

const (
	// DefaultDialect and DefaultFile form the zero-configuration
	// fallback: a local sqlite file next to the binary.
	DefaultDialect = "sqlite"
	DefaultFile    = "dbcli.db"
)

// ConnectionConfig is everything a Session needs: where to connect, how
// to speak, and the two per-driver workaround flags.
type ConnectionConfig struct {
	ConnectionString string
	Dialect          *dialect.Profile

	// DisableNvarchar sends string parameters as VARCHAR instead of
	// NVARCHAR on drivers that distinguish (avoids implicit conversions
	// that defeat indexes on legacy SQL Server schemas).
	DisableNvarchar bool

	// DisableClearParameters keeps prepared statements (and their bound
	// parameter buffers) alive between calls on the same session instead
	// of re-preparing each time.
	DisableClearParameters bool
}

// Init wires viper: config file location, env bindings and defaults.
// Call once from the CLI layer before Load. A missing config file is
// fine; flags and env still apply.
func Init(explicitPath string) {
	if explicitPath != "" {
		viper.SetConfigFile(explicitPath)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("appsettings")
		viper.SetConfigType("json")
	}

	viper.SetEnvPrefix("DBCLI")
	_ = viper.BindEnv("ConnectionString", "DBCLI_CONNECTION_STRING")
	_ = viper.BindEnv("DbType", "DBCLI_DB_TYPE")
	_ = viper.BindEnv("DisableNvarchar", "DBCLI_DISABLE_NVARCHAR")
	_ = viper.BindEnv("DisableClearParameters", "DBCLI_DISABLE_CLEAR_PARAMETERS")

	viper.SetDefault("DbType", DefaultDialect)
	viper.SetDefault("ConnectionString", DefaultFile)

	// Not finding a file is the normal zero-config case.
	_ = viper.ReadInConfig()
}

// Load resolves the effective viper state into a ConnectionConfig.
func Load() (*ConnectionConfig, error) {
	dbType := strings.TrimSpace(viper.GetString("DbType"))
	prof, err := dialect.Resolve(dbType)
	if err != nil {
		return nil, err
	}

	connStr := viper.GetString("ConnectionString")
	if connStr == "" {
		return nil, fmt.Errorf("ConnectionString is required (flag, config file or DBCLI_CONNECTION_STRING)")
	}

	cfg := &ConnectionConfig{
		ConnectionString: connStr,
		Dialect:          prof,
		DisableNvarchar:  viper.GetBool("DisableNvarchar"),

		DisableClearParameters: viper.GetBool("DisableClearParameters"),
	}

	// "DisableNarvchar" shipped misspelled in early config files and is
	// honored as an alias.
	if !cfg.DisableNvarchar && viper.IsSet("DisableNarvchar") {
		cfg.DisableNvarchar = viper.GetBool("DisableNarvchar")
	}

	return cfg, nil
}
