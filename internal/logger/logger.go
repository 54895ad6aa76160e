// Package logger provides the CLI's output helpers: colored status
// lines for users plus a leveled logrus logger for --verbose runs.
// Error output is credential-redacted on the way out.
package logger

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"dbcli/internal/sqlutil"
)

var (
	SuccessColor = color.New(color.FgGreen, color.Bold)
	ErrorColor   = color.New(color.FgRed, color.Bold)
	WarnColor    = color.New(color.FgYellow, color.Bold)
	InfoColor    = color.New(color.FgCyan)
	DimColor     = color.New(color.FgHiBlack)
)

var log = logrus.New()

// Init sets the verbosity level and output target.
func Init(level string) {
	log.SetOutput(os.Stderr)
	switch strings.ToLower(level) {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "warn", "warning":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
}

// Debugf logs through logrus at debug level, redacted.
func Debugf(format string, args ...interface{}) {
	log.Debugf("%s", sqlutil.Redact(fmt.Sprintf(format, args...)))
}

// Success prints a green checkmark line.
func Success(format string, args ...interface{}) {
	_, _ = SuccessColor.Fprint(os.Stdout, "✓ ")
	fmt.Println(fmt.Sprintf(format, args...))
}

// Error prints a red X line to stderr. Every message passes through
// credential redaction; this is the mandatory last stop before text
// that might echo a connection string reaches the user.
func Error(format string, args ...interface{}) {
	_, _ = ErrorColor.Fprint(os.Stderr, "✗ ")
	fmt.Fprintln(os.Stderr, sqlutil.Redact(fmt.Sprintf(format, args...)))
}

// Warning prints a yellow exclamation line, redacted.
func Warning(format string, args ...interface{}) {
	_, _ = WarnColor.Fprint(os.Stdout, "⚠ ")
	fmt.Println(sqlutil.Redact(fmt.Sprintf(format, args...)))
}

// Info prints a cyan arrow line.
func Info(format string, args ...interface{}) {
	_, _ = InfoColor.Fprint(os.Stdout, "→ ")
	fmt.Println(fmt.Sprintf(format, args...))
}

// Dim prints secondary text.
func Dim(format string, args ...interface{}) {
	_, _ = DimColor.Println(fmt.Sprintf(format, args...))
}

// DisableColors turns off color output for non-TTY runs.
func DisableColors() { color.NoColor = true }
