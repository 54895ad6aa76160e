package export

import "regexp"

var (
	invalidFileChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	underscoreRuns   = regexp.MustCompile(`_{2,}`)
)

// sanitizeFileName makes an object name safe as a file-name fragment:
// filesystem-invalid characters and spaces become underscores, runs of
// underscores collapse to one.
func sanitizeFileName(name string) string {
	s := invalidFileChars.ReplaceAllString(name, "_")
	return underscoreRuns.ReplaceAllString(s, "_")
}
