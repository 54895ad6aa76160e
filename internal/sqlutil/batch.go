package sqlutil

import "strings"

// isBatchSeparator reports whether a line, by itself, is the batch
// separator: the token GO (any case), optionally followed by a semicolon,
// with nothing else on the line.
func isBatchSeparator(line string) bool {
	t := strings.TrimSpace(line)
	if len(t) < 2 || !strings.EqualFold(t[:2], "GO") {
		return false
	}
	rest := strings.TrimSpace(t[2:])
	return rest == "" || rest == ";"
}

// SplitBatches splits a script on standalone GO separator lines into
// trimmed, non-empty statements. Only meaningful for dialects with
// SupportsBatchSeparator set; other dialects execute scripts whole.
func SplitBatches(script string) []string {
	var batches []string
	var cur []string

	flush := func() {
		stmt := strings.TrimSpace(strings.Join(cur, "\n"))
		if stmt != "" {
			batches = append(batches, stmt)
		}
		cur = cur[:0]
	}

	for _, line := range strings.Split(script, "\n") {
		if isBatchSeparator(line) {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return batches
}
