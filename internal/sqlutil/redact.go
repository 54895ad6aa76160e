package sqlutil

import "regexp"

// Connection strings embed credentials as password=... or pwd=...; any
// error text that might echo one must pass through Redact before it is
// shown or written anywhere.
var credentialPattern = regexp.MustCompile(`(?i)\b(password|pwd)\s*=\s*[^;'"\s]*`)

// Redact replaces credential fragments in s with Password=***.
func Redact(s string) string {
	return credentialPattern.ReplaceAllString(s, "Password=***")
}

// RedactErr is a convenience for error values; nil stays nil-safe by
// returning the empty string.
func RedactErr(err error) string {
	if err == nil {
		return ""
	}
	return Redact(err.Error())
}
