package sqlutil

import (
	"fmt"
	"reflect"
	"strings"
)

// isIdentStart / isIdentPart follow the usual SQL identifier rules for
// placeholder names: letter or underscore, then letters, digits, underscores.
func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// replacePlaceholders walks sqlText left to right, tracking single-quoted
// string literals (a doubled '' inside a literal is an escaped quote), and
// invokes repl for every @identifier found outside a literal. The string
// returned by repl is substituted for the placeholder, '@' included.
//
// Known limitation: SQL comments are not tracked, so an @name inside a
// -- or /* */ comment is still treated as a placeholder. This is kept
// deliberately so that rewriting stays a single linear scan and existing
// scripts round-trip unchanged.
func replacePlaceholders(sqlText string, repl func(name string) string) string {
	var b strings.Builder
	b.Grow(len(sqlText))

	inLiteral := false
	for i := 0; i < len(sqlText); i++ {
		c := sqlText[i]

		if inLiteral {
			b.WriteByte(c)
			if c == '\'' {
				if i+1 < len(sqlText) && sqlText[i+1] == '\'' {
					// escaped quote, stay inside the literal
					b.WriteByte('\'')
					i++
				} else {
					inLiteral = false
				}
			}
			continue
		}

		switch {
		case c == '\'':
			inLiteral = true
			b.WriteByte(c)
		case c == '@' && i+1 < len(sqlText) && isIdentStart(sqlText[i+1]):
			j := i + 1
			for j < len(sqlText) && isIdentPart(sqlText[j]) {
				j++
			}
			b.WriteString(repl(sqlText[i+1 : j]))
			i = j - 1
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Rewrite expands array-valued parameters referenced as @name in sqlText
// into comma-separated scalar placeholders @name_0, @name_1, ... with
// matching entries in the returned parameter set. An empty array becomes
// the literal NULL (an empty IN () is invalid everywhere) and contributes
// no parameter. Scalar parameters and SQL without array parameters pass
// through untouched.
func Rewrite(sqlText string, params Params) (string, Params) {
	if len(params) == 0 || !params.HasArrayValue() {
		return sqlText, params
	}

	out := make(Params, len(params))
	for k, v := range params {
		if !IsArrayValue(v) {
			out[k] = v
		}
	}
	expanded := make(map[string]bool)

	rewritten := replacePlaceholders(sqlText, func(name string) string {
		v, ok := params.Get(name)
		if !ok || !IsArrayValue(v) {
			// unknown or scalar placeholder, copy through verbatim
			return "@" + name
		}
		expanded[strings.ToLower(name)] = true
		return expandArray(name, v, out)
	})

	// Arrays never referenced in the SQL still must not survive as
	// array-typed bindings; expand them under their own names.
	for k, v := range params {
		if IsArrayValue(v) && !expanded[strings.ToLower(k)] {
			expandArray(k, v, out)
		}
	}

	return rewritten, out
}

// expandArray appends name_i entries for every element of arr to out and
// returns the placeholder list text to splice into the SQL.
func expandArray(name string, arr interface{}, out Params) string {
	rv := reflect.ValueOf(arr)
	n := rv.Len()
	if n == 0 {
		return "NULL"
	}
	names := make([]string, n)
	for i := 0; i < n; i++ {
		elem := fmt.Sprintf("%s_%d", name, i)
		out[elem] = rv.Index(i).Interface()
		names[i] = "@" + elem
	}
	return strings.Join(names, ", ")
}
