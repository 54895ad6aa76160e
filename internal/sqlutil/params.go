package sqlutil

import (
	"reflect"
	"strings"
)

// Params maps parameter names to scalar or array values. Name lookup is
// case-insensitive to match how placeholders are resolved in SQL text.
type Params map[string]interface{}

// Get returns the value bound to name, ignoring case.
func (p Params) Get(name string) (interface{}, bool) {
	if v, ok := p[name]; ok {
		return v, true
	}
	for k, v := range p {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return nil, false
}

// Has reports whether a value is bound to name, ignoring case.
func (p Params) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// IsArrayValue reports whether v should be treated as an expandable
// collection. Strings and byte buffers are scalar; maps are opaque
// scalar-like values rather than something to expand into an IN list.
func IsArrayValue(v interface{}) bool {
	if v == nil {
		return false
	}
	switch v.(type) {
	case string, []byte:
		return false
	}
	k := reflect.TypeOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// HasArrayValue reports whether any bound value is array-typed.
func (p Params) HasArrayValue() bool {
	for _, v := range p {
		if IsArrayValue(v) {
			return true
		}
	}
	return false
}
