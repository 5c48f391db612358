// Where: internal/domain/component/value.go
// What: Tagged string-or-integer value for component entries.
// Why: Decide quoting once at construction time instead of at render time.
package component

import (
	"strconv"
)

type valueKind int

const (
	kindString valueKind = iota
	kindInteger
)

// Value holds either a string or an unsigned 32-bit integer.
type Value struct {
	kind   valueKind
	text   string
	number uint32
}

// String builds a string value.
func String(text string) Value {
	return Value{kind: kindString, text: text}
}

// Integer builds an integer value.
func Integer(number uint32) Value {
	return Value{kind: kindInteger, number: number}
}

// ParseValue returns an integer value for canonical unsigned decimal literals
// that fit 32 bits and a string value for everything else.
// This is stricter than a plain u32 parse on purpose: "+1" and "01234" stay
// strings, so every value renders back exactly as it was entered.
func ParseValue(raw string) Value {
	if raw == "" || (len(raw) > 1 && raw[0] == '0') {
		return String(raw)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return String(raw)
		}
	}
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return String(raw)
	}
	return Integer(uint32(n))
}

// IsInteger reports whether the value is numeric.
func (v Value) IsInteger() bool {
	return v.kind == kindInteger
}

// Integer returns the numeric payload and whether the value is numeric.
func (v Value) Integer() (uint32, bool) {
	return v.number, v.kind == kindInteger
}

// Text returns the raw text without quotes.
func (v Value) Text() string {
	if v.kind == kindInteger {
		return strconv.FormatUint(uint64(v.number), 10)
	}
	return v.text
}

// Render formats the value for a .env line: integers bare, strings double-quoted.
// Embedded quotes and newlines are written as-is.
func (v Value) Render() string {
	if v.kind == kindInteger {
		return v.Text()
	}
	return `"` + v.text + `"`
}
