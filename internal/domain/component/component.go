// Where: internal/domain/component/component.go
// What: Named, optionally prefixed, ordered key/value container.
// Why: Keep env-line rendering pure and independent of persistence.
package component

import (
	"fmt"
	"strings"

	"github.com/Newmi1988/environmental/internal/domain/failure"
)

// CommentPrefix starts the header line emitted for every component.
const CommentPrefix = "# component "

// Pair is a raw key/value couple as typed by a user.
type Pair struct {
	Key   string
	Value string
}

// Entry is a key with its typed value.
type Entry struct {
	Key   string
	Value Value
}

// Component is immutable once built; accessors return copies.
type Component struct {
	name    string
	prefix  *string
	entries []Entry
}

// Pairs zips keys and values into pairs.
func Pairs(keys, values []string) ([]Pair, error) {
	if len(keys) == 0 && len(values) == 0 {
		return nil, fmt.Errorf("%w: no keys or values given", failure.ErrEmptyInput)
	}
	if len(keys) != len(values) {
		return nil, fmt.Errorf("%w: %d keys but %d values", failure.ErrArityMismatch, len(keys), len(values))
	}
	pairs := make([]Pair, len(keys))
	for i := range keys {
		pairs[i] = Pair{Key: keys[i], Value: values[i]}
	}
	return pairs, nil
}

// New builds a component, interpreting every value with ParseValue.
func New(name string, prefix *string, pairs []Pair) Component {
	entries := make([]Entry, 0, len(pairs))
	for _, p := range pairs {
		entries = append(entries, Entry{Key: p.Key, Value: ParseValue(p.Value)})
	}
	return Component{name: name, prefix: clonePrefix(prefix), entries: entries}
}

// FromEntries builds a component from already typed entries.
func FromEntries(name string, prefix *string, entries []Entry) Component {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return Component{name: name, prefix: clonePrefix(prefix), entries: copied}
}

// Name returns the component name.
func (c Component) Name() string {
	return c.name
}

// Prefix returns the prefix and whether one is set.
func (c Component) Prefix() (string, bool) {
	if c.prefix == nil {
		return "", false
	}
	return *c.prefix, true
}

// Entries returns the entries in insertion order.
func (c Component) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Keys returns the entry keys in insertion order, without prefix.
func (c Component) Keys() []string {
	keys := make([]string, len(c.entries))
	for i, e := range c.entries {
		keys[i] = e.Key
	}
	return keys
}

// ToEnv renders the header comment followed by one line per entry.
func (c Component) ToEnv() []string {
	lead := ""
	if c.prefix != nil {
		lead = strings.ToUpper(*c.prefix) + "_"
	}
	lines := make([]string, 0, len(c.entries)+1)
	lines = append(lines, CommentPrefix+c.name)
	for _, e := range c.entries {
		lines = append(lines, lead+e.Key+"="+e.Value.Render())
	}
	return lines
}

func clonePrefix(prefix *string) *string {
	if prefix == nil {
		return nil
	}
	p := *prefix
	return &p
}
