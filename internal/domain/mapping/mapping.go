// Where: internal/domain/mapping/mapping.go
// What: Folder-to-component bindings and their resolution into env lines.
// Why: Keep apply planning pure; writing and printing live in the apply usecase.
package mapping

import (
	"path/filepath"
	"slices"
)

// Mode selects how resolved lines are delivered.
type Mode int

const (
	// ModeWriteFile writes a .env file into each target folder.
	ModeWriteFile Mode = iota
	// ModePrintOnly prints resolved lines to the output.
	ModePrintOnly
)

func (m Mode) String() string {
	switch m {
	case ModeWriteFile:
		return "write"
	case ModePrintOnly:
		return "print"
	default:
		return "unknown"
	}
}

// Entry binds a target folder to component names.
// Names are plain identifiers resolved at apply time; dangling names are allowed.
type Entry struct {
	Path       string
	Components []string
}

// Selection is one folder and the components picked for it.
type Selection struct {
	Folder     string
	Components []string
}

// Resolution is the planned output for one entry.
type Resolution struct {
	Path  string
	Lines []string
}

// Resolver turns component names into env lines.
type Resolver interface {
	ToEnv(names []string) []string
}

// Mapping is an ordered collection of entries. Paths may repeat.
type Mapping struct {
	entries []Entry
}

// New builds a mapping from selections, preserving folder and component order.
func New(selections []Selection) Mapping {
	entries := make([]Entry, 0, len(selections))
	for _, s := range selections {
		entries = append(entries, Entry{Path: s.Folder, Components: slices.Clone(nonNil(s.Components))})
	}
	return Mapping{entries: entries}
}

// FromEntries builds a mapping from persisted entries.
func FromEntries(entries []Entry) Mapping {
	owned := make([]Entry, 0, len(entries))
	for _, e := range entries {
		owned = append(owned, Entry{Path: e.Path, Components: slices.Clone(nonNil(e.Components))})
	}
	return Mapping{entries: owned}
}

// Entries returns the entries in storage order.
func (m Mapping) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		out[i] = Entry{Path: e.Path, Components: slices.Clone(e.Components)}
	}
	return out
}

// ListTargets returns one path per entry in storage order, duplicates included.
func (m Mapping) ListTargets() []string {
	targets := make([]string, len(m.entries))
	for i, e := range m.entries {
		targets[i] = e.Path
	}
	return targets
}

// Resolve plans output for every entry whose path is in targets.
// Entries are visited in storage order and each match is resolved independently.
func (m Mapping) Resolve(resolver Resolver, targets []string) []Resolution {
	wanted := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		wanted[filepath.Clean(t)] = struct{}{}
	}
	var plan []Resolution
	for _, e := range m.entries {
		if _, ok := wanted[filepath.Clean(e.Path)]; !ok {
			continue
		}
		plan = append(plan, Resolution{Path: e.Path, Lines: resolver.ToEnv(e.Components)})
	}
	return plan
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
