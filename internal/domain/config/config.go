// Where: internal/domain/config/config.go
// What: Configuration store owning the set of components.
// Why: Enforce name uniqueness and resolve env lines without I/O.
package config

import (
	"fmt"
	"slices"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/failure"
)

// Configuration is an ordered, name-unique set of components.
// Create operations return a new value and leave the receiver untouched.
type Configuration struct {
	components []component.Component
}

// New builds a configuration, rejecting duplicate component names.
func New(components ...component.Component) (Configuration, error) {
	seen := make(map[string]struct{}, len(components))
	owned := make([]component.Component, 0, len(components))
	for _, c := range components {
		if _, ok := seen[c.Name()]; ok {
			return Configuration{}, fmt.Errorf("%w: component %q defined twice", failure.ErrNameConflict, c.Name())
		}
		seen[c.Name()] = struct{}{}
		owned = append(owned, c)
	}
	return Configuration{components: owned}, nil
}

// Empty returns a configuration without components.
func Empty() Configuration {
	return Configuration{components: []component.Component{}}
}

// Components returns the components in storage order.
func (c Configuration) Components() []component.Component {
	return slices.Clone(c.components)
}

// Len returns the number of components.
func (c Configuration) Len() int {
	return len(c.components)
}

// NameExists reports whether a component with exactly this name exists.
func (c Configuration) NameExists(name string) bool {
	_, ok := c.Component(name)
	return ok
}

// Component looks up a component by exact name.
func (c Configuration) Component(name string) (component.Component, bool) {
	for _, comp := range c.components {
		if comp.Name() == name {
			return comp, true
		}
	}
	return component.Component{}, false
}

// ListComponents returns component names in storage order.
func (c Configuration) ListComponents() []string {
	names := make([]string, len(c.components))
	for i, comp := range c.components {
		names[i] = comp.Name()
	}
	return names
}

// CreateComponent appends an unprefixed component.
func (c Configuration) CreateComponent(name string, pairs []component.Pair) (Configuration, error) {
	return c.add(component.New(name, nil, pairs))
}

// CreateComponentWithPrefix appends a prefixed component.
func (c Configuration) CreateComponentWithPrefix(name, prefix string, pairs []component.Pair) (Configuration, error) {
	return c.add(component.New(name, &prefix, pairs))
}

// Add appends an already built component.
func (c Configuration) Add(comp component.Component) (Configuration, error) {
	return c.add(comp)
}

func (c Configuration) add(comp component.Component) (Configuration, error) {
	if c.NameExists(comp.Name()) {
		return Configuration{}, fmt.Errorf("%w: component %q already exists", failure.ErrNameConflict, comp.Name())
	}
	next := make([]component.Component, 0, len(c.components)+1)
	next = append(next, c.components...)
	next = append(next, comp)
	return Configuration{components: next}, nil
}

// ToEnv concatenates the env lines of every component whose name is in names.
// Output follows storage order, not the order of names; unknown names are ignored.
func (c Configuration) ToEnv(names []string) []string {
	var lines []string
	for _, comp := range c.components {
		if slices.Contains(names, comp.Name()) {
			lines = append(lines, comp.ToEnv()...)
		}
	}
	return lines
}
