// Where: internal/infra/store/documents.go
// What: On-disk document shapes for configuration and mapping files.
// Why: Keep YAML and schema tags out of the domain model.
package store

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/Newmi1988/environmental/internal/domain/component"
	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/mapping"
)

type configDocument struct {
	Components []componentDocument `yaml:"components" json:"components" jsonschema:"description=Reusable sets of named values"`
}

type componentDocument struct {
	Name   text            `yaml:"name" json:"name" jsonschema:"description=Unique component name"`
	Prefix *text           `yaml:"prefix" json:"prefix,omitempty"`
	Values []entryDocument `yaml:"values" json:"values"`
}

type entryDocument struct {
	Name  text          `yaml:"name" json:"name"`
	Value valueDocument `yaml:"value" json:"value"`
}

type mappingDocument struct {
	Mappings []mappingEntryDocument `yaml:"mappings" json:"mappings" jsonschema:"description=Folder to component bindings"`
}

type mappingEntryDocument struct {
	Path       text   `yaml:"path" json:"path" jsonschema:"description=Folder that receives the .env file"`
	Components []text `yaml:"components" json:"components" jsonschema:"description=Component names resolved at apply time"`
}

// text is a string field written double-quoted, so no content can resolve
// to another YAML type on reload. Invalid UTF-8 is written as !!binary.
type text string

func (t text) MarshalYAML() (any, error) {
	return stringNode(string(t)), nil
}

func stringNode(s string) *yaml.Node {
	if !utf8.ValidString(s) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!binary", Value: base64.StdEncoding.EncodeToString([]byte(s))}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s, Style: yaml.DoubleQuotedStyle}
}

// JSONSchemaExtend allows an explicit null prefix, which is how SaveConfig writes a missing one.
func (componentDocument) JSONSchemaExtend(schema *jsonschema.Schema) {
	schema.Properties.Set("prefix", &jsonschema.Schema{
		Description: "Upper-cased and joined with _ in front of every key",
		OneOf: []*jsonschema.Schema{
			{Type: "string"},
			{Type: "null"},
		},
	})
}

// valueDocument persists a component value as a YAML int or string.
type valueDocument struct {
	component.Value
}

func (v valueDocument) MarshalYAML() (any, error) {
	if n, ok := v.Integer(); ok {
		return n, nil
	}
	return stringNode(v.Text()), nil
}

func (v *valueDocument) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: value must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!int":
		var n uint32
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("line %d: value must be an unsigned 32-bit integer: %w", node.Line, err)
		}
		v.Value = component.Integer(n)
	case "!!str", "!!merge":
		v.Value = component.String(node.Value)
	case "!!binary":
		var raw string
		if err := node.Decode(&raw); err != nil {
			return fmt.Errorf("line %d: value is not valid base64: %w", node.Line, err)
		}
		v.Value = component.String(raw)
	default:
		return fmt.Errorf("line %d: value must be a string or unsigned integer, got %s", node.Line, node.ShortTag())
	}
	return nil
}

func (valueDocument) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Description: "Integers are written bare, strings double-quoted",
		OneOf: []*jsonschema.Schema{
			{Type: "integer", Minimum: "0", Maximum: "4294967295"},
			{Type: "string"},
		},
	}
}

func newConfigDocument(cfg config.Configuration) configDocument {
	comps := cfg.Components()
	doc := configDocument{Components: make([]componentDocument, 0, len(comps))}
	for _, c := range comps {
		cd := componentDocument{Name: text(c.Name()), Values: make([]entryDocument, 0)}
		if prefix, ok := c.Prefix(); ok {
			p := text(prefix)
			cd.Prefix = &p
		}
		for _, e := range c.Entries() {
			cd.Values = append(cd.Values, entryDocument{Name: text(e.Key), Value: valueDocument{Value: e.Value}})
		}
		doc.Components = append(doc.Components, cd)
	}
	return doc
}

func (d configDocument) toDomain() (config.Configuration, error) {
	comps := make([]component.Component, 0, len(d.Components))
	for _, cd := range d.Components {
		entries := make([]component.Entry, 0, len(cd.Values))
		for _, ed := range cd.Values {
			entries = append(entries, component.Entry{Key: string(ed.Name), Value: ed.Value.Value})
		}
		var prefix *string
		if cd.Prefix != nil {
			p := string(*cd.Prefix)
			prefix = &p
		}
		comps = append(comps, component.FromEntries(string(cd.Name), prefix, entries))
	}
	return config.New(comps...)
}

func newMappingDocument(m mapping.Mapping) mappingDocument {
	entries := m.Entries()
	doc := mappingDocument{Mappings: make([]mappingEntryDocument, 0, len(entries))}
	for _, e := range entries {
		doc.Mappings = append(doc.Mappings, mappingEntryDocument{Path: text(e.Path), Components: texts(e.Components)})
	}
	return doc
}

func (d mappingDocument) toDomain() mapping.Mapping {
	entries := make([]mapping.Entry, 0, len(d.Mappings))
	for _, md := range d.Mappings {
		entries = append(entries, mapping.Entry{Path: string(md.Path), Components: strs(md.Components)})
	}
	return mapping.FromEntries(entries)
}

func texts(in []string) []text {
	out := make([]text, len(in))
	for i, s := range in {
		out[i] = text(s)
	}
	return out
}

func strs(in []text) []string {
	out := make([]string, len(in))
	for i, t := range in {
		out[i] = string(t)
	}
	return out
}
