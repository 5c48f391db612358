// Where: internal/infra/store/schema.go
// What: JSON schema generation and validation for persisted documents.
// Why: Generate schemas from the document types so editors and the loader share one source of truth.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"

	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/infra/fileops"
)

// SchemaKind selects which document a schema describes.
type SchemaKind string

const (
	SchemaConfig  SchemaKind = "config"
	SchemaMapping SchemaKind = "mapping"
)

var (
	compileOnce     sync.Once
	compileErr      error
	compiledConfig  *jsonschema.Schema
	compiledMapping *jsonschema.Schema
)

// Schema returns the indented JSON schema for kind.
func Schema(kind SchemaKind) ([]byte, error) {
	reflector := &invopop.Reflector{Anonymous: true, DoNotReference: true}
	var schema *invopop.Schema
	switch kind {
	case SchemaConfig:
		schema = reflector.Reflect(&configDocument{})
		schema.Title = "environmental configuration"
	case SchemaMapping:
		schema = reflector.Reflect(&mappingDocument{})
		schema.Title = "environmental mapping"
	default:
		return nil, fmt.Errorf("unknown schema kind %q", kind)
	}
	return json.MarshalIndent(schema, "", "  ")
}

// ExportSchema writes the schema for kind to path.
func ExportSchema(kind SchemaKind, path string) error {
	payload, err := Schema(kind)
	if err != nil {
		return err
	}
	if err := fileops.WriteFile(path, append(payload, '\n')); err != nil {
		return fmt.Errorf("%w: write schema %s: %w", failure.ErrIO, path, err)
	}
	return nil
}

func loadSchemas() (*jsonschema.Schema, *jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiledConfig, compileErr = compileSchema(SchemaConfig)
		if compileErr != nil {
			return
		}
		compiledMapping, compileErr = compileSchema(SchemaMapping)
	})
	return compiledConfig, compiledMapping, compileErr
}

func compileSchema(kind SchemaKind) (*jsonschema.Schema, error) {
	payload, err := Schema(kind)
	if err != nil {
		return nil, err
	}
	url := "https://environmental.invalid/" + string(kind) + ".schema.json"
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(url, bytes.NewReader(payload)); err != nil {
		return nil, fmt.Errorf("add %s schema: %w", kind, err)
	}
	return compiler.Compile(url)
}

// validateYAML checks raw YAML against the schema for kind.
func validateYAML(kind SchemaKind, content []byte) error {
	configSchema, mappingSchema, err := loadSchemas()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	sch := configSchema
	if kind == SchemaMapping {
		sch = mappingSchema
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}
	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return describeValidation(err)
	}
	return nil
}

func describeValidation(err error) error {
	verr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err
	}
	var leaves []string
	collectLeaves(verr, &leaves)
	if len(leaves) == 0 {
		return err
	}
	return fmt.Errorf("schema violation: %s", strings.Join(leaves, "; "))
}

func collectLeaves(verr *jsonschema.ValidationError, out *[]string) {
	if len(verr.Causes) == 0 {
		location := verr.InstanceLocation
		if location == "" {
			location = "/"
		}
		*out = append(*out, location+": "+verr.Message)
		return
	}
	for _, cause := range verr.Causes {
		collectLeaves(cause, out)
	}
}
