// Where: internal/infra/store/store.go
// What: Load/save helpers for the configuration and mapping files.
// Why: Round-trip both stores losslessly and classify failures as IO or parse errors.
package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Newmi1988/environmental/internal/domain/config"
	"github.com/Newmi1988/environmental/internal/domain/failure"
	"github.com/Newmi1988/environmental/internal/domain/mapping"
	"github.com/Newmi1988/environmental/internal/infra/fileops"
)

// LoadConfig reads and validates a configuration file.
func LoadConfig(path string) (config.Configuration, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return config.Configuration{}, fmt.Errorf("%w: read config %s: %w", failure.ErrIO, path, err)
	}
	var doc configDocument
	if err := decode(SchemaConfig, payload, &doc); err != nil {
		return config.Configuration{}, fmt.Errorf("%w: config %s: %w", failure.ErrParse, path, err)
	}
	cfg, err := doc.toDomain()
	if err != nil {
		return config.Configuration{}, fmt.Errorf("%w: config %s: %w", failure.ErrParse, path, err)
	}
	return cfg, nil
}

// LoadConfigOrEmpty behaves like LoadConfig but returns an empty
// configuration when the file does not exist yet.
func LoadConfigOrEmpty(path string) (config.Configuration, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config.Empty(), nil
	}
	return LoadConfig(path)
}

// SaveConfig serializes every component, in order, to path.
func SaveConfig(path string, cfg config.Configuration) error {
	return save(path, "config", newConfigDocument(cfg))
}

// LoadMapping reads and validates a mapping file.
func LoadMapping(path string) (mapping.Mapping, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return mapping.Mapping{}, fmt.Errorf("%w: read mapping %s: %w", failure.ErrIO, path, err)
	}
	var doc mappingDocument
	if err := decode(SchemaMapping, payload, &doc); err != nil {
		return mapping.Mapping{}, fmt.Errorf("%w: mapping %s: %w", failure.ErrParse, path, err)
	}
	return doc.toDomain(), nil
}

// SaveMapping serializes every mapping entry, in order, to path.
func SaveMapping(path string, m mapping.Mapping) error {
	return save(path, "mapping", newMappingDocument(m))
}

func decode(kind SchemaKind, payload []byte, out any) error {
	if err := validateYAML(kind, payload); err != nil {
		return err
	}
	return yaml.Unmarshal(payload, out)
}

func save(path, label string, doc any) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %s: %w", label, err)
	}
	if err := fileops.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("%w: write %s %s: %w", failure.ErrIO, label, path, err)
	}
	return nil
}
