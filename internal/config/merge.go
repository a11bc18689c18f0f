package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keySchemaVersion = "schema_version"
	keyGrid          = "grid"
	keyLogging       = "logging"
)

// MergeYAML loads a YAML file and merges it onto the target Config. Within
// each section, keys present in the overlay replace the target's values and
// absent keys keep them. Unknown top-level keys are ignored.
func MergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in MergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalSection decodes node over a copy of the current section for key
// and assigns it only when decoding succeeds.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keySchemaVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.SchemaVersion = v
	case keyGrid:
		v := target.Grid
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Grid = v
	case keyLogging:
		v := target.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	}
	return nil
}
