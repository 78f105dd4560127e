// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the configuration and result structures shared
// across the extraction pipeline, the quality gate, and the run catalog.
package types

import (
	"fmt"

	"go.yaml.in/yaml/v3"
)

// FieldType identifies the target type a CSV column is converted to.
type FieldType string

const (
	FieldString FieldType = "str"
	FieldInt    FieldType = "int"
	FieldFloat  FieldType = "float"
	FieldBool   FieldType = "bool"
)

// Valid reports whether t is a recognized field type.
func (t FieldType) Valid() bool {
	switch t {
	case FieldString, FieldInt, FieldFloat, FieldBool:
		return true
	}
	return false
}

// FieldSpec names a CSV column to load and the type its values are
// converted to. In YAML each entry is a single name: type pair:
//
//	fields:
//	  - first_name: str
//	  - age: int
type FieldSpec struct {
	Name string
	Type FieldType
}

// UnmarshalYAML accepts the single-pair mapping form.
func (f *FieldSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("field entry must be a single name: type pair")
	}
	f.Name = node.Content[0].Value
	f.Type = FieldType(node.Content[1].Value)
	return nil
}

// MarshalYAML writes the single-pair mapping form.
func (f FieldSpec) MarshalYAML() (any, error) {
	return map[string]FieldType{f.Name: f.Type}, nil
}

// FeatureSpec names a derived feature and whether it is enabled. In
// YAML each entry is a single name: bool pair:
//
//	feature:
//	  - HasPhone: true
//	  - EmailDomain: false
type FeatureSpec struct {
	Name    string
	Enabled bool
}

// UnmarshalYAML accepts the single-pair mapping form.
func (f *FeatureSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("feature entry must be a single name: bool pair")
	}
	f.Name = node.Content[0].Value
	return node.Content[1].Decode(&f.Enabled)
}

// MarshalYAML writes the single-pair mapping form.
func (f FeatureSpec) MarshalYAML() (any, error) {
	return map[string]bool{f.Name: f.Enabled}, nil
}

// PipelineConfig holds the full extraction pipeline configuration
// loaded from a YAML file.
type PipelineConfig struct {
	// InputDataPath is the CSV file features are extracted from.
	InputDataPath string `json:"input_data_path" yaml:"input_data_path"`

	// OutputDataPath is where the extracted features are written
	// (default "output.csv").
	OutputDataPath string `json:"output_data_path" yaml:"output_data_path"`

	// Fields lists the columns to load and their type conversions.
	// At least one field is required.
	Fields []FieldSpec `json:"fields" yaml:"fields"`

	// Features lists the derived features and their enablement.
	Features []FeatureSpec `json:"feature" yaml:"feature"`

	// Debug enables verbose progress logging.
	Debug bool `json:"debug" yaml:"debug"`

	// CatalogDir is the directory holding the run catalog database
	// (default "catalog").
	CatalogDir string `json:"catalog_dir" yaml:"catalog_dir"`
}

// EnabledFeatures returns the names of features switched on in the
// configuration, in configuration order.
func (c PipelineConfig) EnabledFeatures() []string {
	var names []string
	for _, f := range c.Features {
		if f.Enabled {
			names = append(names, f.Name)
		}
	}
	return names
}

// FieldNames returns the configured column names in order.
func (c PipelineConfig) FieldNames() []string {
	names := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		names[i] = f.Name
	}
	return names
}
