// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract implements the CSV feature-extraction pipeline:
// load configured columns with type conversion, derive the enabled
// feature columns, and save the result.
package extract

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/extractfeature/pkg/types"
)

// Extractor runs the feature-extraction pipeline for one configuration.
type Extractor struct {
	cfg types.PipelineConfig
}

// Summary holds the outcome of a pipeline run.
type Summary struct {
	Rows       int      `json:"rows"`
	Features   []string `json:"features"`
	OutputPath string   `json:"output_path"`
}

// New builds an Extractor from a validated configuration. Enabled
// features must be derivable.
func New(cfg types.PipelineConfig) (*Extractor, error) {
	for _, name := range cfg.EnabledFeatures() {
		if !KnownFeature(name) {
			return nil, fmt.Errorf("unknown feature %q (known: %v)", name, KnownFeatures())
		}
	}
	return &Extractor{cfg: cfg}, nil
}

// Load reads the configured CSV input, keeping the configured fields
// and converting their values to the declared types.
func (e *Extractor) Load() (*Frame, error) {
	file, err := os.Open(e.cfg.InputDataPath)
	if err != nil {
		return nil, fmt.Errorf("opening input %s: %w", e.cfg.InputDataPath, err)
	}
	defer file.Close()

	frame, err := ReadCSV(file, e.cfg.FieldNames())
	if err != nil {
		return nil, err
	}
	if err := frame.ConvertTypes(e.cfg.Fields); err != nil {
		return nil, err
	}
	return frame, nil
}

// Derive appends every enabled feature column to the frame. Features
// derive in a fixed order, independent of configuration order.
func (e *Extractor) Derive(frame *Frame, w io.Writer) error {
	for _, def := range e.enabledDefs() {
		if e.cfg.Debug {
			fmt.Fprintf(w, "extracting feature %s\n", def.name)
		}
		if err := deriveFeature(frame, def); err != nil {
			return err
		}
	}
	return nil
}

// enabledDefs returns the enabled feature definitions in derivation
// order.
func (e *Extractor) enabledDefs() []featureDef {
	enabled := make(map[string]bool)
	for _, name := range e.cfg.EnabledFeatures() {
		enabled[name] = true
	}
	var defs []featureDef
	for _, def := range featureDefs {
		if enabled[def.name] {
			defs = append(defs, def)
		}
	}
	return defs
}

// Save writes the frame to the configured output path, creating the
// output directory when needed.
func (e *Extractor) Save(frame *Frame) error {
	if dir := filepath.Dir(e.cfg.OutputDataPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	file, err := os.Create(e.cfg.OutputDataPath)
	if err != nil {
		return fmt.Errorf("creating output %s: %w", e.cfg.OutputDataPath, err)
	}
	defer file.Close()

	if err := frame.WriteCSV(file); err != nil {
		return err
	}
	return file.Close()
}

// Run executes the full pipeline, logging progress to w, and returns
// the run summary and the resulting frame.
func (e *Extractor) Run(w io.Writer) (Summary, *Frame, error) {
	fmt.Fprintf(w, "loading %s with fields %v\n", e.cfg.InputDataPath, e.cfg.FieldNames())
	frame, err := e.Load()
	if err != nil {
		return Summary{}, nil, err
	}

	if err := e.Derive(frame, w); err != nil {
		return Summary{}, nil, err
	}

	fmt.Fprintf(w, "saving features to %s\n", e.cfg.OutputDataPath)
	if err := e.Save(frame); err != nil {
		return Summary{}, nil, err
	}

	var names []string
	for _, def := range e.enabledDefs() {
		names = append(names, def.name)
	}
	summary := Summary{
		Rows:       frame.NumRows(),
		Features:   names,
		OutputPath: e.cfg.OutputDataPath,
	}
	return summary, frame, nil
}
