// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunStatus records whether an extraction run completed.
type RunStatus string

const (
	RunOK     RunStatus = "ok"
	RunFailed RunStatus = "failed"
)

// Run is one recorded extraction run in the catalog.
type Run struct {
	ID         int64     `json:"id" yaml:"id"`
	Timestamp  time.Time `json:"timestamp" yaml:"timestamp"`
	ConfigPath string    `json:"config_path" yaml:"config_path"`
	InputPath  string    `json:"input_path" yaml:"input_path"`
	OutputPath string    `json:"output_path" yaml:"output_path"`
	Rows       int       `json:"rows" yaml:"rows"`
	Features   []string  `json:"features" yaml:"features"`
	Status     RunStatus `json:"status" yaml:"status"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}
