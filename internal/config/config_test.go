// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/extractfeature/pkg/types"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		errMsg string
		check  func(t *testing.T, cfg types.PipelineConfig)
	}{
		{
			name: "full config",
			yaml: `
input_data_path: data.csv
output_data_path: out.csv
catalog_dir: runs
debug: true
fields:
  - first_name: str
  - age: int
feature:
  - HasPhone: true
  - EmailDomain: false
`,
			check: func(t *testing.T, cfg types.PipelineConfig) {
				assert.Equal(t, "data.csv", cfg.InputDataPath)
				assert.Equal(t, "out.csv", cfg.OutputDataPath)
				assert.Equal(t, "runs", cfg.CatalogDir)
				assert.True(t, cfg.Debug)
				require.Len(t, cfg.Fields, 2)
				assert.Equal(t, types.FieldSpec{Name: "first_name", Type: types.FieldString}, cfg.Fields[0])
				assert.Equal(t, types.FieldSpec{Name: "age", Type: types.FieldInt}, cfg.Fields[1])
				assert.Equal(t, []string{"HasPhone"}, cfg.EnabledFeatures())
			},
		},
		{
			name: "defaults applied",
			yaml: `
input_data_path: data.csv
fields:
  - email: str
`,
			check: func(t *testing.T, cfg types.PipelineConfig) {
				assert.Equal(t, "output.csv", cfg.OutputDataPath)
				assert.Equal(t, "catalog", cfg.CatalogDir)
			},
		},
		{
			name: "missing fields key",
			yaml: `
input_data_path: data.csv
`,
			errMsg: `missing required key "fields"`,
		},
		{
			name: "unknown field type",
			yaml: `
input_data_path: data.csv
fields:
  - age: integer
`,
			errMsg: `unknown type "integer"`,
		},
		{
			name: "duplicate field",
			yaml: `
input_data_path: data.csv
fields:
  - email: str
  - email: str
`,
			errMsg: `duplicate field "email"`,
		},
		{
			name: "empty input path",
			yaml: `
fields:
  - email: str
`,
			errMsg: "input_data_path is empty",
		},
		{
			name: "field entry with multiple pairs",
			yaml: `
input_data_path: data.csv
fields:
  - email: str
    phone: str
`,
			errMsg: "single name: type pair",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.yaml))
			if tt.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}
