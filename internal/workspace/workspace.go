// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace bootstraps a named project workspace: the
// <name>_env directory tree and a seeded default configuration.
package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Paths locates the pieces of a bootstrapped workspace.
type Paths struct {
	Root       string
	ConfigPath string
	InputPath  string
	OutputDir  string
	CatalogDir string
}

// defaultConfigTemplate seeds a new workspace with a runnable starting
// point. Paths are rooted in the workspace so the pipeline works from
// any working directory.
const defaultConfigTemplate = `# extractfeature pipeline configuration
input_data_path: '%s'
output_data_path: '%s'
catalog_dir: '%s'

# Columns to load from the input CSV and their types (str, int, float, bool).
fields:
  - first_name: str
  - last_name: str
  - email: str
  - phone: str
  - state: str

# Derived feature columns.
feature:
  - HasPhone: true
  - EmailDomain: true
  - FirstNameLength: true
  - LastNameLength: true
  - IsInNY: true

debug: false
`

// Bootstrap creates the <name>_env workspace under baseDir: the root
// directory, output/ and catalog/ subdirectories, and a default
// config.yaml when none exists. Progress is logged to w. An existing
// workspace is left intact.
func Bootstrap(name, baseDir string, w io.Writer) (Paths, error) {
	if name == "" {
		return Paths{}, fmt.Errorf("package name is required")
	}
	if strings.ContainsAny(name, `/\`) {
		return Paths{}, fmt.Errorf("package name %q must not contain path separators", name)
	}

	root := filepath.Join(baseDir, name+"_env")
	paths := Paths{
		Root:       root,
		ConfigPath: filepath.Join(root, "config.yaml"),
		InputPath:  filepath.Join(root, "data.csv"),
		OutputDir:  filepath.Join(root, "output"),
		CatalogDir: filepath.Join(root, "catalog"),
	}

	for _, dir := range []string{root, paths.OutputDir, paths.CatalogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Paths{}, fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Fprintf(w, "  %s\n", dir)
	}

	if _, err := os.Stat(paths.ConfigPath); os.IsNotExist(err) {
		seeded := fmt.Sprintf(defaultConfigTemplate,
			paths.InputPath, filepath.Join(paths.OutputDir, "features.csv"), paths.CatalogDir)
		if err := os.WriteFile(paths.ConfigPath, []byte(seeded), 0o644); err != nil {
			return Paths{}, fmt.Errorf("seeding %s: %w", paths.ConfigPath, err)
		}
		fmt.Fprintf(w, "  %s (seeded)\n", paths.ConfigPath)
	} else if err == nil {
		fmt.Fprintf(w, "  %s (kept)\n", paths.ConfigPath)
	} else {
		return Paths{}, fmt.Errorf("checking %s: %w", paths.ConfigPath, err)
	}

	fmt.Fprintf(w, "workspace %s ready\n", root)
	return paths, nil
}
