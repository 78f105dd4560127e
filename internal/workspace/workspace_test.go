// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workspace

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/extractfeature/internal/config"
	"github.com/pdiddy/extractfeature/internal/extract"
)

func TestBootstrapCreatesWorkspace(t *testing.T) {
	base := t.TempDir()
	var log bytes.Buffer

	paths, err := Bootstrap("extractfeature", base, &log)
	if err != nil {
		t.Fatal(err)
	}

	if paths.Root != filepath.Join(base, "extractfeature_env") {
		t.Errorf("Root = %s", paths.Root)
	}
	for _, dir := range []string{paths.Root, paths.OutputDir, paths.CatalogDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("%s should be a directory (err=%v)", dir, err)
		}
	}
	if _, err := os.Stat(paths.ConfigPath); err != nil {
		t.Errorf("config.yaml should be seeded: %v", err)
	}
}

func TestBootstrapSeededConfigIsValid(t *testing.T) {
	paths, err := Bootstrap("demo", t.TempDir(), new(bytes.Buffer))
	if err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		t.Fatalf("seeded config must load and validate: %v", err)
	}
	if len(cfg.Fields) == 0 {
		t.Error("seeded config should declare fields")
	}
	if len(cfg.EnabledFeatures()) == 0 {
		t.Error("seeded config should enable features")
	}
}

func TestBootstrapSeededRunEndToEnd(t *testing.T) {
	// The test cwd is the package directory, so workspace-rooted
	// paths in the seeded config are what make this run work.
	paths, err := Bootstrap("demo", t.TempDir(), new(bytes.Buffer))
	if err != nil {
		t.Fatal(err)
	}

	csv := "first_name,last_name,email,phone,state\nAda,Lovelace,ada@example.com,555-0001,NY\n"
	if err := os.WriteFile(paths.InputPath, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	ex, err := extract.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	summary, _, err := ex.Run(new(bytes.Buffer))
	if err != nil {
		t.Fatalf("post-setup pipeline run failed: %v", err)
	}

	if summary.Rows != 1 {
		t.Errorf("summary.Rows = %d, want 1", summary.Rows)
	}
	wantOutput := filepath.Join(paths.OutputDir, "features.csv")
	if summary.OutputPath != wantOutput {
		t.Errorf("OutputPath = %s, want %s", summary.OutputPath, wantOutput)
	}
	if _, err := os.Stat(wantOutput); err != nil {
		t.Errorf("output should land in the workspace output dir: %v", err)
	}
	if cfg.CatalogDir != paths.CatalogDir {
		t.Errorf("CatalogDir = %s, want %s", cfg.CatalogDir, paths.CatalogDir)
	}
}

func TestBootstrapKeepsExistingConfig(t *testing.T) {
	base := t.TempDir()

	paths, err := Bootstrap("demo", base, new(bytes.Buffer))
	if err != nil {
		t.Fatal(err)
	}
	custom := []byte("input_data_path: mine.csv\nfields:\n  - email: str\n")
	if err := os.WriteFile(paths.ConfigPath, custom, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Bootstrap("demo", base, new(bytes.Buffer)); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != string(custom) {
		t.Error("re-bootstrap must not overwrite an existing config")
	}
}

func TestBootstrapRejectsBadNames(t *testing.T) {
	for _, name := range []string{"", "a/b", `a\b`} {
		if _, err := Bootstrap(name, t.TempDir(), new(bytes.Buffer)); err == nil {
			t.Errorf("Bootstrap(%q) should fail", name)
		}
	}
}
