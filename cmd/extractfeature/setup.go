// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/extractfeature/internal/config"
	"github.com/pdiddy/extractfeature/internal/workspace"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Bootstrap a project workspace and run the pipeline",
	Long: `Setup creates the <package-name>_env workspace directory with output/
and catalog/ subdirectories, seeds a default config.yaml when none
exists, and then runs the extraction pipeline. Pass --config-path to
run against an existing configuration instead of the seeded default;
the pipeline's exit status is propagated.`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().String("package-name", "", "name of the package to bootstrap (required)")
	setupCmd.Flags().String("base-dir", ".", "directory the workspace is created under")
	setupCmd.Flags().Bool("skip-run", false, "bootstrap only, do not run the pipeline")
	setupCmd.Flags().Bool("json", false, "output the run summary as JSON")
	setupCmd.Flags().Bool("no-catalog", false, "do not record the run in the catalog")
	_ = setupCmd.MarkFlagRequired("package-name")

	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("package-name")
	baseDir, _ := cmd.Flags().GetString("base-dir")

	paths, err := workspace.Bootstrap(name, baseDir, os.Stderr)
	if err != nil {
		return err
	}

	if skip, _ := cmd.Flags().GetBool("skip-run"); skip {
		return nil
	}

	cfgPath, _ := cmd.Flags().GetString("config-path")
	if cfgPath == "" {
		cfgPath = paths.ConfigPath
		fmt.Fprintf(os.Stderr, "using default configuration path %s\n", cfgPath)
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	return runPipeline(cmd, cfg, cfgPath)
}
