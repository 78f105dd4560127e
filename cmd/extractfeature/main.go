// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the extractfeature CLI: the
// CSV feature-extraction pipeline plus its project tooling (workspace
// bootstrap, pre-commit quality gate, run catalog).
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/extractfeature/internal/config"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the extractfeature CLI.
var rootCmd = &cobra.Command{
	Use:   "extractfeature",
	Short: "Extract derived feature columns from CSV data",
	Long: `extractfeature loads a CSV file, converts the configured columns to
their declared types, derives the enabled feature columns, and writes
the result to a CSV output. The same binary carries the project
tooling: setup bootstraps a workspace, check runs the pre-commit
quality gate, and catalog inspects past extraction runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config-path", "", "config file (default: ./config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config-path")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "extractfeature"))
		}
	}

	viper.SetEnvPrefix("EXTRACTFEATURE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// resolveConfigPath returns the configuration file to use and whether
// the default was applied because no path was given anywhere.
func resolveConfigPath(cmd *cobra.Command) (string, bool) {
	if path, _ := cmd.Flags().GetString("config-path"); path != "" {
		return path, false
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used, false
	}
	return config.DefaultPath, true
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
