// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/extractfeature/internal/catalog"
	"github.com/pdiddy/extractfeature/internal/config"
	"github.com/pdiddy/extractfeature/internal/extract"
	"github.com/pdiddy/extractfeature/pkg/types"
)

// previewRows caps the result preview printed after a run.
const previewRows = 10

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Run the feature-extraction pipeline",
	Long: `Extract loads the configured CSV input, converts the configured
columns to their declared types, derives the enabled feature columns,
and writes the result to the configured output path. Each run is
recorded in the catalog.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().Bool("json", false, "output the run summary as JSON")
	extractCmd.Flags().Bool("no-catalog", false, "do not record the run in the catalog")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	path, defaulted := resolveConfigPath(cmd)
	if defaulted {
		fmt.Fprintf(os.Stderr, "using default configuration path %s\n", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	return runPipeline(cmd, cfg, path)
}

// runPipeline executes the extraction pipeline for a loaded
// configuration and records the run. Shared by extract and setup.
func runPipeline(cmd *cobra.Command, cfg types.PipelineConfig, cfgPath string) error {
	ex, err := extract.New(cfg)
	if err != nil {
		return err
	}

	summary, frame, runErr := ex.Run(os.Stderr)

	if noCatalog, _ := cmd.Flags().GetBool("no-catalog"); !noCatalog {
		recordRun(cfg, cfgPath, summary, runErr)
	}
	if runErr != nil {
		return runErr
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	renderPreview(frame, os.Stdout)
	fmt.Fprintf(os.Stdout, "%d rows, %d features -> %s\n",
		summary.Rows, len(summary.Features), summary.OutputPath)
	fmt.Fprintln(os.Stderr, "data processing complete")
	return nil
}

// recordRun stores the run outcome in the catalog. Catalog failures
// are reported as warnings; they never fail the pipeline.
func recordRun(cfg types.PipelineConfig, cfgPath string, summary extract.Summary, runErr error) {
	store, err := catalog.NewStore(cfg.CatalogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open catalog: %v\n", err)
		return
	}
	defer store.Close()

	run := types.Run{
		ConfigPath: cfgPath,
		InputPath:  cfg.InputDataPath,
		OutputPath: cfg.OutputDataPath,
		Rows:       summary.Rows,
		Features:   summary.Features,
		Status:     types.RunOK,
	}
	if runErr != nil {
		run.Status = types.RunFailed
		run.Error = runErr.Error()
	}

	if _, err := store.Record(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
	}
}

// renderPreview prints the first rows of the result frame as a table.
func renderPreview(frame *extract.Frame, w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)

	header := make(table.Row, len(frame.Columns()))
	for i, c := range frame.Columns() {
		header[i] = c
	}
	t.AppendHeader(header)

	limit := frame.NumRows()
	if limit > previewRows {
		limit = previewRows
	}
	for i := 0; i < limit; i++ {
		row := make(table.Row, len(frame.Columns()))
		for j, cell := range frame.Row(i) {
			if cell.Missing {
				row[j] = ""
			} else {
				row[j] = cell.Value
			}
		}
		t.AppendRow(row)
	}
	t.Render()

	if frame.NumRows() > previewRows {
		fmt.Fprintf(w, "... %d more rows\n", frame.NumRows()-previewRows)
	}
}
