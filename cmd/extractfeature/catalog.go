// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/pdiddy/extractfeature/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect recorded extraction runs",
	Long: `Catalog reads the local SQLite run catalog written by extract. Use
list to see all recorded runs or show to inspect one run in full.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded extraction runs",
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one extraction run in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

func init() {
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "directory holding the run catalog")
	catalogShowCmd.Flags().Bool("json", false, "output the run as JSON")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

// openCatalog opens the store at --catalog-dir, reporting whether a
// database exists there at all.
func openCatalog(cmd *cobra.Command) (*catalog.Store, bool, error) {
	dir, _ := cmd.Flags().GetString("catalog-dir")
	if _, err := os.Stat(filepath.Join(dir, "catalog.db")); os.IsNotExist(err) {
		return nil, false, nil
	}
	store, err := catalog.NewStore(dir)
	if err != nil {
		return nil, false, err
	}
	return store, true, nil
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, exists, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Println("no runs recorded")
		return nil
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Timestamp", "Input", "Rows", "Features", "Status"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.InputPath,
			run.Rows,
			strings.Join(run.Features, ","),
			string(run.Status),
		})
	}
	t.Render()
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid run id %q", args[0])
	}

	store, exists, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("run %d not found", id)
	}
	defer store.Close()

	run, err := store.Get(context.Background(), id)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	}

	fmt.Printf("Run:      %d\n", run.ID)
	fmt.Printf("Time:     %s\n", run.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Printf("Config:   %s\n", run.ConfigPath)
	fmt.Printf("Input:    %s\n", run.InputPath)
	fmt.Printf("Output:   %s\n", run.OutputPath)
	fmt.Printf("Rows:     %d\n", run.Rows)
	fmt.Printf("Features: %s\n", strings.Join(run.Features, ", "))
	fmt.Printf("Status:   %s\n", run.Status)
	if run.Error != "" {
		fmt.Printf("Error:    %s\n", run.Error)
	}
	return nil
}
