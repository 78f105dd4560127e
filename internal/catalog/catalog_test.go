// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/extractfeature/pkg/types"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "catalog"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRecordAndGet(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	run := types.Run{
		Timestamp:  time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		ConfigPath: "config.yaml",
		InputPath:  "data.csv",
		OutputPath: "output.csv",
		Rows:       42,
		Features:   []string{"HasPhone", "IsInNY"},
		Status:     types.RunOK,
	}

	id, err := store.Record(ctx, run)
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("Record returned id 0")
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != id {
		t.Errorf("ID = %d, want %d", got.ID, id)
	}
	if !got.Timestamp.Equal(run.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", got.Timestamp, run.Timestamp)
	}
	if got.Rows != 42 || got.ConfigPath != "config.yaml" || got.OutputPath != "output.csv" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if len(got.Features) != 2 || got.Features[0] != "HasPhone" {
		t.Errorf("Features = %v", got.Features)
	}
	if got.Status != types.RunOK {
		t.Errorf("Status = %s, want ok", got.Status)
	}
}

func TestRecordFillsTimestamp(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, types.Run{Status: types.RunOK})
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Timestamp.IsZero() {
		t.Error("zero timestamp should be filled with the current time")
	}
}

func TestRecordFailedRun(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	id, err := store.Record(ctx, types.Run{
		Status: types.RunFailed,
		Error:  "error reading CSV file: no columns to parse from file",
	})
	if err != nil {
		t.Fatal(err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatal(err)
	}
	if got.Status != types.RunFailed || !strings.Contains(got.Error, "no columns") {
		t.Errorf("failed run round-trip: %+v", got)
	}
}

func TestListOrdersMostRecentFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for i, input := range []string{"a.csv", "b.csv", "c.csv"} {
		_, err := store.Record(ctx, types.Run{
			InputPath: input,
			Rows:      i,
			Status:    types.RunOK,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	runs, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Fatalf("len(runs) = %d, want 3", len(runs))
	}
	if runs[0].InputPath != "c.csv" || runs[2].InputPath != "a.csv" {
		t.Errorf("runs not ordered most recent first: %v, %v", runs[0].InputPath, runs[2].InputPath)
	}
}

func TestListEmpty(t *testing.T) {
	store := testStore(t)
	runs, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("len(runs) = %d, want 0", len(runs))
	}
}

func TestGetMissing(t *testing.T) {
	store := testStore(t)
	_, err := store.Get(context.Background(), 99)
	if err == nil || !strings.Contains(err.Error(), "run 99 not found") {
		t.Errorf("err = %v, want run 99 not found", err)
	}
}

func TestReopenPersists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")

	store, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	id, err := store.Record(context.Background(), types.Run{InputPath: "data.csv", Status: types.RunOK})
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := NewStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	if got.InputPath != "data.csv" {
		t.Errorf("InputPath = %q after reopen", got.InputPath)
	}
}
