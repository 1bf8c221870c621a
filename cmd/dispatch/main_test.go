package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/dispatch-scheduler/internal/config"
	"github.com/example/dispatch-scheduler/internal/dispatch"
)

func TestOpenStore_MemoryDSN(t *testing.T) {
	store, catalog, closer, err := openStore(config.Config{SQLiteDSN: config.MemoryDSN})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			t.Errorf("close: %v", cerr)
		}
	}()

	if store == nil || catalog == nil {
		t.Fatal("expected wired store and catalog")
	}
	if _, err := store.QueryAssignmentsByDate(context.Background(),
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("query against fresh memory store: %v", err)
	}
}

func TestOpenStore_SQLiteDSN(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "dispatch.db")
	store, catalog, closer, err := openStore(config.Config{SQLiteDSN: dsn})
	if err != nil {
		t.Fatalf("openStore: %v", err)
	}
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			t.Errorf("close: %v", cerr)
		}
	}()

	// Migrations ran, so writes land without schema errors.
	assignment := dispatch.NewAssignment("asg-1",
		time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC), "p-1")
	assignment.SetIDs(dispatch.KindEmployee, []string{"e-1"})
	if _, err := store.UpsertAssignment(context.Background(), assignment); err != nil {
		t.Fatalf("upsert against migrated store: %v", err)
	}

	if _, err := catalog.ListEmployees(context.Background()); err != nil {
		t.Fatalf("catalog read: %v", err)
	}
}
