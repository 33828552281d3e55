package db

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMigration(t *testing.T, dir, name, sql string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(sql), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadMigrations(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "002_rooms.sql", "CREATE TABLE room (id UUID);")
	writeMigration(t, dir, "001_core.sql", "CREATE TABLE doctor (id UUID);")
	writeMigration(t, dir, "010_indexes.sql", "CREATE INDEX i ON doctor(id);")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(migrations) != 3 {
		t.Fatalf("got %d migrations, want 3", len(migrations))
	}
	wantOrder := []int{1, 2, 10}
	for i, mig := range migrations {
		if mig.Version != wantOrder[i] {
			t.Errorf("migration %d version = %d, want %d", i, mig.Version, wantOrder[i])
		}
	}
	if migrations[0].Name != "001_core.sql" {
		t.Errorf("first migration name = %q", migrations[0].Name)
	}
	if migrations[0].SQL != "CREATE TABLE doctor (id UUID);" {
		t.Errorf("first migration SQL = %q", migrations[0].SQL)
	}
}

func TestLoadMigrationsSkipsNonNumericFiles(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "001_core.sql", "SELECT 1;")
	writeMigration(t, dir, "README.md", "notes")
	writeMigration(t, dir, "seed.sql", "SELECT 2;")
	writeMigration(t, dir, "abc_def.sql", "SELECT 3;")

	m := NewMigrator(nil, dir)
	migrations, err := m.LoadMigrations()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(migrations) != 1 {
		t.Fatalf("got %d migrations, want 1", len(migrations))
	}
	if migrations[0].Version != 1 {
		t.Errorf("version = %d, want 1", migrations[0].Version)
	}
}

func TestLoadMigrationsMissingDir(t *testing.T) {
	m := NewMigrator(nil, filepath.Join(t.TempDir(), "nope"))
	if _, err := m.LoadMigrations(); err == nil {
		t.Fatal("expected error for missing directory")
	}
}
