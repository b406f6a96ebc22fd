package migrate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateDirAcceptsShippedMigrations(t *testing.T) {
	// Test binaries run from the package directory.
	if err := ValidateDir("migrations"); err != nil {
		t.Fatalf("shipped migrations failed validation: %v", err)
	}
}

func TestValidateDirRejectsBadFilename(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "not_versioned.sql", "-- +goose Up\n-- +goose Down\n")

	if err := ValidateDir(dir); err == nil {
		t.Fatal("expected invalid filename to fail validation")
	}
}

func TestValidateDirRejectsDuplicateVersion(t *testing.T) {
	dir := t.TempDir()
	body := "-- +goose Up\n-- +goose Down\n"
	writeMigration(t, dir, "20250301120000_first.sql", body)
	writeMigration(t, dir, "20250301120000_second.sql", body)

	err := ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "duplicate migration version") {
		t.Fatalf("expected duplicate version error, got %v", err)
	}
}

func TestValidateDirRequiresUpAndDown(t *testing.T) {
	dir := t.TempDir()
	writeMigration(t, dir, "20250301120000_missing_down.sql", "-- +goose Up\nCREATE TABLE x (id INTEGER);\n")

	err := ValidateDir(dir)
	if err == nil || !strings.Contains(err.Error(), "+goose Down") {
		t.Fatalf("expected missing down error, got %v", err)
	}
}

func TestCreateSQLMigration(t *testing.T) {
	dir := t.TempDir()

	path, err := CreateSQLMigration(dir, "Add Shares Table")
	if err != nil {
		t.Fatalf("CreateSQLMigration returned error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Fatalf("migration created outside target dir: %s", path)
	}
	if !strings.HasSuffix(path, "_add_shares_table.sql") {
		t.Fatalf("unexpected filename %s", path)
	}

	if err := ValidateDir(dir); err != nil {
		t.Fatalf("generated migration failed validation: %v", err)
	}
}

func TestCreateSQLMigrationRejectsEmptyName(t *testing.T) {
	if _, err := CreateSQLMigration(t.TempDir(), "!!!"); err == nil {
		t.Fatal("expected error for name with no usable characters")
	}
}

func writeMigration(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatalf("write migration: %v", err)
	}
}
