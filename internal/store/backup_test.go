package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pawplan/pawplan-cli/internal/db"
	"github.com/pawplan/pawplan-cli/internal/store"
)

func TestBackupCreateAndRestore(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "pawplan.db")

	sqldb, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := store.AddPantryItem(sqldb, "Carrot"); err != nil {
		t.Fatalf("seed pantry: %v", err)
	}
	sqldb.Close()

	backupPath := filepath.Join(dir, "backups", store.DefaultBackupName(time.Now()))
	info, err := store.CreateBackup(dbPath, backupPath)
	if err != nil {
		t.Fatalf("create backup: %v", err)
	}
	if info.Checksum == "" || info.SizeBytes == 0 {
		t.Fatalf("unexpected backup info: %+v", info)
	}
	if _, err := os.Stat(backupPath + ".sha256"); err != nil {
		t.Fatalf("missing checksum sidecar: %v", err)
	}

	restorePath := filepath.Join(dir, "restored.db")
	if err := store.RestoreBackup(backupPath, restorePath, false); err != nil {
		t.Fatalf("restore backup: %v", err)
	}
	restored, err := db.Open(restorePath)
	if err != nil {
		t.Fatalf("open restored db: %v", err)
	}
	defer restored.Close()
	items, err := store.ListPantry(restored, "")
	if err != nil {
		t.Fatalf("list restored pantry: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Carrot (cooked)" {
		t.Fatalf("restored pantry = %+v", items)
	}

	// Without --force a second restore must refuse to overwrite.
	if err := store.RestoreBackup(backupPath, restorePath, false); err == nil {
		t.Fatalf("expected restore over existing db to fail")
	}
	if err := store.RestoreBackup(backupPath, restorePath, true); err != nil {
		t.Fatalf("forced restore: %v", err)
	}

	backups, err := store.ListBackups(filepath.Join(dir, "backups"))
	if err != nil {
		t.Fatalf("list backups: %v", err)
	}
	if len(backups) != 1 || backups[0].Checksum != info.Checksum {
		t.Fatalf("backups = %+v", backups)
	}
}

func TestRestoreBackupChecksumMismatch(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	backupPath := filepath.Join(dir, "tampered.db")
	if err := os.WriteFile(backupPath, []byte("data"), 0o644); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	if err := os.WriteFile(backupPath+".sha256", []byte("deadbeef\n"), 0o644); err != nil {
		t.Fatalf("write sidecar: %v", err)
	}
	if err := store.RestoreBackup(backupPath, filepath.Join(dir, "out.db"), false); err == nil {
		t.Fatalf("expected checksum mismatch to fail")
	}
}
