package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func createTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cadence.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE habits (name TEXT PRIMARY KEY)`); err != nil {
		t.Fatalf("failed to create test table: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO habits (name) VALUES ('Take a walk')`); err != nil {
		t.Fatalf("failed to insert test row: %v", err)
	}
	return dbPath
}

func TestCreateBackup(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	info, err := os.Stat(backupPath)
	if err != nil {
		t.Fatalf("backup file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("backup file is empty")
	}

	if err := mgr.verifyBackup(backupPath); err != nil {
		t.Errorf("backup is not a valid database: %v", err)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Fatal("CreateBackup() should fail when the database does not exist")
	}
}

func TestListBackupsEmpty(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "cadence.db"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("got %d backups, want 0", len(backups))
	}
}

func TestListBackupsIgnoresForeignFiles(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	if _, err := mgr.CreateBackup(); err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	// Unrelated files in the backup directory should not be listed
	for _, name := range []string{"notes.txt", "cadence-garbage.db", "other.db"} {
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
			t.Fatalf("failed to write file: %v", err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups() failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("got %d backups, want 1", len(backups))
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup() failed: %v", err)
	}

	// Change the live database after the backup
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if _, err := db.Exec(`DELETE FROM habits`); err != nil {
		t.Fatalf("failed to delete rows: %v", err)
	}
	db.Close()

	if err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup() failed: %v", err)
	}

	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&count); err != nil {
		t.Fatalf("failed to query restored database: %v", err)
	}
	if count != 1 {
		t.Errorf("restored database has %d rows, want 1", count)
	}
}

func TestRestoreBackupInvalidFile(t *testing.T) {
	dbPath := createTestDB(t)
	mgr := NewManager(dbPath)

	bogus := filepath.Join(t.TempDir(), "bogus.db")
	if err := os.WriteFile(bogus, []byte("not a database"), 0600); err != nil {
		t.Fatalf("failed to write bogus file: %v", err)
	}

	if err := mgr.RestoreBackup(bogus); err == nil {
		t.Fatal("RestoreBackup() should reject an invalid backup file")
	}
}

func TestStripCounterSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20240710-0930", "20240710-0930"},
		{"20240710-093045", "20240710-093045"},
		{"20240710-093045-1", "20240710-093045"},
		{"20240710-0930-12", "20240710-0930"},
		{"20240710-0930-abc", "20240710-0930-abc"},
	}

	for _, tt := range tests {
		if got := stripCounterSuffix(tt.in); got != tt.want {
			t.Errorf("stripCounterSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
