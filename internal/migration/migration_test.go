package migration

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestGetCurrentVersionFreshDatabase(t *testing.T) {
	r := NewRunner(newTestDB(t), fstest.MapFS{})

	version, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 on fresh database, got %d", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   fstest.MapFS
		want    []int
		wantErr string
	}{
		{
			name: "sorted by version",
			files: fstest.MapFS{
				"002_add_index.sql": {Data: []byte("CREATE INDEX idx ON t (a);")},
				"001_init.sql":      {Data: []byte("CREATE TABLE t (a INTEGER);")},
			},
			want: []int{1, 2},
		},
		{
			name: "ignores non-sql files",
			files: fstest.MapFS{
				"001_init.sql": {Data: []byte("CREATE TABLE t (a INTEGER);")},
				"README.md":    {Data: []byte("notes")},
			},
			want: []int{1},
		},
		{
			name: "rejects missing name part",
			files: fstest.MapFS{
				"001.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "invalid migration filename",
		},
		{
			name: "rejects version zero",
			files: fstest.MapFS{
				"000_bad.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "version must be at least 1",
		},
		{
			name: "rejects duplicate versions",
			files: fstest.MapFS{
				"001_first.sql":  {Data: []byte("SELECT 1;")},
				"001_second.sql": {Data: []byte("SELECT 1;")},
			},
			wantErr: "duplicate migration version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(newTestDB(t), tt.files)
			migrations, err := r.ReadMigrationFiles()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadMigrationFiles failed: %v", err)
			}
			var got []int
			for _, m := range migrations {
				got = append(got, m.Version)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("expected versions %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected versions %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestApplyMigrations(t *testing.T) {
	db := newTestDB(t)
	files := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE habits_test (name TEXT PRIMARY KEY);")},
		"002_more.sql": {Data: []byte("ALTER TABLE habits_test ADD COLUMN period TEXT;")},
	}
	r := NewRunner(db, files)

	applied, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if applied != 2 {
		t.Errorf("expected 2 migrations applied, got %d", applied)
	}

	version, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 2 {
		t.Errorf("expected version 2 after migrations, got %d", version)
	}

	// Second run is a no-op
	applied, err = r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("expected 0 migrations on repeat run, got %d", applied)
	}

	if _, err := db.Exec("INSERT INTO habits_test (name, period) VALUES ('reading', 'daily')"); err != nil {
		t.Errorf("migrated schema not usable: %v", err)
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	files := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE ok (a INTEGER);")},
		"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
	}
	r := NewRunner(db, files)

	applied, err := r.ApplyMigrations(nil)
	if err == nil {
		t.Fatal("expected error from broken migration")
	}
	if applied != 1 {
		t.Errorf("expected 1 migration applied before failure, got %d", applied)
	}

	version, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion failed: %v", err)
	}
	if version != 1 {
		t.Errorf("expected version to stay at 1 after failed migration, got %d", version)
	}
}

func TestValidateVersion(t *testing.T) {
	db := newTestDB(t)
	files := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE ok (a INTEGER);")},
	}
	r := NewRunner(db, files)

	// Fresh database is behind but still valid; doctor reports pending migrations
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("fresh database should validate, got %v", err)
	}

	if _, err := r.ApplyMigrations(nil); err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("up-to-date database should validate, got %v", err)
	}

	// A database from a newer app version must be rejected
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("failed to bump version: %v", err)
	}
	if err := r.ValidateVersion(); err == nil {
		t.Error("expected error when database version is newer than supported")
	}
}
