package database

import (
	"database/sql"
	"path/filepath"
	"testing"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

func TestNewDB_SuccessAndTableCreation(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_newdb.db")
	db, err := NewDB(dbPath, DefaultConfig())
	if err != nil {
		t.Fatalf("NewDB() error = %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		t.Fatalf("db.Ping() failed: %v", err)
	}

	for _, table := range []string{"articles", "searches"} {
		var count int
		err := db.QueryRow(
			"SELECT count(*) FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&count)
		if err != nil {
			t.Fatalf("Error checking for table %s: %v", table, err)
		}
		if count != 1 {
			t.Errorf("Table %s was not created. Expected count 1, got %d", table, count)
		}
	}
}

func TestNewDB_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_reopen.db")

	db, err := NewDB(dbPath, DefaultConfig())
	if err != nil {
		t.Fatalf("NewDB() first open: %v", err)
	}
	if _, err := db.Exec(
		"INSERT INTO articles (title, url) VALUES ('kept', 'https://example.com/kept')",
	); err != nil {
		t.Fatalf("seeding row: %v", err)
	}
	db.Close()

	// Reopening must re-apply the schema without touching existing rows.
	db2, err := NewDB(dbPath, DefaultConfig())
	if err != nil {
		t.Fatalf("NewDB() second open: %v", err)
	}
	defer db2.Close()

	var count int
	if err := db2.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count); err != nil {
		t.Fatalf("counting rows after reopen: %v", err)
	}
	if count != 1 {
		t.Errorf("expected seeded row to survive reopen, got %d rows", count)
	}
}

func TestColumnExists(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "test_columns.db"), DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to create DB: %v", err)
	}
	defer db.Close()

	testCases := []struct {
		tableName   string
		columnName  string
		shouldExist bool
		description string
	}{
		{"articles", "url", true, "existing column 'url' in 'articles'"},
		{"articles", "bookmarked", true, "existing column 'bookmarked' in 'articles'"},
		{"articles", "non_existent_column", false, "non-existent column in 'articles'"},
		{"searches", "query", true, "existing column 'query' in 'searches'"},
		{"searches", "another_missing_col", false, "non-existent column in 'searches'"},
		{"non_existent_table", "any_column", false, "column in non-existent table"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			exists, err := columnExists(db.DB, tc.tableName, tc.columnName)
			if err != nil && tc.tableName != "non_existent_table" {
				t.Errorf("columnExists(%s, %s) returned error: %v", tc.tableName, tc.columnName, err)
			}
			if exists != tc.shouldExist {
				t.Errorf("columnExists(%s, %s) = %v, want %v", tc.tableName, tc.columnName, exists, tc.shouldExist)
			}
		})
	}
}

func TestMigrationAddsMissingColumns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test_migrate.db")

	// Simulate a database from before the bookmark and category columns.
	raw, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("opening raw database: %v", err)
	}
	_, err = raw.Exec(`
		CREATE TABLE articles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT,
			url TEXT UNIQUE NOT NULL,
			source TEXT,
			published_at TIMESTAMP,
			sentiment_score REAL NOT NULL DEFAULT 0.0,
			sentiment_label TEXT NOT NULL DEFAULT 'neutral',
			keywords TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE TABLE searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			query TEXT NOT NULL,
			timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO articles (title, url) VALUES ('legacy', 'https://example.com/legacy');
	`)
	raw.Close()
	if err != nil {
		t.Fatalf("creating legacy schema: %v", err)
	}

	db, err := NewDB(dbPath, DefaultConfig())
	if err != nil {
		t.Fatalf("NewDB() on legacy database: %v", err)
	}
	defer db.Close()

	migrated := []struct {
		table, column string
	}{
		{"articles", "content"},
		{"articles", "image_url"},
		{"articles", "category"},
		{"articles", "bookmarked"},
		{"searches", "category"},
	}
	for _, mc := range migrated {
		t.Run(mc.table+"."+mc.column, func(t *testing.T) {
			exists, err := columnExists(db.DB, mc.table, mc.column)
			if err != nil {
				t.Fatalf("Error checking column %s.%s: %v", mc.table, mc.column, err)
			}
			if !exists {
				t.Errorf("Expected column %s.%s to exist after migration", mc.table, mc.column)
			}
		})
	}

	// Legacy rows must still be readable through the query layer.
	var bookmarked bool
	err = db.QueryRow(
		"SELECT bookmarked FROM articles WHERE url = 'https://example.com/legacy'",
	).Scan(&bookmarked)
	if err != nil {
		t.Fatalf("reading migrated row: %v", err)
	}
	if bookmarked {
		t.Error("migrated column should default to unbookmarked")
	}
}
