package migrations

import (
	"strings"
	"testing"
)

func TestNamesAreSortedSQLFiles(t *testing.T) {
	names, err := Names()
	if err != nil {
		t.Fatalf("Names: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected at least one migration")
	}
	for i, n := range names {
		if !strings.HasSuffix(n, ".sql") {
			t.Errorf("unexpected file %q", n)
		}
		if i > 0 && names[i-1] >= n {
			t.Errorf("names not sorted: %q before %q", names[i-1], n)
		}
	}
}

func TestInitMigrationDeclaresOpenPendingIndex(t *testing.T) {
	body, err := migrationFiles.ReadFile("0001_init.sql")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	sql := string(body)
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS items", "pending_purchases", "ledger_entries", "WHERE status = 'OPEN'"} {
		if !strings.Contains(sql, want) {
			t.Errorf("migration missing %q", want)
		}
	}
}
