package store

import (
	"database/sql"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/roach88/lcgbreak/internal/crack"
	"github.com/roach88/lcgbreak/internal/testutil"
)

// createTestStore opens a fresh file-backed store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// recoveredRun builds a successful run over n glibc outputs.
func recoveredRun(t *testing.T, id string, seq int64, n int) Run {
	t.Helper()
	return Run{
		ID:     id,
		States: testutil.States(t, "1103515245", "12345", "2147483648", n),
		Params: &crack.Params{
			Multiplier: big.NewInt(1103515245),
			Increment:  big.NewInt(12345),
			Modulus:    big.NewInt(2147483648),
		},
		Outcome: OutcomeRecovered,
		Seq:     seq,
	}
}

// failedRun builds a failed run over a constant sequence.
func failedRun(id string, seq int64) Run {
	return Run{
		ID:        id,
		States:    testutil.Bigs(5, 5, 5, 5),
		Outcome:   OutcomeFailed,
		ErrorCode: string(crack.ErrCodeDegenerateModulus),
		Message:   "could not determine modulus",
		Seq:       seq,
	}
}

func getTableColumns(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		t.Fatalf("failed to get table info for %q: %v", table, err)
	}
	defer rows.Close()

	var columns []string
	for rows.Next() {
		var cid int
		var name, ctype string
		var notnull, pk int
		var dfltValue any
		if err := rows.Scan(&cid, &name, &ctype, &notnull, &dfltValue, &pk); err != nil {
			t.Fatalf("failed to scan column info: %v", err)
		}
		columns = append(columns, name)
	}
	return columns
}

func getTableIndexes(t *testing.T, db *sql.DB, table string) []string {
	t.Helper()

	rows, err := db.Query("SELECT name FROM sqlite_master WHERE type='index' AND tbl_name=?", table)
	if err != nil {
		t.Fatalf("failed to get indexes for %q: %v", table, err)
	}
	defer rows.Close()

	var indexes []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			t.Fatalf("failed to scan index name: %v", err)
		}
		indexes = append(indexes, name)
	}
	return indexes
}
