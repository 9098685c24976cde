package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/HellscythePT/discord-mercy-tracker/internal/mercy"
)

func tempDataFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "mercy.json")
}

func TestGetDefaultsToZero(t *testing.T) {
	s := Open(tempDataFile(t))
	if got := s.Get("981283", mercy.Sacred); got != 0 {
		t.Fatalf("untracked counter should be 0, got %d", got)
	}
}

func TestIncrementAndReset(t *testing.T) {
	s := Open(tempDataFile(t))

	for i := 1; i <= 5; i++ {
		count, err := s.Increment("u1", mercy.Ancient)
		if err != nil {
			t.Fatal(err)
		}
		if count != i {
			t.Fatalf("after %d increments count should be %d, got %d", i, i, count)
		}
	}

	if count, err := s.Add("u1", mercy.Ancient, 10); err != nil || count != 15 {
		t.Fatalf("add 10 should give 15, got=%d err=%v", count, err)
	}

	if err := s.Reset("u1", mercy.Ancient); err != nil {
		t.Fatal(err)
	}
	if got := s.Get("u1", mercy.Ancient); got != 0 {
		t.Fatalf("reset counter should be 0, got %d", got)
	}
}

func TestResetAll(t *testing.T) {
	s := Open(tempDataFile(t))
	s.Add("u1", mercy.Sacred, 3)
	s.Add("u1", mercy.Void, 7)

	if !s.HasData("u1") {
		t.Fatal("user should have data")
	}
	if err := s.ResetAll("u1"); err != nil {
		t.Fatal(err)
	}
	if s.HasData("u1") {
		t.Fatal("user should have no data after reset all")
	}
	// resetting an unknown user is a no-op
	if err := s.ResetAll("nobody"); err != nil {
		t.Fatal(err)
	}
}

func TestRoundTrip(t *testing.T) {
	path := tempDataFile(t)

	s := Open(path)
	s.Add("u1", mercy.Sacred, 12)
	s.Add("u1", mercy.Primal, 80)
	s.Add("u2", mercy.Remnant, 30)
	want := s.All()

	reloaded := Open(path)
	if got := reloaded.All(); !reflect.DeepEqual(got, want) {
		t.Fatalf("reloaded snapshot differs:\n got %v\nwant %v", got, want)
	}
}

func TestBackupWrittenBeforeOverwrite(t *testing.T) {
	path := tempDataFile(t)

	s := Open(path)
	if _, err := s.Add("u1", mercy.Sacred, 1); err != nil {
		t.Fatal(err)
	}
	// first write has no previous primary, so no backup yet
	if _, err := os.Stat(BackupPath(path)); !os.IsNotExist(err) {
		t.Fatalf("no backup expected after first write, stat err=%v", err)
	}

	if _, err := s.Add("u1", mercy.Sacred, 1); err != nil {
		t.Fatal(err)
	}
	// backup now holds the count=1 state
	backup := Open(BackupPath(path))
	if got := backup.Get("u1", mercy.Sacred); got != 1 {
		t.Fatalf("backup should hold previous snapshot (count 1), got %d", got)
	}
}

func TestCorruptPrimaryFallsBackToBackup(t *testing.T) {
	path := tempDataFile(t)

	s := Open(path)
	s.Add("u1", mercy.Sacred, 9)
	s.Add("u1", mercy.Sacred, 1) // second write creates the backup

	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	recovered := Open(path)
	if got := recovered.Get("u1", mercy.Sacred); got != 9 {
		t.Fatalf("load should recover backup state (9), got %d", got)
	}
}

func TestBothFilesUnreadableStartsEmpty(t *testing.T) {
	path := tempDataFile(t)
	os.WriteFile(path, []byte("garbage"), 0o644)
	os.WriteFile(BackupPath(path), []byte("also garbage"), 0o644)

	s := Open(path)
	if s.HasData("u1") || len(s.All()) != 0 {
		t.Fatal("unreadable primary and backup should start empty, not crash")
	}
	// store stays usable
	if count, err := s.Increment("u1", mercy.Void); err != nil || count != 1 {
		t.Fatalf("store should accept writes after recovery: count=%d err=%v", count, err)
	}
}
