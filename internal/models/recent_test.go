package models

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestRecentFilesAddMovesToFront(t *testing.T) {
	r := RecentFiles{"/a.txt", "/b.txt", "/c.txt"}
	r.Add("/c.txt")

	want := RecentFiles{"/c.txt", "/a.txt", "/b.txt"}
	if len(r) != len(want) {
		t.Fatalf("got %v, want %v", r, want)
	}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, r[i], want[i])
		}
	}
}

func TestRecentFilesAddDeduplicates(t *testing.T) {
	r := RecentFiles{}
	r.Add("/a.txt")
	r.Add("/b.txt")
	r.Add("/a.txt")

	if len(r) != 2 {
		t.Fatalf("got %d entries, want 2: %v", len(r), r)
	}
	if r[0] != "/a.txt" || r[1] != "/b.txt" {
		t.Errorf("got %v, want [/a.txt /b.txt]", r)
	}
}

func TestRecentFilesAddIgnoresEmpty(t *testing.T) {
	r := RecentFiles{"/a.txt"}
	r.Add("")
	if len(r) != 1 {
		t.Errorf("empty path changed the list: %v", r)
	}
}

func TestRecentFilesCap(t *testing.T) {
	r := RecentFiles{}
	for i := 0; i < MaxRecentFiles+5; i++ {
		r.Add(fmt.Sprintf("/file-%d.txt", i))
	}

	if len(r) != MaxRecentFiles {
		t.Fatalf("got %d entries, want %d", len(r), MaxRecentFiles)
	}
	newest := fmt.Sprintf("/file-%d.txt", MaxRecentFiles+4)
	if r[0] != newest {
		t.Errorf("most recent entry is %q, want %q", r[0], newest)
	}
}

func TestRecentFilesRemove(t *testing.T) {
	r := RecentFiles{"/a.txt", "/b.txt", "/c.txt"}
	r.Remove("/b.txt")

	if len(r) != 2 || r[0] != "/a.txt" || r[1] != "/c.txt" {
		t.Errorf("got %v, want [/a.txt /c.txt]", r)
	}
}

func TestRecentFilesDedup(t *testing.T) {
	r := RecentFiles{"/a.txt", "/b.txt", "/a.txt", "/c.txt", "/b.txt"}
	r.Dedup()

	want := RecentFiles{"/a.txt", "/b.txt", "/c.txt"}
	if len(r) != len(want) {
		t.Fatalf("got %v, want %v", r, want)
	}
	for i := range want {
		if r[i] != want[i] {
			t.Errorf("position %d: got %q, want %q", i, r[i], want[i])
		}
	}
}

func TestRecentFilesClear(t *testing.T) {
	r := RecentFiles{"/a.txt"}
	r.Clear()
	if len(r) != 0 {
		t.Errorf("got %v, want empty", r)
	}
}

func TestRecentFilesPrune(t *testing.T) {
	dir := t.TempDir()
	exists := filepath.Join(dir, "kept.txt")
	if err := os.WriteFile(exists, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	gone := filepath.Join(dir, "deleted.txt")

	r := RecentFiles{exists, gone}
	if !r.Prune() {
		t.Error("Prune reported no change with a dead entry present")
	}
	if len(r) != 1 || r[0] != exists {
		t.Errorf("got %v, want [%s]", r, exists)
	}

	if r.Prune() {
		t.Error("Prune reported a change on a clean list")
	}
}
