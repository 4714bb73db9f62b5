package session

import (
	"os"
	"path/filepath"
	"testing"

	"kun/internal/models"
)

func TestRestoreReadsFileBackedTabsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "note.txt")
	if err := os.WriteFile(path, []byte("current content"), 0o644); err != nil {
		t.Fatal(err)
	}

	snapshot := models.SessionSnapshot{Tabs: []models.TabState{
		{FilePath: path, Content: "stale snapshot content"},
	}}

	tabs := NewManager(nil).Restore(snapshot)
	if len(tabs) != 1 {
		t.Fatalf("got %d tabs, want 1", len(tabs))
	}
	if tabs[0].Content != "current content" {
		t.Errorf("Content = %q, want the on-disk text", tabs[0].Content)
	}
	if tabs[0].Missing {
		t.Error("Missing set for an existing file")
	}
}

func TestRestoreMissingFileKeepsSnapshotContent(t *testing.T) {
	snapshot := models.SessionSnapshot{Tabs: []models.TabState{
		{FilePath: filepath.Join(t.TempDir(), "vanished.txt"), Content: "last known text"},
	}}

	tabs := NewManager(nil).Restore(snapshot)
	if len(tabs) != 1 {
		t.Fatalf("got %d tabs, want 1", len(tabs))
	}
	if !tabs[0].Missing {
		t.Error("Missing not set for a vanished file")
	}
	if tabs[0].Content != "last known text" {
		t.Errorf("Content = %q, want the snapshot text", tabs[0].Content)
	}
}

func TestRestoreSkipsEmptyTabs(t *testing.T) {
	snapshot := models.SessionSnapshot{Tabs: []models.TabState{
		{},
		{Content: "kept"},
	}}

	tabs := NewManager(nil).Restore(snapshot)
	if len(tabs) != 1 || tabs[0].Content != "kept" {
		t.Errorf("got %v, want only the non-empty tab", tabs)
	}
}

func TestCapturePersistsContentOnlyForUnsavedBuffers(t *testing.T) {
	docs := []*models.Document{
		{FilePath: "/tmp/saved.txt", Content: "on disk"},
		{Content: "scratch", CustomName: "ideas"},
		{FilePath: "/tmp/gone.txt", Content: "recovered", Missing: true},
	}

	snapshot := NewManager(nil).Capture(docs)
	if len(snapshot.Tabs) != 3 {
		t.Fatalf("got %d tabs, want 3", len(snapshot.Tabs))
	}

	if snapshot.Tabs[0].Content != "" {
		t.Error("file-backed tab content should not be persisted")
	}
	if snapshot.Tabs[1].Content != "scratch" || snapshot.Tabs[1].CustomName != "ideas" {
		t.Errorf("unsaved buffer lost state: %+v", snapshot.Tabs[1])
	}
	if snapshot.Tabs[2].Content != "recovered" {
		t.Error("missing-file tab content should be persisted")
	}
}
