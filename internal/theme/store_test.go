package theme

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestStoreLoadsBuiltins(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "themes"), nil)

	for _, id := range []string{"noir", "glacier", "ivory", "ember"} {
		if _, ok := store.Get(id); !ok {
			t.Errorf("builtin theme %q not loaded", id)
		}
	}
}

func TestStoreResolveUnknown(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "themes"), nil)

	if _, err := store.Resolve("no-such-theme"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}

	th := store.ResolveOrDefault("no-such-theme")
	if th.ID != DefaultID {
		t.Errorf("ResolveOrDefault fell back to %q, want %q", th.ID, DefaultID)
	}
}

func TestStoreUserThemeShadowsBuiltin(t *testing.T) {
	dir := t.TempDir()
	custom := `{"name": "My Noir", "colors": {"editor_bg": "#123456"}}`
	if err := os.WriteFile(filepath.Join(dir, "noir.json"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir, nil)
	th, ok := store.Get("noir")
	if !ok {
		t.Fatal("noir missing after shadowing")
	}
	if th.Name != "My Noir" {
		t.Errorf("Name = %q, want the user override", th.Name)
	}
}

func TestStoreSkipsMalformedUserTheme(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{oops"), 0o644); err != nil {
		t.Fatal(err)
	}
	valid := `{"name": "Fine", "colors": {}}`
	if err := os.WriteFile(filepath.Join(dir, "fine.json"), []byte(valid), 0o644); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir, nil)
	if _, ok := store.Get("broken"); ok {
		t.Error("malformed theme was loaded")
	}
	if _, ok := store.Get("fine"); !ok {
		t.Error("valid theme next to a malformed one was not loaded")
	}
	if _, ok := store.Get("noir"); !ok {
		t.Error("builtins lost while scanning a broken directory")
	}
}

func TestStoreRescanPicksUpNewTheme(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir, nil)

	if _, ok := store.Get("fresh"); ok {
		t.Fatal("theme present before it was written")
	}

	data := `{"name": "Fresh", "colors": {"accent": "#00ff00"}}`
	if err := os.WriteFile(filepath.Join(dir, "fresh.json"), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	store.Rescan()

	if _, ok := store.Get("fresh"); !ok {
		t.Error("rescan did not pick up the new theme")
	}
}

func TestStoreIDsSorted(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "themes"), nil)
	ids := store.IDs()

	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("ids not sorted: %v", ids)
		}
	}
}
