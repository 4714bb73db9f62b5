package theme

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"kun/internal/logger"
)

//go:embed builtin/*.json
var builtinFS embed.FS

// DefaultID is the theme used when the configured name is unknown.
const DefaultID = "noir"

// ErrNotFound reports an unknown theme name.
var ErrNotFound = errors.New("theme not found")

// Store loads theme definitions from the compiled-in set plus a user
// directory and resolves the active theme by id. User definitions
// shadow builtins of the same id. Safe for concurrent use; the watcher
// rescans from its own goroutine.
type Store struct {
	userDir string
	logger  logger.Logger

	mu     sync.RWMutex
	themes map[string]Theme
}

func NewStore(userDir string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop{}
	}
	s := &Store{
		userDir: userDir,
		logger:  log,
		themes:  map[string]Theme{},
	}
	s.Rescan()
	return s
}

// Rescan reloads builtins and the user directory. A malformed
// definition is skipped with a warning rather than aborting startup.
func (s *Store) Rescan() {
	themes := map[string]Theme{}

	entries, err := builtinFS.ReadDir("builtin")
	if err == nil {
		for _, entry := range entries {
			data, err := builtinFS.ReadFile("builtin/" + entry.Name())
			if err != nil {
				continue
			}
			id := strings.TrimSuffix(entry.Name(), ".json")
			t, err := Parse(id, data)
			if err != nil {
				s.logger.Warning("ThemeStore", "builtin theme malformed, skipped", map[string]interface{}{
					"theme": id,
					"error": err.Error(),
				})
				continue
			}
			themes[id] = t
		}
	}

	s.scanDir(themes)

	s.mu.Lock()
	s.themes = themes
	s.mu.Unlock()

	s.logger.Debug("ThemeStore", "themes scanned", map[string]interface{}{
		"count":    len(themes),
		"user_dir": s.userDir,
	})
}

func (s *Store) scanDir(into map[string]Theme) {
	if s.userDir == "" {
		return
	}

	entries, err := os.ReadDir(s.userDir)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warning("ThemeStore", "user themes directory unreadable", map[string]interface{}{
				"dir":   s.userDir,
				"error": err.Error(),
			})
		}
		return
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.userDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			s.logger.Warning("ThemeStore", "theme file unreadable, skipped", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}

		id := strings.TrimSuffix(entry.Name(), ".json")
		t, err := Parse(id, data)
		if err != nil {
			s.logger.Warning("ThemeStore", "theme file malformed, skipped", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			continue
		}
		into[id] = t
	}
}

// Resolve returns the theme for id or ErrNotFound.
func (s *Store) Resolve(id string) (Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.themes[id]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return t, nil
}

// ResolveOrDefault returns the theme for id, falling back to the
// builtin default without raising when the id is unknown.
func (s *Store) ResolveOrDefault(id string) Theme {
	t, err := s.Resolve(id)
	if err == nil {
		return t
	}

	s.logger.Warning("ThemeStore", "unknown theme, using default", map[string]interface{}{
		"requested": id,
		"default":   DefaultID,
	})

	t, err = s.Resolve(DefaultID)
	if err != nil {
		// Builtins failed to load entirely; hand back an empty theme so
		// the adapter falls through to toolkit defaults.
		return Theme{ID: DefaultID, Name: DefaultID, Colors: map[string]string{}, Font: FontSpec{Family: "monospace", Size: 11}}
	}
	return t
}

// IDs lists the available theme ids, sorted.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.themes))
	for id := range s.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Get returns the theme for id without fallback, plus presence.
func (s *Store) Get(id string) (Theme, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.themes[id]
	return t, ok
}
