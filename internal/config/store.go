package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"kun/internal/logger"
	"kun/internal/models"
)

// Store owns the single config file on disk. The file belongs
// exclusively to the running process instance; no locking beyond the
// atomic replace-on-write is needed.
type Store struct {
	path   string
	logger logger.Logger
}

func NewStore(path string, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop{}
	}
	return &Store{path: path, logger: log}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the config record, substituting documented defaults for a
// missing file, missing fields, or a malformed record. It never fails:
// a broken config file costs the user their preferences, not their
// editor.
func (s *Store) Load() models.ConfigRecord {
	record := models.DefaultConfig()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warning("ConfigStore", "config file unreadable, using defaults", map[string]interface{}{
				"path":  s.path,
				"error": err.Error(),
			})
		}
		return record
	}

	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warning("ConfigStore", "config file malformed, using defaults", map[string]interface{}{
			"path":  s.path,
			"error": err.Error(),
		})
		return models.DefaultConfig()
	}

	record.Normalize()
	return record
}

// Save writes the record durably: the new content goes to a temp file
// in the same directory, is synced, then renamed over the old file.
// A write failure leaves the previous file intact.
func (s *Store) Save(record models.ConfigRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return fmt.Errorf("create temp config: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync temp config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp config: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace config: %w", err)
	}

	s.logger.Debug("ConfigStore", "config saved", map[string]interface{}{
		"path":  s.path,
		"bytes": len(data),
	})
	return nil
}
