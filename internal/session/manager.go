// Package session restores the open-tab set from the last run and
// captures it back into the config record.
package session

import (
	"kun/internal/fileio"
	"kun/internal/logger"
	"kun/internal/models"
)

// RestoredTab is one tab ready to be recreated in the UI.
type RestoredTab struct {
	State   models.TabState
	Content string

	// Missing is set when the tab's file path no longer exists; the
	// content then comes from the snapshot and the UI shows a warning
	// indicator instead of failing the restore.
	Missing bool
}

// Manager reconstructs sessions from config snapshots. Individual tab
// failures never abort the restore.
type Manager struct {
	logger logger.Logger
}

func NewManager(log logger.Logger) *Manager {
	if log == nil {
		log = logger.Nop{}
	}
	return &Manager{logger: log}
}

// Restore maps each persisted tab to its restorable form. File-backed
// tabs are re-read from disk; a vanished file falls back to the
// last-persisted content with the Missing marker set.
func (m *Manager) Restore(snapshot models.SessionSnapshot) []RestoredTab {
	tabs := make([]RestoredTab, 0, len(snapshot.Tabs))

	for _, state := range snapshot.Tabs {
		tab := RestoredTab{State: state, Content: state.Content}

		if state.FilePath != "" {
			content, err := fileio.ReadText(state.FilePath)
			switch {
			case err == nil:
				tab.Content = content
			default:
				tab.Missing = true
				m.logger.Warning("SessionManager", "session file missing, restoring buffer from snapshot", map[string]interface{}{
					"path":  state.FilePath,
					"error": err.Error(),
				})
			}
		}

		if tab.State.FilePath == "" && tab.Content == "" && tab.State.CustomName == "" {
			// Nothing worth a tab.
			continue
		}
		tabs = append(tabs, tab)
	}

	m.logger.Info("SessionManager", "session restored", map[string]interface{}{
		"tabs": len(tabs),
	})
	return tabs
}

// Capture builds a snapshot of the given documents. Buffer content is
// only persisted for tabs without a backing file; file-backed tabs are
// reloaded from disk on the next launch.
func (m *Manager) Capture(docs []*models.Document) models.SessionSnapshot {
	snapshot := models.SessionSnapshot{Tabs: make([]models.TabState, 0, len(docs))}

	for _, doc := range docs {
		state := models.TabState{
			FilePath:   doc.FilePath,
			CustomName: doc.CustomName,
		}
		if doc.FilePath == "" || doc.Missing {
			state.Content = doc.Content
		}
		snapshot.Tabs = append(snapshot.Tabs, state)
	}
	return snapshot
}
