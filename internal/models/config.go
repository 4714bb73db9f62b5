package models

// Character count display modes for the status bar.
const (
	CharCountWithSpaces    = "with_spaces"
	CharCountWithoutSpaces = "without_spaces"
)

const (
	DefaultTheme            = "noir"
	DefaultAutoSaveInterval = 60
	DefaultWindowWidth      = 1200
	DefaultWindowHeight     = 800
)

// ConfigRecord is the complete persisted user preference and session
// state. It is read once at startup, mutated in memory during the run,
// and written back on relevant changes and at exit.
type ConfigRecord struct {
	RecentFiles       RecentFiles     `json:"recent_files"`
	Theme             string          `json:"theme"`
	AutoSave          bool            `json:"auto_save"`
	AutoSaveInterval  int             `json:"auto_save_interval"`
	RestoreSession    bool            `json:"restore_session"`
	ShowLineNumbers   bool            `json:"show_line_numbers"`
	SpellCheckEnabled bool            `json:"spell_check_enabled"`
	CharCountMode     string          `json:"char_count_mode"`
	WindowWidth       int             `json:"window_width"`
	WindowHeight      int             `json:"window_height"`
	LastSession       SessionSnapshot `json:"last_session"`
}

func DefaultConfig() ConfigRecord {
	return ConfigRecord{
		RecentFiles:       RecentFiles{},
		Theme:             DefaultTheme,
		AutoSave:          false,
		AutoSaveInterval:  DefaultAutoSaveInterval,
		RestoreSession:    true,
		ShowLineNumbers:   false,
		SpellCheckEnabled: true,
		CharCountMode:     CharCountWithSpaces,
		WindowWidth:       DefaultWindowWidth,
		WindowHeight:      DefaultWindowHeight,
		LastSession:       SessionSnapshot{},
	}
}

// Normalize replaces out-of-range or absent field values with their
// documented defaults. Called after every load so a hand-edited or
// partially written config file never propagates junk into the UI.
func (c *ConfigRecord) Normalize() {
	if c.Theme == "" {
		c.Theme = DefaultTheme
	}
	if c.AutoSaveInterval <= 0 {
		c.AutoSaveInterval = DefaultAutoSaveInterval
	}
	if c.CharCountMode != CharCountWithSpaces && c.CharCountMode != CharCountWithoutSpaces {
		c.CharCountMode = CharCountWithSpaces
	}
	if c.WindowWidth <= 0 {
		c.WindowWidth = DefaultWindowWidth
	}
	if c.WindowHeight <= 0 {
		c.WindowHeight = DefaultWindowHeight
	}
	if c.RecentFiles == nil {
		c.RecentFiles = RecentFiles{}
	}
	c.RecentFiles.Dedup()
	c.RecentFiles.Truncate()
}
