package models

// TabState is the persisted form of one open tab. Content is only
// stored for buffers without a backing file; file-backed tabs are
// re-read from disk at restore time.
type TabState struct {
	FilePath   string `json:"file_path,omitempty"`
	Content    string `json:"content,omitempty"`
	CustomName string `json:"custom_name,omitempty"`
	CursorRow  int    `json:"cursor_row,omitempty"`
	CursorCol  int    `json:"cursor_col,omitempty"`
}

// SessionSnapshot is the set of open tabs captured at exit and restored
// at launch.
type SessionSnapshot struct {
	Tabs []TabState `json:"tabs"`
}
