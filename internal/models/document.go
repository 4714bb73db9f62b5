package models

import (
	"path/filepath"
	"strconv"
)

// Document is the in-memory model of one editor buffer.
type Document struct {
	FilePath   string
	Content    string
	CustomName string
	Untitled   int // sequence number for unsaved buffers
	Modified   bool

	// Missing is set when the document was restored from a session
	// whose backing file has disappeared from disk.
	Missing bool
}

// DisplayName resolves the tab title: a user-chosen name wins over the
// file's base name, and pathless buffers are numbered "Untitled-N".
func (d *Document) DisplayName() string {
	if d.CustomName != "" {
		return d.CustomName
	}
	if d.FilePath != "" {
		return filepath.Base(d.FilePath)
	}
	if d.Untitled > 0 {
		return "Untitled-" + strconv.Itoa(d.Untitled)
	}
	return "Untitled"
}

// TabTitle is the display name plus a modification marker.
func (d *Document) TabTitle() string {
	name := d.DisplayName()
	if d.Modified {
		return name + " *"
	}
	return name
}

func (d *Document) SetSaved(path string) {
	d.FilePath = path
	d.Modified = false
	d.Missing = false
}
