package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"kun/internal/models"
	"kun/internal/textstat"
)

// StatusBar shows word/character counts, the cursor position, the
// encoding, and the current file path. The character counter doubles as
// the with/without-spaces mode toggle.
type StatusBar struct {
	words    *widget.Label
	chars    *widget.Button
	position *widget.Label
	encoding *widget.Label
	filePath *widget.Label
	message  *widget.Label

	container *fyne.Container

	OnCharModeToggle func()
}

func NewStatusBar() *StatusBar {
	bar := &StatusBar{
		words:    widget.NewLabel("0 words"),
		position: widget.NewLabel("Ln 1, Col 1"),
		encoding: widget.NewLabel("UTF-8"),
		filePath: widget.NewLabel("Unsaved"),
		message:  widget.NewLabel(""),
	}

	bar.chars = widget.NewButton("0 chars (with spaces)", func() {
		if bar.OnCharModeToggle != nil {
			bar.OnCharModeToggle()
		}
	})
	bar.chars.Importance = widget.LowImportance

	bar.container = container.NewHBox(
		bar.words,
		widget.NewSeparator(),
		bar.chars,
		widget.NewSeparator(),
		bar.position,
		widget.NewSeparator(),
		bar.encoding,
		bar.message,
		layout.NewSpacer(),
		bar.filePath,
	)
	return bar
}

func (b *StatusBar) Container() fyne.CanvasObject {
	return b.container
}

// Update refreshes every counter from the given text and cursor offset.
func (b *StatusBar) Update(text string, cursorOffset int, charMode string) {
	withSpaces := charMode != models.CharCountWithoutSpaces
	stats := textstat.Analyze(text, cursorOffset, withSpaces)

	modeLabel := "with spaces"
	if !withSpaces {
		modeLabel = "without spaces"
	}

	b.words.SetText(fmt.Sprintf("%d words", stats.Words))
	b.chars.SetText(fmt.Sprintf("%d chars (%s)", stats.Characters, modeLabel))
	b.position.SetText(fmt.Sprintf("Ln %d, Col %d", stats.CurrentLine, stats.CurrentCol))
}

// SetFilePath shows the document path, truncated from the left so the
// file name stays visible.
func (b *StatusBar) SetFilePath(path string, missing bool) {
	switch {
	case path == "":
		b.filePath.SetText("Unsaved")
	case missing:
		b.filePath.SetText("⚠ " + truncatePath(path))
	default:
		b.filePath.SetText(truncatePath(path))
	}
}

// Flash shows a transient message next to the counters.
func (b *StatusBar) Flash(message string) {
	b.message.SetText(message)
}

func truncatePath(path string) string {
	const limit = 60
	runes := []rune(path)
	if len(runes) <= limit {
		return path
	}
	return "..." + string(runes[len(runes)-(limit-3):])
}
