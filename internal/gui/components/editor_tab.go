package components

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"kun/internal/models"
)

// EditorTab couples one document buffer with its entry widget and an
// optional line-number gutter.
type EditorTab struct {
	Doc   *models.Document
	Entry *widget.Entry

	gutter      *widget.Label
	content     *fyne.Container
	showNumbers bool

	OnChanged     func()
	OnCursorMoved func()
}

func NewEditorTab(doc *models.Document, showLineNumbers bool) *EditorTab {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapOff
	entry.TextStyle = fyne.TextStyle{Monospace: true}

	gutter := widget.NewLabel("1")
	gutter.TextStyle = fyne.TextStyle{Monospace: true}
	gutter.Alignment = fyne.TextAlignTrailing

	tab := &EditorTab{
		Doc:         doc,
		Entry:       entry,
		gutter:      gutter,
		showNumbers: showLineNumbers,
	}

	entry.OnChanged = func(text string) {
		if text != tab.Doc.Content {
			tab.Doc.Content = text
			tab.Doc.Modified = true
		}
		tab.refreshGutter()
		if tab.OnChanged != nil {
			tab.OnChanged()
		}
	}
	entry.OnCursorChanged = func() {
		if tab.OnCursorMoved != nil {
			tab.OnCursorMoved()
		}
	}

	entry.SetText(doc.Content)
	// SetText marks the buffer dirty through OnChanged; a freshly
	// opened document is clean.
	doc.Modified = false

	tab.content = container.NewBorder(nil, nil, gutter, nil, entry)
	tab.SetShowLineNumbers(showLineNumbers)
	return tab
}

// Container is the widget tree for this tab.
func (t *EditorTab) Container() fyne.CanvasObject {
	return t.content
}

// SetContent replaces the buffer text without marking it modified.
func (t *EditorTab) SetContent(text string) {
	t.Entry.SetText(text)
	t.Doc.Content = text
	t.Doc.Modified = false
	t.refreshGutter()
}

// CursorOffset converts the entry's row/column cursor into a rune
// offset into the buffer.
func (t *EditorTab) CursorOffset() int {
	lines := strings.Split(t.Entry.Text, "\n")
	offset := 0
	for i := 0; i < t.Entry.CursorRow && i < len(lines); i++ {
		offset += len([]rune(lines[i])) + 1
	}
	return offset + t.Entry.CursorColumn
}

// MoveCursorTo places the cursor at a rune offset and scrolls it into
// view.
func (t *EditorTab) MoveCursorTo(offset int) {
	runes := []rune(t.Entry.Text)
	if offset < 0 {
		offset = 0
	}
	if offset > len(runes) {
		offset = len(runes)
	}

	row, col := 0, 0
	for _, r := range runes[:offset] {
		if r == '\n' {
			row++
			col = 0
		} else {
			col++
		}
	}

	t.Entry.CursorRow = row
	t.Entry.CursorColumn = col
	t.Entry.Refresh()
	if t.OnCursorMoved != nil {
		t.OnCursorMoved()
	}
}

func (t *EditorTab) SetShowLineNumbers(show bool) {
	t.showNumbers = show
	if show {
		t.refreshGutter()
		t.gutter.Show()
	} else {
		t.gutter.Hide()
	}
}

// refreshGutter renders one number per buffer line. The gutter does not
// track the entry's internal scroll position; with wrapping off the two
// stay aligned for documents that fit the viewport.
func (t *EditorTab) refreshGutter() {
	if !t.showNumbers {
		return
	}

	lineCount := strings.Count(t.Entry.Text, "\n") + 1
	var b strings.Builder
	for i := 1; i <= lineCount; i++ {
		if i > 1 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i))
	}
	t.gutter.SetText(b.String())
}
