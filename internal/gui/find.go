package gui

import (
	"fmt"

	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"kun/internal/search"
)

func (m *Manager) setupFindBar() {
	m.findBar.OnSearch = func(term string, caseSensitive bool) {
		m.runSearch(term, search.Options{CaseSensitive: caseSensitive})
	}
	m.findBar.OnNext = func() { m.stepMatch(1) }
	m.findBar.OnPrevious = func() { m.stepMatch(-1) }
	m.findBar.OnClose = m.HideFind
}

// ShowFind reveals the find bar and focuses its input.
func (m *Manager) ShowFind() {
	m.findBar.Show(m.window.Canvas())
}

func (m *Manager) HideFind() {
	m.findBar.Hide()
	m.findMatches = nil
	if editor := m.CurrentEditor(); editor != nil {
		m.window.Canvas().Focus(editor.Entry)
	}
}

func (m *Manager) runSearch(term string, opts search.Options) {
	editor := m.CurrentEditor()
	if editor == nil || term == "" {
		m.Flash("Please enter text to search")
		return
	}

	m.findMatches = search.FindAll(editor.Doc.Content, term, opts)
	m.findIndex = 0
	m.findBar.SetMatchStatus(1, len(m.findMatches))

	if len(m.findMatches) == 0 {
		m.Flash("No matches found")
		return
	}
	m.jumpToMatch(0)
	m.Flash(fmt.Sprintf("Found %d matches", len(m.findMatches)))
}

// stepMatch advances through the match list, wrapping at either end.
func (m *Manager) stepMatch(delta int) {
	if len(m.findMatches) == 0 {
		m.runSearch(m.findBar.Term(), search.Options{CaseSensitive: m.findBar.CaseSensitive()})
		return
	}
	m.findIndex = (m.findIndex + delta + len(m.findMatches)) % len(m.findMatches)
	m.jumpToMatch(m.findIndex)
}

func (m *Manager) jumpToMatch(index int) {
	editor := m.CurrentEditor()
	if editor == nil || index >= len(m.findMatches) {
		return
	}
	editor.MoveCursorTo(m.findMatches[index].End)
	m.findBar.SetMatchStatus(index+1, len(m.findMatches))
}

// ShowReplaceDialog opens the find & replace dialog for the active tab.
func (m *Manager) ShowReplaceDialog() {
	editor := m.CurrentEditor()
	if editor == nil {
		return
	}

	findInput := widget.NewEntry()
	findInput.SetPlaceHolder("Find")
	replaceInput := widget.NewEntry()
	replaceInput.SetPlaceHolder("Replace with")

	caseCheck := widget.NewCheck("Case sensitive", nil)
	wholeCheck := widget.NewCheck("Match whole words", nil)
	wrapCheck := widget.NewCheck("Wrap around", nil)
	wrapCheck.SetChecked(true)

	opts := func() search.Options {
		return search.Options{
			CaseSensitive: caseCheck.Checked,
			WholeWord:     wholeCheck.Checked,
		}
	}

	findNext := widget.NewButton("Find Next", func() {
		m.findFrom(findInput.Text, opts(), wrapCheck.Checked)
	})
	replaceBtn := widget.NewButton("Replace", func() {
		m.replaceNext(findInput.Text, replaceInput.Text, opts(), wrapCheck.Checked)
	})
	replaceAllBtn := widget.NewButton("Replace All", func() {
		m.replaceAll(findInput.Text, replaceInput.Text, opts())
	})

	form := container.NewVBox(
		widget.NewForm(
			widget.NewFormItem("Find:", findInput),
			widget.NewFormItem("Replace:", replaceInput),
		),
		caseCheck,
		wholeCheck,
		wrapCheck,
		container.NewHBox(findNext, replaceBtn, replaceAllBtn),
	)

	dialog.ShowCustom("Find and Replace", "Close", form, m.window)
}

func (m *Manager) findFrom(term string, opts search.Options, wrap bool) bool {
	editor := m.CurrentEditor()
	if editor == nil || term == "" {
		return false
	}

	matches := search.FindAll(editor.Doc.Content, term, opts)
	index, ok := search.Next(matches, editor.CursorOffset(), wrap)
	if !ok {
		m.Flash("No more matches found")
		return false
	}
	editor.MoveCursorTo(matches[index].End)
	return true
}

func (m *Manager) replaceNext(term, replacement string, opts search.Options, wrap bool) {
	editor := m.CurrentEditor()
	if editor == nil || term == "" {
		return
	}

	matches := search.FindAll(editor.Doc.Content, term, opts)
	index, ok := search.Next(matches, editor.CursorOffset(), wrap)
	if !ok {
		m.Flash("No more matches found")
		return
	}

	match := matches[index]
	newText := search.ReplaceAt(editor.Doc.Content, match, replacement)
	editor.Entry.SetText(newText)
	editor.MoveCursorTo(match.Start + len([]rune(replacement)))
	m.Flash("Replaced 1 occurrence")
}

func (m *Manager) replaceAll(term, replacement string, opts search.Options) {
	editor := m.CurrentEditor()
	if editor == nil || term == "" {
		return
	}

	newText, count := search.ReplaceAll(editor.Doc.Content, term, replacement, opts)
	if count > 0 {
		editor.Entry.SetText(newText)
	}
	m.Flash(fmt.Sprintf("Replaced %d occurrences", count))
}
