package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// FindBar is the inline search strip shown above the status bar.
type FindBar struct {
	input     *widget.Entry
	caseCheck *widget.Check
	matches   *widget.Label
	container *fyne.Container

	OnSearch   func(term string, caseSensitive bool)
	OnNext     func()
	OnPrevious func()
	OnClose    func()
}

func NewFindBar() *FindBar {
	bar := &FindBar{
		input:   widget.NewEntry(),
		matches: widget.NewLabel(""),
	}
	bar.input.SetPlaceHolder("Enter text to find...")
	bar.input.OnSubmitted = func(string) { bar.search() }

	bar.caseCheck = widget.NewCheck("Match case", func(bool) { bar.search() })

	searchBtn := widget.NewButton("Search", bar.search)
	prevBtn := widget.NewButton("◄ Previous", func() {
		if bar.OnPrevious != nil {
			bar.OnPrevious()
		}
	})
	nextBtn := widget.NewButton("Next ►", func() {
		if bar.OnNext != nil {
			bar.OnNext()
		}
	})
	closeBtn := widget.NewButton("✕", func() {
		if bar.OnClose != nil {
			bar.OnClose()
		}
	})

	bar.container = container.NewBorder(nil, nil,
		widget.NewLabel("Find:"),
		container.NewHBox(searchBtn, prevBtn, nextBtn, bar.caseCheck, bar.matches, closeBtn),
		bar.input,
	)
	bar.container.Hide()
	return bar
}

func (b *FindBar) search() {
	if b.OnSearch != nil {
		b.OnSearch(b.input.Text, b.caseCheck.Checked)
	}
}

func (b *FindBar) Container() fyne.CanvasObject {
	return b.container
}

func (b *FindBar) Show(canvas fyne.Canvas) {
	b.container.Show()
	canvas.Focus(b.input)
}

func (b *FindBar) Hide() {
	b.container.Hide()
	b.matches.SetText("")
}

func (b *FindBar) Visible() bool {
	return b.container.Visible()
}

func (b *FindBar) Term() string {
	return b.input.Text
}

func (b *FindBar) CaseSensitive() bool {
	return b.caseCheck.Checked
}

// SetMatchStatus shows "i of n" (or "No matches") next to the controls.
func (b *FindBar) SetMatchStatus(current, total int) {
	switch {
	case total == 0:
		b.matches.SetText("No matches")
	default:
		b.matches.SetText(fmt.Sprintf("%d of %d", current, total))
	}
}
