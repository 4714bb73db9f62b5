package gui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"kun/internal/gui/components"
	"kun/internal/logger"
	"kun/internal/models"
	"kun/internal/search"
)

// Manager owns the window content: the document tab strip, the find
// bar, and the status bar. Application-level behavior (persistence,
// themes, session capture) is wired in through the handler fields.
type Manager struct {
	window fyne.Window
	logger logger.Logger

	tabs      *container.DocTabs
	editors   map[*container.TabItem]*components.EditorTab
	statusBar *components.StatusBar
	findBar   *components.FindBar

	charCountMode   string
	showLineNumbers bool
	untitledCounter int

	findMatches []search.Match
	findIndex   int

	// Handlers installed by the application layer.
	OnTabChanged      func(editor *components.EditorTab)
	OnContentChanged  func(editor *components.EditorTab)
	OnCloseRequested  func(editor *components.EditorTab, close func())
	OnCharModeToggled func()
}

func NewManager(window fyne.Window, log logger.Logger, charCountMode string, showLineNumbers bool) *Manager {
	if log == nil {
		log = logger.Nop{}
	}

	m := &Manager{
		window:          window,
		logger:          log,
		editors:         map[*container.TabItem]*components.EditorTab{},
		statusBar:       components.NewStatusBar(),
		findBar:         components.NewFindBar(),
		charCountMode:   charCountMode,
		showLineNumbers: showLineNumbers,
	}

	m.tabs = container.NewDocTabs()
	m.tabs.SetTabLocation(container.TabLocationTop)

	m.tabs.CreateTab = func() *container.TabItem {
		_, item := m.buildEditor(&models.Document{})
		return item
	}
	m.tabs.CloseIntercept = func(item *container.TabItem) {
		editor, ok := m.editors[item]
		if !ok {
			m.tabs.Remove(item)
			return
		}
		close := func() { m.removeItem(item) }
		if m.OnCloseRequested != nil && editor.Doc.Modified {
			m.OnCloseRequested(editor, close)
			return
		}
		close()
	}
	m.tabs.OnSelected = func(item *container.TabItem) {
		m.RefreshStatus()
		if editor, ok := m.editors[item]; ok && m.OnTabChanged != nil {
			m.OnTabChanged(editor)
		}
	}

	m.statusBar.OnCharModeToggle = func() {
		if m.OnCharModeToggled != nil {
			m.OnCharModeToggled()
		}
	}

	m.setupFindBar()

	m.logger.Debug("GUIManager", "initialized", map[string]interface{}{
		"char_count_mode":   charCountMode,
		"show_line_numbers": showLineNumbers,
	})
	return m
}

// Content assembles the window layout.
func (m *Manager) Content() fyne.CanvasObject {
	bottom := container.NewVBox(m.findBar.Container(), m.statusBar.Container())
	return container.NewBorder(nil, bottom, nil, nil, m.tabs)
}

// AddDocument opens a new tab for the document and selects it. A
// pathless, unnamed document receives the next Untitled number.
func (m *Manager) AddDocument(doc *models.Document) *components.EditorTab {
	editor, item := m.buildEditor(doc)
	m.tabs.Append(item)
	m.tabs.Select(item)
	return editor
}

func (m *Manager) buildEditor(doc *models.Document) (*components.EditorTab, *container.TabItem) {
	if doc.FilePath == "" && doc.CustomName == "" && doc.Untitled == 0 {
		m.untitledCounter++
		doc.Untitled = m.untitledCounter
	}

	editor := components.NewEditorTab(doc, m.showLineNumbers)
	item := container.NewTabItem(doc.TabTitle(), editor.Container())
	m.editors[item] = editor

	editor.OnChanged = func() {
		m.findMatches = nil
		item.Text = editor.Doc.TabTitle()
		m.tabs.Refresh()
		m.RefreshStatus()
		if m.OnContentChanged != nil {
			m.OnContentChanged(editor)
		}
	}
	editor.OnCursorMoved = func() {
		m.RefreshStatus()
	}

	return editor, item
}

func (m *Manager) removeItem(item *container.TabItem) {
	delete(m.editors, item)
	m.tabs.Remove(item)
	if len(m.tabs.Items) == 0 {
		m.AddDocument(&models.Document{})
	}
}

// CloseCurrent routes the active tab through the close intercept so
// unsaved-changes handling still applies.
func (m *Manager) CloseCurrent() {
	if item := m.tabs.Selected(); item != nil {
		m.tabs.CloseIntercept(item)
	}
}

// CurrentEditor returns the active tab's editor, or nil with no tabs.
func (m *Manager) CurrentEditor() *components.EditorTab {
	item := m.tabs.Selected()
	if item == nil {
		return nil
	}
	return m.editors[item]
}

// Editors lists open editors in tab order.
func (m *Manager) Editors() []*components.EditorTab {
	out := make([]*components.EditorTab, 0, len(m.tabs.Items))
	for _, item := range m.tabs.Items {
		if editor, ok := m.editors[item]; ok {
			out = append(out, editor)
		}
	}
	return out
}

// Documents lists open documents in tab order.
func (m *Manager) Documents() []*models.Document {
	editors := m.Editors()
	docs := make([]*models.Document, 0, len(editors))
	for _, editor := range editors {
		docs = append(docs, editor.Doc)
	}
	return docs
}

// RefreshTitle syncs the tab label with the document state.
func (m *Manager) RefreshTitle(editor *components.EditorTab) {
	for item, candidate := range m.editors {
		if candidate == editor {
			item.Text = editor.Doc.TabTitle()
			m.tabs.Refresh()
			return
		}
	}
}

// RefreshStatus recomputes the status bar from the active editor.
func (m *Manager) RefreshStatus() {
	editor := m.CurrentEditor()
	if editor == nil {
		return
	}
	m.statusBar.Update(editor.Doc.Content, editor.CursorOffset(), m.charCountMode)
	m.statusBar.SetFilePath(editor.Doc.FilePath, editor.Doc.Missing)
	m.window.SetTitle(editor.Doc.DisplayName() + " - Kun")
}

func (m *Manager) SetCharCountMode(mode string) {
	m.charCountMode = mode
	m.RefreshStatus()
}

func (m *Manager) SetShowLineNumbers(show bool) {
	m.showLineNumbers = show
	for _, editor := range m.editors {
		editor.SetShowLineNumbers(show)
	}
}

func (m *Manager) SetStatusVisible(visible bool) {
	if visible {
		m.statusBar.Container().Show()
	} else {
		m.statusBar.Container().Hide()
	}
}

// Flash shows a transient status message for a few seconds.
func (m *Manager) Flash(message string) {
	m.statusBar.Flash(message)
	time.AfterFunc(3*time.Second, func() {
		fyne.Do(func() {
			m.statusBar.Flash("")
		})
	})
}

func (m *Manager) Window() fyne.Window {
	return m.window
}
