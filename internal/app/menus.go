package app

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

// rebuildMenus recreates the main menu. Called again whenever a
// checked state or a dynamic submenu (recent files, themes) changes.
func (a *Application) rebuildMenus() {
	mainMenu := fyne.NewMainMenu(
		a.buildFileMenu(),
		a.buildEditMenu(),
		a.buildViewMenu(),
		a.buildHelpMenu(),
	)
	a.window.SetMainMenu(mainMenu)
}

func (a *Application) buildFileMenu() *fyne.Menu {
	newTab := fyne.NewMenuItem("New Tab", a.handleNewTab)
	open := fyne.NewMenuItem("Open...", a.handleOpen)
	save := fyne.NewMenuItem("Save", a.handleSave)
	saveAs := fyne.NewMenuItem("Save As...", a.handleSaveAs)

	recent := fyne.NewMenuItem("Open Recent", nil)
	recent.ChildMenu = a.buildRecentMenu()

	closeTab := fyne.NewMenuItem("Close Tab", a.guiManager.CloseCurrent)
	quit := fyne.NewMenuItem("Quit", func() {
		a.handleWindowClose()
	})

	return fyne.NewMenu("File",
		newTab,
		open,
		recent,
		fyne.NewMenuItemSeparator(),
		save,
		saveAs,
		fyne.NewMenuItemSeparator(),
		closeTab,
		quit,
	)
}

// buildRecentMenu prunes vanished paths before listing, so the menu
// never offers a file that can no longer be opened.
func (a *Application) buildRecentMenu() *fyne.Menu {
	if a.record.RecentFiles.Prune() {
		a.saveConfig()
	}

	items := make([]*fyne.MenuItem, 0, len(a.record.RecentFiles)+2)
	for _, path := range a.record.RecentFiles {
		path := path
		items = append(items, fyne.NewMenuItem(filepath.Base(path), func() {
			a.openPath(path)
		}))
	}

	if len(items) == 0 {
		empty := fyne.NewMenuItem("(empty)", nil)
		empty.Disabled = true
		items = append(items, empty)
	} else {
		items = append(items,
			fyne.NewMenuItemSeparator(),
			fyne.NewMenuItem("Clear Recent", a.clearRecent),
		)
	}

	return fyne.NewMenu("Open Recent", items...)
}

func (a *Application) buildEditMenu() *fyne.Menu {
	find := fyne.NewMenuItem("Find...", a.guiManager.ShowFind)
	replace := fyne.NewMenuItem("Replace...", a.guiManager.ShowReplaceDialog)

	spellReport := fyne.NewMenuItem("Check Spelling...", a.showSpellReport)
	spellToggle := fyne.NewMenuItem("Spell Check", a.toggleSpellCheck)
	spellToggle.Checked = a.record.SpellCheckEnabled

	rename := fyne.NewMenuItem("Rename Tab...", a.renameCurrentTab)

	return fyne.NewMenu("Edit",
		find,
		replace,
		fyne.NewMenuItemSeparator(),
		spellReport,
		spellToggle,
		fyne.NewMenuItemSeparator(),
		rename,
	)
}

func (a *Application) buildViewMenu() *fyne.Menu {
	themes := fyne.NewMenuItem("Theme", nil)
	themes.ChildMenu = a.buildThemeMenu()

	lineNumbers := fyne.NewMenuItem("Line Numbers", a.toggleLineNumbers)
	lineNumbers.Checked = a.record.ShowLineNumbers

	statusBar := fyne.NewMenuItem("Status Bar", func() {
		a.statusVisible = !a.statusVisible
		a.guiManager.SetStatusVisible(a.statusVisible)
		a.rebuildMenus()
	})
	statusBar.Checked = a.statusVisible

	fullscreen := fyne.NewMenuItem("Fullscreen", func() {
		a.window.SetFullScreen(!a.window.FullScreen())
	})

	return fyne.NewMenu("View",
		themes,
		fyne.NewMenuItemSeparator(),
		lineNumbers,
		statusBar,
		fullscreen,
	)
}

func (a *Application) buildThemeMenu() *fyne.Menu {
	ids := a.themes.IDs()
	items := make([]*fyne.MenuItem, 0, len(ids))
	for _, id := range ids {
		id := id
		name := id
		if t, ok := a.themes.Get(id); ok {
			name = t.Name
		}
		item := fyne.NewMenuItem(name, func() {
			a.selectTheme(id)
		})
		item.Checked = id == a.record.Theme
		items = append(items, item)
	}
	return fyne.NewMenu("Theme", items...)
}

func (a *Application) buildHelpMenu() *fyne.Menu {
	about := fyne.NewMenuItem("About", func() {
		dialog.ShowInformation("About "+AppName,
			fmt.Sprintf("%s %s\n\nA tabbed text editor with themes, sessions, and spell checking.", AppName, AppVersion),
			a.window)
	})
	shortcuts := fyne.NewMenuItem("Keyboard Shortcuts", func() {
		dialog.ShowInformation("Keyboard Shortcuts",
			"Ctrl+T\tNew tab\n"+
				"Ctrl+O\tOpen file\n"+
				"Ctrl+S\tSave\n"+
				"Ctrl+Shift+S\tSave as\n"+
				"Ctrl+F\tFind\n"+
				"Ctrl+H\tReplace\n"+
				"Ctrl+W\tClose tab\n"+
				"F11\tFullscreen",
			a.window)
	})

	return fyne.NewMenu("Help", about, shortcuts)
}

// setupShortcuts registers the keyboard bindings on the window canvas.
func (a *Application) setupShortcuts() {
	canvas := a.window.Canvas()

	bindings := []struct {
		key     fyne.KeyName
		mod     fyne.KeyModifier
		handler func()
	}{
		{fyne.KeyT, fyne.KeyModifierControl, a.handleNewTab},
		{fyne.KeyO, fyne.KeyModifierControl, a.handleOpen},
		{fyne.KeyS, fyne.KeyModifierControl, a.handleSave},
		{fyne.KeyS, fyne.KeyModifierControl | fyne.KeyModifierShift, a.handleSaveAs},
		{fyne.KeyF, fyne.KeyModifierControl, a.guiManager.ShowFind},
		{fyne.KeyH, fyne.KeyModifierControl, a.guiManager.ShowReplaceDialog},
		{fyne.KeyW, fyne.KeyModifierControl, a.guiManager.CloseCurrent},
	}
	for _, b := range bindings {
		handler := b.handler
		shortcut := &desktop.CustomShortcut{KeyName: b.key, Modifier: b.mod}
		canvas.AddShortcut(shortcut, func(fyne.Shortcut) { handler() })
	}

	canvas.SetOnTypedKey(func(event *fyne.KeyEvent) {
		if event.Name == fyne.KeyF11 {
			a.window.SetFullScreen(!a.window.FullScreen())
		}
	})
}
