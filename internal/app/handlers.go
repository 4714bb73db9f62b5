package app

import (
	"fmt"
	"io"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"kun/internal/fileio"
	"kun/internal/gui/components"
	"kun/internal/models"
	"kun/internal/textstat"
)

var textFileFilter = storage.NewExtensionFileFilter([]string{".txt", ".md", ".log"})

func (a *Application) setupHandlers() {
	a.guiManager.OnCloseRequested = a.confirmCloseTab
	a.guiManager.OnCharModeToggled = a.toggleCharCountMode
}

func (a *Application) handleNewTab() {
	a.guiManager.AddDocument(&models.Document{})
}

func (a *Application) handleOpen() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError("File Load Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		data, readErr := io.ReadAll(reader)
		reader.Close()
		if readErr != nil {
			a.showError("File Read Error", readErr)
			return
		}

		doc := &models.Document{FilePath: path, Content: string(data)}
		a.guiManager.AddDocument(doc)
		a.addRecent(path)
	}, a.window)
	picker.SetFilter(textFileFilter)
	picker.Show()
}

func (a *Application) openPath(path string) {
	content, err := fileio.ReadText(path)
	if err != nil {
		a.logger.Warning("Application", "cannot open file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		a.showError("File Not Found", fmt.Errorf("cannot open %s: %w", path, err))
		return
	}

	a.guiManager.AddDocument(&models.Document{FilePath: path, Content: content})
	a.addRecent(path)
}

func (a *Application) handleSave() {
	editor := a.guiManager.CurrentEditor()
	if editor == nil {
		return
	}
	if editor.Doc.FilePath == "" {
		a.handleSaveAs()
		return
	}
	a.writeDocument(editor, editor.Doc.FilePath)
}

func (a *Application) handleSaveAs() {
	editor := a.guiManager.CurrentEditor()
	if editor == nil {
		return
	}

	picker := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		_, writeErr := writer.Write([]byte(editor.Doc.Content))
		closeErr := writer.Close()
		if writeErr == nil {
			writeErr = closeErr
		}
		if writeErr != nil {
			a.showError("File Save Error", writeErr)
			return
		}

		editor.Doc.SetSaved(path)
		a.guiManager.RefreshTitle(editor)
		a.guiManager.RefreshStatus()
		a.addRecent(path)
		a.guiManager.Flash("Saved: " + path)
	}, a.window)

	name := editor.Doc.DisplayName()
	if !strings.Contains(name, ".") {
		name += ".txt"
	}
	picker.SetFileName(name)
	picker.SetFilter(textFileFilter)
	picker.Show()
}

// writeDocument saves to a known path, keeping in-memory state when the
// write fails.
func (a *Application) writeDocument(editor *components.EditorTab, path string) {
	if err := fileio.WriteText(path, editor.Doc.Content); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{"path": path})
		a.showError("File Save Error", err)
		return
	}

	editor.Doc.SetSaved(path)
	a.guiManager.RefreshTitle(editor)
	a.guiManager.RefreshStatus()
	a.addRecent(path)
	a.guiManager.Flash("Saved: " + path)
}

// autoSaveAll writes every modified, file-backed tab. Runs on the UI
// thread via fyne.Do.
func (a *Application) autoSaveAll() {
	saved := 0
	for _, editor := range a.guiManager.Editors() {
		if !editor.Doc.Modified || editor.Doc.FilePath == "" {
			continue
		}
		if err := fileio.WriteText(editor.Doc.FilePath, editor.Doc.Content); err != nil {
			a.logger.Warning("Application", "auto-save failed", map[string]interface{}{
				"path":  editor.Doc.FilePath,
				"error": err.Error(),
			})
			continue
		}
		editor.Doc.SetSaved(editor.Doc.FilePath)
		a.guiManager.RefreshTitle(editor)
		saved++
	}
	if saved > 0 {
		a.guiManager.Flash(fmt.Sprintf("Auto-saved %d file(s)", saved))
	}
}

// confirmCloseTab asks about unsaved changes before letting a tab go.
func (a *Application) confirmCloseTab(editor *components.EditorTab, close func()) {
	message := fmt.Sprintf("Save changes to %s?", editor.Doc.DisplayName())

	var d dialog.Dialog
	saveBtn := widget.NewButton("Save", func() {
		d.Hide()
		if editor.Doc.FilePath != "" {
			a.writeDocument(editor, editor.Doc.FilePath)
			close()
			return
		}
		// Save As flow keeps the tab open; the user retries the close.
		a.handleSaveAs()
	})
	discardBtn := widget.NewButton("Discard", func() {
		d.Hide()
		close()
	})

	content := container.NewVBox(
		widget.NewLabel(message),
		container.NewHBox(saveBtn, discardBtn),
	)
	d = dialog.NewCustom("Unsaved Changes", "Cancel", content, a.window)
	d.Show()
}

func (a *Application) handleWindowClose() {
	unsaved := 0
	for _, doc := range a.guiManager.Documents() {
		if doc.Modified {
			unsaved++
		}
	}

	if unsaved == 0 {
		a.shutdownAndClose()
		return
	}

	dialog.ShowConfirm(
		"Unsaved Changes",
		fmt.Sprintf("%d tab(s) have unsaved changes. Exit anyway? Unsaved buffers are kept in the session.", unsaved),
		func(confirmed bool) {
			if confirmed {
				a.shutdownAndClose()
			}
		},
		a.window,
	)
}

// shutdownAndClose runs on the UI goroutine (close intercept and menu
// callbacks); UI state is captured here before the shutdown sequence
// takes over on its own goroutines.
func (a *Application) shutdownAndClose() {
	a.persistState()
	a.shutdowner.Shutdown()
	a.window.Close()
}

func (a *Application) addRecent(path string) {
	a.record.RecentFiles.Add(path)
	a.saveConfig()
	a.rebuildMenus()
}

func (a *Application) clearRecent() {
	a.record.RecentFiles.Clear()
	a.saveConfig()
	a.rebuildMenus()
}

func (a *Application) toggleCharCountMode() {
	if a.record.CharCountMode == models.CharCountWithSpaces {
		a.record.CharCountMode = models.CharCountWithoutSpaces
	} else {
		a.record.CharCountMode = models.CharCountWithSpaces
	}
	a.guiManager.SetCharCountMode(a.record.CharCountMode)
	a.saveConfig()
}

func (a *Application) toggleSpellCheck() {
	a.record.SpellCheckEnabled = !a.record.SpellCheckEnabled
	a.speller.SetEnabled(a.record.SpellCheckEnabled)
	a.saveConfig()
	a.rebuildMenus()
}

func (a *Application) toggleLineNumbers() {
	a.record.ShowLineNumbers = !a.record.ShowLineNumbers
	a.guiManager.SetShowLineNumbers(a.record.ShowLineNumbers)
	a.saveConfig()
	a.rebuildMenus()
}

func (a *Application) selectTheme(id string) {
	a.record.Theme = id
	a.applyTheme(id)
	a.saveConfig()
	a.rebuildMenus()

	if t, ok := a.themes.Get(id); ok {
		a.guiManager.Flash("Applied theme: " + t.Name)
	}
}

func (a *Application) renameCurrentTab() {
	editor := a.guiManager.CurrentEditor()
	if editor == nil {
		return
	}

	nameInput := widget.NewEntry()
	nameInput.SetText(editor.Doc.DisplayName())

	dialog.ShowForm("Rename Tab", "Rename", "Cancel",
		[]*widget.FormItem{widget.NewFormItem("Name:", nameInput)},
		func(confirmed bool) {
			if !confirmed || nameInput.Text == "" {
				return
			}
			editor.Doc.CustomName = nameInput.Text
			a.guiManager.RefreshTitle(editor)
			a.guiManager.RefreshStatus()
		},
		a.window,
	)
}

// showSpellReport lists misspelled words in the active buffer with
// suggestions.
func (a *Application) showSpellReport() {
	editor := a.guiManager.CurrentEditor()
	if editor == nil {
		return
	}
	if !a.speller.Enabled() {
		dialog.ShowInformation("Spell Check", "Spell checking is disabled or no dictionary is available.", a.window)
		return
	}

	issues := a.speller.FindMisspelled(editor.Doc.Content)
	if len(issues) == 0 {
		dialog.ShowInformation("Spell Check", "No misspelled words found.", a.window)
		return
	}

	var b strings.Builder
	for i, issue := range issues {
		if i >= 50 {
			fmt.Fprintf(&b, "… and %d more\n", len(issues)-i)
			break
		}
		line, col := textstat.LineCol(editor.Doc.Content, issue.Start)
		fmt.Fprintf(&b, "%s (Ln %d, Col %d)", issue.Word, line, col)
		if suggestions := a.speller.Suggest(issue.Word, 5); len(suggestions) > 0 {
			fmt.Fprintf(&b, ": did you mean %s?", strings.Join(suggestions, ", "))
		}
		b.WriteByte('\n')
	}

	report := widget.NewLabel(b.String())
	report.Wrapping = fyne.TextWrapWord
	d := dialog.NewCustom("Spell Check", "Close", container.NewVScroll(report), a.window)
	d.Resize(fyne.NewSize(480, 360))
	d.Show()
}

func (a *Application) showError(title string, err error) {
	a.logger.Error("Application", err, map[string]interface{}{"dialog": title})
	dialog.ShowError(err, a.window)
}
