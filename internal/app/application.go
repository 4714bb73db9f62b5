package app

import (
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"kun/internal/config"
	"kun/internal/gui"
	"kun/internal/logger"
	"kun/internal/models"
	"kun/internal/session"
	"kun/internal/shutdown"
	"kun/internal/spell"
	"kun/internal/theme"
)

const (
	AppName    = "Kun"
	AppID      = "io.kun.editor"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	configStore *config.Store
	record      models.ConfigRecord

	themes       *theme.Store
	themeWatcher *theme.Watcher
	sessions     *session.Manager
	speller      *spell.Checker
	guiManager   *gui.Manager
	shutdowner   *shutdown.Manager

	statusVisible bool
	autoSaveStop  chan struct{}
}

// New wires every component and opens the given file paths as tabs.
func New(log logger.Logger, paths []string) (*Application, error) {
	if log == nil {
		log = logger.Nop{}
	}

	configStore := config.NewStore(config.DefaultPath(), log)
	record := configStore.Load()

	log.Info("Application", "starting", map[string]interface{}{
		"version":     AppVersion,
		"config_path": configStore.Path(),
		"theme":       record.Theme,
		"cli_files":   len(paths),
	})

	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(record.WindowWidth), float32(record.WindowHeight)))
	window.CenterOnScreen()
	window.SetMaster()

	themes := theme.NewStore(config.ThemesDir(), log)
	speller := spell.NewChecker(log)
	speller.SetEnabled(record.SpellCheckEnabled)
	sessions := session.NewManager(log)
	guiManager := gui.NewManager(window, log, record.CharCountMode, record.ShowLineNumbers)
	shutdowner := shutdown.NewManager(log)

	a := &Application{
		fyneApp:       fyneApp,
		window:        window,
		logger:        log,
		configStore:   configStore,
		record:        record,
		themes:        themes,
		sessions:      sessions,
		speller:       speller,
		guiManager:    guiManager,
		shutdowner:    shutdowner,
		statusVisible: true,
		autoSaveStop:  make(chan struct{}),
	}

	a.setupHandlers()
	a.applyTheme(record.Theme)
	a.startThemeWatcher()

	if record.RestoreSession {
		a.restoreSession()
	}
	for _, path := range paths {
		a.openPath(path)
	}
	if len(a.guiManager.Editors()) == 0 {
		a.guiManager.AddDocument(&models.Document{})
	}

	window.SetContent(guiManager.Content())
	a.rebuildMenus()
	a.setupShortcuts()

	window.SetCloseIntercept(a.handleWindowClose)
	window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		for _, uri := range uris {
			a.openPath(uri.Path())
		}
	})

	// Shutdown stops run off the UI goroutine, so only the plain file
	// write is registered here. The close path captures geometry and
	// session state on the UI goroutine first, in shutdownAndClose.
	shutdowner.Register("config", a.saveConfig)
	if a.themeWatcher != nil {
		shutdowner.Register("theme watcher", a.themeWatcher.Shutdown)
	}
	shutdowner.Register("auto-save", a.stopAutoSave)
	shutdowner.Listen()

	if record.AutoSave {
		go a.autoSaveLoop()
	}

	log.Info("Application", "initialization complete", map[string]interface{}{
		"tabs":   len(a.guiManager.Editors()),
		"themes": len(themes.IDs()),
	})
	return a, nil
}

// Run shows the window and blocks in the toolkit event loop.
func (a *Application) Run() {
	a.window.ShowAndRun()
}

func (a *Application) startThemeWatcher() {
	watcher, err := theme.NewWatcher(a.themes, a.logger, func() {
		fyne.Do(func() {
			a.applyTheme(a.record.Theme)
			a.rebuildMenus()
		})
	})
	if err != nil {
		a.logger.Warning("Application", "theme watcher unavailable", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	a.themeWatcher = watcher
}

func (a *Application) applyTheme(id string) {
	t := a.themes.ResolveOrDefault(id)
	a.fyneApp.Settings().SetTheme(theme.NewFyneTheme(t))
	a.logger.Debug("Application", "theme applied", map[string]interface{}{
		"theme": t.ID,
		"glass": t.Effects.Glass,
	})
}

func (a *Application) restoreSession() {
	for _, tab := range a.sessions.Restore(a.record.LastSession) {
		doc := &models.Document{
			FilePath:   tab.State.FilePath,
			Content:    tab.Content,
			CustomName: tab.State.CustomName,
			Missing:    tab.Missing,
		}
		editor := a.guiManager.AddDocument(doc)
		if tab.State.CursorRow > 0 || tab.State.CursorCol > 0 {
			editor.Entry.CursorRow = tab.State.CursorRow
			editor.Entry.CursorColumn = tab.State.CursorCol
		}
		if tab.Missing {
			a.guiManager.Flash("Restored " + doc.DisplayName() + " from last session; file is missing on disk")
		}
	}
}

// captureSession snapshots the open tabs, including cursor positions.
func (a *Application) captureSession() {
	editors := a.guiManager.Editors()
	docs := make([]*models.Document, len(editors))
	for i, editor := range editors {
		docs[i] = editor.Doc
	}

	snapshot := a.sessions.Capture(docs)
	for i, editor := range editors {
		if i < len(snapshot.Tabs) {
			snapshot.Tabs[i].CursorRow = editor.Entry.CursorRow
			snapshot.Tabs[i].CursorCol = editor.Entry.CursorColumn
		}
	}
	a.record.LastSession = snapshot
}

// persistState writes the full config record, including window
// geometry and the session snapshot. It reads the canvas and editor
// cursors directly and must run on the UI goroutine.
func (a *Application) persistState() {
	size := a.window.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		a.record.WindowWidth = int(size.Width)
		a.record.WindowHeight = int(size.Height)
	}
	a.captureSession()
	a.saveConfig()
}

// saveConfig persists the record; a failure is surfaced without
// discarding in-memory state. Safe to call from any goroutine.
func (a *Application) saveConfig() {
	if err := a.configStore.Save(a.record); err != nil {
		a.logger.Error("Application", err, map[string]interface{}{
			"path": a.configStore.Path(),
		})
		fyne.Do(func() {
			a.guiManager.Flash("Failed to save settings: " + err.Error())
		})
	}
}

func (a *Application) autoSaveLoop() {
	ticker := time.NewTicker(time.Duration(a.record.AutoSaveInterval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			fyne.Do(a.autoSaveAll)
		case <-a.autoSaveStop:
			return
		}
	}
}

func (a *Application) stopAutoSave() {
	select {
	case <-a.autoSaveStop:
	default:
		close(a.autoSaveStop)
	}
}
