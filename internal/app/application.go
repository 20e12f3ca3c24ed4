// Package app wires the Fyne shell to the conversion driver and owns the
// application lifecycle.
package app

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"word2pdf/internal/config"
	"word2pdf/internal/convert"
	"word2pdf/internal/gui"
	"word2pdf/internal/logger"
	"word2pdf/internal/settings"
)

const (
	AppName      = "Word to PDF Converter"
	AppID        = "com.doctools.word2pdf"
	WindowWidth  = 680
	WindowHeight = 300
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	log        logger.Logger
	guiManager *gui.Manager
	handlers   *Handlers
	lifecycle  *Lifecycle

	store *settings.Store
	prefs settings.Settings
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	store, err := settings.NewStore("")
	if err != nil {
		return nil, err
	}
	prefs := store.Load()

	log.Info("Application", "starting application", map[string]interface{}{
		"engine_binary": cfg.EngineBinary,
		"timeout":       cfg.ConvertTimeout.String(),
		"theme":         prefs.Theme,
	})

	guiManager := gui.NewManager(window, log, convert.QualityNames, prefs.DefaultQuality)

	// A missing word processor is reported when the operator converts, not
	// at startup; the window still opens so the message has somewhere to go.
	var driver *convert.Driver
	launcher, launcherErr := convert.NewOfficeLauncher(cfg.EngineBinary, log)
	if launcherErr == nil {
		driver = convert.NewDriver(launcher, log, cfg.ConvertTimeout)
	} else {
		log.Warning("Application", "word processor not available", map[string]interface{}{
			"reason": launcherErr.Error(),
		})
	}

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		log:        log,
		guiManager: guiManager,
		store:      store,
		prefs:      prefs,
	}

	application.handlers = NewHandlers(driver, launcherErr, guiManager, log, application.updatePrefs)
	application.lifecycle = NewLifecycle(guiManager, application.savePrefs, log)

	application.setupHandlers()
	application.setupMenus()
	application.applyTheme(prefs.Theme)

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.guiManager.SetConvertHandler(a.handlers.HandleConvert)
	a.guiManager.SetQualityChangeHandler(a.handlers.HandleQualityChange)
	a.guiManager.SetInputSelectedHandler(a.handlers.HandleInputSelected)
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.log.Info("Application", "shutdown requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.log.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// updatePrefs applies a mutation to the stored preferences and persists it
// best-effort.
func (a *Application) updatePrefs(mutate func(*settings.Settings)) {
	mutate(&a.prefs)
	a.savePrefs()
}

func (a *Application) savePrefs() {
	if err := a.store.Save(a.prefs); err != nil {
		a.log.Warning("Application", "saving preferences failed", map[string]interface{}{
			"reason": err.Error(),
		})
	}
}
