package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"word2pdf/internal/settings"
)

func (a *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Convert", func() {
			a.handlers.HandleConvert()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.lifecycle.Shutdown()
			a.fyneApp.Quit()
		}),
	)

	themeMenu := fyne.NewMenu("Theme",
		fyne.NewMenuItem("System", func() { a.changeTheme("System") }),
		fyne.NewMenuItem("Light", func() { a.changeTheme("Light") }),
		fyne.NewMenuItem("Dark", func() { a.changeTheme("Dark") }),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			dialog.ShowInformation("About",
				AppName+"\n\nConverts Word documents to PDF using an installed office suite.",
				a.window)
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, themeMenu, helpMenu))
}

func (a *Application) changeTheme(name string) {
	a.applyTheme(name)
	a.updatePrefs(func(s *settings.Settings) {
		s.Theme = name
	})
	a.log.Debug("Application", "theme changed", map[string]interface{}{
		"theme": name,
	})
}
