// Package gui builds the interactive shell: path fields, quality controls,
// status bar, and the dialogs that surface conversion outcomes. All widget
// mutation funnels through fyne.Do so the interaction thread stays the single
// writer of presentation state.
package gui

import (
	"errors"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"word2pdf/internal/gui/components"
	"word2pdf/internal/logger"
)

var (
	documentExtensions = []string{".doc", ".docx", ".odt"}
	pdfExtensions      = []string{".pdf"}
)

type Manager struct {
	window     fyne.Window
	log        logger.Logger
	isShutdown bool

	pathsPanel *components.PathsPanel
	controls   *components.Controls
	statusBar  *components.StatusBar

	inputSelectedHandler func(path string)
	convertHandler       func()
	qualityHandler       func(string)
}

func NewManager(window fyne.Window, log logger.Logger, qualityTiers []string, defaultTier string) *Manager {
	manager := &Manager{
		window:     window,
		log:        log,
		pathsPanel: components.NewPathsPanel(),
		controls:   components.NewControls(qualityTiers, defaultTier),
		statusBar:  components.NewStatusBar(),
	}

	manager.pathsPanel.SetBrowseInputHandler(manager.browseInput)
	manager.pathsPanel.SetBrowseOutputHandler(manager.browseOutput)

	log.Info("GUIManager", "initialized", map[string]interface{}{
		"quality_tiers": qualityTiers,
	})
	return manager
}

func (m *Manager) GetMainContainer() *fyne.Container {
	return container.NewVBox(
		m.pathsPanel.GetContainer(),
		m.controls.GetContainer(),
		m.statusBar.GetContainer(),
	)
}

func (m *Manager) GetWindow() fyne.Window {
	return m.window
}

func (m *Manager) InputPath() string {
	return m.pathsPanel.InputPath()
}

func (m *Manager) OutputPath() string {
	return m.pathsPanel.OutputPath()
}

func (m *Manager) SelectedQuality() string {
	return m.controls.SelectedQuality()
}

func (m *Manager) SetSelectedQuality(tier string) {
	m.controls.SetSelectedQuality(tier)
}

// SetInputSelectedHandler registers the callback invoked after the operator
// picks an input document from the file dialog.
func (m *Manager) SetInputSelectedHandler(handler func(path string)) {
	m.inputSelectedHandler = handler
}

func (m *Manager) SetConvertHandler(handler func()) {
	m.convertHandler = handler
	m.controls.SetConvertHandler(handler)
}

func (m *Manager) SetQualityChangeHandler(handler func(string)) {
	m.qualityHandler = handler
	m.controls.SetQualityChangeHandler(handler)
}

// SuggestOutputPath fills the output field with a default next to the input
// document, unless the operator already chose a destination.
func (m *Manager) SuggestOutputPath(inputPath string) {
	if m.pathsPanel.OutputPath() != "" {
		return
	}

	base := filepath.Base(inputPath)
	stem := base[:len(base)-len(filepath.Ext(base))]
	m.pathsPanel.SetOutputPath(filepath.Join(filepath.Dir(inputPath), stem+".pdf"))
}

func (m *Manager) UpdateStatus(status string) {
	fyne.Do(func() {
		m.statusBar.SetStatus(status)
	})
	m.log.Debug("GUIManager", "status updated", map[string]interface{}{
		"status": status,
	})
}

// SetConverting toggles the busy indicator and disables the convert button
// while a request is in flight.
func (m *Manager) SetConverting(converting bool) {
	fyne.Do(func() {
		m.controls.SetConverting(converting)
		m.statusBar.SetBusy(converting)
	})
}

func (m *Manager) ShowError(title string, err error) {
	m.log.Error("GUIManager", err, map[string]interface{}{
		"title": title,
	})

	fyne.Do(func() {
		dialog.ShowError(err, m.window)
	})
}

func (m *Manager) ShowSuccess(title, message string) {
	fyne.Do(func() {
		dialog.ShowInformation(title, message, m.window)
	})
}

func (m *Manager) browseInput() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			m.ShowError("File Selection Error", err)
			return
		}
		if reader == nil {
			return
		}

		path := reader.URI().Path()
		reader.Close()

		m.pathsPanel.SetInputPath(path)
		m.SuggestOutputPath(path)
		m.statusBar.SetStatus("Selected " + filepath.Base(path))

		if m.inputSelectedHandler != nil {
			m.inputSelectedHandler(path)
		}
	}, m.window)

	picker.SetFilter(storage.NewExtensionFileFilter(documentExtensions))
	picker.Show()
}

func (m *Manager) browseOutput() {
	picker := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			m.ShowError("File Selection Error", err)
			return
		}
		if writer == nil {
			return
		}

		path := writer.URI().Path()
		writer.Close()

		m.pathsPanel.SetOutputPath(path)
		m.statusBar.SetStatus("Saving to " + filepath.Base(path))
	}, m.window)

	picker.SetFilter(storage.NewExtensionFileFilter(pdfExtensions))
	if input := m.pathsPanel.InputPath(); input != "" {
		base := filepath.Base(input)
		picker.SetFileName(base[:len(base)-len(filepath.Ext(base))] + ".pdf")
	}
	picker.Show()
}

// ValidatePaths checks that both fields are filled before a conversion is
// attempted. Existence and writability are the driver's concern.
func (m *Manager) ValidatePaths() error {
	if m.InputPath() == "" || m.OutputPath() == "" {
		return errors.New("select both a Word document and a save location for the PDF")
	}
	return nil
}

func (m *Manager) Shutdown() {
	if m.isShutdown {
		return
	}
	m.isShutdown = true
	m.log.Info("GUIManager", "shutdown initiated", nil)
}
