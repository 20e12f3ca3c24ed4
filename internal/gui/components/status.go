package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the current shell state and an indeterminate progress
// indicator while a conversion runs. The indicator is decorative; the driver
// reports no intermediate progress.
type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	progress    *widget.ProgressBarInfinite
}

func NewStatusBar() *StatusBar {
	statusLabel := widget.NewLabel("Ready. Select files to begin.")
	progress := widget.NewProgressBarInfinite()
	progress.Stop()
	progress.Hide()

	bar := container.NewBorder(nil, nil, nil, progress, statusLabel)

	return &StatusBar{
		container:   container.NewVBox(widget.NewSeparator(), bar),
		statusLabel: statusLabel,
		progress:    progress,
	}
}

func (s *StatusBar) GetContainer() *fyne.Container {
	return s.container
}

func (s *StatusBar) SetStatus(status string) {
	s.statusLabel.SetText(status)
}

func (s *StatusBar) SetBusy(busy bool) {
	if busy {
		s.progress.Show()
		s.progress.Start()
		return
	}
	s.progress.Stop()
	s.progress.Hide()
}
