package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// PathsPanel holds the input document and output PDF path fields with their
// browse buttons.
type PathsPanel struct {
	container    *fyne.Container
	InputEntry   *widget.Entry
	OutputEntry  *widget.Entry
	browseInput  *widget.Button
	browseOutput *widget.Button

	browseInputHandler  func()
	browseOutputHandler func()
}

func NewPathsPanel() *PathsPanel {
	panel := &PathsPanel{}
	panel.setupPanel()
	return panel
}

func (p *PathsPanel) setupPanel() {
	p.InputEntry = widget.NewEntry()
	p.InputEntry.SetPlaceHolder("Word document to convert (.doc, .docx, .odt)")
	p.browseInput = widget.NewButton("Browse...", p.onBrowseInput)

	p.OutputEntry = widget.NewEntry()
	p.OutputEntry.SetPlaceHolder("Where to save the PDF")
	p.browseOutput = widget.NewButton("Browse...", p.onBrowseOutput)

	inputRow := container.NewBorder(nil, nil, widget.NewLabel("Input:"), p.browseInput, p.InputEntry)
	outputRow := container.NewBorder(nil, nil, widget.NewLabel("Output:"), p.browseOutput, p.OutputEntry)

	p.container = container.NewVBox(inputRow, outputRow)
}

func (p *PathsPanel) GetContainer() *fyne.Container {
	return p.container
}

func (p *PathsPanel) InputPath() string {
	return p.InputEntry.Text
}

func (p *PathsPanel) OutputPath() string {
	return p.OutputEntry.Text
}

func (p *PathsPanel) SetInputPath(path string) {
	p.InputEntry.SetText(path)
}

func (p *PathsPanel) SetOutputPath(path string) {
	p.OutputEntry.SetText(path)
}

func (p *PathsPanel) SetBrowseInputHandler(handler func()) {
	p.browseInputHandler = handler
}

func (p *PathsPanel) SetBrowseOutputHandler(handler func()) {
	p.browseOutputHandler = handler
}

func (p *PathsPanel) onBrowseInput() {
	if p.browseInputHandler != nil {
		p.browseInputHandler()
	}
}

func (p *PathsPanel) onBrowseOutput() {
	if p.browseOutputHandler != nil {
		p.browseOutputHandler()
	}
}
