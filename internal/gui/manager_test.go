package gui

import (
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"word2pdf/internal/convert"
	"word2pdf/internal/logger"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	testApp := test.NewApp()
	window := testApp.NewWindow("test")
	t.Cleanup(window.Close)

	return NewManager(window, logger.Nop{}, convert.QualityNames, "Standard")
}

func TestSuggestOutputPath(t *testing.T) {
	manager := newTestManager(t)

	input := filepath.Join("/home/op/docs", "report.docx")
	manager.SuggestOutputPath(input)

	assert.Equal(t, filepath.Join("/home/op/docs", "report.pdf"), manager.OutputPath())
}

func TestSuggestOutputPathKeepsOperatorChoice(t *testing.T) {
	manager := newTestManager(t)

	manager.pathsPanel.SetOutputPath("/elsewhere/chosen.pdf")
	manager.SuggestOutputPath("/home/op/docs/report.docx")

	assert.Equal(t, "/elsewhere/chosen.pdf", manager.OutputPath())
}

func TestValidatePaths(t *testing.T) {
	manager := newTestManager(t)

	assert.Error(t, manager.ValidatePaths())

	manager.pathsPanel.SetInputPath("/home/op/docs/report.docx")
	assert.Error(t, manager.ValidatePaths())

	manager.pathsPanel.SetOutputPath("/home/op/docs/report.pdf")
	assert.NoError(t, manager.ValidatePaths())
}

func TestDefaultQualitySelection(t *testing.T) {
	manager := newTestManager(t)

	assert.Equal(t, "Standard", manager.SelectedQuality())

	manager.SetSelectedQuality("Minimum")
	assert.Equal(t, "Minimum", manager.SelectedQuality())
}
