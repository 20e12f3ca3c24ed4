package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Controls groups the quality tier selector and the convert button.
type Controls struct {
	container     *fyne.Container
	qualityRadio  *widget.RadioGroup
	ConvertButton *widget.Button

	qualityChangeHandler func(string)
	convertHandler       func()
}

func NewControls(qualityTiers []string, defaultTier string) *Controls {
	controls := &Controls{}
	controls.setupControls(qualityTiers, defaultTier)
	return controls
}

func (c *Controls) setupControls(qualityTiers []string, defaultTier string) {
	qualityLabel := widget.NewLabel("PDF quality:")
	c.qualityRadio = widget.NewRadioGroup(qualityTiers, c.onQualitySelected)
	c.qualityRadio.SetSelected(defaultTier)
	c.qualityRadio.Horizontal = true

	c.ConvertButton = widget.NewButton("Convert to PDF", c.onConvert)
	c.ConvertButton.Importance = widget.HighImportance

	qualityGroup := container.NewHBox(qualityLabel, c.qualityRadio)

	c.container = container.NewVBox(
		qualityGroup,
		container.NewCenter(c.ConvertButton),
	)
}

func (c *Controls) GetContainer() *fyne.Container {
	return c.container
}

func (c *Controls) SelectedQuality() string {
	return c.qualityRadio.Selected
}

func (c *Controls) SetSelectedQuality(tier string) {
	c.qualityRadio.SetSelected(tier)
}

// SetConverting toggles the convert button while a conversion is in flight.
func (c *Controls) SetConverting(converting bool) {
	if converting {
		c.ConvertButton.Disable()
		return
	}
	c.ConvertButton.Enable()
}

func (c *Controls) SetQualityChangeHandler(handler func(string)) {
	c.qualityChangeHandler = handler
}

func (c *Controls) SetConvertHandler(handler func()) {
	c.convertHandler = handler
}

func (c *Controls) onQualitySelected(tier string) {
	if c.qualityChangeHandler != nil {
		c.qualityChangeHandler(tier)
	}
}

func (c *Controls) onConvert() {
	if c.convertHandler != nil {
		c.convertHandler()
	}
}
