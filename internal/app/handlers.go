package app

import (
	"context"
	"errors"
	"path/filepath"
	"sync/atomic"

	"word2pdf/internal/convert"
	"word2pdf/internal/gui"
	"word2pdf/internal/logger"
	"word2pdf/internal/settings"
)

// Handlers reacts to shell events. Conversions run on a worker goroutine;
// every resulting UI update goes back through the gui.Manager, which marshals
// onto the interaction thread.
type Handlers struct {
	driver      *convert.Driver
	launcherErr error
	gui         *gui.Manager
	log         logger.Logger
	updatePrefs func(func(*settings.Settings))

	// inFlight serializes requests: a new conversion is rejected while one
	// is running, so two automation sessions can never collide.
	inFlight atomic.Bool
}

func NewHandlers(driver *convert.Driver, launcherErr error, guiManager *gui.Manager, log logger.Logger, updatePrefs func(func(*settings.Settings))) *Handlers {
	return &Handlers{
		driver:      driver,
		launcherErr: launcherErr,
		gui:         guiManager,
		log:         log,
		updatePrefs: updatePrefs,
	}
}

func (h *Handlers) HandleConvert() {
	if err := h.gui.ValidatePaths(); err != nil {
		h.gui.ShowError("Missing Paths", err)
		return
	}

	if h.driver == nil {
		h.gui.ShowError("Word Processor Missing", h.launcherErr)
		return
	}

	if !h.inFlight.CompareAndSwap(false, true) {
		h.gui.UpdateStatus("A conversion is already running; wait for it to finish.")
		return
	}

	request := convert.Request{
		InputPath:  h.gui.InputPath(),
		OutputPath: h.gui.OutputPath(),
		Quality:    convert.ParseQuality(h.gui.SelectedQuality()),
	}

	h.gui.SetConverting(true)
	h.gui.UpdateStatus("Converting... this can take a while for large documents.")

	go func() {
		outcome := h.driver.Convert(context.Background(), request)

		h.inFlight.Store(false)
		h.gui.SetConverting(false)
		h.reportOutcome(request, outcome)
	}()
}

func (h *Handlers) reportOutcome(request convert.Request, outcome convert.Outcome) {
	if outcome.Succeeded {
		h.gui.UpdateStatus("Conversion complete.")
		h.gui.ShowSuccess("Conversion Complete", "PDF saved to:\n"+request.OutputPath)

		h.updatePrefs(func(s *settings.Settings) {
			s.LastOutputDir = filepath.Dir(request.OutputPath)
		})
		return
	}

	// ErrorDetail goes to the operator verbatim and to the diagnostic log;
	// there is no automatic retry.
	h.log.Error("Handlers", errors.New(outcome.ErrorDetail), map[string]interface{}{
		"kind":   outcome.Kind.String(),
		"input":  request.InputPath,
		"output": request.OutputPath,
	})
	h.gui.UpdateStatus("Conversion failed.")
	h.gui.ShowError("Conversion Failed", errors.New(outcome.ErrorDetail))
}

func (h *Handlers) HandleQualityChange(tier string) {
	h.updatePrefs(func(s *settings.Settings) {
		s.DefaultQuality = tier
	})
	h.log.Debug("Handlers", "default quality changed", map[string]interface{}{
		"quality": tier,
	})
}

func (h *Handlers) HandleInputSelected(path string) {
	h.updatePrefs(func(s *settings.Settings) {
		s.LastInputDir = filepath.Dir(path)
	})
}
