package app

import (
	"word2pdf/internal/gui"
	"word2pdf/internal/logger"
)

type Lifecycle struct {
	guiManager *gui.Manager
	savePrefs  func()
	log        logger.Logger
	isShutdown bool
}

func NewLifecycle(guiManager *gui.Manager, savePrefs func(), log logger.Logger) *Lifecycle {
	return &Lifecycle{
		guiManager: guiManager,
		savePrefs:  savePrefs,
		log:        log,
	}
}

func (l *Lifecycle) Shutdown() {
	if l.isShutdown {
		return
	}

	l.isShutdown = true
	l.log.Info("Lifecycle", "shutdown sequence initiated", nil)

	l.savePrefs()
	l.guiManager.Shutdown()

	l.log.Info("Lifecycle", "shutdown sequence completed", nil)
}
