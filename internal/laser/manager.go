package laser

import (
	"errors"

	"droplaser/internal/logging"
)

// Manager owns at most one live Controller and creates it on first use.
type Manager struct {
	factory func() (*Controller, error)
	ctrl    *Controller
	log     *logging.Logger
}

func NewManager(factory func() (*Controller, error), log *logging.Logger) *Manager {
	return &Manager{factory: factory, log: log}
}

// ToggleLaser creates the controller if none is alive and flips it.
func (m *Manager) ToggleLaser() {
	if !m.HasController() {
		ctrl, err := m.factory()
		if err != nil {
			if errors.Is(err, ErrLaserDisabled) {
				m.log.Warning("Laser is disabled in config, not creating controller.")
			} else {
				m.log.Error("Failed to create laser controller: %v", err)
			}
			return
		}
		m.ctrl = ctrl
	}
	m.ctrl.Toggle()
}

// ForceDisableLaser turns the laser Off if a controller exists.
func (m *Manager) ForceDisableLaser() {
	if !m.HasController() {
		m.log.Info("ForceDisableLaser called but no controller exists.")
		return
	}
	m.log.Info("Laser force-disabled.")
	m.ctrl.ForceDisable()
}

func (m *Manager) HasController() bool {
	return m.ctrl != nil && !m.ctrl.Destroyed()
}

// Controller returns the live controller, or nil.
func (m *Manager) Controller() *Controller {
	if !m.HasController() {
		return nil
	}
	return m.ctrl
}

// Reset destroys the controller so the next toggle builds a fresh one.
func (m *Manager) Reset() {
	if m.ctrl != nil {
		m.ctrl.Destroy()
	}
	m.ctrl = nil
	m.log.Info("Manager reset, controller cleared.")
}
