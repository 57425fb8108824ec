package config

import (
	"droplaser/internal/laser"
	"droplaser/internal/logging"
)

// Source holds the current settings snapshot. Reloads are only applied by
// Poll, so readers on the frame loop never see a snapshot change mid-frame.
type Source struct {
	path    string
	current laser.Config
	watcher *Watcher

	// Log receives reload diagnostics. It may be set after construction,
	// typically to a logger gated by this source's own snapshot.
	Log *logging.Logger
}

// Open loads path (creating it with defaults if absent) and starts watching
// it for edits.
func Open(path string) (*Source, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	w, err := NewWatcher(path)
	if err != nil {
		return nil, err
	}
	return &Source{path: path, current: cfg, watcher: w}, nil
}

// Static serves cfg forever.
func Static(cfg laser.Config) *Source {
	return &Source{current: cfg}
}

func (s *Source) Snapshot() laser.Config {
	return s.current
}

// Func adapts the source for the laser package.
func (s *Source) Func() laser.ConfigSource {
	return s.Snapshot
}

// Poll applies pending file changes and reports whether the snapshot changed.
// A file that fails to parse leaves the previous snapshot in place.
func (s *Source) Poll() bool {
	if s.watcher == nil {
		return false
	}
	changed := false
	for {
		select {
		case _, ok := <-s.watcher.Events:
			if !ok {
				return changed
			}
			if err := s.Reload(); err != nil {
				s.Log.Error("Config reload failed, keeping previous settings: %v", err)
				continue
			}
			changed = true
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return changed
			}
			s.Log.Error("Config watcher: %v", err)
		default:
			return changed
		}
	}
}

// Reload re-reads the file immediately.
func (s *Source) Reload() error {
	if s.path == "" {
		return nil
	}
	cfg, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current = cfg
	s.Log.Info("Config reloaded from %s", s.path)
	return nil
}

func (s *Source) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}
