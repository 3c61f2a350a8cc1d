package engine

import (
	"sync"

	"iops-calculator/core/types"
)

// Session holds one caller-owned Configuration and its active warnings.
// Each event runs its whole reconciliation under the lock, so a half
// reconciled configuration is never visible to Snapshot.
type Session struct {
	engine *Engine

	mu       sync.Mutex
	config   types.Configuration
	warnings types.Warnings
}

// State is a consistent copy of a session
type State struct {
	Configuration types.Configuration `json:"configuration"`
	Warnings      types.Warnings      `json:"warnings"`
	Pricing       types.PricingResult `json:"pricing"`
}

// NewSession starts a session at the given configuration
func (e *Engine) NewSession(initial types.Configuration) *Session {
	return &Session{engine: e, config: initial}
}

// ResumeSession rebuilds a session from a configuration and the warnings the
// caller was last shown
func (e *Engine) ResumeSession(cfg types.Configuration, warnings types.Warnings) *Session {
	return &Session{engine: e, config: cfg, warnings: warnings}
}

// SelectTier applies a tier selection event
func (s *Session) SelectTier(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.engine.SelectTier(s.config, name)
	if err != nil {
		return err
	}
	s.config = cfg
	s.warnings = s.engine.Revalidate(cfg, s.warnings)
	return nil
}

// SelectStorageType applies a storage class change event
func (s *Session) SelectStorageType(key types.StorageKey) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, err := s.engine.SelectStorageType(s.config, key)
	if err != nil {
		return err
	}
	s.config = cfg
	s.warnings = s.engine.Revalidate(cfg, s.warnings)
	return nil
}

// SetDiskSize applies a disk size edit and returns the disk size warning, if any
func (s *Session) SetDiskSize(raw string) (*types.Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, warning, err := s.engine.SetDiskSize(s.config, raw)
	if err != nil {
		return nil, err
	}
	s.config = cfg
	s.warnings = s.engine.Revalidate(cfg, s.warnings)
	s.warnings.DiskSize = warning
	return warning, nil
}

// SetIops applies an IOPS edit and returns the IOPS warning, if any
func (s *Session) SetIops(raw string) (*types.Warning, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cfg, warning, err := s.engine.SetIops(s.config, raw)
	if err != nil {
		return nil, err
	}
	s.config = cfg
	s.warnings = s.engine.Revalidate(cfg, s.warnings)
	s.warnings.Iops = warning
	return warning, nil
}

// Configuration returns the current configuration
func (s *Session) Configuration() types.Configuration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Warnings returns the active warnings
func (s *Session) Warnings() types.Warnings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.warnings
}

// Snapshot returns the configuration, warnings and pricing as of one instant
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Configuration: s.config,
		Warnings:      s.warnings,
		Pricing:       s.engine.ComputeMonthlyCost(s.config),
	}
}
