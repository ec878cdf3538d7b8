package models

import (
	"image"
	"sync"
)

// Phase identifies what the result area is presenting.
type Phase int

const (
	// PhaseIdle means no lookup has succeeded yet and the result area is blank.
	PhaseIdle Phase = iota
	// PhaseShowingResult means the result area presents the last successful lookup.
	PhaseShowingResult
)

// ResultContent holds everything the result area needs to present one record.
type ResultContent struct {
	Record *Record
	// Sprite is the scaled sprite image; nil when SpritePlaceholder applies.
	Sprite image.Image
	// SpritePlaceholder is the inline message shown instead of a sprite.
	SpritePlaceholder string
	// Chart is the rendered stat chart; nil when rendering failed.
	Chart image.Image
}

// ResultState tracks which record the result area presents.
// Failed lookups never change it.
type ResultState struct {
	mu      sync.RWMutex
	phase   Phase
	content *ResultContent
}

// NewResultState creates a state repository in the idle phase.
func NewResultState() *ResultState {
	return &ResultState{phase: PhaseIdle}
}

// SetResult records a successful lookup, replacing any previous content.
func (s *ResultState) SetResult(content *ResultContent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.phase = PhaseShowingResult
	s.content = content
}

// Phase returns the current presentation phase.
func (s *ResultState) Phase() Phase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

// Current returns the presented content, nil while idle.
func (s *ResultState) Current() *ResultContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content
}
