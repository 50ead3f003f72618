package chart

import (
	"errors"
	"sync"
)

// ErrDestroyed is returned when a handle is destroyed twice.
var ErrDestroyed = errors.New("chart already destroyed")

// Memory is a Renderer that keeps the displayed chart in memory for remote
// collaborators to read back.
type Memory struct {
	mu      sync.RWMutex
	current *Spec
	drawn   int
	live    int
}

// NewMemory returns an empty Memory renderer.
func NewMemory() *Memory {
	return &Memory{}
}

// Draw implements Renderer.
func (m *Memory) Draw(spec Spec) (Handle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = &spec
	m.drawn++
	m.live++
	return &memoryHandle{owner: m, id: spec.ID}, nil
}

// Current returns the displayed chart, if any.
func (m *Memory) Current() (Spec, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current == nil {
		return Spec{}, false
	}
	return *m.current, true
}

// Live returns the number of charts drawn and not yet destroyed.
func (m *Memory) Live() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.live
}

// Drawn returns the total number of charts drawn.
func (m *Memory) Drawn() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.drawn
}

type memoryHandle struct {
	owner     *Memory
	id        string
	destroyed bool
}

func (h *memoryHandle) ID() string {
	return h.id
}

func (h *memoryHandle) Destroy() error {
	h.owner.mu.Lock()
	defer h.owner.mu.Unlock()

	if h.destroyed {
		return ErrDestroyed
	}
	h.destroyed = true
	h.owner.live--
	if h.owner.current != nil && h.owner.current.ID == h.id {
		h.owner.current = nil
	}
	return nil
}
