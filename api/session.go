package api

import (
	"sync"

	"github.com/google/uuid"

	"charger-sizing/core/types"
)

// Entry is one charger line item held by the session.
type Entry struct {
	ID   string            `json:"id"`
	Spec types.ChargerSpec `json:"spec"`
}

// Session is the server's in-memory, ordered charger list plus the
// active calculation parameters. It is the only mutable state in the
// process; the engine only ever sees value snapshots taken from it.
// Nothing is persisted: the list lives and dies with the process.
type Session struct {
	mu      sync.RWMutex
	entries []Entry
	params  types.Parameters
}

// NewSession creates a session with the given parameter defaults.
func NewSession(defaults types.Parameters) *Session {
	return &Session{params: defaults}
}

// Add appends a charger entry and returns it with its assigned ID.
func (s *Session) Add(spec types.ChargerSpec) Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := Entry{ID: uuid.NewString(), Spec: spec}
	s.entries = append(s.entries, e)
	return e
}

// Remove deletes the entry with the given ID, preserving order.
func (s *Session) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes all entries.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}

// Entries returns a copy of the current entries in insertion order.
func (s *Session) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Specs returns a snapshot of the charger specs in insertion order.
func (s *Session) Specs() []types.ChargerSpec {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]types.ChargerSpec, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Spec
	}
	return out
}

// Params returns the active calculation parameters.
func (s *Session) Params() types.Parameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// SetParams replaces the active calculation parameters. Previously
// derived designs are implicitly invalidated; every read recomputes.
func (s *Session) SetParams(p types.Parameters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.params = p
}
