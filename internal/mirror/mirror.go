// Package mirror keeps a locally renderable copy of one remote collection.
//
// A Mirror starts with fallback sample records so a panel never renders
// blank, switches to the store's records as soon as the store returns a
// non-empty result, and is patched from the return value of every mutation
// instead of being refetched.
package mirror

import (
	"slices"
	"sync"
)

// Phase tells where the records of a mirror come from.
type Phase int

const (
	// PhaseFallback means the mirror still shows the fallback records.
	PhaseFallback Phase = iota
	// PhaseLoaded means the store delivered a non-empty result at least once.
	PhaseLoaded
)

// Draft is the form buffer of the record being edited, not yet submitted.
type Draft[T Keyed] struct {
	Record T
	// IsNew is true when the draft will be created, false when it edits an existing record.
	IsNew bool
}

// Mirror is a concurrency safe state container for one collection.
type Mirror[T Keyed] struct {
	mu      sync.RWMutex
	records []T
	phase   Phase
	draft   *Draft[T]
	alert   string
}

// New returns a mirror showing fallback.
func New[T Keyed](fallback []T) *Mirror[T] {
	return &Mirror[T]{
		records: slices.Clone(fallback),
		phase:   PhaseFallback,
	}
}

// Records returns a copy of the records to render.
func (m *Mirror[T]) Records() []T {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.records)
}

// Find returns the record with id.
func (m *Mirror[T]) Find(id string) (T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if idx := indexOf(m.records, id); idx >= 0 {
		return m.records[idx], true
	}

	var zero T

	return zero, false
}

// Phase returns the current phase.
func (m *Mirror[T]) Phase() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.phase
}

// Load reconciles the mirror with a full result from the store. A non-empty
// snapshot replaces the records entirely; an empty one is ignored so the
// fallback (or the last known records) stay visible. It reports whether the
// records were replaced.
func (m *Mirror[T]) Load(snapshot []T) bool {
	if len(snapshot) == 0 {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = slices.Clone(snapshot)
	m.phase = PhaseLoaded

	return true
}

// Commit applies a successful mutation to the records and closes the draft.
func (m *Mirror[T]) Commit(kind MutationKind, payload Result[T]) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records = ApplyMutationResult(m.records, kind, payload)
	m.draft = nil
	m.alert = ""
}

// BeginCreate opens a draft for a new record.
func (m *Mirror[T]) BeginCreate(blank T) Draft[T] {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = &Draft[T]{Record: blank, IsNew: true}

	return *m.draft
}

// BeginEdit opens a draft holding the record with id.
func (m *Mirror[T]) BeginEdit(id string) (Draft[T], bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := indexOf(m.records, id)
	if idx < 0 {
		return Draft[T]{}, false
	}

	m.draft = &Draft[T]{Record: m.records[idx]}

	return *m.draft, true
}

// SetDraft replaces the record held by the open draft. It is a no-op without a draft.
func (m *Mirror[T]) SetDraft(record T) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.draft != nil {
		m.draft.Record = record
	}
}

// Draft returns the open draft.
func (m *Mirror[T]) Draft() (Draft[T], bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.draft == nil {
		return Draft[T]{}, false
	}

	return *m.draft, true
}

// DiscardDraft closes the draft without saving.
func (m *Mirror[T]) DiscardDraft() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.draft = nil
}

// Fail records a user visible failure message. Records are not touched.
func (m *Mirror[T]) Fail(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alert = message
}

// Alert returns the last failure message, empty when the last action succeeded.
func (m *Mirror[T]) Alert() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.alert
}

// ClearAlert drops the failure message.
func (m *Mirror[T]) ClearAlert() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alert = ""
}
