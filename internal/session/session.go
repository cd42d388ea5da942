// Package session models the set of currently valid session IDs.
package session

import (
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/rng"
)

// ValidSet is the set of IDs currently accepted as live sessions.
type ValidSet map[uint64]struct{}

// Contains reports whether id is a live session.
func (v ValidSet) Contains(id uint64) bool {
	_, ok := v[id]
	return ok
}

// GenerateValidSet draws IDs from [0, totalIDs) until count distinct IDs are
// collected. Duplicate draws are discarded. The caller must keep count well
// below totalIDs; as the set fills, most draws collide and the cost grows
// sharply. count >= totalIDs never terminates.
func GenerateValidSet(src rng.Source, count, totalIDs uint64) ValidSet {
	set := make(ValidSet, count)
	for uint64(len(set)) < count {
		set[src.Uniform(totalIDs)] = struct{}{}
	}
	return set
}

// Model owns the valid set for a single trial and applies the regeneration policy.
type Model struct {
	method   domain.SessionMethod
	count    uint64
	totalIDs uint64
	src      rng.Source
	current  ValidSet
}

// NewModel builds a model and generates the trial's initial set.
func NewModel(method domain.SessionMethod, count, totalIDs uint64, src rng.Source) *Model {
	m := &Model{method: method, count: count, totalIDs: totalIDs, src: src}
	m.Reset()
	return m
}

// Reset replaces the current set, as done at the start of every trial.
func (m *Model) Reset() {
	m.current = GenerateValidSet(m.src, m.count, m.totalIDs)
}

// Contains reports whether id is valid right now.
func (m *Model) Contains(id uint64) bool {
	return m.current.Contains(id)
}

// Miss is called after a failed guess. Dynamic models rotate to a brand new
// set; static models keep theirs. The full reallocation is what dominates
// the cost of dynamic runs.
func (m *Model) Miss() {
	if m.method == domain.SessionDynamic {
		m.Reset()
	}
}

// Set returns the current valid set.
func (m *Model) Set() ValidSet { return m.current }
