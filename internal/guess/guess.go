// Package guess implements the attacker's guessing strategies as explicit
// state with a pure transition function.
package guess

import (
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/rng"
)

// State is a strategy's position in the ID space. It is a value; Advance
// returns the next State instead of mutating the receiver.
type State struct {
	Kind   domain.GuessStrategy
	Cursor uint64
	Total  uint64
}

// NewState returns the canonical starting state for one trial. Increment
// starts at 0 and Decrement at total-1; Random keeps no cursor.
func NewState(kind domain.GuessStrategy, total uint64) State {
	s := State{Kind: kind, Total: total}
	if kind == domain.GuessDecrement && total > 0 {
		s.Cursor = total - 1
	}
	return s
}

// Advance produces the next guess and the state that follows it. src is
// consulted only by the random strategy.
func Advance(s State, src rng.Source) (uint64, State) {
	switch s.Kind {
	case domain.GuessIncrement:
		g := s.Cursor
		s.Cursor = (s.Cursor + 1) % s.Total
		return g, s
	case domain.GuessDecrement:
		g := s.Cursor
		s.Cursor = (s.Cursor + s.Total - 1) % s.Total
		return g, s
	default:
		return src.Uniform(s.Total), s
	}
}

// Guesser is a convenience wrapper holding the state of one trial.
type Guesser struct {
	state State
	src   rng.Source
}

// New returns a Guesser positioned at the strategy's starting point.
func New(kind domain.GuessStrategy, total uint64, src rng.Source) *Guesser {
	return &Guesser{state: NewState(kind, total), src: src}
}

// Next returns the next guess.
func (g *Guesser) Next() uint64 {
	var id uint64
	id, g.state = Advance(g.state, g.src)
	return id
}

// State exposes the current position for inspection.
func (g *Guesser) State() State { return g.state }
