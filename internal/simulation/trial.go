package simulation

import (
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/guess"
	"github.com/rpgo/session-bruteforce/internal/rng"
	"github.com/rpgo/session-bruteforce/internal/session"
)

// RunTrial guesses until a valid session ID is hit and returns the number of
// guesses it took. The loop has no upper bound: termination is probabilistic
// with about TotalIDs/SessionCount expected iterations, and a SessionCount of
// zero must be rejected by Validate before getting here.
func RunTrial(cfg domain.SimulationConfig, src rng.Source) domain.TrialOutcome {
	total := cfg.TotalIDs()
	model := session.NewModel(cfg.SessionMethod, cfg.SessionCount, total, src)
	state := guess.NewState(cfg.GuessStrategy, total)

	var guesses uint64
	for {
		guesses++
		var g uint64
		g, state = guess.Advance(state, src)
		if model.Contains(g) {
			break
		}
		model.Miss()
	}
	return domain.TrialOutcome{GuessesTaken: guesses}
}
