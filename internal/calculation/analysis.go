package calculation

import (
	"github.com/rpgo/session-bruteforce/internal/domain"
)

// StrategyNote explains how a guessing strategy behaves under a session method.
func StrategyNote(method domain.SessionMethod, strategy domain.GuessStrategy) string {
	if method == domain.SessionDynamic {
		return "All guessing strategies perform equally in dynamic mode because the valid session IDs change with every guess."
	}
	switch strategy {
	case domain.GuessIncrement:
		return "Incremental guessing avoids repeat guesses in static mode and is more efficient."
	case domain.GuessDecrement:
		return "Decremental guessing avoids repeat guesses in static mode and is more efficient."
	default:
		return "In static mode, random guessing may result in repeated guesses and is less efficient than incremental or decremental guessing."
	}
}

// IsSuboptimal reports whether a better strategy exists for the method.
// Only random guessing against a static set wastes guesses on repeats.
func IsSuboptimal(method domain.SessionMethod, strategy domain.GuessStrategy) bool {
	return method == domain.SessionStatic && strategy == domain.GuessRandom
}
