package output

import (
	"fmt"

	"github.com/rpgo/session-bruteforce/internal/domain"
)

// FormatProgress renders the one-line status shown while a run is active.
func FormatProgress(stats domain.AggregateStats) string {
	s := fmt.Sprintf("Progress: %d%% (%s of %s trials)",
		stats.PercentComplete(), FormatCount(stats.CompletedTrials), FormatCount(stats.TotalTrials))
	if avg, ok := stats.AverageGuesses(); ok {
		s += fmt.Sprintf(", average %.2f guesses", avg)
	}
	return s
}
