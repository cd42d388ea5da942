package main

import (
	"fmt"

	"github.com/rpgo/session-bruteforce/internal/calculation"
	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/output"
	"github.com/shopspring/decimal"
)

// Prints the closed-form estimates across ID widths for a fixed attacker,
// handy when sanity checking simulation output by hand.
func main() {
	rate := decimal.NewFromInt(1000)
	sessions := uint64(100)

	fmt.Printf("S=%d A=%s req/s\n", sessions, rate)
	fmt.Printf("%-5s %-22s %-22s %s\n", "bits", "random/dynamic", "static sweep", "sweep time")
	for bits := 8; bits <= domain.MaxBits; bits += 4 {
		uniform := domain.SimulationConfig{Bits: bits, SessionCount: sessions, RequestsPerSecond: &rate,
			SessionMethod: domain.SessionDynamic, GuessStrategy: domain.GuessRandom}
		sweep := uniform
		sweep.SessionMethod = domain.SessionStatic
		sweep.GuessStrategy = domain.GuessIncrement

		u := calculation.ExpectedGuesses(uniform)
		s := calculation.ExpectedGuesses(sweep)
		fmt.Printf("%-5d %-22s %-22s %s\n", bits,
			output.FormatDecimal(u.Guesses), output.FormatDecimal(s.Guesses), output.FormatSeconds(s.Seconds))
	}
}
