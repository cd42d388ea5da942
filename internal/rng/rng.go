// Package rng provides the uniform integer sources used to draw session IDs
// and random guesses.
//
// Values are produced by reducing a 32-bit draw modulo max. For a max that is
// not a power of two this carries a small bias toward low values; it is
// negligible for the ID spaces simulated here and is deliberately not
// corrected with rejection sampling.
package rng

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	mrand "math/rand/v2"
)

// Source yields integers uniformly distributed in [0, max).
// A Source is owned by a single goroutine and is not safe for concurrent use.
type Source interface {
	Uniform(max uint64) uint64
}

// CryptoSource draws from crypto/rand through a private buffer.
type CryptoSource struct {
	r   *bufio.Reader
	buf [4]byte
}

// NewCryptoSource returns a Source backed by the operating system CSPRNG.
func NewCryptoSource() *CryptoSource {
	return newReaderSource(rand.Reader)
}

func newReaderSource(r io.Reader) *CryptoSource {
	return &CryptoSource{r: bufio.NewReaderSize(r, 4096)}
}

// Uniform panics if the underlying reader fails; callers running inside a
// worker convert the panic into a worker failure.
func (s *CryptoSource) Uniform(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	if _, err := io.ReadFull(s.r, s.buf[:]); err != nil {
		panic(fmt.Errorf("read random bytes: %w", err))
	}
	return uint64(binary.LittleEndian.Uint32(s.buf[:])) % max
}

// SeededSource is a deterministic PCG stream with the same 32-bit reduction
// as CryptoSource. It backs reproducible runs and tests.
type SeededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic Source. Different stream values
// give independent sequences for the same seed, one per worker.
func NewSeededSource(seed, stream uint64) *SeededSource {
	return &SeededSource{r: mrand.New(mrand.NewPCG(seed, stream))}
}

func (s *SeededSource) Uniform(max uint64) uint64 {
	if max == 0 {
		return 0
	}
	return uint64(s.r.Uint32()) % max
}

// Factory builds one Source per worker.
type Factory func(workerID int) Source

// CryptoFactory gives every worker its own crypto-backed source.
func CryptoFactory() Factory {
	return func(int) Source { return NewCryptoSource() }
}

// SeededFactory gives every worker a deterministic stream derived from seed.
func SeededFactory(seed uint64) Factory {
	return func(workerID int) Source { return NewSeededSource(seed, uint64(workerID)) }
}

// FactoryFor picks the seeded factory when seed is non-zero.
func FactoryFor(seed uint64) Factory {
	if seed != 0 {
		return SeededFactory(seed)
	}
	return CryptoFactory()
}
