package session

import (
	"fmt"
	"testing"

	"github.com/rpgo/session-bruteforce/internal/domain"
	"github.com/rpgo/session-bruteforce/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateValidSet(t *testing.T) {
	tests := []struct {
		bits  int
		count uint64
	}{
		{1, 1},
		{2, 3},
		{3, 1},
		{4, 15},
		{8, 100},
		{16, 1000},
		{32, 500},
	}

	src := rng.NewSeededSource(1234, 0)
	for _, tt := range tests {
		t.Run(fmt.Sprintf("bits=%d/count=%d", tt.bits, tt.count), func(t *testing.T) {
			total := uint64(1) << uint(tt.bits)
			set := GenerateValidSet(src, tt.count, total)

			require.Len(t, set, int(tt.count))
			for id := range set {
				assert.Less(t, id, total)
			}
		})
	}
}

func TestGenerateValidSetWithCryptoSource(t *testing.T) {
	set := GenerateValidSet(rng.NewCryptoSource(), 200, 1<<10)
	require.Len(t, set, 200)
	for id := range set {
		assert.Less(t, id, uint64(1<<10))
	}
}

// sequenceSource replays fixed values, used to observe duplicate handling.
type sequenceSource struct {
	values []uint64
	pos    int
}

func (s *sequenceSource) Uniform(max uint64) uint64 {
	v := s.values[s.pos%len(s.values)] % max
	s.pos++
	return v
}

func TestGenerateValidSetRedrawsDuplicates(t *testing.T) {
	src := &sequenceSource{values: []uint64{5, 5, 5, 2, 5, 9}}
	set := GenerateValidSet(src, 3, 16)

	assert.Equal(t, ValidSet{5: {}, 2: {}, 9: {}}, set)
	assert.Equal(t, 6, src.pos)
}

func TestModelStaticKeepsSetAfterMiss(t *testing.T) {
	src := &sequenceSource{values: []uint64{3, 11, 7}}
	m := NewModel(domain.SessionStatic, 1, 16, src)
	require.True(t, m.Contains(3))

	m.Miss()
	m.Miss()
	assert.True(t, m.Contains(3))
	assert.Equal(t, 1, src.pos)
}

func TestModelDynamicRegeneratesAfterMiss(t *testing.T) {
	src := &sequenceSource{values: []uint64{3, 11, 7}}
	m := NewModel(domain.SessionDynamic, 1, 16, src)
	require.True(t, m.Contains(3))

	m.Miss()
	assert.False(t, m.Contains(3))
	assert.True(t, m.Contains(11))

	m.Miss()
	assert.True(t, m.Contains(7))
	assert.Len(t, m.Set(), 1)
}
